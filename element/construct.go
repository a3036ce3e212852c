package element

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/iotaledger/hive.go/ierrors"
)

// FromString creates an element from a big-endian binary string (the leftmost character encodes the
// highest state). The frame size is the length of the string. It returns ErrInvalidBinaryString if
// the string is empty or contains anything but 0s and 1s.
func FromString(binary string) (*DiscreteElement, error) {
	if err := checkBinaryString(binary); err != nil {
		return nil, err
	}

	return FromStringUnsafe(binary), nil
}

// FromStringUnsafe creates an element from a big-endian binary string without validating it.
func FromStringUnsafe(binary string) *DiscreteElement {
	size := len(binary)
	element := &DiscreteElement{
		size: size,
		bits: bitset.New(uint(size)),
		card: 0,
	}

	for i := 0; i < size; i++ {
		if binary[size-1-i] == '1' {
			element.bits.Set(uint(i))
			element.card++
		}
	}

	return element
}

// FromStringLittleEndian creates an element from a little-endian binary string (the leftmost
// character encodes state 0).
func FromStringLittleEndian(binary string) (*DiscreteElement, error) {
	if err := checkBinaryString(binary); err != nil {
		return nil, err
	}

	return FromStringLittleEndianUnsafe(binary), nil
}

// FromStringLittleEndianUnsafe creates an element from a little-endian binary string without
// validating it.
func FromStringLittleEndianUnsafe(binary string) *DiscreteElement {
	size := len(binary)
	element := &DiscreteElement{
		size: size,
		bits: bitset.New(uint(size)),
		card: 0,
	}

	for i := 0; i < size; i++ {
		if binary[i] == '1' {
			element.bits.Set(uint(i))
			element.card++
		}
	}

	return element
}

// FromReferences creates an element from an ordered reference list describing the states of the
// frame of discernment and the subset of states to include. The reference at index i maps onto bit
// position i. Requesting the same state twice is tolerated (set semantics), but a reference list
// with duplicates yields ErrDuplicateReference and an unknown state yields ErrUnknownState.
func FromReferences[T comparable](references []T, states ...T) (*DiscreteElement, error) {
	if len(references) == 0 {
		return nil, ierrors.Wrap(ErrInvalidFrameSize, "empty reference list")
	}

	seen := make(map[T]struct{}, len(references))
	for _, reference := range references {
		if _, exists := seen[reference]; exists {
			return nil, ierrors.Wrapf(ErrDuplicateReference, "%v", reference)
		}
		seen[reference] = struct{}{}
	}

	for _, state := range states {
		if _, exists := seen[state]; !exists {
			return nil, ierrors.Wrapf(ErrUnknownState, "%v", state)
		}
	}

	return FromReferencesUnsafe(references, states...), nil
}

// FromReferencesUnsafe creates an element from a reference list without validating it.
func FromReferencesUnsafe[T comparable](references []T, states ...T) *DiscreteElement {
	element := &DiscreteElement{
		size: len(references),
		bits: bitset.New(uint(len(references))),
		card: 0,
	}

	for i, reference := range references {
		for _, state := range states {
			if state == reference {
				if !element.bits.Test(uint(i)) {
					element.bits.Set(uint(i))
					element.card++
				}

				break
			}
		}
	}

	return element
}

func checkBinaryString(binary string) error {
	if len(binary) == 0 {
		return ierrors.Wrap(ErrInvalidBinaryString, "empty string")
	}

	for _, r := range binary {
		if r != '0' && r != '1' {
			return ierrors.Wrapf(ErrInvalidBinaryString, "unexpected character %q", r)
		}
	}

	return nil
}
