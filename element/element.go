// Package element implements focal elements for the belief functions theory: immutable bitset values
// representing subsets of a finite, discrete frame of discernment, together with the set-theoretic
// operations (conjunction, disjunction, opposite, exclusion) needed by mass functions.
//
// Elements are never modified after construction. Every operation returns a new element, which makes
// them safe to share and to use as keys of a focal set. Most operations exist in a safe variant that
// validates the compatibility of its operands and an unsafe variant that skips the validation for
// throughput; the unsafe variants push the correctness responsibility to the caller.
package element

import (
	"math/bits"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/iotaledger/hive.go/ierrors"
)

// DiscreteElement is a subset of a discrete frame of discernment, encoded as a bit vector where the
// bit at position i marks the presence of state i. The cardinal is computed lazily and cached, which
// is safe because the value is immutable.
type DiscreteElement struct {
	size int
	bits *bitset.BitSet
	card int
}

// New creates an element on a frame of the given size from the given little-endian encoding words.
// It returns ErrInvalidFrameSize if size is not positive and ErrInvalidEncoding if any bit of the
// encoding falls outside the frame.
func New(size int, words ...uint64) (*DiscreteElement, error) {
	if size <= 0 {
		return nil, ierrors.Wrapf(ErrInvalidFrameSize, "size %d", size)
	}

	wordCount := wordsForSize(size)
	for i, word := range words {
		if i < wordCount-1 || word == 0 {
			continue
		}
		if i >= wordCount {
			return nil, ierrors.Wrapf(ErrInvalidEncoding, "word %d is out of range for size %d", i, size)
		}
		if tail := uint(size) % 64; tail != 0 && word>>tail != 0 {
			return nil, ierrors.Wrapf(ErrInvalidEncoding, "word %d has bits beyond size %d", i, size)
		}
	}

	return NewUnsafe(size, words...), nil
}

// NewUnsafe creates an element without validating the encoding against the frame size.
func NewUnsafe(size int, words ...uint64) *DiscreteElement {
	element := &DiscreteElement{
		size: size,
		bits: bitset.New(uint(size)),
		card: -1,
	}

	for i, word := range words {
		for word != 0 {
			bit := bits.TrailingZeros64(word)
			element.bits.Set(uint(64*i + bit))
			word &= word - 1
		}
	}

	// short-circuit the two trivial cardinals
	if element.bits.None() {
		element.card = 0
	} else if element.bits.All() {
		element.card = size
	}

	return element
}

// Empty returns the empty element of the given frame size.
func Empty(size int) (*DiscreteElement, error) {
	return New(size)
}

// Complete returns the complete element (the whole frame) of the given frame size.
func Complete(size int) (*DiscreteElement, error) {
	element, err := New(size)
	if err != nil {
		return nil, err
	}

	return element.CompatibleComplete(), nil
}

// Size returns the size of the frame of discernment the element is defined on.
func (e *DiscreteElement) Size() int {
	return e.size
}

// Cardinal returns the number of states the element contains. The value is computed on first access
// and cached; the write is a benign idempotent memoization on an otherwise immutable value.
func (e *DiscreteElement) Cardinal() int {
	if e.card == -1 {
		e.card = int(e.bits.Count())
	}

	return e.card
}

// IsEmpty returns true if the element contains no state.
func (e *DiscreteElement) IsEmpty() bool {
	return e.bits.None()
}

// IsComplete returns true if the element contains every state of its frame.
func (e *DiscreteElement) IsComplete() bool {
	return e.bits.All()
}

// IsCompatible returns true if both elements are defined on frames of the same size and can
// therefore be combined by set-theoretic operations.
func (e *DiscreteElement) IsCompatible(other *DiscreteElement) bool {
	return other != nil && e.size == other.size
}

// Equal returns true if both elements are defined on the same frame and contain the same states.
func (e *DiscreteElement) Equal(other *DiscreteElement) bool {
	return e.IsCompatible(other) && e.bits.Equal(other.bits)
}

// Key returns a map key derived from the encoding only. The frame size is deliberately not part of
// the key: elements of different frame sizes with the same encoding collide, so a single
// collection must never mix frame sizes.
func (e *DiscreteElement) Key() string {
	words := e.bits.Bytes()
	for len(words) > 0 && words[len(words)-1] == 0 {
		words = words[:len(words)-1]
	}

	var builder strings.Builder
	builder.Grow(8 * len(words))
	for _, word := range words {
		for i := 0; i < 8; i++ {
			builder.WriteByte(byte(word >> (8 * i)))
		}
	}

	return builder.String()
}

// Conjunction returns the intersection of both elements.
func (e *DiscreteElement) Conjunction(other *DiscreteElement) (*DiscreteElement, error) {
	if !e.IsCompatible(other) {
		return nil, ierrors.Wrapf(ErrIncompatibleElements, "sizes %d and %d", e.size, other.Size())
	}

	return e.ConjunctionUnsafe(other), nil
}

// ConjunctionUnsafe returns the intersection of both elements without checking their compatibility.
func (e *DiscreteElement) ConjunctionUnsafe(other *DiscreteElement) *DiscreteElement {
	return &DiscreteElement{
		size: e.size,
		bits: e.bits.Intersection(other.bits),
		card: -1,
	}
}

// Disjunction returns the union of both elements.
func (e *DiscreteElement) Disjunction(other *DiscreteElement) (*DiscreteElement, error) {
	if !e.IsCompatible(other) {
		return nil, ierrors.Wrapf(ErrIncompatibleElements, "sizes %d and %d", e.size, other.Size())
	}

	return e.DisjunctionUnsafe(other), nil
}

// DisjunctionUnsafe returns the union of both elements without checking their compatibility.
func (e *DiscreteElement) DisjunctionUnsafe(other *DiscreteElement) *DiscreteElement {
	return &DiscreteElement{
		size: e.size,
		bits: e.bits.Union(other.bits),
		card: -1,
	}
}

// Opposite returns the complement of the element within its frame of discernment.
func (e *DiscreteElement) Opposite() *DiscreteElement {
	opposite := &DiscreteElement{
		size: e.size,
		bits: e.bits.Complement(),
		card: -1,
	}
	if e.card != -1 {
		opposite.card = e.size - e.card
	}

	return opposite
}

// Exclusion returns the element with all states of other removed (the set difference).
func (e *DiscreteElement) Exclusion(other *DiscreteElement) (*DiscreteElement, error) {
	if !e.IsCompatible(other) {
		return nil, ierrors.Wrapf(ErrIncompatibleElements, "sizes %d and %d", e.size, other.Size())
	}

	return e.ExclusionUnsafe(other), nil
}

// ExclusionUnsafe returns the set difference without checking the compatibility of the operands.
func (e *DiscreteElement) ExclusionUnsafe(other *DiscreteElement) *DiscreteElement {
	return e.ConjunctionUnsafe(other.Opposite())
}

// IsSubset returns true if every state of the element is contained in other. Incompatible elements
// are never subsets of each other.
func (e *DiscreteElement) IsSubset(other *DiscreteElement) bool {
	return e.IsCompatible(other) && other.bits.IsSuperSet(e.bits)
}

// IsSuperset returns true if the element contains every state of other.
func (e *DiscreteElement) IsSuperset(other *DiscreteElement) bool {
	return other != nil && other.IsSubset(e)
}

// CompatibleEmpty returns the empty element of the same frame of discernment.
func (e *DiscreteElement) CompatibleEmpty() *DiscreteElement {
	return &DiscreteElement{
		size: e.size,
		bits: bitset.New(uint(e.size)),
		card: 0,
	}
}

// CompatibleComplete returns the complete element of the same frame of discernment.
func (e *DiscreteElement) CompatibleComplete() *DiscreteElement {
	complete := bitset.New(uint(e.size))
	for i := 0; i < e.size; i++ {
		complete.Set(uint(i))
	}

	return &DiscreteElement{
		size: e.size,
		bits: complete,
		card: e.size,
	}
}

// Clone returns a copy of the element.
func (e *DiscreteElement) Clone() *DiscreteElement {
	return &DiscreteElement{
		size: e.size,
		bits: e.bits.Clone(),
		card: e.card,
	}
}

// String returns the canonical big-endian binary representation of the element. The result
// round-trips through FromString.
func (e *DiscreteElement) String() string {
	var builder strings.Builder
	builder.Grow(e.size)
	for i := e.size - 1; i >= 0; i-- {
		if e.bits.Test(uint(i)) {
			builder.WriteByte('1')
		} else {
			builder.WriteByte('0')
		}
	}

	return builder.String()
}

// Conjunctions returns the intersection of all the given elements.
func Conjunctions(elements ...*DiscreteElement) (*DiscreteElement, error) {
	if err := checkCompatibility(elements); err != nil {
		return nil, err
	}

	return ConjunctionsUnsafe(elements...), nil
}

// ConjunctionsUnsafe returns the intersection of all the given elements without checking their
// compatibility.
func ConjunctionsUnsafe(elements ...*DiscreteElement) *DiscreteElement {
	conjunction := elements[0]
	for _, element := range elements[1:] {
		conjunction = conjunction.ConjunctionUnsafe(element)
	}

	return conjunction
}

// Disjunctions returns the union of all the given elements.
func Disjunctions(elements ...*DiscreteElement) (*DiscreteElement, error) {
	if err := checkCompatibility(elements); err != nil {
		return nil, err
	}

	return DisjunctionsUnsafe(elements...), nil
}

// DisjunctionsUnsafe returns the union of all the given elements without checking their
// compatibility.
func DisjunctionsUnsafe(elements ...*DiscreteElement) *DiscreteElement {
	disjunction := elements[0]
	for _, element := range elements[1:] {
		disjunction = disjunction.DisjunctionUnsafe(element)
	}

	return disjunction
}

func checkCompatibility(elements []*DiscreteElement) error {
	for _, element := range elements[1:] {
		if !elements[0].IsCompatible(element) {
			return ierrors.Wrapf(ErrIncompatibleElements, "sizes %d and %d", elements[0].Size(), element.Size())
		}
	}

	return nil
}

func wordsForSize(size int) int {
	return (size + 63) / 64
}
