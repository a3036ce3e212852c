package element

import (
	"fmt"
	"strings"

	"github.com/iotaledger/hive.go/ierrors"
)

// FormattedString renders the element against an ordered reference list, in the form
// "{state1 u state2 u ...}". The reference at index i names bit position i. It returns
// ErrIncompatibleReferences if the list does not match the frame size and ErrDuplicateReference if
// it contains the same reference twice.
func FormattedString[T comparable](e *DiscreteElement, references ...T) (string, error) {
	if len(references) != e.Size() {
		return "", ierrors.Wrapf(ErrIncompatibleReferences, "%d references for a frame of size %d", len(references), e.Size())
	}

	seen := make(map[T]struct{}, len(references))
	for _, reference := range references {
		if _, exists := seen[reference]; exists {
			return "", ierrors.Wrapf(ErrDuplicateReference, "%v", reference)
		}
		seen[reference] = struct{}{}
	}

	var builder strings.Builder
	builder.WriteByte('{')
	first := true
	for i, found := e.bits.NextSet(0); found; i, found = e.bits.NextSet(i + 1) {
		if !first {
			builder.WriteString(" u ")
		}
		builder.WriteString(fmt.Sprint(references[i]))
		first = false
	}
	builder.WriteByte('}')

	return builder.String(), nil
}
