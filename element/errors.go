package element

import (
	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrInvalidFrameSize is returned when a frame of discernment with zero or negative size is requested.
	ErrInvalidFrameSize = ierrors.New("the size of the frame of discernment must be positive")

	// ErrInvalidEncoding is returned when an encoding contains states outside the frame of discernment.
	ErrInvalidEncoding = ierrors.New("the encoding does not fit the frame of discernment")

	// ErrInvalidBinaryString is returned when an element is constructed from a string that is not made of 0s and 1s.
	ErrInvalidBinaryString = ierrors.New("the binary string must only contain 0s and 1s")

	// ErrDuplicateReference is returned when a reference list contains the same state more than once.
	ErrDuplicateReference = ierrors.New("the reference list must not contain duplicates")

	// ErrUnknownState is returned when a requested state is not part of the reference list.
	ErrUnknownState = ierrors.New("the state does not appear in the reference list")

	// ErrIncompatibleElements is returned when a set-theoretic operation is attempted on elements that are
	// not defined on the same frame of discernment.
	ErrIncompatibleElements = ierrors.New("the elements are not defined on the same frame of discernment")

	// ErrIncompatibleReferences is returned when a reference list does not match the frame of discernment
	// of the element it is applied to.
	ErrIncompatibleReferences = ierrors.New("the reference list does not match the frame of discernment")
)
