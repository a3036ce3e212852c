package mass

import (
	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrDuplicateFocalElement is returned when a mass function is constructed from a focal set that
	// contains the same element more than once.
	ErrDuplicateFocalElement = ierrors.New("the focal set must not contain duplicate elements")

	// ErrIncompatibleMassFunctions is returned when an operation is attempted across mass functions
	// that are not defined on the same frame of discernment.
	ErrIncompatibleMassFunctions = ierrors.New("the mass functions are not defined on the same frame of discernment")

	// ErrEmptyMassFunction is returned when an operation requiring focal elements is invoked on a
	// mass function with zero total mass.
	ErrEmptyMassFunction = ierrors.New("the operation cannot be applied to an empty mass function")

	// ErrNoMassFunctions is returned when a combination or comparison is invoked without any mass
	// function to operate on.
	ErrNoMassFunctions = ierrors.New("at least one mass function must be provided")

	// ErrIndistinctMassFunctions is returned when a credibility vector is requested for mass
	// functions that are all equal, as the distance-based weights are undefined in that case.
	ErrIndistinctMassFunctions = ierrors.New("the credibility of mass functions that are all equal is undefined")

	// ErrInvalidAlpha is returned when a discounting or weakening factor falls outside [0, 1].
	ErrInvalidAlpha = ierrors.New("the discounting factor must lie within [0, 1]")

	// ErrInvalidMaxCardinal is returned when an extrema search is requested with a non-positive
	// cardinality bound.
	ErrInvalidMaxCardinal = ierrors.New("the maximum cardinal must be positive")

	// ErrInvalidDegree is returned when the auto-conflict is requested up to a non-positive degree.
	ErrInvalidDegree = ierrors.New("the auto-conflict degree must be positive")

	// ErrUnknownCombinationRule is returned when a combination is dispatched on a rule that is not
	// part of the CombinationRule enumeration.
	ErrUnknownCombinationRule = ierrors.New("unknown combination rule")
)
