package mass

import (
	"github.com/iotaledger/hive.go/ierrors"

	"github.com/thegamelib/thegame.go/element"
)

// Discounting returns a version of the mass function with the proportion alpha of every mass
// transferred to the complete element, the "I don't know" state. It returns ErrEmptyMassFunction
// on an empty function and ErrInvalidAlpha if alpha falls outside [0, 1].
func (m *MassFunction) Discounting(alpha float64) (*MassFunction, error) {
	if m.IsEmpty() {
		return nil, ierrors.Wrap(ErrEmptyMassFunction, "cannot discount")
	}
	if alpha < 0 || alpha > 1 {
		return nil, ierrors.Wrapf(ErrInvalidAlpha, "%f", alpha)
	}

	return m.discount(alpha), nil
}

// Weakening returns a version of the mass function with the proportion alpha of every mass
// transferred to the empty element instead of the complete one. Same preconditions as Discounting.
func (m *MassFunction) Weakening(alpha float64) (*MassFunction, error) {
	if m.IsEmpty() {
		return nil, ierrors.Wrap(ErrEmptyMassFunction, "cannot weaken")
	}
	if alpha < 0 || alpha > 1 {
		return nil, ierrors.Wrapf(ErrInvalidAlpha, "%f", alpha)
	}

	result := New(WithPrecision(m.precision))
	m.ForEach(func(e *element.DiscreteElement, mass float64) bool {
		result.AddMassUnsafe(F(e, round6(mass*(1-alpha))))

		return true
	})
	result.AddMassUnsafe(F(m.anyElement().CompatibleEmpty(), alpha))

	return result, nil
}

// Conditioning returns the mass function conditioned by the given element: the conjunctive
// combination with a categorical function assigning everything to that element ("P. Smets, The
// transferable belief model for belief representation, 1999"). It returns ErrEmptyMassFunction on
// an empty function and the element must share the frame of discernment.
func (m *MassFunction) Conditioning(e *element.DiscreteElement) (*MassFunction, error) {
	if m.IsEmpty() {
		return nil, ierrors.Wrap(ErrEmptyMassFunction, "cannot condition")
	}
	if !m.anyElement().IsCompatible(e) {
		return nil, ierrors.Wrapf(element.ErrIncompatibleElements, "sizes %d and %d", m.anyElement().Size(), e.Size())
	}

	return combinationSmetsTwo(m, FromFocalsUnsafe(F(e, 1))), nil
}

// discount is the unguarded discounting used by the temporisation strategies, which clamp alpha
// themselves.
func (m *MassFunction) discount(alpha float64) *MassFunction {
	result := New(WithPrecision(m.precision))
	m.ForEach(func(e *element.DiscreteElement, mass float64) bool {
		result.AddMassUnsafe(F(e, round6(mass*(1-alpha))))

		return true
	})
	result.AddMassUnsafe(F(m.anyElement().CompatibleComplete(), alpha))

	return result
}
