// Package mass implements mass functions (basic belief assignments) for the belief functions
// theory, together with the algebra that combines, discounts and queries them: the eight classic
// combination rules, the Jousselme distance and its derived credibility weights, decision-support
// extrema search and time-decay (temporisation) fusion.
//
// A mass function maps focal elements to real-valued masses. It does not have to be valid (masses
// within [0, 1], sum of 1) to be manipulated; validity predicates are exposed but never enforced.
// Mutating methods (AddMass, RemoveMass, Clean, Normalise) modify the receiver in place; every
// other operation returns a new instance. Safe entry points guard all their preconditions before
// computing and unsafe twins skip the guards for hot loops.
package mass

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/iotaledger/hive.go/ds/shrinkingmap"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/stringify"

	"github.com/thegamelib/thegame.go/element"
)

// DefaultPrecision is the mass below which focal elements are considered computation artifacts and
// removed by Clean, and the tolerance used by HasValidSum.
const DefaultPrecision = 0.000001

// Focal is an element together with the mass assigned to it.
type Focal struct {
	Element *element.DiscreteElement
	Mass    float64
}

// F is a shorthand constructor for a Focal.
func F(e *element.DiscreteElement, mass float64) Focal {
	return Focal{Element: e, Mass: mass}
}

// Options define options for a MassFunction.
type Options struct {
	precision float64
}

// Option is a function setting an Options option.
type Option func(opts *Options)

// WithPrecision overrides the precision under which masses are cleaned up and within which the sum
// is considered valid.
func WithPrecision(precision float64) Option {
	return func(opts *Options) {
		opts.precision = precision
	}
}

// MassFunction maps focal elements to masses. The focal store is keyed by the element encoding (see
// element.Key), so all focal elements of one mass function must share a frame of discernment.
type MassFunction struct {
	focals    *shrinkingmap.ShrinkingMap[string, Focal]
	precision float64
}

// New creates an empty mass function.
func New(opts ...Option) *MassFunction {
	options := &Options{precision: DefaultPrecision}
	for _, opt := range opts {
		opt(options)
	}

	return &MassFunction{
		focals:    shrinkingmap.New[string, Focal](),
		precision: options.precision,
	}
}

// FromFocals creates a mass function from an initial focal set. It returns
// ErrDuplicateFocalElement if the same element appears twice and ErrIncompatibleElements if the
// elements are not all defined on the same frame. The resulting function does not have to be valid.
func FromFocals(focals ...Focal) (*MassFunction, error) {
	if err := checkFocalsCompatibility(focals); err != nil {
		return nil, err
	}

	m := New()
	for _, focal := range focals {
		if m.focals.Has(focal.Element.Key()) {
			return nil, ierrors.Wrapf(ErrDuplicateFocalElement, "%s", focal.Element)
		}
		m.focals.Set(focal.Element.Key(), focal)
	}

	return m, nil
}

// FromFocalsUnsafe creates a mass function from an initial focal set without validating it;
// duplicate elements overwrite each other.
func FromFocalsUnsafe(focals ...Focal) *MassFunction {
	m := New()
	for _, focal := range focals {
		m.focals.Set(focal.Element.Key(), focal)
	}

	return m
}

// Precision returns the precision the mass function was configured with.
func (m *MassFunction) Precision() float64 {
	return m.precision
}

// Size returns the number of stored focal elements, including ones with zero mass (use Clean first
// if those should not count).
func (m *MassFunction) Size() int {
	return m.focals.Size()
}

// Mass returns the mass assigned to the given element, or 0 if the element is not a focal element.
func (m *MassFunction) Mass(e *element.DiscreteElement) float64 {
	focal, exists := m.focals.Get(e.Key())
	if !exists {
		return 0
	}

	return focal.Mass
}

// Sum returns the total mass of the function.
func (m *MassFunction) Sum() float64 {
	sum := 0.0
	m.focals.ForEach(func(_ string, focal Focal) bool {
		sum += focal.Mass

		return true
	})

	return sum
}

// IsEmpty returns true if the total mass of the function is zero.
func (m *MassFunction) IsEmpty() bool {
	return m.Sum() == 0
}

// Focals returns a snapshot of the focal set.
func (m *MassFunction) Focals() []Focal {
	focals := make([]Focal, 0, m.focals.Size())
	m.focals.ForEach(func(_ string, focal Focal) bool {
		focals = append(focals, focal)

		return true
	})

	return focals
}

// ForEach iterates over the focal set and calls the consumer for every focal element. Returning
// false from the consumer aborts the iteration.
func (m *MassFunction) ForEach(consumer func(e *element.DiscreteElement, mass float64) bool) {
	m.focals.ForEach(func(_ string, focal Focal) bool {
		return consumer(focal.Element, focal.Mass)
	})
}

// AddMass accumulates the given masses onto the function, creating focal elements as needed. The
// resulting function does not have to be valid; negative masses are accepted.
func (m *MassFunction) AddMass(focals ...Focal) error {
	if err := m.checkFocals(focals); err != nil {
		return err
	}

	m.AddMassUnsafe(focals...)

	return nil
}

// AddMassUnsafe accumulates the given masses without checking the compatibility of the elements.
func (m *MassFunction) AddMassUnsafe(focals ...Focal) {
	for _, focal := range focals {
		key := focal.Element.Key()
		if existing, exists := m.focals.Get(key); exists {
			focal.Mass += existing.Mass
		}
		m.focals.Set(key, focal)
	}
}

// RemoveMass subtracts the given masses from the function. Elements that were not focal elements
// end up carrying the negated mass.
func (m *MassFunction) RemoveMass(focals ...Focal) error {
	if err := m.checkFocals(focals); err != nil {
		return err
	}

	m.RemoveMassUnsafe(focals...)

	return nil
}

// RemoveMassUnsafe subtracts the given masses without checking the compatibility of the elements.
func (m *MassFunction) RemoveMassUnsafe(focals ...Focal) {
	for _, focal := range focals {
		key := focal.Element.Key()
		if existing, exists := m.focals.Get(key); exists {
			focal.Mass = existing.Mass - focal.Mass
		} else {
			focal.Mass = -focal.Mass
		}
		m.focals.Set(key, focal)
	}
}

// Clean removes every focal element whose mass lies below the precision. This is only sound on
// functions with non-negative masses; difference results are excluded from cleaning by convention.
func (m *MassFunction) Clean() {
	for _, focal := range m.Focals() {
		if focal.Mass < m.precision {
			m.focals.Delete(focal.Element.Key())
		}
	}
}

// Normalise divides every mass by the current total so the function sums to 1. It is a no-op on a
// function with zero total mass.
func (m *MassFunction) Normalise() {
	sum := m.Sum()
	if sum == 0 {
		return
	}

	for _, focal := range m.Focals() {
		focal.Mass /= sum
		m.focals.Set(focal.Element.Key(), focal)
	}
}

// IsCompatible returns true if both mass functions are defined on the same frame of discernment.
// Empty functions are compatible with everything.
func (m *MassFunction) IsCompatible(other *MassFunction) bool {
	if m.IsEmpty() || other.IsEmpty() {
		return true
	}

	return m.anyElement().IsCompatible(other.anyElement())
}

// HasValidValues returns true if every stored mass lies within [0, 1].
func (m *MassFunction) HasValidValues() bool {
	valid := true
	m.focals.ForEach(func(_ string, focal Focal) bool {
		valid = focal.Mass >= 0 && focal.Mass <= 1

		return valid
	})

	return valid
}

// HasValidSum returns true if the total mass equals 1 within the precision.
func (m *MassFunction) HasValidSum() bool {
	sum := m.Sum()

	return sum >= 1-m.precision && sum <= 1+m.precision
}

// IsValid returns true if the mass function has valid values and a valid sum.
func (m *MassFunction) IsValid() bool {
	return m.HasValidValues() && m.HasValidSum()
}

// Clone returns a deep copy of the mass function (the immutable elements themselves are shared).
func (m *MassFunction) Clone() *MassFunction {
	clone := New(WithPrecision(m.precision))
	m.focals.ForEach(func(key string, focal Focal) bool {
		clone.focals.Set(key, focal)

		return true
	})

	return clone
}

// Equal returns true if both functions assign the same mass (compared at 6 decimals) to every
// element of either focal set.
func (m *MassFunction) Equal(other *MassFunction) bool {
	for _, focal := range m.Focals() {
		if round6(other.Mass(focal.Element)) != round6(focal.Mass) {
			return false
		}
	}
	for _, focal := range other.Focals() {
		if round6(m.Mass(focal.Element)) != round6(focal.Mass) {
			return false
		}
	}

	return true
}

// String returns a deterministic single-line representation of the mass function, with the focal
// elements sorted by their binary form.
func (m *MassFunction) String() string {
	focals := m.Focals()
	sort.Slice(focals, func(i, j int) bool {
		return focals[i].Element.String() < focals[j].Element.String()
	})

	var builder strings.Builder
	builder.WriteByte('{')
	for i, focal := range focals {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(fmt.Sprintf("%s:%.4f", focal.Element, focal.Mass))
	}
	builder.WriteByte('}')

	return builder.String()
}

// Details returns a verbose multi-line representation of the mass function for debugging.
func (m *MassFunction) Details() string {
	focals := m.Focals()
	sort.Slice(focals, func(i, j int) bool {
		return focals[i].Element.String() < focals[j].Element.String()
	})

	fields := lo.Map(focals, func(focal Focal) *stringify.StructField {
		return stringify.NewStructField(focal.Element.String(), focal.Mass)
	})
	fields = append(fields, stringify.NewStructField("sum", m.Sum()))

	return stringify.Struct("MassFunction", fields...)
}

// anyElement returns an arbitrary focal element, or nil if the focal set is empty.
func (m *MassFunction) anyElement() (anyElement *element.DiscreteElement) {
	m.focals.ForEach(func(_ string, focal Focal) bool {
		anyElement = focal.Element

		return false
	})

	return anyElement
}

// checkFocals validates that the given focal elements are compatible with each other and with the
// elements already present in the mass function.
func (m *MassFunction) checkFocals(focals []Focal) error {
	if err := checkFocalsCompatibility(focals); err != nil {
		return err
	}

	if existing := m.anyElement(); existing != nil && len(focals) > 0 {
		if !existing.IsCompatible(focals[0].Element) {
			return ierrors.Wrapf(element.ErrIncompatibleElements, "sizes %d and %d", existing.Size(), focals[0].Element.Size())
		}
	}

	return nil
}

func checkFocalsCompatibility(focals []Focal) error {
	if len(focals) == 0 {
		return nil
	}

	first := focals[0].Element
	for _, focal := range focals[1:] {
		if !first.IsCompatible(focal.Element) {
			return ierrors.Wrapf(element.ErrIncompatibleElements, "sizes %d and %d", first.Size(), focal.Element.Size())
		}
	}

	return nil
}

// round6 rounds a scalar readout to 6 decimals, the granularity at which masses are considered
// meaningful (see DefaultPrecision).
func round6(value float64) float64 {
	return math.Round(value*1e6) / 1e6
}
