package mass

import (
	"strconv"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/thegamelib/thegame.go/element"
)

// CombinationRule enumerates the supported rules of combination.
type CombinationRule uint8

const (
	// Dempster is the normalised conjunctive rule of combination.
	Dempster CombinationRule = iota
	// Smets is the unnormalised conjunctive rule of combination ("P. Smets, Belief functions: The
	// disjunctive rule of combination and the generalized bayesian theorem, 1993").
	Smets
	// Disjunctive is the disjunctive rule of combination (same reference as Smets).
	Disjunctive
	// Yager moves the conflictual mass onto the complete element ("R. Yager: On the Dempster-Shafer
	// framework and new combination rules, 1987").
	Yager
	// DuboisPrade transfers the mass of conflicting intersections onto their union ("D. Dubois and
	// H. Prade: Representation and Combination of Uncertainty with Belief Functions and Possibility
	// Measures, 1988").
	DuboisPrade
	// Average is the simple average of the combined mass functions.
	Average
	// Murphy averages the mass functions, then Dempster-combines the average with itself ("C. K.
	// Murphy: Combining belief functions when evidence conflicts, 2000").
	Murphy
	// Chen weights the mass functions by their credibility before the self-combination ("L.-Z.
	// Chen: A new fusion approach based on distance of evidences, 2005").
	Chen
)

func (c CombinationRule) String() string {
	switch c {
	case Dempster:
		return "Dempster"
	case Smets:
		return "Smets"
	case Disjunctive:
		return "Disjunctive"
	case Yager:
		return "Yager"
	case DuboisPrade:
		return "DuboisPrade"
	case Average:
		return "Average"
	case Murphy:
		return "Murphy"
	case Chen:
		return "Chen"
	default:
		return "CombinationRule(" + strconv.Itoa(int(c)) + ")"
	}
}

// Combination combines the mass function with the given ones using the selected rule. It returns
// ErrUnknownCombinationRule for a rule outside the enumeration; the per-rule preconditions (at
// least one other function, no empty function, a shared frame of discernment) are checked as well.
func (m *MassFunction) Combination(rule CombinationRule, others ...*MassFunction) (*MassFunction, error) {
	switch rule {
	case Dempster:
		return m.CombinationDempster(others...)
	case Smets:
		return m.CombinationSmets(others...)
	case Disjunctive:
		return m.CombinationDisjunctive(others...)
	case Yager:
		return m.CombinationYager(others...)
	case DuboisPrade:
		return m.CombinationDuboisPrade(others...)
	case Average:
		return m.CombinationAverage(others...)
	case Murphy:
		return m.CombinationMurphy(others...)
	case Chen:
		return m.CombinationChen(others...)
	default:
		return nil, ierrors.Wrapf(ErrUnknownCombinationRule, "%d", rule)
	}
}

// CombinationUnsafe combines the mass function with the given ones using the selected rule without
// checking the preconditions. It still returns ErrUnknownCombinationRule for a rule outside the
// enumeration, and the Chen rule surfaces the errors of the credibility computation.
func (m *MassFunction) CombinationUnsafe(rule CombinationRule, others ...*MassFunction) (*MassFunction, error) {
	switch rule {
	case Dempster:
		return m.CombinationDempsterUnsafe(others...), nil
	case Smets:
		return m.CombinationSmetsUnsafe(others...), nil
	case Disjunctive:
		return m.CombinationDisjunctiveUnsafe(others...), nil
	case Yager:
		return m.CombinationYagerUnsafe(others...), nil
	case DuboisPrade:
		return m.CombinationDuboisPradeUnsafe(others...), nil
	case Average:
		return m.CombinationAverageUnsafe(others...), nil
	case Murphy:
		return m.CombinationMurphyUnsafe(others...), nil
	case Chen:
		return m.CombinationChenUnsafe(others...)
	default:
		return nil, ierrors.Wrapf(ErrUnknownCombinationRule, "%d", rule)
	}
}

// CombinationDempster combines the mass function with the given ones using Dempster's rule: the
// conjunctive combination with the conflictual mass normalised away. A total conflict yields an
// empty mass function.
func (m *MassFunction) CombinationDempster(others ...*MassFunction) (*MassFunction, error) {
	if err := m.checkCombinable(others); err != nil {
		return nil, err
	}

	return m.CombinationDempsterUnsafe(others...), nil
}

// CombinationDempsterUnsafe combines using Dempster's rule without checking the preconditions.
func (m *MassFunction) CombinationDempsterUnsafe(others ...*MassFunction) *MassFunction {
	combination := m
	for _, other := range others {
		combination = combinationDempsterTwo(combination, other)
	}

	return combination
}

// CombinationSmets combines the mass function with the given ones using Smets' rule: the
// unnormalised conjunctive combination, keeping the conflictual mass on the empty element.
func (m *MassFunction) CombinationSmets(others ...*MassFunction) (*MassFunction, error) {
	if err := m.checkCombinable(others); err != nil {
		return nil, err
	}

	return m.CombinationSmetsUnsafe(others...), nil
}

// CombinationSmetsUnsafe combines using Smets' rule without checking the preconditions.
func (m *MassFunction) CombinationSmetsUnsafe(others ...*MassFunction) *MassFunction {
	combination := m
	for _, other := range others {
		combination = combinationSmetsTwo(combination, other)
	}

	return combination
}

// CombinationDisjunctive combines the mass function with the given ones using the disjunctive
// rule: the mass of each pair lands on the union of its elements.
func (m *MassFunction) CombinationDisjunctive(others ...*MassFunction) (*MassFunction, error) {
	if err := m.checkCombinable(others); err != nil {
		return nil, err
	}

	return m.CombinationDisjunctiveUnsafe(others...), nil
}

// CombinationDisjunctiveUnsafe combines using the disjunctive rule without checking the
// preconditions.
func (m *MassFunction) CombinationDisjunctiveUnsafe(others ...*MassFunction) *MassFunction {
	combination := m
	for _, other := range others {
		two := New()
		for _, f1 := range combination.Focals() {
			for _, f2 := range other.Focals() {
				two.AddMassUnsafe(F(f1.Element.DisjunctionUnsafe(f2.Element), f1.Mass*f2.Mass))
			}
		}
		two.Clean()
		combination = two
	}

	return combination
}

// CombinationYager combines the mass function with the given ones using Yager's rule: the
// conjunctive combination with the conflictual mass moved onto the complete element, which
// preserves the total mass.
func (m *MassFunction) CombinationYager(others ...*MassFunction) (*MassFunction, error) {
	if err := m.checkCombinable(others); err != nil {
		return nil, err
	}

	return m.CombinationYagerUnsafe(others...), nil
}

// CombinationYagerUnsafe combines using Yager's rule without checking the preconditions.
func (m *MassFunction) CombinationYagerUnsafe(others ...*MassFunction) *MassFunction {
	combination := m.CombinationSmetsUnsafe(others...)
	reference := combination.anyElement()
	if reference == nil {
		return combination
	}

	empty := reference.CompatibleEmpty()
	if conflict := combination.Mass(empty); conflict != 0 {
		combination.AddMassUnsafe(F(reference.CompatibleComplete(), conflict))
	}
	combination.focals.Delete(empty.Key())

	return combination
}

// CombinationDuboisPrade combines the mass function with the given ones using the Dubois and Prade
// rule: the conjunctive combination over every tuple of focal elements, falling back to the
// disjunction of the tuple whenever its conjunction is empty.
func (m *MassFunction) CombinationDuboisPrade(others ...*MassFunction) (*MassFunction, error) {
	if err := m.checkCombinable(others); err != nil {
		return nil, err
	}

	return m.CombinationDuboisPradeUnsafe(others...), nil
}

// CombinationDuboisPradeUnsafe combines using the Dubois and Prade rule without checking the
// preconditions. The rule walks the full cartesian product of the focal sets, so its cost grows
// exponentially with the number of combined functions.
func (m *MassFunction) CombinationDuboisPradeUnsafe(others ...*MassFunction) *MassFunction {
	focalSets := make([][]Focal, 0, len(others)+1)
	focalSets = append(focalSets, m.Focals())
	for _, other := range others {
		focalSets = append(focalSets, other.Focals())
	}

	combination := New()
	for _, focalSet := range focalSets {
		if len(focalSet) == 0 {
			return combination
		}
	}
	tuple := make([]*element.DiscreteElement, len(focalSets))
	indexes := make([]int, len(focalSets))
	for {
		mass := 1.0
		for i, index := range indexes {
			tuple[i] = focalSets[i][index].Element
			mass *= focalSets[i][index].Mass
		}

		result := element.ConjunctionsUnsafe(tuple...)
		if result.IsEmpty() {
			result = element.DisjunctionsUnsafe(tuple...)
		}
		combination.AddMassUnsafe(F(result, mass))

		// odometer increment over the focal sets
		i := 0
		for ; i < len(indexes); i++ {
			indexes[i]++
			if indexes[i] < len(focalSets[i]) {
				break
			}
			indexes[i] = 0
		}
		if i == len(indexes) {
			break
		}
	}
	combination.Clean()

	return combination
}

// CombinationAverage combines the mass function with the given ones by averaging them.
func (m *MassFunction) CombinationAverage(others ...*MassFunction) (*MassFunction, error) {
	if err := m.checkCombinable(others); err != nil {
		return nil, err
	}

	return m.CombinationAverageUnsafe(others...), nil
}

// CombinationAverageUnsafe combines by averaging without checking the preconditions.
func (m *MassFunction) CombinationAverageUnsafe(others ...*MassFunction) *MassFunction {
	combination := m.Clone()
	for _, other := range others {
		combination.AddMassUnsafe(other.Focals()...)
	}

	count := float64(len(others) + 1)
	for _, focal := range combination.Focals() {
		focal.Mass /= count
		combination.focals.Set(focal.Element.Key(), focal)
	}

	return combination
}

// CombinationMurphy combines the mass function with the given ones using Murphy's rule: the
// average of the functions, Dempster-combined with itself once per provided function.
func (m *MassFunction) CombinationMurphy(others ...*MassFunction) (*MassFunction, error) {
	if err := m.checkCombinable(others); err != nil {
		return nil, err
	}

	return m.CombinationMurphyUnsafe(others...), nil
}

// CombinationMurphyUnsafe combines using Murphy's rule without checking the preconditions.
func (m *MassFunction) CombinationMurphyUnsafe(others ...*MassFunction) *MassFunction {
	average := m.CombinationAverageUnsafe(others...)

	return average.CombinationDempsterUnsafe(repeat(average, len(others))...)
}

// CombinationChen combines the mass function with the given ones using Chen's rule: the functions
// are summed weighted by their credibility, then the weighted sum is Dempster-combined with itself
// once per provided function. It fails if all the functions are equal, since the distance-based
// credibility is undefined in that case.
func (m *MassFunction) CombinationChen(others ...*MassFunction) (*MassFunction, error) {
	if err := m.checkCombinable(others); err != nil {
		return nil, err
	}

	return m.CombinationChenUnsafe(others...)
}

// CombinationChenUnsafe combines using Chen's rule without checking the compatibility of the
// functions. The credibility computation can still fail, hence the error.
func (m *MassFunction) CombinationChenUnsafe(others ...*MassFunction) (*MassFunction, error) {
	functions := make([]*MassFunction, 0, len(others)+1)
	functions = append(functions, m)
	functions = append(functions, others...)

	credibility, err := CredibilityUnsafe(functions...)
	if err != nil {
		return nil, err
	}

	weighted := New()
	for i, function := range functions {
		for _, focal := range function.Focals() {
			weighted.AddMassUnsafe(F(focal.Element, focal.Mass*credibility[i]))
		}
	}

	return weighted.CombinationDempsterUnsafe(repeat(weighted, len(others))...), nil
}

// AutoConflict returns the auto-conflict of the mass function from degree 1 up to the given
// degree: the mass landing on the empty element when the function is conjunctively combined with
// itself that many times ("A. Martin et al.: Conflict measure for the discounting operation on
// belief functions, 2008").
func (m *MassFunction) AutoConflict(degree int) ([]float64, error) {
	if m.IsEmpty() {
		return nil, ierrors.Wrap(ErrEmptyMassFunction, "cannot compute the auto-conflict")
	}
	if degree < 1 {
		return nil, ierrors.Wrapf(ErrInvalidDegree, "%d", degree)
	}

	empty := m.anyElement().CompatibleEmpty()
	result := make([]float64, 0, degree)
	combination := m
	for i := 0; i < degree; i++ {
		combination = combinationSmetsTwo(combination, m)
		result = append(result, combination.Mass(empty))
	}

	return result, nil
}

// combinationSmetsTwo is the two-operand conjunctive combination all the conjunctive rules build
// on. It iterates over focal snapshots so both operands may be the same instance.
func combinationSmetsTwo(m1, m2 *MassFunction) *MassFunction {
	combination := New()
	for _, f1 := range m1.Focals() {
		for _, f2 := range m2.Focals() {
			combination.AddMassUnsafe(F(f1.Element.ConjunctionUnsafe(f2.Element), f1.Mass*f2.Mass))
		}
	}
	combination.Clean()

	return combination
}

// combinationDempsterTwo normalises the conflict out of the two-operand conjunctive combination.
func combinationDempsterTwo(m1, m2 *MassFunction) *MassFunction {
	combination := combinationSmetsTwo(m1, m2)
	if reference := combination.anyElement(); reference != nil {
		combination.focals.Delete(reference.CompatibleEmpty().Key())
	}
	combination.Clean()
	combination.Normalise()

	return combination
}

// checkCombinable validates the shared preconditions of the safe combination rules.
func (m *MassFunction) checkCombinable(others []*MassFunction) error {
	if len(others) == 0 {
		return ierrors.Wrap(ErrNoMassFunctions, "nothing to combine with")
	}

	if m.IsEmpty() {
		return ierrors.Wrap(ErrEmptyMassFunction, "cannot combine an empty mass function")
	}
	for _, other := range others {
		if other.IsEmpty() {
			return ierrors.Wrap(ErrEmptyMassFunction, "cannot combine with an empty mass function")
		}
		if !m.IsCompatible(other) {
			return ierrors.Wrapf(ErrIncompatibleMassFunctions, "sizes %d and %d", m.anyElement().Size(), other.anyElement().Size())
		}
	}

	return nil
}

func repeat(m *MassFunction, count int) []*MassFunction {
	functions := make([]*MassFunction, count)
	for i := range functions {
		functions[i] = m
	}

	return functions
}
