package mass

import (
	"math"

	"github.com/thegamelib/thegame.go/element"
)

// Belief returns the belief (credibility) of the given element: the total mass of the non-empty
// focal elements included in it. It is 0 for the empty element, for an empty mass function and for
// an element defined on another frame of discernment.
func (m *MassFunction) Belief(e *element.DiscreteElement) float64 {
	if e.IsEmpty() || m.IsEmpty() || !e.IsCompatible(m.anyElement()) {
		return 0
	}

	result := 0.0
	m.focals.ForEach(func(_ string, focal Focal) bool {
		if !focal.Element.IsEmpty() && focal.Element.IsSubset(e) {
			result += focal.Mass
		}

		return true
	})

	return round6(result)
}

// Plausibility returns the plausibility of the given element: the total mass of the focal elements
// intersecting it. The empty element carries the total mass of the function, every other
// short-circuit yields 0.
func (m *MassFunction) Plausibility(e *element.DiscreteElement) float64 {
	if m.IsEmpty() {
		return 0
	}
	if e.IsEmpty() {
		return m.Sum()
	}
	if !e.IsCompatible(m.anyElement()) {
		return 0
	}

	result := 0.0
	m.focals.ForEach(func(_ string, focal Focal) bool {
		if !e.ConjunctionUnsafe(focal.Element).IsEmpty() {
			result += focal.Mass
		}

		return true
	})

	return round6(result)
}

// Commonality returns the commonality of the given element: the total mass of the focal elements
// containing it. The empty element carries the total mass of the function, every other
// short-circuit yields 0.
func (m *MassFunction) Commonality(e *element.DiscreteElement) float64 {
	if m.IsEmpty() {
		return 0
	}
	if e.IsEmpty() {
		return m.Sum()
	}
	if !e.IsCompatible(m.anyElement()) {
		return 0
	}

	result := 0.0
	m.focals.ForEach(func(_ string, focal Focal) bool {
		if e.IsSubset(focal.Element) {
			result += focal.Mass
		}

		return true
	})

	return round6(result)
}

// Pignistic returns the pignistic probability of the given element: every non-empty focal element
// spreads its mass uniformly over its states and the element collects its share. It is 0 for the
// empty element, for an empty mass function and for an element defined on another frame of
// discernment.
func (m *MassFunction) Pignistic(e *element.DiscreteElement) float64 {
	if e.IsEmpty() || m.IsEmpty() || !e.IsCompatible(m.anyElement()) {
		return 0
	}

	result := 0.0
	m.focals.ForEach(func(_ string, focal Focal) bool {
		if !focal.Element.IsEmpty() {
			result += focal.Mass * float64(focal.Element.ConjunctionUnsafe(e).Cardinal()) / float64(focal.Element.Cardinal())
		}

		return true
	})

	return round6(result)
}

// Specificity returns the specificity of the mass function, following "Yager, R.: Entropy and
// specificity in a mathematical theory of evidence, 1983".
func (m *MassFunction) Specificity() float64 {
	result := 0.0
	m.focals.ForEach(func(_ string, focal Focal) bool {
		if cardinal := focal.Element.Cardinal(); cardinal > 0 {
			result += focal.Mass / float64(cardinal)
		}

		return true
	})

	return round6(result)
}

// NonSpecificity returns the non-specificity of the mass function, following "Yager, R.: Entropy
// and specificity in a mathematical theory of evidence, 1983".
func (m *MassFunction) NonSpecificity() float64 {
	result := 0.0
	m.focals.ForEach(func(_ string, focal Focal) bool {
		if cardinal := focal.Element.Cardinal(); cardinal > 0 {
			result += focal.Mass * math.Log2(float64(cardinal))
		}

		return true
	})

	return round6(result)
}

// Discrepancy returns the discrepancy of the mass function, following "J. Abellan and S. Moral,
// Completing a total uncertainty measure in Dempster-Shafer theory, 1999".
func (m *MassFunction) Discrepancy() float64 {
	result := 0.0
	for _, focal := range m.Focals() {
		if focal.Element.Cardinal() > 0 {
			result -= focal.Mass * math.Log2(m.Pignistic(focal.Element))
		}
	}

	return round6(result)
}
