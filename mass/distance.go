package mass

import (
	"math"

	"github.com/iotaledger/hive.go/ierrors"
)

// Difference returns the signed mass difference between both functions over the union of their
// focal sets. The result is not a proper mass function (entries can be negative) and exact zeros
// are pruned; it exists to feed the distance computation.
func (m *MassFunction) Difference(other *MassFunction) (*MassFunction, error) {
	if !m.IsCompatible(other) {
		return nil, ierrors.Wrapf(ErrIncompatibleMassFunctions, "sizes %d and %d", m.anyElement().Size(), other.anyElement().Size())
	}

	return m.DifferenceUnsafe(other), nil
}

// DifferenceUnsafe returns the signed mass difference without checking the compatibility of the
// functions.
func (m *MassFunction) DifferenceUnsafe(other *MassFunction) *MassFunction {
	difference := m.Clone()
	difference.RemoveMassUnsafe(other.Focals()...)
	for _, focal := range difference.Focals() {
		if focal.Mass == 0 {
			difference.focals.Delete(focal.Element.Key())
		}
	}

	return difference
}

// Distance returns the Jousselme distance between the mass function and the given ones: the mean
// of the pairwise distances, each computed as sqrt(0.5 * dᵀJd) where d is the mass difference
// vector and J the Jaccard similarity matrix of its focal elements ("A. Jousselme et al, A new
// distance between two bodies of evidence, 2001").
func (m *MassFunction) Distance(others ...*MassFunction) (float64, error) {
	if err := m.checkCombinable(others); err != nil {
		return 0, err
	}

	return m.DistanceUnsafe(others...), nil
}

// DistanceUnsafe returns the Jousselme distance without checking the preconditions.
func (m *MassFunction) DistanceUnsafe(others ...*MassFunction) float64 {
	distance := 0.0
	for _, other := range others {
		distance += distanceOne(m, other)
	}

	return round6(distance / float64(len(others)))
}

// Similarity returns the similarity between both functions, a [0, 1] rescaling of the distance
// ("L.-Z. Chen: A new fusion approach based on distance of evidences, 2005").
func (m *MassFunction) Similarity(other *MassFunction) (float64, error) {
	distance, err := m.Distance(other)
	if err != nil {
		return 0, err
	}

	return round6(0.5 * (math.Cos(math.Pi*distance) + 1)), nil
}

// SimilarityUnsafe returns the similarity without checking the preconditions.
func (m *MassFunction) SimilarityUnsafe(other *MassFunction) float64 {
	return round6(0.5 * (math.Cos(math.Pi*m.DistanceUnsafe(other)) + 1))
}

// Support returns the support the given functions give to the mass function: the sum of its
// similarities with each of them (same reference as Similarity).
func (m *MassFunction) Support(others ...*MassFunction) (float64, error) {
	if err := m.checkCombinable(others); err != nil {
		return 0, err
	}

	return m.SupportUnsafe(others...), nil
}

// SupportUnsafe returns the support without checking the preconditions.
func (m *MassFunction) SupportUnsafe(others ...*MassFunction) float64 {
	result := 0.0
	for _, other := range others {
		result += m.SimilarityUnsafe(other)
	}

	return round6(result)
}

// Credibility returns the credibility vector of the given mass functions: the support of each
// function against all the others, normalised to sum to 1 (same reference as Similarity). The
// support deliberately ignores functions equal by value, so a set of functions that are all equal
// yields ErrIndistinctMassFunctions.
func Credibility(functions ...*MassFunction) ([]float64, error) {
	if len(functions) < 2 {
		return nil, ierrors.Wrap(ErrNoMassFunctions, "the credibility requires at least two mass functions")
	}
	for _, function := range functions {
		if function.IsEmpty() {
			return nil, ierrors.Wrap(ErrEmptyMassFunction, "cannot compute the credibility")
		}
		if !functions[0].IsCompatible(function) {
			return nil, ierrors.Wrapf(ErrIncompatibleMassFunctions, "sizes %d and %d", functions[0].anyElement().Size(), function.anyElement().Size())
		}
	}

	return CredibilityUnsafe(functions...)
}

// CredibilityUnsafe returns the credibility vector without checking the compatibility of the
// functions.
func CredibilityUnsafe(functions ...*MassFunction) ([]float64, error) {
	supports := make([]float64, len(functions))
	supportSum := 0.0
	for i, function := range functions {
		others := make([]*MassFunction, 0, len(functions)-1)
		for _, other := range functions {
			if !other.Equal(function) {
				others = append(others, other)
			}
		}
		supports[i] = function.SupportUnsafe(others...)
		supportSum += supports[i]
	}

	if supportSum == 0 {
		return nil, ierrors.Wrapf(ErrIndistinctMassFunctions, "%d mass functions", len(functions))
	}

	credibility := make([]float64, len(functions))
	for i := range credibility {
		credibility[i] = round6(supports[i] / supportSum)
	}

	return credibility, nil
}

func distanceOne(m1, m2 *MassFunction) float64 {
	difference := m1.DifferenceUnsafe(m2)
	focals := difference.Focals()

	distance := 0.0
	for _, f1 := range focals {
		weighted := 0.0
		for _, f2 := range focals {
			weighted += f2.Mass * jaccard(f1, f2)
		}
		distance += weighted * f1.Mass
	}

	return math.Sqrt(0.5 * distance)
}

// jaccard is the similarity index of two focal elements, with the degenerate case of two empty
// elements mapped to 1.
func jaccard(f1, f2 Focal) float64 {
	if f1.Element.IsEmpty() && f2.Element.IsEmpty() {
		return 1
	}

	return float64(f1.Element.ConjunctionUnsafe(f2.Element).Cardinal()) / float64(f1.Element.DisjunctionUnsafe(f2.Element).Cardinal())
}
