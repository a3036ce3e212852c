package mass

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDifference(t *testing.T) {
	m1 := FromFocalsUnsafe(F(e("001"), 0.6), F(e("010"), 0.4))
	m2 := FromFocalsUnsafe(F(e("001"), 0.6), F(e("100"), 0.4))

	difference, err := m1.Difference(m2)
	require.NoError(t, err)

	// exactly cancelled entries are pruned
	require.Equal(t, 2, difference.Size())
	require.InDelta(t, 0.4, difference.Mass(e("010")), 1e-9)
	require.InDelta(t, -0.4, difference.Mass(e("100")), 1e-9)

	incompatible := FromFocalsUnsafe(F(e("0001"), 1))
	_, err = m1.Difference(incompatible)
	require.ErrorIs(t, err, ErrIncompatibleMassFunctions)
}

func TestDistance(t *testing.T) {
	m1 := FromFocalsUnsafe(F(e("001"), 0.6), F(e("010"), 0.4))
	m2 := FromFocalsUnsafe(F(e("001"), 0.2), F(e("010"), 0.8))

	// identical functions are at distance zero
	distance, err := m1.Distance(m1.Clone())
	require.NoError(t, err)
	require.Zero(t, distance)

	// symmetry
	forward, err := m1.Distance(m2)
	require.NoError(t, err)
	backward, err := m2.Distance(m1)
	require.NoError(t, err)
	require.Equal(t, forward, backward)
	require.Greater(t, forward, 0.0)

	// disjoint singletons: d = {001: 0.4, 010: -0.4}, J the identity, so
	// sqrt(0.5 * (0.4² + 0.4²)) = 0.4
	require.InDelta(t, 0.4, forward, 1e-9)

	// categorical functions on disjoint singletons are at maximal distance
	c1 := FromFocalsUnsafe(F(e("001"), 1))
	c2 := FromFocalsUnsafe(F(e("010"), 1))
	maximal, err := c1.Distance(c2)
	require.NoError(t, err)
	require.InDelta(t, 1.0, maximal, 1e-9)

	// the N-ary distance is the mean of the pairwise distances
	mean, err := m1.Distance(m2, m1.Clone())
	require.NoError(t, err)
	require.InDelta(t, forward/2, mean, 1e-6)

	_, err = m1.Distance()
	require.ErrorIs(t, err, ErrNoMassFunctions)
	_, err = m1.Distance(New())
	require.ErrorIs(t, err, ErrEmptyMassFunction)
}

func TestSimilarity(t *testing.T) {
	m1 := FromFocalsUnsafe(F(e("001"), 0.6), F(e("010"), 0.4))

	similarity, err := m1.Similarity(m1.Clone())
	require.NoError(t, err)
	require.InDelta(t, 1.0, similarity, 1e-9)

	// maximal distance maps to zero similarity
	c1 := FromFocalsUnsafe(F(e("001"), 1))
	c2 := FromFocalsUnsafe(F(e("010"), 1))
	similarity, err = c1.Similarity(c2)
	require.NoError(t, err)
	require.InDelta(t, 0.0, similarity, 1e-9)
}

func TestSupport(t *testing.T) {
	m1 := FromFocalsUnsafe(F(e("001"), 0.6), F(e("010"), 0.4))
	m2 := FromFocalsUnsafe(F(e("001"), 0.2), F(e("010"), 0.8))
	m3 := FromFocalsUnsafe(F(e("001"), 0.5), F(e("010"), 0.5))

	support, err := m1.Support(m2, m3)
	require.NoError(t, err)

	s2, err := m1.Similarity(m2)
	require.NoError(t, err)
	s3, err := m1.Similarity(m3)
	require.NoError(t, err)
	require.InDelta(t, s2+s3, support, 1e-6)
}

func TestCredibility(t *testing.T) {
	m1 := FromFocalsUnsafe(F(e("001"), 0.6), F(e("010"), 0.4))
	m2 := FromFocalsUnsafe(F(e("001"), 0.2), F(e("010"), 0.8))
	m3 := FromFocalsUnsafe(F(e("001"), 0.55), F(e("010"), 0.45))

	credibility, err := Credibility(m1, m2, m3)
	require.NoError(t, err)
	require.Len(t, credibility, 3)

	sum := 0.0
	for _, weight := range credibility {
		require.Greater(t, weight, 0.0)
		sum += weight
	}
	require.InDelta(t, 1.0, sum, 1e-5)

	// m3 sits between the two others and should be the most credible source
	require.GreaterOrEqual(t, credibility[2], credibility[0])
	require.GreaterOrEqual(t, credibility[2], credibility[1])
}

func TestCredibilityGuards(t *testing.T) {
	m1 := FromFocalsUnsafe(F(e("001"), 0.6), F(e("010"), 0.4))

	_, err := Credibility(m1)
	require.ErrorIs(t, err, ErrNoMassFunctions)

	_, err = Credibility(m1, New())
	require.ErrorIs(t, err, ErrEmptyMassFunction)

	_, err = Credibility(m1, FromFocalsUnsafe(F(e("0001"), 1)))
	require.ErrorIs(t, err, ErrIncompatibleMassFunctions)

	// functions that are all equal give no usable distance information
	_, err = Credibility(m1, m1.Clone(), m1.Clone())
	require.ErrorIs(t, err, ErrIndistinctMassFunctions)
}
