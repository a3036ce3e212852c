package mass

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// the running example assigns 0.1 to {a}, 0.3 to {b} and 0.6 to {a, b} on a 3-state frame
func runningExample() *MassFunction {
	return FromFocalsUnsafe(F(e("001"), 0.1), F(e("010"), 0.3), F(e("011"), 0.6))
}

func TestBelief(t *testing.T) {
	m := runningExample()

	require.InDelta(t, 0.1, m.Belief(e("001")), 1e-9)
	require.InDelta(t, 0.3, m.Belief(e("010")), 1e-9)
	require.InDelta(t, 1.0, m.Belief(e("011")), 1e-9)
	require.InDelta(t, 1.0, m.Belief(e("111")), 1e-9)
	require.Zero(t, m.Belief(e("100")))

	require.Zero(t, m.Belief(e("000")))
	require.Zero(t, New().Belief(e("001")))
	require.Zero(t, m.Belief(e("0001")))
}

func TestPlausibility(t *testing.T) {
	m := runningExample()

	require.InDelta(t, 0.7, m.Plausibility(e("001")), 1e-9)
	require.InDelta(t, 0.9, m.Plausibility(e("010")), 1e-9)
	require.InDelta(t, 1.0, m.Plausibility(e("011")), 1e-9)
	require.Zero(t, m.Plausibility(e("100")))

	// the empty element carries the total mass
	require.InDelta(t, 1.0, m.Plausibility(e("000")), 1e-9)
	require.Zero(t, New().Plausibility(e("001")))
	require.Zero(t, m.Plausibility(e("0001")))
}

func TestCommonality(t *testing.T) {
	m := runningExample()

	require.InDelta(t, 0.7, m.Commonality(e("001")), 1e-9)
	require.InDelta(t, 0.9, m.Commonality(e("010")), 1e-9)
	require.InDelta(t, 0.6, m.Commonality(e("011")), 1e-9)
	require.Zero(t, m.Commonality(e("111")))

	require.InDelta(t, 1.0, m.Commonality(e("000")), 1e-9)
	require.Zero(t, New().Commonality(e("001")))
}

func TestPignistic(t *testing.T) {
	m := runningExample()

	require.InDelta(t, 0.4, m.Pignistic(e("001")), 1e-9)
	require.InDelta(t, 0.6, m.Pignistic(e("010")), 1e-9)
	require.InDelta(t, 1.0, m.Pignistic(e("011")), 1e-9)
	require.Zero(t, m.Pignistic(e("100")))

	require.Zero(t, m.Pignistic(e("000")))
	require.Zero(t, New().Pignistic(e("001")))
}

func TestSpecificity(t *testing.T) {
	m := runningExample()
	require.InDelta(t, 0.7, m.Specificity(), 1e-9)

	categorical := FromFocalsUnsafe(F(e("010"), 1))
	require.InDelta(t, 1.0, categorical.Specificity(), 1e-9)

	vacuous := FromFocalsUnsafe(F(e("111"), 1))
	require.InDelta(t, 1.0/3.0, vacuous.Specificity(), 1e-6)
}

func TestNonSpecificity(t *testing.T) {
	m := runningExample()
	require.InDelta(t, 0.6, m.NonSpecificity(), 1e-9)

	// a categorical singleton function is maximally specific
	require.Zero(t, FromFocalsUnsafe(F(e("010"), 1)).NonSpecificity())
}

func TestDiscrepancy(t *testing.T) {
	m := runningExample()

	// -(0.1*log2(0.4) + 0.3*log2(0.6) + 0.6*log2(1.0))
	require.InDelta(t, 0.353282, m.Discrepancy(), 1e-6)

	// a categorical function has no discrepancy
	require.Zero(t, FromFocalsUnsafe(F(e("010"), 1)).Discrepancy())
}
