package element

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	e, err := New(3, 5)
	require.NoError(t, err)
	require.Equal(t, 3, e.Size())
	require.Equal(t, 2, e.Cardinal())
	require.Equal(t, "101", e.String())

	_, err = New(0)
	require.ErrorIs(t, err, ErrInvalidFrameSize)
	_, err = New(-4, 1)
	require.ErrorIs(t, err, ErrInvalidFrameSize)

	_, err = New(3, 8)
	require.ErrorIs(t, err, ErrInvalidEncoding)
	_, err = New(3, 0, 1)
	require.ErrorIs(t, err, ErrInvalidEncoding)

	// a trailing zero word is harmless
	e, err = New(3, 5, 0)
	require.NoError(t, err)
	require.Equal(t, "101", e.String())

	// frames larger than a single word
	e, err = New(70, 0, 63)
	require.NoError(t, err)
	require.Equal(t, 6, e.Cardinal())
	_, err = New(70, 0, 1<<6)
	require.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestEmptyComplete(t *testing.T) {
	empty, err := Empty(4)
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())
	require.False(t, empty.IsComplete())
	require.Equal(t, 0, empty.Cardinal())

	complete, err := Complete(4)
	require.NoError(t, err)
	require.True(t, complete.IsComplete())
	require.False(t, complete.IsEmpty())
	require.Equal(t, 4, complete.Cardinal())

	require.True(t, empty.CompatibleComplete().Equal(complete))
	require.True(t, complete.CompatibleEmpty().Equal(empty))
}

func TestSetOperations(t *testing.T) {
	a := NewUnsafe(3, 1)
	b := NewUnsafe(3, 3)

	conjunction, err := a.Conjunction(b)
	require.NoError(t, err)
	require.True(t, conjunction.Equal(a))

	disjunction, err := a.Disjunction(b)
	require.NoError(t, err)
	require.True(t, disjunction.Equal(b))

	exclusion, err := b.Exclusion(a)
	require.NoError(t, err)
	require.True(t, exclusion.Equal(NewUnsafe(3, 2)))

	incompatible := NewUnsafe(4, 1)
	_, err = a.Conjunction(incompatible)
	require.ErrorIs(t, err, ErrIncompatibleElements)
	_, err = a.Disjunction(incompatible)
	require.ErrorIs(t, err, ErrIncompatibleElements)
	_, err = a.Exclusion(incompatible)
	require.ErrorIs(t, err, ErrIncompatibleElements)
}

func TestOpposite(t *testing.T) {
	e := NewUnsafe(5, 0b10110)
	opposite := e.Opposite()

	require.Equal(t, 5-e.Cardinal(), opposite.Cardinal())
	require.True(t, e.ConjunctionUnsafe(opposite).IsEmpty())
	require.True(t, e.DisjunctionUnsafe(opposite).IsComplete())
	require.True(t, opposite.Opposite().Equal(e))
}

func TestDeMorgan(t *testing.T) {
	a := NewUnsafe(6, 0b101101)
	b := NewUnsafe(6, 0b011010)

	left := a.DisjunctionUnsafe(b).Opposite()
	right := a.Opposite().ConjunctionUnsafe(b.Opposite())
	require.True(t, left.Equal(right))

	left = a.ConjunctionUnsafe(b).Opposite()
	right = a.Opposite().DisjunctionUnsafe(b.Opposite())
	require.True(t, left.Equal(right))
}

func TestSubsets(t *testing.T) {
	a := NewUnsafe(3, 1)
	b := NewUnsafe(3, 3)

	require.True(t, a.IsSubset(b))
	require.False(t, b.IsSubset(a))
	require.True(t, b.IsSuperset(a))
	require.True(t, a.IsSubset(a))

	require.False(t, a.IsSubset(NewUnsafe(4, 3)))
	require.False(t, a.IsSuperset(nil))
}

func TestKey(t *testing.T) {
	a := NewUnsafe(3, 5)
	b := NewUnsafe(3, 5)
	c := NewUnsafe(3, 4)

	require.Equal(t, a.Key(), b.Key())
	require.NotEqual(t, a.Key(), c.Key())

	// the empty element of any frame has the empty key
	require.Empty(t, NewUnsafe(3).Key())
	require.Empty(t, NewUnsafe(70).Key())
}

func TestStringRoundTrip(t *testing.T) {
	for _, binary := range []string{"000", "001", "101", "111", "10010110"} {
		e, err := FromString(binary)
		require.NoError(t, err)
		require.Equal(t, binary, e.String())

		decoded, err := FromString(e.String())
		require.NoError(t, err)
		require.True(t, decoded.Equal(e))
	}
}

func TestVarargOperations(t *testing.T) {
	a := NewUnsafe(4, 0b0011)
	b := NewUnsafe(4, 0b0110)
	c := NewUnsafe(4, 0b0010)

	conjunction, err := Conjunctions(a, b, c)
	require.NoError(t, err)
	require.True(t, conjunction.Equal(c))

	disjunction, err := Disjunctions(a, b, c)
	require.NoError(t, err)
	require.True(t, disjunction.Equal(NewUnsafe(4, 0b0111)))

	_, err = Conjunctions(a, NewUnsafe(5, 1))
	require.ErrorIs(t, err, ErrIncompatibleElements)
	_, err = Disjunctions(a, NewUnsafe(5, 1))
	require.ErrorIs(t, err, ErrIncompatibleElements)
}

func TestClone(t *testing.T) {
	e := NewUnsafe(3, 5)
	clone := e.Clone()

	require.True(t, e.Equal(clone))
	require.Equal(t, e.Cardinal(), clone.Cardinal())
}
