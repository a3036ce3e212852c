package element

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromString(t *testing.T) {
	e, err := FromString("0101")
	require.NoError(t, err)
	require.Equal(t, 4, e.Size())
	require.Equal(t, 2, e.Cardinal())
	require.True(t, e.Equal(NewUnsafe(4, 5)))

	_, err = FromString("")
	require.ErrorIs(t, err, ErrInvalidBinaryString)
	_, err = FromString("01x1")
	require.ErrorIs(t, err, ErrInvalidBinaryString)
}

func TestFromStringLittleEndian(t *testing.T) {
	e, err := FromStringLittleEndian("1010")
	require.NoError(t, err)
	require.True(t, e.Equal(NewUnsafe(4, 5)))

	bigEndian, err := FromString("1010")
	require.NoError(t, err)
	require.True(t, bigEndian.Equal(NewUnsafe(4, 10)))
	require.False(t, e.Equal(bigEndian))

	_, err = FromStringLittleEndian("12")
	require.ErrorIs(t, err, ErrInvalidBinaryString)
}

func TestFromReferences(t *testing.T) {
	references := []string{"kitchen", "bedroom", "garden"}

	e, err := FromReferences(references, "kitchen", "garden")
	require.NoError(t, err)
	require.Equal(t, 3, e.Size())
	require.True(t, e.Equal(NewUnsafe(3, 0b101)))

	// requesting a state twice keeps set semantics
	e, err = FromReferences(references, "bedroom", "bedroom")
	require.NoError(t, err)
	require.Equal(t, 1, e.Cardinal())

	empty, err := FromReferences(references)
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())

	_, err = FromReferences([]string{})
	require.ErrorIs(t, err, ErrInvalidFrameSize)
	_, err = FromReferences([]string{"a", "a"}, "a")
	require.ErrorIs(t, err, ErrDuplicateReference)
	_, err = FromReferences(references, "garage")
	require.ErrorIs(t, err, ErrUnknownState)
}
