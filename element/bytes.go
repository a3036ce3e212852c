package element

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"
)

// Bytes returns a serialized version of the element: the frame size, the number of encoding words
// and the words themselves, all little-endian.
func (e *DiscreteElement) Bytes() []byte {
	words := e.bits.Bytes()

	m := marshalutil.New(marshalutil.Uint32Size + marshalutil.Uint32Size + marshalutil.Uint64Size*len(words))
	m.WriteUint32(uint32(e.size))
	m.WriteUint32(uint32(len(words)))
	for _, word := range words {
		m.WriteUint64(word)
	}

	return m.Bytes()
}

// FromBytes unmarshals an element from a sequence of bytes. It returns the element and the number
// of bytes that were consumed.
func FromBytes(data []byte) (*DiscreteElement, int, error) {
	m := marshalutil.New(data)
	element, err := FromMarshalUtil(m)
	if err != nil {
		return nil, 0, err
	}

	return element, m.ReadOffset(), nil
}

// FromMarshalUtil unmarshals an element using a MarshalUtil (for easier marshaling/unmarshaling of
// enclosing types).
func FromMarshalUtil(m *marshalutil.MarshalUtil) (*DiscreteElement, error) {
	size, err := m.ReadUint32()
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to read frame size")
	}

	wordCount, err := m.ReadUint32()
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to read word count")
	}

	words := make([]uint64, wordCount)
	for i := range words {
		if words[i], err = m.ReadUint64(); err != nil {
			return nil, ierrors.Wrapf(err, "failed to read encoding word %d", i)
		}
	}

	return New(int(size), words...)
}
