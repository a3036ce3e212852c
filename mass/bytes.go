package mass

import (
	"sort"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2/marshalutil"

	"github.com/thegamelib/thegame.go/element"
)

// Bytes returns a serialized version of the mass function: the number of focal elements followed
// by each element and its mass, in the deterministic order of the element binary forms.
func (m *MassFunction) Bytes() []byte {
	focals := m.Focals()
	sort.Slice(focals, func(i, j int) bool {
		return focals[i].Element.String() < focals[j].Element.String()
	})

	marshal := marshalutil.New()
	marshal.WriteUint32(uint32(len(focals)))
	for _, focal := range focals {
		marshal.WriteBytes(focal.Element.Bytes())
		marshal.WriteFloat64(focal.Mass)
	}

	return marshal.Bytes()
}

// FromBytes unmarshals a mass function from a sequence of bytes. It returns the mass function and
// the number of bytes that were consumed.
func FromBytes(data []byte) (*MassFunction, int, error) {
	marshal := marshalutil.New(data)
	massFunction, err := FromMarshalUtil(marshal)
	if err != nil {
		return nil, 0, err
	}

	return massFunction, marshal.ReadOffset(), nil
}

// FromMarshalUtil unmarshals a mass function using a MarshalUtil (for easier
// marshaling/unmarshaling of enclosing types).
func FromMarshalUtil(marshal *marshalutil.MarshalUtil) (*MassFunction, error) {
	count, err := marshal.ReadUint32()
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to read focal element count")
	}

	focals := make([]Focal, count)
	for i := range focals {
		if focals[i].Element, err = element.FromMarshalUtil(marshal); err != nil {
			return nil, ierrors.Wrapf(err, "failed to read focal element %d", i)
		}
		if focals[i].Mass, err = marshal.ReadFloat64(); err != nil {
			return nil, ierrors.Wrapf(err, "failed to read mass %d", i)
		}
	}

	return FromFocals(focals...)
}
