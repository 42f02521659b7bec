package effectiveness

import (
	"math/bits"

	"github.com/notjagan/dexbrowser/pkg/model"
)

// TypeSet is a set of types, one bit per TypeID.
type TypeSet uint32

func Of(ids ...model.TypeID) TypeSet {
	var s TypeSet
	for _, id := range ids {
		s = s.Add(id)
	}

	return s
}

// vocabulary holds every valid type.
var vocabulary = Of(model.TypeIDValues()...)

func (s TypeSet) Add(id model.TypeID) TypeSet {
	if !id.IsATypeID() {
		return s
	}

	return s | 1<<uint(id)
}

func (s TypeSet) Has(id model.TypeID) bool {
	return id.IsATypeID() && s&(1<<uint(id)) != 0
}

func (s TypeSet) Union(o TypeSet) TypeSet {
	return s | o
}

func (s TypeSet) Without(o TypeSet) TypeSet {
	return s &^ o
}

func (s TypeSet) Intersect(o TypeSet) TypeSet {
	return s & o
}

func (s TypeSet) Len() int {
	return bits.OnesCount32(uint32(s))
}

func (s TypeSet) IsEmpty() bool {
	return s == 0
}

// IDs lists the members in vocabulary order. It is never nil.
func (s TypeSet) IDs() []model.TypeID {
	ids := make([]model.TypeID, 0, s.Len())
	for _, id := range model.TypeIDValues() {
		if s.Has(id) {
			ids = append(ids, id)
		}
	}

	return ids
}

func (s TypeSet) Strings() []string {
	ids := s.IDs()
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.String()
	}

	return names
}
