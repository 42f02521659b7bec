package effectiveness

import (
	"errors"

	"github.com/notjagan/dexbrowser/pkg/model"
)

var ErrInvalidTable = errors.New("invalid type relation table")

// Result is the combined defensive profile of a type combination. The three
// lists never share a type.
type Result struct {
	WeakTo      []model.TypeID `json:"weakTo"`
	ResistantTo []model.TypeID `json:"resistantTo"`
	ImmuneTo    []model.TypeID `json:"immuneTo"`
}

func (table Table) resolveSets(types []model.TypeID) (weak, resistant, immune TypeSet) {
	for _, typ := range types {
		rel, ok := table[typ]
		if !ok {
			continue
		}
		weak = weak.Union(rel.WeakTo)
		resistant = resistant.Union(rel.ResistantTo)
		immune = immune.Union(rel.ImmuneTo)
	}

	// Resistance from one type cancels a weakness from the other; immunity beats both.
	weak = weak.Without(resistant)
	weak = weak.Without(immune)
	resistant = resistant.Without(immune)

	return weak.Intersect(vocabulary), resistant.Intersect(vocabulary), immune.Intersect(vocabulary)
}

// Resolve combines the relations of every known type in types. Types missing
// from the table contribute nothing.
func (table Table) Resolve(types ...model.TypeID) Result {
	weak, resistant, immune := table.resolveSets(types)

	return Result{
		WeakTo:      weak.IDs(),
		ResistantTo: resistant.IDs(),
		ImmuneTo:    immune.IDs(),
	}
}

func Resolve(types ...model.TypeID) Result {
	return relations.Resolve(types...)
}

// ResolveNames is Resolve for raw API type names; names outside the vocabulary
// are ignored.
func ResolveNames(names ...string) Result {
	ids := make([]model.TypeID, 0, len(names))
	for _, name := range names {
		if id, ok := model.ParseTypeID(name); ok {
			ids = append(ids, id)
		}
	}

	return Resolve(ids...)
}

func ForPokemon(pokemon *model.Pokemon) Result {
	return Resolve(pokemon.TypeIDs()...)
}

func names(ids []model.TypeID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}

	return out
}

func (r Result) WeakToNames() []string {
	return names(r.WeakTo)
}

func (r Result) ResistantToNames() []string {
	return names(r.ResistantTo)
}

func (r Result) ImmuneToNames() []string {
	return names(r.ImmuneTo)
}
