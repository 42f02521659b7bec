package effectiveness

import (
	"fmt"
	"sort"
	"strings"

	"github.com/notjagan/dexbrowser/pkg/model"
)

// TypeRelation is how a single defending type reacts to each attacking type.
type TypeRelation struct {
	WeakTo      TypeSet
	ResistantTo TypeSet
	ImmuneTo    TypeSet
}

type Table map[model.TypeID]TypeRelation

// relations must cover every TypeID. Validate checks it.
var relations = Table{
	model.TypeNormal: {
		WeakTo: Of(model.TypeFighting),
	},
	model.TypeFire: {
		WeakTo:      Of(model.TypeGround, model.TypeRock, model.TypeWater),
		ResistantTo: Of(model.TypeBug, model.TypeSteel, model.TypeFire, model.TypeGrass, model.TypeIce, model.TypeFairy),
	},
	model.TypeWater: {
		WeakTo:      Of(model.TypeGrass, model.TypeElectric),
		ResistantTo: Of(model.TypeSteel, model.TypeFire, model.TypeWater, model.TypeIce),
	},
	model.TypeElectric: {
		WeakTo:      Of(model.TypeGround),
		ResistantTo: Of(model.TypeFlying, model.TypeSteel, model.TypeElectric),
	},
	model.TypeGrass: {
		WeakTo:      Of(model.TypeFlying, model.TypePoison, model.TypeBug, model.TypeFire, model.TypeIce),
		ResistantTo: Of(model.TypeGround, model.TypeWater, model.TypeGrass, model.TypeElectric),
	},
	model.TypeIce: {
		WeakTo:      Of(model.TypeFighting, model.TypeRock, model.TypeSteel, model.TypeFire),
		ResistantTo: Of(model.TypeIce),
	},
	model.TypeFighting: {
		WeakTo:      Of(model.TypeFlying, model.TypePsychic, model.TypeFairy),
		ResistantTo: Of(model.TypeRock, model.TypeBug, model.TypeDark),
	},
	model.TypePoison: {
		WeakTo:      Of(model.TypeGround, model.TypePsychic),
		ResistantTo: Of(model.TypeFighting, model.TypePoison, model.TypeBug, model.TypeGrass, model.TypeFairy),
	},
	model.TypeGround: {
		WeakTo:      Of(model.TypeWater, model.TypeGrass, model.TypeIce),
		ResistantTo: Of(model.TypePoison, model.TypeRock),
		ImmuneTo:    Of(model.TypeElectric),
	},
	model.TypeFlying: {
		WeakTo:      Of(model.TypeRock, model.TypeElectric, model.TypeIce),
		ResistantTo: Of(model.TypeFighting, model.TypeBug, model.TypeGrass),
		ImmuneTo:    Of(model.TypeGround),
	},
	model.TypePsychic: {
		WeakTo:      Of(model.TypeBug, model.TypeGhost, model.TypeDark),
		ResistantTo: Of(model.TypeFighting, model.TypePsychic),
	},
	model.TypeBug: {
		WeakTo:      Of(model.TypeFlying, model.TypeRock, model.TypeFire),
		ResistantTo: Of(model.TypeFighting, model.TypeGround, model.TypeGrass),
	},
	model.TypeRock: {
		WeakTo:      Of(model.TypeFighting, model.TypeGround, model.TypeSteel, model.TypeWater, model.TypeGrass),
		ResistantTo: Of(model.TypeNormal, model.TypeFlying, model.TypePoison, model.TypeFire),
	},
	model.TypeGhost: {
		WeakTo:      Of(model.TypeGhost, model.TypeDark),
		ResistantTo: Of(model.TypePoison, model.TypeBug),
		ImmuneTo:    Of(model.TypeNormal, model.TypeFighting),
	},
	model.TypeDragon: {
		WeakTo:      Of(model.TypeIce, model.TypeDragon, model.TypeFairy),
		ResistantTo: Of(model.TypeFire, model.TypeWater, model.TypeElectric, model.TypeGrass),
	},
	model.TypeDark: {
		WeakTo:      Of(model.TypeFighting, model.TypeBug, model.TypeFairy),
		ResistantTo: Of(model.TypeGhost, model.TypeDark),
		ImmuneTo:    Of(model.TypePsychic),
	},
	model.TypeSteel: {
		WeakTo: Of(model.TypeFighting, model.TypeGround, model.TypeFire),
		ResistantTo: Of(
			model.TypeNormal, model.TypeFlying, model.TypeRock, model.TypeBug, model.TypeSteel,
			model.TypeGrass, model.TypePsychic, model.TypeIce, model.TypeDragon, model.TypeFairy,
		),
		ImmuneTo: Of(model.TypePoison),
	},
	model.TypeFairy: {
		WeakTo:      Of(model.TypePoison, model.TypeSteel),
		ResistantTo: Of(model.TypeFighting, model.TypeBug, model.TypeDark),
		ImmuneTo:    Of(model.TypeDragon),
	},
}

// Relations returns a copy of the built-in table.
func Relations() Table {
	table := make(Table, len(relations))
	for id, rel := range relations {
		table[id] = rel
	}

	return table
}

func Relation(id model.TypeID) (TypeRelation, bool) {
	rel, ok := relations[id]
	return rel, ok
}

// Validate reports every type missing from the table and every relation that
// names something outside the vocabulary.
func Validate(table Table) error {
	var errs []string

	for _, id := range model.TypeIDValues() {
		if _, ok := table[id]; !ok {
			errs = append(errs, fmt.Sprintf("missing relation for %s", id))
		}
	}

	ids := make([]model.TypeID, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		if !id.IsATypeID() {
			errs = append(errs, fmt.Sprintf("relation for unknown type %s", id))
			continue
		}

		rel := table[id]
		for field, set := range map[string]TypeSet{
			"weakTo":      rel.WeakTo,
			"resistantTo": rel.ResistantTo,
			"immuneTo":    rel.ImmuneTo,
		} {
			if extra := set.Without(vocabulary); !extra.IsEmpty() {
				errs = append(errs, fmt.Sprintf("%s.%s has bits outside the vocabulary (%#x)", id, field, uint32(extra)))
			}
		}
	}

	if len(errs) > 0 {
		sort.Strings(errs)
		return fmt.Errorf("%w: %s", ErrInvalidTable, strings.Join(errs, "; "))
	}

	return nil
}
