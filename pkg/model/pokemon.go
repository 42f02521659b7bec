package model

import (
	"github.com/notjagan/dexbrowser/pkg/model/sprite"
)

type Pokemon struct {
	ID             int              `json:"id"`
	Name           string           `json:"name"`
	Height         int              `json:"height"`
	Weight         int              `json:"weight"`
	BaseExperience int              `json:"base_experience"`
	Types          []PokemonType    `json:"types"`
	Stats          []PokemonStat    `json:"stats"`
	Abilities      []PokemonAbility `json:"abilities"`
	Sprites        sprite.Sprites   `json:"sprites"`
	Species        NamedResource    `json:"species"`
}

func (pokemon *Pokemon) DisplayName() string {
	return DisplayName(pokemon.Name)
}

// TypeNames returns the pokemon's type names in slot order.
func (pokemon *Pokemon) TypeNames() []string {
	types := sortedTypes(pokemon.Types)
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.Type.Name
	}

	return names
}

// TypeIDs is TypeNames restricted to the known vocabulary.
func (pokemon *Pokemon) TypeIDs() []TypeID {
	names := pokemon.TypeNames()
	ids := make([]TypeID, 0, len(names))
	for _, name := range names {
		if id, ok := ParseTypeID(name); ok {
			ids = append(ids, id)
		}
	}

	return ids
}

// HeightMeters converts the API's decimetres.
func (pokemon *Pokemon) HeightMeters() float64 {
	return float64(pokemon.Height) / 10
}

// WeightKilograms converts the API's hectograms.
func (pokemon *Pokemon) WeightKilograms() float64 {
	return float64(pokemon.Weight) / 10
}

// SpeciesID falls back to the pokemon id when the species url carries none.
func (pokemon *Pokemon) SpeciesID() int {
	if id := IDFromURL(pokemon.Species.URL); id != 0 {
		return id
	}

	return pokemon.ID
}
