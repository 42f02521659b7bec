package model

import "sort"

type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type PokemonType struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

type TypeMember struct {
	Slot    int           `json:"slot"`
	Pokemon NamedResource `json:"pokemon"`
}

// TypeDetail is a /type/{name} response: the defensive damage relations and
// every pokemon that has the type.
type TypeDetail struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	DamageRelations struct {
		DoubleDamageFrom []NamedResource `json:"double_damage_from"`
		HalfDamageFrom   []NamedResource `json:"half_damage_from"`
		NoDamageFrom     []NamedResource `json:"no_damage_from"`
	} `json:"damage_relations"`
	Pokemon []TypeMember `json:"pokemon"`
}

func (td *TypeDetail) MemberNames() []string {
	names := make([]string, len(td.Pokemon))
	for i, member := range td.Pokemon {
		names[i] = member.Pokemon.Name
	}

	return names
}

func resourceNames(rs []NamedResource) []string {
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = r.Name
	}

	return names
}

func (td *TypeDetail) WeakTo() []string {
	return resourceNames(td.DamageRelations.DoubleDamageFrom)
}

func (td *TypeDetail) ResistantTo() []string {
	return resourceNames(td.DamageRelations.HalfDamageFrom)
}

func (td *TypeDetail) ImmuneTo() []string {
	return resourceNames(td.DamageRelations.NoDamageFrom)
}

func sortedTypes(types []PokemonType) []PokemonType {
	sorted := make([]PokemonType, len(types))
	copy(sorted, types)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Slot < sorted[j].Slot
	})

	return sorted
}
