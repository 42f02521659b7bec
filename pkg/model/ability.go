package model

type PokemonAbility struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

func (pa PokemonAbility) DisplayName() string {
	return DisplayName(pa.Ability.Name)
}

// SplitAbilities partitions abilities into visible and hidden, keeping order.
func (pokemon *Pokemon) SplitAbilities() (visible []PokemonAbility, hidden []PokemonAbility) {
	for _, ability := range pokemon.Abilities {
		if ability.IsHidden {
			hidden = append(hidden, ability)
		} else {
			visible = append(visible, ability)
		}
	}

	return visible, hidden
}
