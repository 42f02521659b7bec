package model

import (
	"errors"
	"fmt"
)

type PokemonStat struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

var statNames = map[string]string{
	"hp":              "HP",
	"attack":          "Attack",
	"defense":         "Defense",
	"special-attack":  "Sp. Attack",
	"special-defense": "Sp. Defense",
	"speed":           "Speed",
}

// StatDisplayName returns the short label for a stat, or the raw name if it has none.
func StatDisplayName(name string) string {
	if label, ok := statNames[name]; ok {
		return label
	}

	return name
}

func (ps PokemonStat) DisplayName() string {
	return StatDisplayName(ps.Stat.Name)
}

var ErrNoStatFound = errors.New("could not find stat")

func (pokemon *Pokemon) BaseStat(name string) (int, error) {
	for _, stat := range pokemon.Stats {
		if stat.Stat.Name == name {
			return stat.BaseStat, nil
		}
	}

	return 0, fmt.Errorf("pokemon %q has no stat %q: %w", pokemon.Name, name, ErrNoStatFound)
}

func (pokemon *Pokemon) TotalBaseStat() int {
	total := 0
	for _, stat := range pokemon.Stats {
		total += stat.BaseStat
	}

	return total
}

// MaxBaseStat is the scale used when drawing stat bars.
func (pokemon *Pokemon) MaxBaseStat() int {
	max := 0
	for _, stat := range pokemon.Stats {
		if stat.BaseStat > max {
			max = stat.BaseStat
		}
	}

	return max
}
