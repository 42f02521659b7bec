package model

import "strings"

type FlavorTextEntry struct {
	FlavorText string        `json:"flavor_text"`
	Language   NamedResource `json:"language"`
	Version    NamedResource `json:"version"`
}

type Species struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	EvolutionChain struct {
		URL string `json:"url"`
	} `json:"evolution_chain"`
	FlavorTextEntries []FlavorTextEntry `json:"flavor_text_entries"`
}

// Flavor text from the games carries form feeds, hard line breaks and soft hyphens.
var flavorTextReplacer = strings.NewReplacer(
	"\u00ad\n", "",
	"\f", " ",
	"\n", " ",
	"\u00ad", "",
)

// FlavorText returns the first entry written in the given language.
func (species *Species) FlavorText(code LocalizationCode) (string, bool) {
	for _, entry := range species.FlavorTextEntries {
		if entry.Language.Name == string(code) {
			return flavorTextReplacer.Replace(entry.FlavorText), true
		}
	}

	return "", false
}
