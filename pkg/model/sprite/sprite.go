package sprite

type Sprite struct {
	FrontDefault *string `json:"front_default"`
	FrontShiny   *string `json:"front_shiny"`
}

type Sprites struct {
	Sprite
	BackDefault *string           `json:"back_default"`
	Other       map[string]Sprite `json:"other"`
}

const OfficialArtwork = "official-artwork"

// Artwork prefers the official artwork and falls back to the default front sprite.
func (s *Sprites) Artwork() (string, bool) {
	if art, ok := s.Other[OfficialArtwork]; ok && art.FrontDefault != nil && *art.FrontDefault != "" {
		return *art.FrontDefault, true
	}

	if s.FrontDefault != nil && *s.FrontDefault != "" {
		return *s.FrontDefault, true
	}

	return "", false
}
