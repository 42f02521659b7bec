package command

import (
	"strings"

	"github.com/notjagan/dexbrowser/pkg/model"
)

// Emojis decorates type names in embeds.
type Emojis map[model.TypeID]string

var defaultEmojis = Emojis{
	model.TypeNormal:   "⚪",
	model.TypeFire:     "🔥",
	model.TypeWater:    "💧",
	model.TypeElectric: "⚡",
	model.TypeGrass:    "🌿",
	model.TypeIce:      "❄️",
	model.TypeFighting: "🥊",
	model.TypePoison:   "☠️",
	model.TypeGround:   "⛰️",
	model.TypeFlying:   "🪶",
	model.TypePsychic:  "🔮",
	model.TypeBug:      "🐛",
	model.TypeRock:     "🪨",
	model.TypeGhost:    "👻",
	model.TypeDragon:   "🐉",
	model.TypeDark:     "🌑",
	model.TypeSteel:    "⚙️",
	model.TypeFairy:    "✨",
}

func (emojis Emojis) Label(id model.TypeID) string {
	emoji, ok := emojis[id]
	if !ok {
		return id.DisplayName()
	}

	return emoji + " " + id.DisplayName()
}

// Labels renders each type, with any name outside the vocabulary title-cased as is.
func (emojis Emojis) Labels(names []string) string {
	labels := make([]string, len(names))
	for i, name := range names {
		if id, ok := model.ParseTypeID(name); ok {
			labels[i] = emojis.Label(id)
		} else {
			labels[i] = model.DisplayName(name)
		}
	}

	return strings.Join(labels, " / ")
}

func (emojis Emojis) List(ids []model.TypeID) string {
	labels := make([]string, len(ids))
	for i, id := range ids {
		labels[i] = emojis.Label(id)
	}

	return strings.Join(labels, ", ")
}

var typeColors = map[model.TypeID]int{
	model.TypeNormal:   0xA8A878,
	model.TypeFire:     0xF08030,
	model.TypeWater:    0x6890F0,
	model.TypeElectric: 0xF8D030,
	model.TypeGrass:    0x78C850,
	model.TypeIce:      0x98D8D8,
	model.TypeFighting: 0xC03028,
	model.TypePoison:   0xA040A0,
	model.TypeGround:   0xE0C068,
	model.TypeFlying:   0xA890F0,
	model.TypePsychic:  0xF85888,
	model.TypeBug:      0xA8B820,
	model.TypeRock:     0xB8A038,
	model.TypeGhost:    0x705898,
	model.TypeDragon:   0x7038F8,
	model.TypeDark:     0x705848,
	model.TypeSteel:    0xB8B8D0,
	model.TypeFairy:    0xEE99AC,
}

// embedColor uses the primary type's color, or the default tint.
func embedColor(ids []model.TypeID) int {
	if len(ids) > 0 {
		if color, ok := typeColors[ids[0]]; ok {
			return color
		}
	}

	return 0x3B82F6
}
