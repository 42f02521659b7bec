package command

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/notjagan/dexbrowser/pkg/catalog"
	"github.com/notjagan/dexbrowser/pkg/effectiveness"
	"github.com/notjagan/dexbrowser/pkg/model"
)

type dexOptions struct {
	Pokemon discordField[string] `option:"pokemon"`
}

type dexResponder struct {
	autocompleteLimit int
	emojis            Emojis
	commands          commands
}

// lookup treats a bare number as a national dex id, which is how the previous
// and next buttons address their targets.
func lookup(ctx context.Context, dex Dex, nameOrID string) (*model.Pokemon, error) {
	if id, err := strconv.Atoi(strings.TrimSpace(nameOrID)); err == nil {
		return dex.PokemonByID(ctx, id)
	}

	return dex.Pokemon(ctx, nameOrID)
}

func (resp dexResponder) Handle(ctx context.Context, dex Dex, opt *dexOptions) (*discordgo.InteractionResponseData, error) {
	pokemon, err := lookup(ctx, dex, opt.Pokemon.Value)
	if err != nil {
		if msg, ok := userMessage(err); ok {
			return msg, nil
		}
		return nil, fmt.Errorf("could not get pokemon %q: %w", opt.Pokemon.Value, err)
	}

	embed := resp.card(pokemon)

	// The card renders without flavor text when the species is unavailable.
	species, err := dex.Species(ctx, pokemon.SpeciesID())
	if err == nil {
		if text, ok := species.FlavorText(model.LocalizationCodeEnglish); ok {
			embed.Description = text
		}
	}

	components, err := resp.buttons(pokemon)
	if err != nil {
		return nil, fmt.Errorf("could not create buttons for pokemon %q: %w", pokemon.Name, err)
	}

	return &discordgo.InteractionResponseData{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	}, nil
}

func (resp dexResponder) card(pokemon *model.Pokemon) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: "Type", Value: resp.emojis.Labels(pokemon.TypeNames()), Inline: true},
		{Name: "Height", Value: fmt.Sprintf("%.1f m", pokemon.HeightMeters()), Inline: true},
		{Name: "Weight", Value: fmt.Sprintf("%.1f kg", pokemon.WeightKilograms()), Inline: true},
	}

	visible, hidden := pokemon.SplitAbilities()
	abilityField := &discordgo.MessageEmbedField{Name: "Abilities", Value: "_None_", Inline: true}
	if len(visible) > 0 {
		abilityField.Value = abilityNames(visible)
	}
	fields = append(fields, abilityField)
	if len(hidden) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Hidden Abilities",
			Value:  abilityNames(hidden),
			Inline: true,
		})
	}

	if len(pokemon.Stats) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Base Stats",
			Value: statLines(pokemon),
		})
	}

	fields = append(fields, efficacyFields(effectiveness.ForPokemon(pokemon), resp.emojis)...)

	embed := &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("%s %s", dexNumber(pokemon.ID), pokemon.DisplayName()),
		Color:  embedColor(pokemon.TypeIDs()),
		Fields: fields,
	}
	if url, ok := pokemon.Sprites.Artwork(); ok {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: url}
	}

	return embed
}

func abilityNames(abilities []model.PokemonAbility) string {
	names := make([]string, len(abilities))
	for i, ability := range abilities {
		names[i] = ability.DisplayName()
	}

	return strings.Join(names, ", ")
}

func statLines(pokemon *model.Pokemon) string {
	max := pokemon.MaxBaseStat()
	lines := make([]string, 0, len(pokemon.Stats)+1)
	for _, stat := range pokemon.Stats {
		lines = append(lines, fmt.Sprintf("`%-11s %3d` %s", stat.DisplayName(), stat.BaseStat, statBar(stat.BaseStat, max)))
	}
	lines = append(lines, fmt.Sprintf("`%-11s %3d`", "Total", pokemon.TotalBaseStat()))

	return strings.Join(lines, "\n")
}

func (resp dexResponder) buttons(pokemon *model.Pokemon) ([]discordgo.MessageComponent, error) {
	buttons := make([]discordgo.MessageComponent, 0, 3)

	prev, hasPrev, next, hasNext := catalog.Neighbors(pokemon.ID)
	if hasPrev {
		button, err := revisitButton(resp.commands, dexOptions{
			Pokemon: discordField[string]{Value: strconv.Itoa(prev)},
		}, discordgo.Button{Label: "⏴ " + dexNumber(prev)})
		if err != nil {
			return nil, fmt.Errorf("could not create previous button: %w", err)
		}
		buttons = append(buttons, button)
	}
	if hasNext {
		button, err := revisitButton(resp.commands, dexOptions{
			Pokemon: discordField[string]{Value: strconv.Itoa(next)},
		}, discordgo.Button{Label: dexNumber(next) + " ⏵"})
		if err != nil {
			return nil, fmt.Errorf("could not create next button: %w", err)
		}
		buttons = append(buttons, button)
	}

	weakButton, err := followUpButton(
		resp.commands,
		weakOptions{
			Pokemon: &weakPokemonOptions{
				Name: discordField[string]{Value: pokemon.Name},
			},
		},
		discordgo.Button{Label: "Type Chart"},
	)
	if err != nil {
		return nil, fmt.Errorf("could not create follow-up button for weak: %w", err)
	}
	buttons = append(buttons, weakButton)

	return buttonRow(buttons...), nil
}

func (resp dexResponder) Autocomplete(
	ctx context.Context,
	dex Dex,
	opt *dexOptions,
) ([]*discordgo.ApplicationCommandOptionChoice, error) {
	if !opt.Pokemon.Focused {
		return nil, fmt.Errorf("no recognized field in focus: %w", ErrCommandFormat)
	}

	return searchChoices[catalog.Entry](ctx, pokemonSearcher{
		dex:    dex,
		prefix: opt.Pokemon.Value,
		limit:  resp.autocompleteLimit,
	})
}

func (builder *Builder) dex(ctx context.Context) (Command, error) {
	resp := dexResponder{
		autocompleteLimit: builder.config.Discord.AutocompleteLimit,
		emojis:            builder.emojis,
		commands:          builder.commands,
	}

	return command[dexOptions]{
		handler:       resp,
		autocompleter: resp,
		command: discordgo.ApplicationCommand{
			Name:        "dex",
			Description: "Show the Pokedex entry for a Pokemon.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         "pokemon",
					Description:  "Name or national dex number of the Pokemon",
					Required:     true,
					Autocomplete: true,
				},
			},
		},
	}, nil
}
