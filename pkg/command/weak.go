package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/notjagan/dexbrowser/pkg/catalog"
	"github.com/notjagan/dexbrowser/pkg/effectiveness"
	"github.com/notjagan/dexbrowser/pkg/model"
)

type (
	weakPokemonOptions struct {
		Name discordField[string] `option:"pokemon"`
	}
	weakTypeOptions struct {
		Name1 discordField[string]  `option:"type_1"`
		Name2 *discordField[string] `option:"type_2"`
	}
	weakOptions struct {
		Pokemon *weakPokemonOptions `option:"pokemon"`
		Type    *weakTypeOptions    `option:"type"`
	}
)

type weakResponder struct {
	autocompleteLimit int
	emojis            Emojis
}

func (resp weakResponder) Handle(ctx context.Context, dex Dex, opt *weakOptions) (*discordgo.InteractionResponseData, error) {
	var title string
	var types []model.TypeID
	var thumbnail *discordgo.MessageEmbedThumbnail
	switch {
	case opt.Pokemon != nil:
		pokemon, err := lookup(ctx, dex, opt.Pokemon.Name.Value)
		if err != nil {
			if msg, ok := userMessage(err); ok {
				return msg, nil
			}
			return nil, fmt.Errorf("could not get pokemon %q: %w", opt.Pokemon.Name.Value, err)
		}

		types = pokemon.TypeIDs()
		title = fmt.Sprintf("%s %s", pokemon.DisplayName(), resp.emojis.Labels(pokemon.TypeNames()))
		if url, ok := pokemon.Sprites.Artwork(); ok {
			thumbnail = &discordgo.MessageEmbedThumbnail{URL: url}
		}
	case opt.Type != nil:
		names := []string{opt.Type.Name1.Value}
		if opt.Type.Name2 != nil {
			names = append(names, opt.Type.Name2.Value)
		}

		for _, name := range names {
			id, ok := model.ParseTypeID(strings.ToLower(strings.TrimSpace(name)))
			if !ok {
				return contentMessage("No type found with the name %q.", name), nil
			}
			types = append(types, id)
		}
		title = resp.emojis.List(types)
	default:
		return nil, fmt.Errorf("unrecognized subcommand for command \"weak\": %w", ErrCommandFormat)
	}

	result := effectiveness.Resolve(types...)
	fields := efficacyFields(result, resp.emojis)
	description := "Defensive type chart"
	if len(fields) == 0 {
		description = "No notable weaknesses, resistances or immunities."
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       embedColor(types),
		Thumbnail:   thumbnail,
		Fields:      fields,
	}
	if opt.Type != nil && len(types) == 1 {
		resp.annotateType(ctx, dex, types[0], result, embed)
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
	}, nil
}

// annotateType adds the member count of a single type and, when PokeAPI's
// damage relations disagree with the built-in chart, what PokeAPI reports.
// The chart is rendered either way; a failed lookup adds nothing.
func (resp weakResponder) annotateType(
	ctx context.Context,
	dex Dex,
	typ model.TypeID,
	result effectiveness.Result,
	embed *discordgo.MessageEmbed,
) {
	detail, err := dex.Type(ctx, typ.String())
	if err != nil {
		return
	}

	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("%d Pokemon have this type", len(detail.Pokemon)),
	}

	reported := []struct {
		name   string
		ours   []model.TypeID
		theirs effectiveness.TypeSet
	}{
		{"Weaknesses", result.WeakTo, typeSet(detail.WeakTo())},
		{"Resistances", result.ResistantTo, typeSet(detail.ResistantTo())},
		{"Immunities", result.ImmuneTo, typeSet(detail.ImmuneTo())},
	}

	differs := false
	lines := make([]string, len(reported))
	for i, r := range reported {
		if effectiveness.Of(r.ours...) != r.theirs {
			differs = true
		}
		list := resp.emojis.List(r.theirs.IDs())
		if list == "" {
			list = "_None_"
		}
		lines[i] = fmt.Sprintf("%s: %s", r.name, list)
	}
	if !differs {
		return
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "PokeAPI reports",
		Value: strings.Join(lines, "\n"),
	})
}

func typeSet(names []string) effectiveness.TypeSet {
	var s effectiveness.TypeSet
	for _, name := range names {
		if id, ok := model.ParseTypeID(name); ok {
			s = s.Add(id)
		}
	}

	return s
}

func (resp weakResponder) Autocomplete(
	ctx context.Context,
	dex Dex,
	opt *weakOptions,
) ([]*discordgo.ApplicationCommandOptionChoice, error) {
	switch {
	case opt.Pokemon != nil:
		if opt.Pokemon.Name.Focused {
			return searchChoices[catalog.Entry](ctx, pokemonSearcher{
				dex:    dex,
				prefix: opt.Pokemon.Name.Value,
				limit:  resp.autocompleteLimit,
			})
		}
	case opt.Type != nil:
		var prefix string
		switch {
		case opt.Type.Name1.Focused:
			prefix = opt.Type.Name1.Value
		case opt.Type.Name2 != nil && opt.Type.Name2.Focused:
			prefix = opt.Type.Name2.Value
		default:
			return nil, fmt.Errorf("no recognized field in focus: %w", ErrCommandFormat)
		}

		return searchChoices[model.TypeID](ctx, typeSearcher{
			prefix: prefix,
			limit:  resp.autocompleteLimit,
		})
	default:
		return nil, fmt.Errorf("no recognized subcommand in focus: %w", ErrCommandFormat)
	}

	return nil, fmt.Errorf("no recognized field in focus: %w", ErrCommandFormat)
}

func (builder *Builder) weak(ctx context.Context) (Command, error) {
	resp := weakResponder{
		autocompleteLimit: builder.config.Discord.AutocompleteLimit,
		emojis:            builder.emojis,
	}

	return command[weakOptions]{
		handler:       resp,
		autocompleter: resp,
		command: discordgo.ApplicationCommand{
			Name:        "weak",
			Description: "View type chart against a defending Pokemon/type combination.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "pokemon",
					Description: "View type chart against a defending Pokemon",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:         discordgo.ApplicationCommandOptionString,
							Name:         "pokemon",
							Description:  "Name of the Pokemon",
							Required:     true,
							Autocomplete: true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "type",
					Description: "View type chart against a defending type (combination)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:         discordgo.ApplicationCommandOptionString,
							Name:         "type_1",
							Description:  "Name of the first type",
							Required:     true,
							Autocomplete: true,
						},
						{
							Type:         discordgo.ApplicationCommandOptionString,
							Name:         "type_2",
							Description:  "Name of the second type",
							Required:     false,
							Autocomplete: true,
						},
					},
				},
			},
		},
	}, nil
}
