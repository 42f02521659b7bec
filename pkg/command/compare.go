package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/notjagan/dexbrowser/pkg/catalog"
	"github.com/notjagan/dexbrowser/pkg/model"
)

type compareOptions struct {
	First  discordField[string] `option:"first"`
	Second discordField[string] `option:"second"`
}

type compareResponder struct {
	autocompleteLimit int
	emojis            Emojis
}

func (resp compareResponder) Handle(ctx context.Context, dex Dex, opt *compareOptions) (*discordgo.InteractionResponseData, error) {
	pokemon := make([]*model.Pokemon, 2)
	for i, name := range []string{opt.First.Value, opt.Second.Value} {
		p, err := lookup(ctx, dex, name)
		if err != nil {
			if msg, ok := userMessage(err); ok {
				return msg, nil
			}
			return nil, fmt.Errorf("could not get pokemon %q: %w", name, err)
		}
		pokemon[i] = p
	}
	first, second := pokemon[0], pokemon[1]

	cmp := catalog.Compare(first, second)
	lines := make([]string, 0, len(cmp.Rows)+1)
	for _, row := range cmp.Rows {
		lines = append(lines, compareLine(row.DisplayName(), row.First, row.Second, row.Winner()))
	}
	total := catalog.StatRow{First: cmp.FirstTotal, Second: cmp.SecondTotal}
	lines = append(lines, compareLine("Total", total.First, total.Second, total.Winner()))

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title: fmt.Sprintf("%s vs. %s", first.DisplayName(), second.DisplayName()),
				Color: embedColor(first.TypeIDs()),
				Fields: []*discordgo.MessageEmbedField{
					{
						Name:   first.DisplayName(),
						Value:  resp.emojis.Labels(first.TypeNames()),
						Inline: true,
					},
					{
						Name:   second.DisplayName(),
						Value:  resp.emojis.Labels(second.TypeNames()),
						Inline: true,
					},
					{
						Name:   "Height",
						Value:  fmt.Sprintf("%.1f m / %.1f m", first.HeightMeters(), second.HeightMeters()),
						Inline: true,
					},
					{
						Name:   "Weight",
						Value:  fmt.Sprintf("%.1f kg / %.1f kg", first.WeightKilograms(), second.WeightKilograms()),
						Inline: true,
					},
					{
						Name:  "Base Stats",
						Value: strings.Join(lines, "\n"),
					},
				},
			},
		},
	}, nil
}

// compareLine marks the higher of the two values.
func compareLine(name string, first, second, winner int) string {
	marker := "="
	switch winner {
	case -1:
		marker = "◂"
	case 1:
		marker = "▸"
	}

	return fmt.Sprintf("`%-11s %3d %s %-3d`", name, first, marker, second)
}

func (resp compareResponder) Autocomplete(
	ctx context.Context,
	dex Dex,
	opt *compareOptions,
) ([]*discordgo.ApplicationCommandOptionChoice, error) {
	var prefix string
	switch {
	case opt.First.Focused:
		prefix = opt.First.Value
	case opt.Second.Focused:
		prefix = opt.Second.Value
	default:
		return nil, fmt.Errorf("no recognized field in focus: %w", ErrCommandFormat)
	}

	return searchChoices[catalog.Entry](ctx, pokemonSearcher{
		dex:    dex,
		prefix: prefix,
		limit:  resp.autocompleteLimit,
	})
}

func (builder *Builder) compare(ctx context.Context) (Command, error) {
	resp := compareResponder{
		autocompleteLimit: builder.config.Discord.AutocompleteLimit,
		emojis:            builder.emojis,
	}

	return command[compareOptions]{
		handler:       resp,
		autocompleter: resp,
		command: discordgo.ApplicationCommand{
			Name:        "compare",
			Description: "Compare the base stats of two Pokemon.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         "first",
					Description:  "Name of the first Pokemon",
					Required:     true,
					Autocomplete: true,
				},
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         "second",
					Description:  "Name of the second Pokemon",
					Required:     true,
					Autocomplete: true,
				},
			},
		},
	}, nil
}
