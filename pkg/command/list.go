package command

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/notjagan/dexbrowser/pkg/catalog"
	"github.com/notjagan/dexbrowser/pkg/model"
)

type listOptions struct {
	Search *string               `option:"search"`
	Sort   *string               `option:"sort"`
	Order  *string               `option:"order"`
	Type   *discordField[string] `option:"type"`
	Type2  *discordField[string] `option:"type_2"`
}

func optional(s *string) string {
	if s == nil {
		return ""
	}

	return strings.TrimSpace(*s)
}

func optionalField(f *discordField[string]) string {
	if f == nil {
		return ""
	}

	return optional(&f.Value)
}

// types parses the type filters. The second result is the first name outside
// the vocabulary, if any.
func (opt listOptions) types() ([]model.TypeID, string) {
	var ids []model.TypeID
	for _, f := range []*discordField[string]{opt.Type, opt.Type2} {
		name := strings.ToLower(optionalField(f))
		if name == "" {
			continue
		}

		id, ok := model.ParseTypeID(name)
		if !ok {
			return nil, name
		}
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}

	return ids, ""
}

type listResponder struct {
	pageSize int
	emojis   Emojis
	commands commands
}

func (resp listResponder) query(ctx context.Context, dex Dex, opt listOptions) ([]catalog.Entry, *discordgo.InteractionResponseData, error) {
	sortBy, err := catalog.ParseSortField(optional(opt.Sort))
	if err != nil {
		return nil, contentMessage("Cannot sort by %q.", optional(opt.Sort)), nil
	}
	order, err := catalog.ParseOrder(optional(opt.Order))
	if err != nil {
		return nil, contentMessage("Unknown order %q.", optional(opt.Order)), nil
	}

	items, err := dex.AllPokemon(ctx)
	if err != nil {
		if msg, ok := userMessage(err); ok {
			return nil, msg, nil
		}
		return nil, nil, fmt.Errorf("could not list pokemon: %w", err)
	}
	entries := catalog.EntriesFromList(items)

	query := catalog.Query{
		Search: optional(opt.Search),
		SortBy: sortBy,
		Order:  order,
	}

	types, unknown := opt.types()
	if unknown != "" {
		return nil, contentMessage("No type found with the name %q.", unknown), nil
	}
	for _, typ := range types {
		detail, err := dex.Type(ctx, typ.String())
		if err != nil {
			if msg, ok := userMessage(err); ok {
				return nil, msg, nil
			}
			return nil, nil, fmt.Errorf("could not get members of type %q: %w", typ, err)
		}
		entries = catalog.WithType(entries, typ, detail.MemberNames())
	}
	query.Types = types

	return query.Apply(entries), nil, nil
}

func (resp listResponder) Paginate(ctx context.Context, dex Dex, p paginator[listOptions]) (*discordgo.InteractionResponseData, error) {
	results, msg, err := resp.query(ctx, dex, p.Options)
	if err != nil {
		return nil, err
	}
	if msg != nil {
		return msg, nil
	}

	embed := &discordgo.MessageEmbed{
		Title: "Pokedex",
		Color: embedColor(nil),
	}
	if types, _ := p.Options.types(); len(types) > 0 {
		embed.Title = fmt.Sprintf("Pokedex, %s", resp.emojis.List(types))
		embed.Color = embedColor(types)
	}

	page, hasNext := catalog.Page(results, p.Page.Offset, p.Page.Limit)
	if len(page) == 0 {
		embed.Description = "No Pokemon match those filters."
		return &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		}, nil
	}

	lines := make([]string, len(page))
	for i, entry := range page {
		lines[i] = fmt.Sprintf("`%s` %s", dexNumber(entry.ID), entry.DisplayName())
	}
	embed.Description = strings.Join(lines, "\n")
	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("Showing %d-%d of %d", p.Page.Offset+1, p.Page.Offset+len(page), len(results)),
	}

	components, err := p.moveButtons(hasNext, resp.commands)
	if errors.Is(err, ErrCustomIDTooLong) {
		embed.Footer.Text += " (narrow the search to page further)"
		components = nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to generate pagination buttons: %w", err)
	}

	return &discordgo.InteractionResponseData{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	}, nil
}

func (resp listResponder) Initial() Page {
	return Page{
		Offset: 0,
		Limit:  resp.pageSize,
	}
}

func (resp listResponder) Autocomplete(
	ctx context.Context,
	dex Dex,
	opt *listOptions,
) ([]*discordgo.ApplicationCommandOptionChoice, error) {
	var prefix string
	switch {
	case opt.Type != nil && opt.Type.Focused:
		prefix = opt.Type.Value
	case opt.Type2 != nil && opt.Type2.Focused:
		prefix = opt.Type2.Value
	default:
		return nil, fmt.Errorf("no recognized field in focus: %w", ErrCommandFormat)
	}

	return searchChoices[model.TypeID](ctx, typeSearcher{
		prefix: prefix,
		limit:  len(model.TypeIDValues()),
	})
}

func (builder *Builder) list(ctx context.Context) (Command, error) {
	resp := listResponder{
		pageSize: builder.config.Discord.PageSize,
		emojis:   builder.emojis,
		commands: builder.commands,
	}

	return command[listOptions]{
		pager:         resp,
		autocompleter: resp,
		command: discordgo.ApplicationCommand{
			Name:        "list",
			Description: "Browse the Pokedex.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "search",
					Description: "Part of a name, or a national dex number",
					Required:    false,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "sort",
					Description: "Field to sort by",
					Required:    false,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Number", Value: string(catalog.SortByID)},
						{Name: "Name", Value: string(catalog.SortByName)},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "order",
					Description: "Sort direction",
					Required:    false,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "Ascending", Value: string(catalog.Ascending)},
						{Name: "Descending", Value: string(catalog.Descending)},
					},
				},
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         "type",
					Description:  "Only Pokemon of this type",
					Required:     false,
					Autocomplete: true,
				},
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         "type_2",
					Description:  "Also include Pokemon of this type",
					Required:     false,
					Autocomplete: true,
				},
			},
		},
	}, nil
}
