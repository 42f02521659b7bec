package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/notjagan/dexbrowser/pkg/catalog"
	"github.com/notjagan/dexbrowser/pkg/effectiveness"
	"github.com/notjagan/dexbrowser/pkg/model"
	"github.com/notjagan/dexbrowser/pkg/pokeapi"
)

var ErrCommandFormat = errors.New("invalid command format")

const (
	notFoundMessage    = "No Pokemon found with that name."
	unavailableMessage = "The Pokedex service is unavailable, try again later."
)

// userMessage maps upstream failures a user can act on to a reply. Anything
// else is reported as an error.
func userMessage(err error) (*discordgo.InteractionResponseData, bool) {
	var content string
	switch {
	case errors.Is(err, pokeapi.ErrNotFound):
		content = notFoundMessage
	case pokeapi.IsRetryable(err):
		content = unavailableMessage
	default:
		return nil, false
	}

	return &discordgo.InteractionResponseData{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	}, true
}

func contentMessage(format string, args ...any) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Content: fmt.Sprintf(format, args...),
		Flags:   discordgo.MessageFlagsEphemeral,
	}
}

type searcher[T model.DisplayNamer] interface {
	Search(context.Context) ([]T, error)
	Value(T) any
}

type pokemonSearcher struct {
	dex    Dex
	prefix string
	limit  int
}

func (s pokemonSearcher) Search(ctx context.Context) ([]catalog.Entry, error) {
	items, err := s.dex.AllPokemon(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list pokemon: %w", err)
	}

	entries := catalog.Search(catalog.EntriesFromList(items), s.prefix)
	if len(entries) > s.limit {
		entries = entries[:s.limit]
	}

	return entries, nil
}

func (pokemonSearcher) Value(entry catalog.Entry) any {
	return entry.Name
}

type typeSearcher struct {
	prefix string
	limit  int
}

func (s typeSearcher) Search(context.Context) ([]model.TypeID, error) {
	prefix := strings.ToLower(strings.TrimSpace(s.prefix))
	ids := make([]model.TypeID, 0, s.limit)
	for _, id := range model.TypeIDValues() {
		if len(ids) == s.limit {
			break
		}
		if strings.HasPrefix(id.String(), prefix) {
			ids = append(ids, id)
		}
	}

	return ids, nil
}

func (typeSearcher) Value(id model.TypeID) any {
	return id.String()
}

func searchChoices[T model.DisplayNamer](ctx context.Context, s searcher[T]) ([]*discordgo.ApplicationCommandOptionChoice, error) {
	results, err := s.Search(ctx)
	if err != nil {
		return nil, fmt.Errorf("error while searching for matching resources: %w", err)
	}

	choices := make([]*discordgo.ApplicationCommandOptionChoice, len(results))
	for i, res := range results {
		choices[i] = &discordgo.ApplicationCommandOptionChoice{
			Name:  res.DisplayName(),
			Value: s.Value(res),
		}
	}

	return choices, nil
}

// efficacyFields renders the resolver buckets, leaving out empty ones.
func efficacyFields(result effectiveness.Result, emojis Emojis) []*discordgo.MessageEmbedField {
	buckets := []struct {
		name string
		ids  []model.TypeID
	}{
		{"Weaknesses", result.WeakTo},
		{"Resistances", result.ResistantTo},
		{"Immunities", result.ImmuneTo},
	}

	fields := make([]*discordgo.MessageEmbedField, 0, len(buckets))
	for _, bucket := range buckets {
		if len(bucket.ids) == 0 {
			continue
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  bucket.name,
			Value: emojis.List(bucket.ids),
		})
	}

	return fields
}

const statBarWidth = 10

// statBar draws value relative to max, like the detail page's stat bars.
func statBar(value, max int) string {
	filled := 0
	if max > 0 && value > 0 {
		filled = (value*statBarWidth + max/2) / max
		if filled == 0 {
			filled = 1
		}
		if filled > statBarWidth {
			filled = statBarWidth
		}
	}

	return strings.Repeat("█", filled) + strings.Repeat("░", statBarWidth-filled)
}

func dexNumber(id int) string {
	return fmt.Sprintf("#%03d", id)
}

func buttonRow(buttons ...discordgo.MessageComponent) []discordgo.MessageComponent {
	if len(buttons) == 0 {
		return nil
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
	}
}

func followUpButton[T any](cmds commands, opt T, button discordgo.Button) (discordgo.Button, error) {
	cmd, err := optionCommand[T](cmds)
	if err != nil {
		return discordgo.Button{}, fmt.Errorf("could not find command in registry: %w", err)
	}

	id, err := customID(followUp[T]{Options: opt}, cmd.Name())
	if err != nil {
		return discordgo.Button{}, fmt.Errorf("failed to create follow-up id: %w", err)
	}
	button.CustomID = id
	if button.Style == 0 {
		button.Style = discordgo.SecondaryButton
	}

	return button, nil
}

func revisitButton[T any](cmds commands, opt T, button discordgo.Button) (discordgo.Button, error) {
	cmd, err := optionCommand[T](cmds)
	if err != nil {
		return discordgo.Button{}, fmt.Errorf("could not find command in registry: %w", err)
	}

	id, err := customID(revisit[T]{Options: opt}, cmd.Name())
	if err != nil {
		return discordgo.Button{}, fmt.Errorf("failed to create revisit id: %w", err)
	}
	button.CustomID = id
	if button.Style == 0 {
		button.Style = discordgo.PrimaryButton
	}

	return button, nil
}

// moveButtons builds first/previous/next buttons for a paginated response,
// or nothing when everything fits on one page.
func (p paginator[T]) moveButtons(hasNext bool, cmds commands) ([]discordgo.MessageComponent, error) {
	if p.Page.Offset == 0 && !hasNext {
		return nil, nil
	}

	cmd, err := optionCommand[T](cmds)
	if err != nil {
		return nil, fmt.Errorf("could not find command in registry: %w", err)
	}

	at := func(offset int) (string, error) {
		if offset < 0 {
			offset = 0
		}
		return customID(paginator[T]{
			Options: p.Options,
			Page:    Page{Limit: p.Page.Limit, Offset: offset},
		}, cmd.Name())
	}

	homeID, err := at(0)
	if err != nil {
		return nil, fmt.Errorf("failed to create first page button: %w", err)
	}
	prevID, err := at(p.Page.Offset - p.Page.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to create previous button: %w", err)
	}
	nextID, err := at(p.Page.Offset + p.Page.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to create next button: %w", err)
	}

	return buttonRow(
		discordgo.Button{
			Style:    discordgo.PrimaryButton,
			Label:    "⏮",
			CustomID: homeID,
			Disabled: p.Page.Offset == 0,
		},
		discordgo.Button{
			Style:    discordgo.PrimaryButton,
			Label:    "⏴",
			CustomID: prevID,
			Disabled: p.Page.Offset == 0,
		},
		discordgo.Button{
			Style:    discordgo.PrimaryButton,
			Label:    "⏵",
			CustomID: nextID,
			Disabled: !hasNext,
		},
	), nil
}
