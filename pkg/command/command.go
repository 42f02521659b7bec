package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/bwmarrin/discordgo"

	"github.com/notjagan/dexbrowser/pkg/model"
)

// Dex is the slice of the PokeAPI client the commands read from.
type Dex interface {
	AllPokemon(ctx context.Context) ([]model.ListItem, error)
	Pokemon(ctx context.Context, nameOrID string) (*model.Pokemon, error)
	PokemonByID(ctx context.Context, id int) (*model.Pokemon, error)
	Species(ctx context.Context, id int) (*model.Species, error)
	Type(ctx context.Context, name string) (*model.TypeDetail, error)
}

type (
	Page struct {
		Limit  int
		Offset int
	}

	Command interface {
		ApplicationCommand() *discordgo.ApplicationCommand
		Handle(context.Context, Dex, *discordgo.Session, *discordgo.InteractionCreate) error
		Autocomplete(context.Context, Dex, *discordgo.Session, *discordgo.InteractionCreate) error
		Button(context.Context, Dex, *discordgo.Session, *discordgo.InteractionCreate, io.Reader) error
		Name() string
	}

	handler[T any] interface {
		Handle(context.Context, Dex, *T) (*discordgo.InteractionResponseData, error)
	}
	autocompleter[T any] interface {
		Autocomplete(context.Context, Dex, *T) ([]*discordgo.ApplicationCommandOptionChoice, error)
	}
	pager[T any] interface {
		Paginate(context.Context, Dex, paginator[T]) (*discordgo.InteractionResponseData, error)
		Initial() Page
	}

	command[T any] struct {
		command       discordgo.ApplicationCommand
		handler       handler[T]
		autocompleter autocompleter[T]
		pager         pager[T]
	}

	commands map[string]Command
)

var (
	ErrUnrecognizedInteraction = errors.New("could not handle interaction")
	ErrUnregisteredCommand     = errors.New("command not registered")
)

func (cmd command[T]) ApplicationCommand() *discordgo.ApplicationCommand {
	return &cmd.command
}

func (cmd command[T]) Name() string {
	return cmd.command.Name
}

// optionCommand finds the registered command whose options decode into T.
func optionCommand[T any](cmds commands) (command[T], error) {
	for _, cmd := range cmds {
		if c, ok := cmd.(command[T]); ok {
			return c, nil
		}
	}

	var zero T
	return command[T]{}, fmt.Errorf("no command for options %T: %w", zero, ErrUnregisteredCommand)
}

func (cmd command[T]) responseBody(ctx context.Context, dex Dex, opt T) (*discordgo.InteractionResponseData, error) {
	switch {
	case cmd.handler != nil:
		body, err := cmd.handler.Handle(ctx, dex, &opt)
		if err != nil {
			return nil, fmt.Errorf("error while calling handler: %w", err)
		}
		return body, nil
	case cmd.pager != nil:
		body, err := cmd.pager.Paginate(ctx, dex, paginator[T]{
			Options: opt,
			Page:    cmd.pager.Initial(),
		})
		if err != nil {
			return nil, fmt.Errorf("error while calling pagination handler: %w", err)
		}
		return body, nil
	default:
		return nil, fmt.Errorf("no handler for command %q: %w", cmd.Name(), ErrUnrecognizedInteraction)
	}
}

func (cmd command[T]) commandResponse(
	ctx context.Context,
	dex Dex,
	options []*discordgo.ApplicationCommandInteractionDataOption,
) (*discordgo.InteractionResponse, error) {
	var opt T
	err := decodeOptions(options, &opt)
	if err != nil {
		return nil, fmt.Errorf("error while decoding options for command %q: %w", cmd.Name(), err)
	}

	body, err := cmd.responseBody(ctx, dex, opt)
	if err != nil {
		return nil, fmt.Errorf("could not handle command %q: %w", cmd.Name(), err)
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: body,
	}, nil
}

func (cmd command[T]) Handle(
	ctx context.Context,
	dex Dex,
	sess *discordgo.Session,
	interaction *discordgo.InteractionCreate,
) error {
	resp, err := cmd.commandResponse(ctx, dex, interaction.ApplicationCommandData().Options)
	if err != nil {
		return err
	}

	err = sess.InteractionRespond(interaction.Interaction, resp)
	if err != nil {
		return fmt.Errorf("error while responding to command %q: %w", cmd.Name(), err)
	}

	return nil
}

func (cmd command[T]) buttonResponse(ctx context.Context, dex Dex, reader io.Reader) (*discordgo.InteractionResponse, error) {
	var act [1]byte
	_, err := io.ReadFull(reader, act[:])
	if err != nil {
		return nil, fmt.Errorf("could not read action from button state: %w", err)
	}

	switch act[0] {
	case paginator[T]{}.Name():
		if cmd.pager == nil {
			return nil, fmt.Errorf("command %q cannot paginate: %w", cmd.Name(), ErrUnrecognizedInteraction)
		}

		p, err := buttonState[paginator[T]](reader)
		if err != nil {
			return nil, fmt.Errorf("error while deserializing pagination data: %w", err)
		}

		body, err := cmd.pager.Paginate(ctx, dex, *p)
		if err != nil {
			return nil, fmt.Errorf("error while calling pagination handler: %w", err)
		}

		return &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseUpdateMessage,
			Data: body,
		}, nil

	case followUp[T]{}.Name():
		s, err := buttonState[followUp[T]](reader)
		if err != nil {
			return nil, fmt.Errorf("error while deserializing follow-up data: %w", err)
		}

		body, err := cmd.responseBody(ctx, dex, s.Options)
		if err != nil {
			return nil, fmt.Errorf("could not handle command %q: %w", cmd.Name(), err)
		}

		return &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: body,
		}, nil

	case revisit[T]{}.Name():
		s, err := buttonState[revisit[T]](reader)
		if err != nil {
			return nil, fmt.Errorf("error while deserializing revisit data: %w", err)
		}

		body, err := cmd.responseBody(ctx, dex, s.Options)
		if err != nil {
			return nil, fmt.Errorf("could not handle command %q: %w", cmd.Name(), err)
		}

		return &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseUpdateMessage,
			Data: body,
		}, nil

	default:
		return nil, fmt.Errorf("unknown button action %q: %w", act[0], ErrUnrecognizedInteraction)
	}
}

func (cmd command[T]) Button(
	ctx context.Context,
	dex Dex,
	sess *discordgo.Session,
	interaction *discordgo.InteractionCreate,
	reader io.Reader,
) error {
	resp, err := cmd.buttonResponse(ctx, dex, reader)
	if err != nil {
		return err
	}

	err = sess.InteractionRespond(interaction.Interaction, resp)
	if err != nil {
		return fmt.Errorf("failed to complete interaction: %w", err)
	}

	return nil
}

func (cmd command[T]) autocompleteResponse(
	ctx context.Context,
	dex Dex,
	options []*discordgo.ApplicationCommandInteractionDataOption,
) (*discordgo.InteractionResponse, error) {
	if cmd.autocompleter == nil {
		return nil, fmt.Errorf("command %q has no autocompletion: %w", cmd.Name(), ErrUnrecognizedInteraction)
	}

	var opt T
	err := decodeOptions(options, &opt)
	if err != nil {
		return nil, fmt.Errorf("error while decoding options for autocomplete: %w", err)
	}

	choices, err := cmd.autocompleter.Autocomplete(ctx, dex, &opt)
	if err != nil {
		return nil, fmt.Errorf("error while calling autocompletion handler: %w", err)
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	}, nil
}

func (cmd command[T]) Autocomplete(
	ctx context.Context,
	dex Dex,
	sess *discordgo.Session,
	interaction *discordgo.InteractionCreate,
) error {
	resp, err := cmd.autocompleteResponse(ctx, dex, interaction.ApplicationCommandData().Options)
	if err != nil {
		return err
	}

	err = sess.InteractionRespond(interaction.Interaction, resp)
	if err != nil {
		return fmt.Errorf("error while sending autocompletions: %w", err)
	}

	return nil
}

var ErrDecodeOption = errors.New("error while decoding options")

type discordValue interface {
	string | int | bool
}

// discordField carries an option value along with whether the user is
// currently typing into it.
type discordField[T discordValue] struct {
	Value   T
	Focused bool
}

var fieldTypes = map[reflect.Type]bool{
	reflect.TypeOf(discordField[string]{}): true,
	reflect.TypeOf(discordField[int]{}):    true,
	reflect.TypeOf(discordField[bool]{}):   true,
}

// decodeOptions fills the fields of structure tagged `option:"name"` from the
// interaction options. Subcommands decode into nested structs.
func decodeOptions(options []*discordgo.ApplicationCommandInteractionDataOption, structure any) (ret error) {
	defer func() {
		r := recover()
		if err, ok := r.(*reflect.ValueError); ok {
			ret = fmt.Errorf("reflection error while decoding options: %v: %w", err, ErrDecodeOption)
		} else if r != nil {
			panic(r)
		}
	}()

	value := reflect.ValueOf(structure)
	if value.Kind() != reflect.Pointer || value.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("options must decode into a struct pointer, got %T: %w", structure, ErrDecodeOption)
	}
	value = value.Elem()

	fields := make(map[string]reflect.Value, value.NumField())
	for i := 0; i < value.NumField(); i++ {
		name := value.Type().Field(i).Tag.Get("option")
		if name == "" {
			continue
		}

		field := value.Field(i)
		if !field.CanSet() {
			return fmt.Errorf("field %q cannot be set: %w", value.Type().Field(i).Name, ErrDecodeOption)
		}
		fields[name] = field
	}

	for _, option := range options {
		field, ok := fields[option.Name]
		if !ok {
			return fmt.Errorf("unexpected option name %q: %w", option.Name, ErrDecodeOption)
		}

		if field.Kind() == reflect.Pointer {
			ptr := reflect.New(field.Type().Elem())
			field.Set(ptr)
			field = ptr.Elem()
		}
		if fieldTypes[field.Type()] {
			field.FieldByName("Focused").SetBool(option.Focused)
			field = field.FieldByName("Value")
		}

		switch {
		case option.Type == discordgo.ApplicationCommandOptionString && field.Kind() == reflect.String:
			field.SetString(option.StringValue())
		case option.Type == discordgo.ApplicationCommandOptionInteger && field.Kind() == reflect.Int:
			field.SetInt(option.IntValue())
		case option.Type == discordgo.ApplicationCommandOptionBoolean && field.Kind() == reflect.Bool:
			field.SetBool(option.BoolValue())
		case option.Type == discordgo.ApplicationCommandOptionSubCommand && field.Kind() == reflect.Struct:
			err := decodeOptions(option.Options, field.Addr().Interface())
			if err != nil {
				return fmt.Errorf("error while decoding options for subcommand %q: %w", option.Name, err)
			}
		default:
			return fmt.Errorf("unexpected type %v for option %q: %w", option.Type, option.Name, ErrDecodeOption)
		}
	}

	return nil
}
