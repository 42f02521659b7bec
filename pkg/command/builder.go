package command

import (
	"context"
	"fmt"

	"github.com/notjagan/dexbrowser/pkg/config"
)

type commandFunc func(*Builder, context.Context) (Command, error)

type Builder struct {
	config   config.Config
	funcs    []commandFunc
	emojis   Emojis
	commands commands
}

func NewBuilder(cfg config.Config) *Builder {
	return &Builder{
		config: cfg,
		funcs: []commandFunc{
			(*Builder).dex,
			(*Builder).weak,
			(*Builder).list,
			(*Builder).compare,
		},
		emojis:   defaultEmojis,
		commands: make(commands),
	}
}

// all builds every command into the registry shared by the responders, so
// buttons can target any command once building finishes.
func (builder *Builder) all(ctx context.Context) (map[string]Command, error) {
	for _, f := range builder.funcs {
		cmd, err := f(builder, ctx)
		if err != nil {
			return nil, fmt.Errorf("error while creating command: %w", err)
		}
		builder.commands[cmd.Name()] = cmd
	}

	return builder.commands, nil
}

func All(ctx context.Context, cfg config.Config) (map[string]Command, error) {
	return NewBuilder(cfg).all(ctx)
}
