package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/bwmarrin/discordgo"

	"github.com/notjagan/dexbrowser/pkg/cache"
	"github.com/notjagan/dexbrowser/pkg/command"
	"github.com/notjagan/dexbrowser/pkg/config"
	"github.com/notjagan/dexbrowser/pkg/pokeapi"
)

type Bot struct {
	config   config.Config
	session  *discordgo.Session
	commands map[string]command.Command
	cache    *cache.Memory
	dex      *pokeapi.Client
}

func New(ctx context.Context, cfg config.Config) (*Bot, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, fmt.Errorf("could not determine log level: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	mem, err := cache.NewMemory(ctx, cache.WithTTL(cfg.Cache.TTL.Duration))
	if err != nil {
		return nil, fmt.Errorf("error while creating response cache: %w", err)
	}

	apiCfg := pokeapi.DefaultConfig()
	apiCfg.BaseURL = cfg.PokeAPI.BaseURL
	apiCfg.ListLimit = cfg.PokeAPI.ListLimit
	apiCfg.Timeout = cfg.PokeAPI.Timeout.Duration
	dex := pokeapi.New(apiCfg, pokeapi.WithCache(mem), pokeapi.WithLogger(logger))

	cmds, err := command.All(ctx, cfg)
	if err != nil {
		mem.Close()
		return nil, fmt.Errorf("error while getting all commands for bot: %w", err)
	}

	return &Bot{
		config:   cfg,
		commands: cmds,
		cache:    mem,
		dex:      dex,
	}, nil
}

func (bot *Bot) Close() {
	log.Println("Shutting down.")
	if bot.session != nil {
		err := bot.session.Close()
		if err != nil {
			log.Printf("error while closing discord session: %v", err)
		}
	}
	n, err := bot.cache.Len(context.Background())
	if err == nil {
		log.Printf("Dropping %d cached responses.", n)
	}
	err = bot.cache.Close()
	if err != nil {
		log.Printf("error while closing response cache: %v", err)
	}
}

func (bot *Bot) initialize(ctx context.Context) error {
	sess, err := discordgo.New("Bot " + bot.config.Discord.Token)
	if err != nil {
		return fmt.Errorf("failed to instantiate discord bot: %w", err)
	}
	bot.session = sess

	bot.session.AddHandler(func(sess *discordgo.Session, interaction *discordgo.InteractionCreate) {
		err := bot.dispatch(ctx, sess, interaction)
		if err != nil {
			log.Printf("error while handling interaction: %v", err)
		}
	})

	err = bot.session.Open()
	if err != nil {
		return fmt.Errorf("failed to start discord session: %w", err)
	}

	err = bot.registerCommands()
	if err != nil {
		return fmt.Errorf("error while registering commands: %w", err)
	}

	return nil
}

func (bot *Bot) Run(ctx context.Context) error {
	defer bot.Close()

	err := bot.initialize(ctx)
	if err != nil {
		return fmt.Errorf("error while initializing bot: %w", err)
	}

	log.Println("Hosting Pokedex bot.")
	<-ctx.Done()

	return nil
}

var ErrUnknownCommand = errors.New("unknown command")

func (bot *Bot) lookup(name string) (command.Command, error) {
	cmd, ok := bot.commands[name]
	if !ok {
		return nil, fmt.Errorf("no command named %q: %w", name, ErrUnknownCommand)
	}

	return cmd, nil
}

func (bot *Bot) dispatch(ctx context.Context, sess *discordgo.Session, interaction *discordgo.InteractionCreate) error {
	switch interaction.Type {
	case discordgo.InteractionApplicationCommand:
		cmd, err := bot.lookup(interaction.ApplicationCommandData().Name)
		if err != nil {
			return err
		}

		log.Printf("COMMAND %q in GUILD %q", cmd.Name(), interaction.GuildID)
		err = cmd.Handle(ctx, bot.dex, sess, interaction)
		if err != nil {
			return fmt.Errorf("error while executing command %q: %w", cmd.Name(), err)
		}

	case discordgo.InteractionApplicationCommandAutocomplete:
		cmd, err := bot.lookup(interaction.ApplicationCommandData().Name)
		if err != nil {
			return err
		}

		err = cmd.Autocomplete(ctx, bot.dex, sess, interaction)
		if err != nil {
			return fmt.Errorf("error while autocompleting command %q: %w", cmd.Name(), err)
		}

	case discordgo.InteractionMessageComponent:
		name, reader, err := command.ParseCustomID(interaction.MessageComponentData().CustomID)
		if err != nil {
			return fmt.Errorf("could not parse button: %w", err)
		}

		cmd, err := bot.lookup(name)
		if err != nil {
			return err
		}

		log.Printf("BUTTON %q in GUILD %q", cmd.Name(), interaction.GuildID)
		err = cmd.Button(ctx, bot.dex, sess, interaction, reader)
		if err != nil {
			return fmt.Errorf("error while handling button for command %q: %w", cmd.Name(), err)
		}
	}

	return nil
}

func (bot *Bot) registerCommands() error {
	for _, cmd := range bot.commands {
		_, err := bot.session.ApplicationCommandCreate(bot.session.State.User.ID, "", cmd.ApplicationCommand())
		if err != nil {
			return fmt.Errorf("failed to create command %q: %w", cmd.Name(), err)
		}
	}

	return nil
}
