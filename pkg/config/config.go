package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Duration lets toml values like "30s" decode into a time.Duration.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	dur, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = dur

	return nil
}

type Config struct {
	Discord struct {
		Token             string `toml:"token"`
		AutocompleteLimit int    `toml:"autocomplete_limit"`
		PageSize          int    `toml:"page_size"`
	} `toml:"discord"`
	PokeAPI struct {
		BaseURL   string   `toml:"base_url"`
		ListLimit int      `toml:"list_limit"`
		Timeout   Duration `toml:"timeout"`
	} `toml:"pokeapi"`
	Cache struct {
		TTL Duration `toml:"ttl"`
	} `toml:"cache"`
	Log struct {
		Level string `toml:"level"`
	} `toml:"log"`
}

const (
	PathEnv     = "DEXBROWSER_CONFIG"
	DefaultPath = "config.toml"
)

var (
	ErrMissingToken   = errors.New("discord token is required")
	ErrUnknownKeys    = errors.New("unknown configuration keys")
	ErrInvalidSetting = errors.New("invalid configuration setting")
)

// Read loads the file named by DEXBROWSER_CONFIG, or config.toml.
func Read() (*Config, error) {
	path := os.Getenv(PathEnv)
	if path == "" {
		path = DefaultPath
	}

	return ReadFile(path)
}

func ReadFile(path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not decode config file %q: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("%w in %q: %s", ErrUnknownKeys, path, strings.Join(keys, ", "))
	}

	cfg.applyDefaults()
	err = cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("invalid config file %q: %w", path, err)
	}

	return &cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Discord.AutocompleteLimit == 0 {
		cfg.Discord.AutocompleteLimit = 25
	}
	if cfg.Discord.PageSize == 0 {
		cfg.Discord.PageSize = 10
	}
	if cfg.PokeAPI.BaseURL == "" {
		cfg.PokeAPI.BaseURL = "https://pokeapi.co/api/v2"
	}
	if cfg.PokeAPI.ListLimit == 0 {
		cfg.PokeAPI.ListLimit = 1200
	}
	if cfg.PokeAPI.Timeout.Duration == 0 {
		cfg.PokeAPI.Timeout.Duration = 30 * time.Second
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

func (cfg *Config) Validate() error {
	if cfg.Discord.Token == "" {
		return ErrMissingToken
	}
	// discord caps autocomplete choices at 25
	if cfg.Discord.AutocompleteLimit < 0 || cfg.Discord.AutocompleteLimit > 25 {
		return fmt.Errorf("%w: discord.autocomplete_limit must be between 1 and 25", ErrInvalidSetting)
	}
	if cfg.Discord.PageSize < 0 {
		return fmt.Errorf("%w: discord.page_size must be positive", ErrInvalidSetting)
	}
	if cfg.PokeAPI.ListLimit < 0 {
		return fmt.Errorf("%w: pokeapi.list_limit must be positive", ErrInvalidSetting)
	}
	if cfg.PokeAPI.Timeout.Duration < 0 {
		return fmt.Errorf("%w: pokeapi.timeout must not be negative", ErrInvalidSetting)
	}
	if cfg.Cache.TTL.Duration < 0 {
		return fmt.Errorf("%w: cache.ttl must not be negative", ErrInvalidSetting)
	}
	if _, err := cfg.LogLevel(); err != nil {
		return err
	}

	return nil
}

func (cfg *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(cfg.Log.Level))
	if err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalidSetting, cfg.Log.Level)
	}

	return level, nil
}
