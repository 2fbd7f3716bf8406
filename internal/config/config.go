package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

var (
	ErrUnknownLogLevel = errors.New("unknown log level")
	ErrUnknownBotMode  = errors.New("unknown bot mode")
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Bot      Bot     `yaml:"bot"`
	Console  Console `yaml:"console"`
}

const (
	BotModeRandom  = "random"
	BotModeMinimax = "minimax"
)

type Bot struct {
	Mode string `yaml:"mode" env:"BOT_MODE" env-default:"minimax"`
}

// Level maps the mode to the bot level: 0 plays random moves, 1 searches.
func (that *Bot) Level() int {
	if that.Mode == BotModeRandom {
		return 0
	}

	return 1
}

type Console struct {
	Prompt string `yaml:"prompt" env:"CONSOLE_PROMPT" env-default:"> "`
}

// MustLoad - loads configuration from the yml file at path, or from the environment when the file is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, statErr := os.Stat(path)

	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	case errors.Is(statErr, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to stat config file: %w", statErr)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}

	switch that.Bot.Mode {
	case BotModeRandom, BotModeMinimax:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBotMode, that.Bot.Mode)
	}

	return nil
}
