// Package config provides configuration for the chess tools.
package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// EnvPrefix is prepended to every environment override, e.g.
// CHESS_MAX_HALF_MOVES.
const EnvPrefix = "CHESS"

// Config keys.
const (
	KeyMaxHalfMoves = "max_half_moves"
	KeyMoveFormat   = "move_format"
	KeyStartFEN     = "start_fen"
	KeyPerftWorkers = "perft_workers"
	KeyLogLevel     = "log_level"
	KeyPrompt       = "prompt"
	KeyHistoryFile  = "history_file"
)

// Config holds all program configuration.
type Config struct {
	// Game rules
	MaxHalfMoves int    `mapstructure:"max_half_moves"`
	MoveFormat   string `mapstructure:"move_format"`
	StartFEN     string `mapstructure:"start_fen"`

	// Perft
	PerftWorkers int `mapstructure:"perft_workers"`

	// Logging
	LogLevel string `mapstructure:"log_level"`

	// Shell
	Prompt      string `mapstructure:"prompt"`
	HistoryFile string `mapstructure:"history_file"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		MaxHalfMoves: engine.DefaultMaxHalfMoves,
		MoveFormat:   engine.FormatUCI.String(),
		StartFEN:     engine.InitialFEN,
		PerftWorkers: 1,
		LogLevel:     zerolog.InfoLevel.String(),
		Prompt:       "chess> ",
		HistoryFile:  "",
	}
}

// Load builds a Config from the defaults, the optional file at path, and
// CHESS_* environment variables, in increasing priority. The file format
// follows its extension (yaml, toml, json).
func Load(path string) (*Config, error) {
	v := viper.New()
	def := NewConfig()
	v.SetDefault(KeyMaxHalfMoves, def.MaxHalfMoves)
	v.SetDefault(KeyMoveFormat, def.MoveFormat)
	v.SetDefault(KeyStartFEN, def.StartFEN)
	v.SetDefault(KeyPerftWorkers, def.PerftWorkers)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyPrompt, def.Prompt)
	v.SetDefault(KeyHistoryFile, def.HistoryFile)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that other packages cannot repair.
func (c *Config) Validate() error {
	if c.MaxHalfMoves < 1 {
		return fmt.Errorf("%s must be positive, got %d: %w", KeyMaxHalfMoves, c.MaxHalfMoves, errors.ErrInvalidConfig)
	}
	f, err := engine.ParseMoveFormat(c.MoveFormat)
	if err != nil {
		return fmt.Errorf("%s: %v: %w", KeyMoveFormat, err, errors.ErrInvalidConfig)
	}
	if f == engine.FormatSAN {
		return fmt.Errorf("%s: SAN moves cannot be parsed: %w", KeyMoveFormat, errors.ErrInvalidConfig)
	}
	if c.PerftWorkers < 1 {
		return fmt.Errorf("%s must be positive, got %d: %w", KeyPerftWorkers, c.PerftWorkers, errors.ErrInvalidConfig)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%s: %v: %w", KeyLogLevel, err, errors.ErrInvalidConfig)
	}
	if c.StartFEN != "" {
		if _, err := engine.NewGame(c.StartFEN); err != nil {
			return fmt.Errorf("%s: %v: %w", KeyStartFEN, err, errors.ErrInvalidConfig)
		}
	}
	return nil
}

// Format returns the configured move format, FormatUCI if it does not parse.
func (c *Config) Format() engine.MoveFormat {
	f, _ := engine.ParseMoveFormat(c.MoveFormat)
	return f
}

// Level returns the configured log level, zerolog.InfoLevel if it does not
// parse.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}

// EngineOptions returns the game options the configuration selects.
func (c *Config) EngineOptions() []engine.Option {
	return []engine.Option{
		engine.WithMaxHalfMoves(c.MaxHalfMoves),
		engine.WithMoveFormat(c.Format()),
	}
}
