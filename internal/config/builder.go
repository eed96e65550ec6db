package config

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithMaxHalfMoves sets the half-move clock limit.
func (b *ConfigBuilder) WithMaxHalfMoves(n int) *ConfigBuilder {
	b.cfg.MaxHalfMoves = n
	return b
}

// WithMoveFormat sets the move notation by name.
func (b *ConfigBuilder) WithMoveFormat(name string) *ConfigBuilder {
	b.cfg.MoveFormat = name
	return b
}

// WithStartFEN sets the position new games start from.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithPerftWorkers sets the number of perft workers.
func (b *ConfigBuilder) WithPerftWorkers(n int) *ConfigBuilder {
	b.cfg.PerftWorkers = n
	return b
}

// WithLogLevel sets the log level by name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}

// WithPrompt sets the shell prompt.
func (b *ConfigBuilder) WithPrompt(prompt string) *ConfigBuilder {
	b.cfg.Prompt = prompt
	return b
}

// WithHistoryFile sets the shell history file; "" disables history.
func (b *ConfigBuilder) WithHistoryFile(path string) *ConfigBuilder {
	b.cfg.HistoryFile = path
	return b
}
