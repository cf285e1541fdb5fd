package config

import "io"

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

// WithWorkers sets the number of concurrent replays.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithBufferSize sets the worker queue capacity.
func (b *ConfigBuilder) WithBufferSize(n int) *ConfigBuilder {
	b.cfg.BufferSize = n
	return b
}

// WithStopOnError stops processing after the first rejected game.
func (b *ConfigBuilder) WithStopOnError(enabled bool) *ConfigBuilder {
	b.cfg.StopOnError = enabled
	return b
}

// WithSuppressDuplicates drops games ending on an already seen position.
func (b *ConfigBuilder) WithSuppressDuplicates(enabled bool) *ConfigBuilder {
	b.cfg.SuppressDuplicates = enabled
	return b
}

// WithOutputFormat sets the report format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithBoard appends the final diagram to text reports.
func (b *ConfigBuilder) WithBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithMoves lists committed moves in reports.
func (b *ConfigBuilder) WithMoves(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowMoves = enabled
	return b
}

// WithLegalMoves lists the legal moves of the side to move in reports.
func (b *ConfigBuilder) WithLegalMoves(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowLegalMoves = enabled
	return b
}

// WithLogLevel sets the zerolog level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithPrettyLog enables the console log writer.
func (b *ConfigBuilder) WithPrettyLog(enabled bool) *ConfigBuilder {
	b.cfg.Log.Pretty = enabled
	return b
}

// WithOutput sets the report writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogOutput sets the log writer.
func (b *ConfigBuilder) WithLogOutput(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
