package signing

import "github.com/rs/zerolog"

// Option is a set of configurable parameters. If left empty, defaults
// will be used
type Option func(e *Engine)

// WithLogger sets the logger used by the engine. By default the engine
// logs to stdout.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithHopCeiling fixes the bound on delegation-chain walks. Without it the
// engine bounds each walk by the number of known participants.
func WithHopCeiling(ceiling int) Option {
	return func(e *Engine) {
		e.hopCeiling = ceiling
	}
}
