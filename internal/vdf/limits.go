package vdf

import "github.com/rs/zerolog"

// Limits constrains decode memory and stack use on untrusted input.
type Limits struct {
	MaxDepth       int
	MaxStringBytes int
}

func DefaultLimits() Limits {
	return Limits{
		MaxDepth:       256,
		MaxStringBytes: 4 * 1024 * 1024,
	}
}

// withDefaults fills zero fields from DefaultLimits.
func (l Limits) withDefaults() Limits {
	def := DefaultLimits()
	if l.MaxDepth <= 0 {
		l.MaxDepth = def.MaxDepth
	}
	if l.MaxStringBytes <= 0 {
		l.MaxStringBytes = def.MaxStringBytes
	}
	return l
}

// Options configures a decode call. The zero value uses DefaultLimits and
// discards log output.
type Options struct {
	Limits Limits
	Logger *zerolog.Logger
}

func (o Options) logger() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}
	return *o.Logger
}
