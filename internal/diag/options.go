package diag

import "log/slog"

// options is a struct that contains options for the diagnostic page renderer.
// It uses the functional options pattern for flexible configuration.
type options struct {
	escapeTitle    bool
	strictDelivery bool
	logger         *slog.Logger
}

// Option is a type that is used to set options for the renderer.
// It implements the functional options pattern.
type Option func(*options)

// WithEscapedTitle sets whether the title and the request summary line are
// HTML-escaped before they are embedded into the page.
// The default value is false: both pass through unescaped, matching the
// historic behavior of this page layout. Callers that may receive
// attacker-controlled titles or request paths should enable escaping.
func WithEscapedTitle(escape bool) Option {
	return func(o *options) {
		o.escapeTitle = escape
	}
}

// WithStrictDelivery sets the failure policy of the delivery phase.
// If set to true, an I/O fault while finalizing headers, writing or flushing
// surfaces as an *InternalServerError carrying the original fault. If set to
// false, the fault is logged and delivery returns normally.
// The default value is false.
func WithStrictDelivery(strict bool) Option {
	return func(o *options) {
		o.strictDelivery = strict
	}
}

// WithLogger sets the logger used to report delivery faults in lenient mode.
// The default is slog.Default(). Passing nil disables fault logging.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// newOptions is a function that returns a new options struct with sane default values.
func newOptions(opts ...Option) options {
	o := options{
		escapeTitle:    false,
		strictDelivery: false,
		logger:         slog.Default(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
