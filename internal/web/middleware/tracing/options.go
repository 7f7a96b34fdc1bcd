package tracing

// options is a struct that contains options for the tracing middleware.
// It uses the functional options pattern for flexible configuration.
type options struct {
	headerIdentifier    string
	contextIdentifier   string
	upstreamReqIdHeader string
}

// Option is a type that is used to set options for the tracing middleware.
// It implements the functional options pattern.
type Option func(*options)

// WithHeaderIdentifier sets the header name that the request ID is written to
// on the response. If empty, no response header is set.
// The default value is "X-Request-ID".
func WithHeaderIdentifier(identifier string) Option {
	return func(o *options) {
		o.headerIdentifier = identifier
	}
}

// WithContextIdentifier sets the context key that the request ID is stored
// under in the request context. If empty, no context value is set.
// The default value is "X-Request-ID".
func WithContextIdentifier(identifier string) Option {
	return func(o *options) {
		o.contextIdentifier = identifier
	}
}

// WithUpstreamHeader sets the header name of an upstream request ID that
// should be re-used instead of generating a new one.
// The default value is "X-Request-ID".
func WithUpstreamHeader(header string) Option {
	return func(o *options) {
		o.upstreamReqIdHeader = header
	}
}

// newOptions is a function that returns a new options struct with sane default values.
func newOptions(opts ...Option) options {
	o := options{
		headerIdentifier:    "X-Request-ID",
		contextIdentifier:   "X-Request-ID",
		upstreamReqIdHeader: "X-Request-ID",
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
