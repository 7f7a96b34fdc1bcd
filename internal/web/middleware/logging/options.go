package logging

import "log/slog"

// LogLevel is an enumeration of the different log levels.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// options is a struct that contains options for the logging middleware.
// It uses the functional options pattern for flexible configuration.
type options struct {
	logger              *slog.Logger
	logLevel            LogLevel
	prefix              string
	contextRequestIdKey string
}

// Option is a type that is used to set options for the logging middleware.
// It implements the functional options pattern.
type Option func(*options)

// WithLogger sets the logger for the logging middleware.
// The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLevel sets the log level that request lines are logged with.
// The default value is LogLevelInfo.
func WithLevel(level LogLevel) Option {
	return func(o *options) {
		o.logLevel = level
	}
}

// WithPrefix sets a prefix that is prepended to each log message.
// The default value is an empty string.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithContextRequestIdKey sets the context key under which the tracing
// middleware stored the request ID. If set and a request ID is found, it is
// added to the log line. The default value is an empty string.
func WithContextRequestIdKey(key string) Option {
	return func(o *options) {
		o.contextRequestIdKey = key
	}
}

// newOptions is a function that returns a new options struct with sane default values.
func newOptions(opts ...Option) options {
	o := options{
		logger:              nil,
		logLevel:            LogLevelInfo,
		prefix:              "",
		contextRequestIdKey: "",
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
