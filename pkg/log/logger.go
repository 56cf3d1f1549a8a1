package log

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLogger is used when a context carries no logger. It discards
// everything unless replaced.
var DefaultLogger Logger = &logger{
	Logger: zap.NewNop(),
}

// NewProductionLogger builds a logger writing at lvl and above. The level can
// be changed at runtime through lvl.
//
// It writes JSON to standard error, reports the caller and adds stacktraces to
// ErrorLevel entries, unless changed through opts.
func NewProductionLogger(lvl *AtomicLevel, opts ...Option) Logger {
	cfg := logConfig{
		levelKey:   "level",
		caller:     true,
		callerSkip: 1,
		stacktrace: true,
		writer:     _stderr,
		encoderFactory: func(config zapcore.EncoderConfig) zapcore.Encoder {
			return zapcore.NewJSONEncoder(config)
		},
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	var zapOptions []zap.Option

	if cfg.caller {
		zapOptions = append(zapOptions, zap.AddCaller(), zap.AddCallerSkip(cfg.callerSkip))
	}

	if cfg.stacktrace {
		zapOptions = append(zapOptions, zap.AddStacktrace(zap.ErrorLevel))
	}

	zapOptions = append(zapOptions, wrapCoreWithLevel(lvl))

	return &logger{
		Logger: zap.New(newZapCore(cfg), zapOptions...),
	}
}

type logger struct {
	*zap.Logger
}

var _ Logger = (*logger)(nil)

func (l *logger) WithLevel(level Level) Logger {
	lvl := zap.NewAtomicLevelAt(level)
	return &logger{Logger: l.Logger.WithOptions(wrapCoreWithLevel(&lvl))}
}

func (l *logger) With(fields ...Field) Logger {
	return &logger{Logger: l.Logger.With(fields...)}
}

func (l *logger) Named(s string) Logger {
	return &logger{Logger: l.Logger.Named(s)}
}

func (l *logger) Level() Level {
	return zapcore.LevelOf(l.Core())
}

// WriteSyncer is an io.Writer that can be flushed.
type WriteSyncer interface {
	io.Writer
	Sync() error
}

type logConfig struct {
	levelKey       string
	caller         bool
	callerSkip     int
	stacktrace     bool
	writer         WriteSyncer
	encoderFactory func(config zapcore.EncoderConfig) zapcore.Encoder
}

// Option configures a Logger.
type Option func(s *logConfig)

// WithLevelKey sets the key of the log level. Default is "level".
func WithLevelKey(key string) Option {
	return func(s *logConfig) {
		s.levelKey = key
	}
}

// WithCaller sets whether the file:line of the log call is included.
func WithCaller(t bool) Option {
	return func(s *logConfig) {
		s.caller = t
	}
}

// WithStacktraceOnError sets whether ErrorLevel entries carry a stacktrace.
func WithStacktraceOnError(b bool) Option {
	return func(s *logConfig) {
		s.stacktrace = b
	}
}

// WithConsoleEncoding switches the output to zap's human friendly console
// encoding.
func WithConsoleEncoding() Option {
	return func(s *logConfig) {
		s.encoderFactory = func(config zapcore.EncoderConfig) zapcore.Encoder {
			return zapcore.NewConsoleEncoder(config)
		}
	}
}

// WithWriter sets where logs are written. Default is standard error.
func WithWriter(w WriteSyncer) Option {
	return func(s *logConfig) {
		s.writer = w
	}
}

// Writes to stderr are shared by every logger, hence the lock.
var _stderr = zapcore.Lock(zapcore.AddSync(os.Stderr))

func newZapCore(cfg logConfig) zapcore.Core {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       cfg.levelKey,
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     rfc3339MicroTimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	// The core accepts everything, the level is enforced by coreWithLevel.
	return zapcore.NewCore(cfg.encoderFactory(encoderConfig), cfg.writer, zap.DebugLevel)
}

func rfc3339MicroTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	const RFC3339Micro = "2006-01-02T15:04:05.000000Z07:00"

	enc.AppendString(t.UTC().Format(RFC3339Micro))
}
