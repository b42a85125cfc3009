package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/rescuedao/rescuedao-api/libs/go/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvLogLevel names the variable read by InitLogger.
const EnvLogLevel = "LOG_LEVEL"

const serviceName = "rescuedao-api"

var (
	// Log is the process logger. It discards everything until InitLogger
	// or InitLoggerWithConfig runs.
	Log = zap.NewNop()

	// level is shared by every logger built here so SetLevel applies to
	// loggers already handed out through Named or With.
	level = zap.NewAtomicLevel()
)

// LoggerConfig selects the encoding and threshold of the process logger.
type LoggerConfig struct {
	Level       string `json:"level"`
	Stage       string `json:"stage"`
	EnableJSON  bool   `json:"enable_json"`
	EnableColor bool   `json:"enable_color"`
	// Output defaults to stderr.
	Output zapcore.WriteSyncer `json:"-"`
}

// InitLogger configures Log for stage: JSON in prod, colored console
// elsewhere, at the level named by LOG_LEVEL.
func InitLogger(stage string) {
	InitLoggerWithConfig(LoggerConfig{
		Level:       os.Getenv(EnvLogLevel),
		Stage:       stage,
		EnableJSON:  stage == constants.ProdEnvironment,
		EnableColor: stage != constants.ProdEnvironment,
	})
}

// InitLoggerWithConfig replaces Log. An unknown level falls back to info.
func InitLoggerWithConfig(cfg LoggerConfig) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	level.SetLevel(lvl)

	out := cfg.Output
	if out == nil {
		out = zapcore.Lock(os.Stderr)
	}

	prod := cfg.Stage == constants.ProdEnvironment || cfg.EnableJSON
	opts := []zap.Option{zap.AddCaller()}
	if !prod || lvl == zapcore.DebugLevel {
		opts = append(opts, zap.AddStacktrace(zapcore.ErrorLevel))
	}

	l := zap.New(zapcore.NewCore(newEncoder(cfg, prod), out, level), opts...)
	if prod {
		l = l.With(zap.String("service", serviceName), zap.String("stage", cfg.Stage))
	}
	Log = l
}

func newEncoder(cfg LoggerConfig, prod bool) zapcore.Encoder {
	if prod {
		enc := zap.NewProductionEncoderConfig()
		enc.TimeKey = "timestamp"
		enc.MessageKey = "message"
		enc.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(enc)
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.EncodeCaller = zapcore.ShortCallerEncoder
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	if cfg.EnableColor {
		enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return zapcore.NewConsoleEncoder(enc)
}

// ParseLevel maps a level name to a zap level. "warning" is accepted as an
// alias of warn and the empty string means info.
func ParseLevel(text string) (zapcore.Level, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	switch text {
	case "":
		return zapcore.InfoLevel, nil
	case "warning":
		return zapcore.WarnLevel, nil
	case constants.ErrorLevel:
		return zapcore.ErrorLevel, nil
	}
	lvl, err := zapcore.ParseLevel(text)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", text)
	}
	return lvl, nil
}

// SetLevel changes the threshold of Log and every logger derived from it.
func SetLevel(text string) error {
	lvl, err := ParseLevel(text)
	if err != nil {
		return err
	}
	level.SetLevel(lvl)
	return nil
}

// Named returns a child of Log tagged with component.
func Named(component LogComponent, fields ...zap.Field) *zap.Logger {
	return Log.With(append([]zap.Field{zap.String("component", string(component))}, fields...)...)
}

func Info(msg string, fields ...zap.Field)  { Log.Info(msg, fields...) }
func Error(msg string, fields ...zap.Field) { Log.Error(msg, fields...) }
func Debug(msg string, fields ...zap.Field) { Log.Debug(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { Log.Warn(msg, fields...) }

// Fatal logs at fatal level and exits the process.
func Fatal(msg string, fields ...zap.Field) { Log.Fatal(msg, fields...) }

// Sync flushes buffered entries.
func Sync() error {
	return Log.Sync()
}
