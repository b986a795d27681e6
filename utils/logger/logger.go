package logger

import (
	"strings"

	"go.uber.org/zap"
)

// Logger is a thin wrapper around a zap sugared logger that redacts sensitive keys.
type Logger struct {
	sugar *zap.SugaredLogger
}

var redactedKeys = map[string]struct{}{
	"password":      {},
	"password_hash": {},
	"token":         {},
	"authorization": {},
	"secret":        {},
}

// New builds a production JSON logger for "prod"/"production" and a development console logger otherwise.
func New(mode string) (*Logger, error) {
	var cfg zap.Config
	switch strings.ToLower(mode) {
	case "prod", "production":
		cfg = zap.NewProductionConfig()
	default:
		cfg = zap.NewDevelopmentConfig()
	}
	zl, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return &Logger{sugar: zl.Sugar()}, nil
}

// NewNop returns a logger that discards everything; used by tests and tools.
func NewNop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

// Sync flushes buffered entries. Errors are ignored since stdout/stderr often reject fsync.
func (l *Logger) Sync() {
	_ = l.sugar.Sync()
}

// Debug logs msg with alternating key/value pairs. Values of sensitive keys
// such as password or token are replaced with [REDACTED], as in every level method.
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, sanitizeKVs(keysAndValues)...)
}

// Info logs msg at info level.
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Infow(msg, sanitizeKVs(keysAndValues)...)
}

// Warn logs msg at warn level.
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.sugar.Warnw(msg, sanitizeKVs(keysAndValues)...)
}

// Error logs msg at error level.
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, sanitizeKVs(keysAndValues)...)
}

// Fatal logs msg and then exits the process.
func (l *Logger) Fatal(msg string, keysAndValues ...interface{}) {
	l.sugar.Fatalw(msg, sanitizeKVs(keysAndValues)...)
}

// With returns a child logger that adds the given fields to every entry.
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{sugar: l.sugar.With(sanitizeKVs(keysAndValues)...)}
}

func sanitizeKVs(kv []interface{}) []interface{} {
	if len(kv) == 0 {
		return kv
	}
	out := make([]interface{}, 0, len(kv))
	for i := 0; i < len(kv); i += 2 {
		if i == len(kv)-1 {
			out = append(out, kv[i])
			break
		}
		key, _ := kv[i].(string)
		if _, redact := redactedKeys[strings.ToLower(strings.TrimSpace(key))]; redact {
			out = append(out, kv[i], "[REDACTED]")
			continue
		}
		out = append(out, kv[i], kv[i+1])
	}
	return out
}
