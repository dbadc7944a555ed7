package watsonspec

// Fields is a minimal structured field map for logs.
type Fields map[string]any

// Logger is a tiny leveled logger for document-cache diagnostics (self-heal,
// store rejection). Provide an adapter around your logging
// stack; see log/zap, log/logrus, log/slog. If Logger is nil in CacheOptions,
// NopLogger is used.
type Logger interface {
	Debug(msg string, f Fields)
	Info(msg string, f Fields)
	Warn(msg string, f Fields)
	Error(msg string, f Fields)
}

type NopLogger struct{}

func (NopLogger) Debug(string, Fields) {}
func (NopLogger) Info(string, Fields)  {}
func (NopLogger) Warn(string, Fields)  {}
func (NopLogger) Error(string, Fields) {}
