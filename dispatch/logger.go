package dispatch

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package logger.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		logger = zap.NewNop()
	})
	return logger
}

// SetLogger installs a logger for candidate-miss diagnostics. It takes
// effect only when called before the first Logger read; the installed
// logger is then fixed for the process lifetime.
func SetLogger(l *zap.Logger) {
	loggerOnce.Do(func() {
		logger = l
	})
}
