package registry

import (
	"fmt"
	"log/slog"
)

// restyLogger routes resty's internal messages to slog.
type restyLogger struct {
	logger *slog.Logger
}

func newRestyLogger(logger *slog.Logger) *restyLogger {
	return &restyLogger{logger: logger}
}

func (l *restyLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...), "component", "http")
}

func (l *restyLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, v...), "component", "http")
}

func (l *restyLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...), "component", "http")
}
