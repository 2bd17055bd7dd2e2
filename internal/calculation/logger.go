package calculation

import (
	"fmt"
	"io"
)

// Logger is a minimal logging interface for the credit calculator.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// WriterLogger writes leveled lines to W. Debug lines are dropped unless Debug is set.
type WriterLogger struct {
	W     io.Writer
	Debug bool
}

func (l WriterLogger) Debugf(format string, args ...any) {
	if l.Debug {
		l.write("DEBUG", format, args...)
	}
}
func (l WriterLogger) Infof(format string, args ...any)  { l.write("INFO", format, args...) }
func (l WriterLogger) Warnf(format string, args ...any)  { l.write("WARN", format, args...) }
func (l WriterLogger) Errorf(format string, args ...any) { l.write("ERROR", format, args...) }

func (l WriterLogger) write(level, format string, args ...any) {
	if l.W == nil {
		return
	}
	fmt.Fprintf(l.W, "%-5s %s\n", level, fmt.Sprintf(format, args...))
}
