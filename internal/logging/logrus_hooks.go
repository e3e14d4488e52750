package logging

import (
	"path"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

const logrusPackage = "github.com/sirupsen/logrus"

// ContextHook will add go source information (file, line, func) of the code that logged the entry
type ContextHook struct{}

// Levels defines which logging levels fire the hook. In our case, all levels.
func (hook ContextHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire walks up the call stack, past this hook and logrus itself, to the first frame outside of
// them and records it in the entry.
func (hook ContextHook) Fire(entry *logrus.Entry) error {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	for {
		frame, more := frames.Next()
		if !isLoggingFrame(frame.Function) {
			entry.Data["file"] = path.Base(frame.File)
			entry.Data["line"] = frame.Line
			entry.Data["func"] = path.Base(frame.Function)
			return nil
		}
		if !more {
			return nil
		}
	}
}

func isLoggingFrame(function string) bool {
	return strings.HasPrefix(function, logrusPackage) ||
		strings.Contains(function, "/internal/logging.ContextHook.") ||
		strings.Contains(function, "/internal/logging.(*ContextHook).")
}
