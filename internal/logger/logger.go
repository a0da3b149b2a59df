package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// StderrHook mirrors warnings and worse to stderr so they survive stdout
// being piped away.
type StderrHook struct{}

func (h *StderrHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.WarnLevel, logrus.ErrorLevel, logrus.FatalLevel}
}

func (h *StderrHook) Fire(entry *logrus.Entry) error {
	entry.Logger.Out = os.Stderr
	return nil
}

// Setup configures the process logger. Unparseable levels fall back to info.
func Setup(level string) {
	logrus.SetOutput(os.Stdout)
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
	logrus.AddHook(&StderrHook{})
}
