// Package logutil configures the shared logrus logger.
package logutil

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds a logger for the given level and format. Unknown levels
// fall back to info; any format other than "json" means text.
func New(level, format string) *logrus.Logger {
	logger := logrus.New()
	logger.Out = os.Stdout

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logger.SetLevel(parsed)

	if format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			PadLevelText:  true,
		})
	}

	return logger
}
