package logging

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger is the process-wide logger. Init configures it once at startup;
// before that it behaves as a plain text logger at info level.
var Logger = logrus.New()

// Init sets the formatter and level. Production gets JSON lines, everything
// else a full-timestamp text formatter.
func Init(level, environment string) {
	if strings.EqualFold(environment, "production") {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	switch strings.ToLower(level) {
	case "debug":
		Logger.SetLevel(logrus.DebugLevel)
	case "info":
		Logger.SetLevel(logrus.InfoLevel)
	case "warning", "warn":
		Logger.SetLevel(logrus.WarnLevel)
	case "error":
		Logger.SetLevel(logrus.ErrorLevel)
	default:
		Logger.SetLevel(logrus.InfoLevel)
	}
}
