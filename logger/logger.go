// file: logger/logger.go

package logger

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the application-wide logger. Call Init before using it.
var Log = logrus.New()

// Init sets up the logger with its defaults: text output on stderr at info level.
// Stdout is reserved for the console menu.
func Init() {
	Log.SetOutput(os.Stderr)
	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	Log.SetLevel(logrus.InfoLevel)
}

// Configure applies the level and format from the loaded configuration.
func Configure(level, format string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	Log.SetLevel(lvl)

	switch format {
	case "json":
		Log.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("invalid log format %q", format)
	}
	return nil
}
