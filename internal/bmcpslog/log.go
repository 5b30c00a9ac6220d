// Package bmcpslog wires a shared logrus logger for the driver. Debug output
// is gated the way the original debug_log helper was, suppressed unless
// BMCPS_DEBUG is set; info and higher levels are always written to stderr.
package bmcpslog

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var base = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	l.SetLevel(levelFromEnv())
	return l
}

func levelFromEnv() logrus.Level {
	if debugEnabled() {
		return logrus.DebugLevel
	}
	return logrus.InfoLevel
}

func debugEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("BMCPS_DEBUG")))
	return v == "1" || v == "true" || v == "yes"
}

// ForceDebug raises the shared logger to debug level regardless of the
// environment, used by --debug on the CLI.
func ForceDebug() {
	base.SetLevel(logrus.DebugLevel)
}

// For returns a logger with a "component" field set, the unit most call
// sites want rather than the bare base logger.
func For(component string) *logrus.Entry {
	return base.WithField("component", component)
}
