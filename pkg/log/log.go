// Package log creates the logrus logger used across phpsanity.
// Logs are written to stderr so they never mix with reports on stdout.
package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

func New(version string) *logrus.Entry {
	logger := logrus.New()
	logger.Out = os.Stderr
	return logger.WithFields(logrus.Fields{
		"version": version,
		"program": "phpsanity",
	})
}

// SetLevel changes the level of the logger behind logE.
// An empty level keeps the current one.
func SetLevel(level string, logE *logrus.Entry) {
	if level == "" {
		return
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logE.WithField("log_level", level).WithError(err).Error("the log level is invalid")
		return
	}
	logE.Logger.SetLevel(lvl)
}
