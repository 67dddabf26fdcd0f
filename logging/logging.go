// Package logging holds the process-wide logger used for progress and
// per-item warnings. Result lines meant for the user are printed by the cli
// package on stdout; everything here goes to the log output (stderr by default).
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var Log = newLogger(false, os.Stderr)

func newLogger(verbose bool, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.Out = out

	if verbose {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
		})
	}
	return logger
}

// Init replaces Log. A nil out keeps stderr.
func Init(verbose bool, out io.Writer) {
	if out == nil {
		out = os.Stderr
	}
	Log = newLogger(verbose, out)
}

// ForRun returns an entry tagged with the run id, so that lines of
// one invocation can be grepped out of a shared log file.
func ForRun(runID string) *logrus.Entry {
	return Log.WithField("run_id", runID)
}
