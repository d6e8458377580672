package logger

import (
	"log"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

func Init(level, format string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		logger.Warnf("bad log level %q, set default 'info'", level)
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	// stdlib log (used by gin and net/http) goes through logrus too
	log.SetOutput(logger.Writer())
	log.SetFlags(0)

	return logger
}
