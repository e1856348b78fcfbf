package log

import (
	"io"
	"os"
	"path/filepath"

	"github.com/christophe-duc/lazycache/pkg/config"
	"github.com/sirupsen/logrus"
)

// NewLogger returns a new logger. lazycache usually runs inside build scripts
// whose stdout is parsed, so in production only warnings and errors are
// written, to stderr. Debug mode logs everything, including how long each
// subprocess took, as JSON to development.log in the config directory.
func NewLogger(config *config.AppConfig) *logrus.Entry {
	if config.Debug || os.Getenv("DEBUG") == "TRUE" {
		// highly recommended: tail -f development.log | humanlog
		// https://github.com/aybabtme/humanlog
		return newDevelopmentLogger(config).WithFields(buildFields(config)).WithFields(cacheFields(config))
	}

	return newProductionLogger(os.Stderr).WithFields(cacheFields(config))
}

func buildFields(config *config.AppConfig) logrus.Fields {
	return logrus.Fields{
		"debug":     config.Debug,
		"version":   config.Version,
		"commit":    config.Commit,
		"buildDate": config.BuildDate,
	}
}

// cacheFields tells apart log lines of builds using different output dirs or backends
func cacheFields(config *config.AppConfig) logrus.Fields {
	if config.UserConfig == nil {
		return logrus.Fields{}
	}

	return logrus.Fields{
		"outDir":           config.OutDir(),
		"imageBuilder":     config.UserConfig.Cache.ImageBuilder,
		"existenceChecker": config.UserConfig.Cache.ExistenceChecker,
	}
}

func getLogLevel() logrus.Level {
	strLevel := os.Getenv("LOG_LEVEL")
	level, err := logrus.ParseLevel(strLevel)
	if err != nil {
		return logrus.DebugLevel
	}
	return level
}

func newDevelopmentLogger(config *config.AppConfig) *logrus.Logger {
	log := logrus.New()
	log.SetLevel(getLogLevel())
	log.Formatter = &logrus.JSONFormatter{}

	file, err := os.OpenFile(filepath.Join(config.ConfigDir, "development.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		// still debuggable without a writable config dir
		log.SetOutput(os.Stderr)
		log.WithError(err).Warn("unable to log to file, logging to stderr")
		return log
	}
	log.SetOutput(file)
	return log
}

func newProductionLogger(out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(logrus.WarnLevel)
	log.Formatter = &logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	}
	return log
}
