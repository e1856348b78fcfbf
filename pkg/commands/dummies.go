package commands

import (
	"io"

	"github.com/christophe-duc/lazycache/pkg/config"
	"github.com/sirupsen/logrus"
)

// This file exports dummy constructors for use by tests in other packages

// NewDummyOSCommand creates a new dummy OSCommand for testing
func NewDummyOSCommand() *OSCommand {
	return NewOSCommand(NewDummyLog(), NewDummyAppConfig())
}

// NewDummyAppConfig creates a new dummy AppConfig for testing
func NewDummyAppConfig() *config.AppConfig {
	userConfig := config.GetDefaultConfig()
	appConfig := &config.AppConfig{
		Name:        "lazycache",
		Version:     "unversioned",
		Commit:      "",
		BuildDate:   "",
		Debug:       false,
		BuildSource: "",
		UserConfig:  &userConfig,
	}
	return appConfig
}

// NewDummyLog creates a new dummy Log for testing
func NewDummyLog() *logrus.Entry {
	log := logrus.New()
	log.Out = io.Discard
	return log.WithField("test", "test")
}

// NewDummyImageCommand creates a new dummy ImageCommand for testing
func NewDummyImageCommand() *ImageCommand {
	return NewDummyImageCommandWithOSCommand(NewDummyOSCommand())
}

// NewDummyImageCommandWithOSCommand creates a new dummy ImageCommand for testing
func NewDummyImageCommandWithOSCommand(osCommand *OSCommand) *ImageCommand {
	return &ImageCommand{
		Log:       NewDummyLog(),
		OSCommand: osCommand,
		Config:    osCommand.Config,
		Stdout:    io.Discard,
		Stderr:    io.Discard,
	}
}
