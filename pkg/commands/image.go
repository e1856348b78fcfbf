package commands

import (
	"context"
	"io"
	"os"

	"github.com/christophe-duc/lazycache/pkg/config"
	"github.com/sirupsen/logrus"
)

// ImageCommand talks to the image toolchain through its command line, using the
// command templates from the user config
type ImageCommand struct {
	Log       *logrus.Entry
	OSCommand *OSCommand
	Config    *config.AppConfig

	// Stdout and Stderr receive the output of import commands. Manifest
	// inspection output is always discarded.
	Stdout io.Writer
	Stderr io.Writer
}

// NewImageCommand returns an ImageCommand that forwards import output to our own streams
func NewImageCommand(log *logrus.Entry, osCommand *OSCommand, config *config.AppConfig) *ImageCommand {
	return &ImageCommand{
		Log:       log,
		OSCommand: osCommand,
		Config:    config,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
	}
}

// ImportImage ingests the archive at file as a flat filesystem image tagged with tag
func (c *ImageCommand) ImportImage(ctx context.Context, file string, tag string) error {
	command := c.OSCommand.ResolveCommandTemplate(
		c.Config.UserConfig.CommandTemplates.ImportImage,
		map[string]string{
			"file": file,
			"tag":  tag,
		},
	)

	cmd := c.OSCommand.ExecutableFromString(command)
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	return c.OSCommand.RunExecutableContext(ctx, cmd)
}

// ImageExists inspects the manifest of image in its registry. Any unsuccessful
// exit, be it a missing image or a registry/auth failure, means the image does
// not exist. Only a command that could not be launched is an error.
func (c *ImageCommand) ImageExists(ctx context.Context, image string) (bool, error) {
	command := c.OSCommand.ResolveCommandTemplate(
		c.Config.UserConfig.CommandTemplates.InspectManifest,
		map[string]string{
			"image": image,
		},
	)

	cmd := c.OSCommand.ExecutableFromString(command)
	// nil streams are connected to the null device
	cmd.Stdout = nil
	cmd.Stderr = nil

	err := c.OSCommand.RunExecutableContext(ctx, cmd)
	if err == nil {
		return true, nil
	}

	if HasErrorCode(err, ProcessLaunchFailed) {
		return false, err
	}

	if ctx.Err() != nil {
		return false, WrapError(ctx.Err())
	}

	c.Log.Debugf("manifest inspection of %s failed: %v", image, err)
	return false, nil
}
