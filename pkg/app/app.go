package app

import (
	"context"
	"io"
	"strings"

	"github.com/christophe-duc/lazycache/pkg/cache"
	"github.com/christophe-duc/lazycache/pkg/commands"
	"github.com/christophe-duc/lazycache/pkg/config"
	"github.com/christophe-duc/lazycache/pkg/i18n"
	"github.com/christophe-duc/lazycache/pkg/log"
	"github.com/christophe-duc/lazycache/pkg/utils"
	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
)

// App struct
type App struct {
	closers []io.Closer

	Config        *config.AppConfig
	Log           *logrus.Entry
	OSCommand     *commands.OSCommand
	DockerCommand *commands.DockerCommand
	Tr            *i18n.TranslationSet
	CacheDirs     *cache.CacheDirs
	Cache         *cache.IncrementalCache
}

// NewApp bootstrap a new application
func NewApp(config *config.AppConfig) (*App, error) {
	app := &App{
		closers: []io.Closer{},
		Config:  config,
	}
	var err error
	app.Log = log.NewLogger(config)
	app.Tr, err = i18n.NewTranslationSetFromConfig(app.Log, config.UserConfig.Language)
	if app.Tr == nil {
		// callers print their errors with app.Tr, whatever failed
		app.Tr = i18n.NewTranslationSet(app.Log, i18n.EN)
	}
	if err != nil {
		return app, err
	}

	if err := config.UserConfig.Validate(); err != nil {
		return app, errors.WrapPrefix(err, app.Tr.FailedToLoadConfig, 0)
	}

	app.OSCommand = commands.NewOSCommand(app.Log, config)
	app.CacheDirs = cache.NewCacheDirs(cache.NewOutputDir(config.OutDir()))

	importer, err := app.newImporter()
	if err != nil {
		return app, err
	}
	checker, err := app.newChecker()
	if err != nil {
		return app, err
	}
	app.Cache = cache.NewIncrementalCache(app.Log, importer, checker)

	return app, nil
}

func (app *App) newImporter() (cache.ImageImporter, error) {
	if app.Config.UserConfig.Cache.ImageBuilder == config.BackendDaemon {
		return app.dockerCommand()
	}

	return commands.NewImageCommand(app.Log, app.OSCommand, app.Config), nil
}

func (app *App) newChecker() (cache.ImageChecker, error) {
	switch app.Config.UserConfig.Cache.ExistenceChecker {
	case config.BackendDaemon:
		return app.dockerCommand()
	case config.BackendRegistry:
		return commands.NewRegistryCommand(app.Log), nil
	default:
		return commands.NewImageCommand(app.Log, app.OSCommand, app.Config), nil
	}
}

// the daemon client is shared by both backends and only created when one of them needs it
func (app *App) dockerCommand() (*commands.DockerCommand, error) {
	if app.DockerCommand != nil {
		return app.DockerCommand, nil
	}

	dockerCommand, err := commands.NewDockerCommand(app.Log, app.Config)
	if err != nil {
		return nil, err
	}
	app.DockerCommand = dockerCommand
	app.closers = append(app.closers, dockerCommand)

	return dockerCommand, nil
}

// Reset empties the incremental cache directories, ready for a new build to upload into
func (app *App) Reset() error {
	app.Log.Info(app.Tr.ResettingCacheDirs)

	if err := app.CacheDirs.Create(); err != nil {
		return errors.WrapPrefix(err, app.Tr.FailedToResetCacheDirs, 0)
	}
	return nil
}

// CreateImage packages everything uploaded so far into the image tag
func (app *App) CreateImage(ctx context.Context, tag string) error {
	app.Log.WithField("tag", tag).Info(app.Tr.CreatingCacheImage)

	if err := app.Cache.CreateImage(ctx, app.CacheDirs, tag); err != nil {
		return errors.WrapPrefix(err, app.Tr.FailedToCreateCacheImage, 0)
	}
	return nil
}

// ImageExists tells whether the cache image tag can be pulled from its registry
func (app *App) ImageExists(ctx context.Context, tag string) (bool, error) {
	app.Log.WithField("tag", tag).Info(app.Tr.CheckingCacheImage)

	exists, err := app.Cache.ImageExists(ctx, tag)
	if err != nil {
		return false, errors.WrapPrefix(err, app.Tr.FailedToCheckCacheImage, 0)
	}
	return exists, nil
}

// CopyToImage returns the instructions restoring the configured directories from imageRef
func (app *App) CopyToImage(imageRef string) []string {
	dirs := app.Config.UserConfig.Cache.Directories
	if len(dirs) == 0 {
		app.Log.Warn(app.Tr.NoCacheDirectories)
	}

	return cache.CopyToImageCommands(dirs, imageRef)
}

// CopyFromImage returns the shell lines uploading the configured directories to the file server
func (app *App) CopyFromImage() []string {
	userConfig := app.Config.UserConfig
	if len(userConfig.Cache.Directories) == 0 {
		app.Log.Warn(app.Tr.NoCacheDirectories)
	}
	if userConfig.FileServer == nil {
		app.Log.Warn(app.Tr.NoFileServerConfigured)
	}

	return cache.CopyFromImageCommands(userConfig.Cache.Directories, userConfig.FileServer)
}

// Paths returns where the cache is staged, keyed by a human readable name
func (app *App) Paths() map[string]string {
	return map[string]string{
		"config":  app.Config.ConfigFilename(),
		"outDir":  app.Config.OutDir(),
		"cache":   app.CacheDirs.Root,
		"uploads": app.CacheDirs.UploadsDir,
		"image":   app.CacheDirs.ImageDir,
	}
}

func (app *App) Close() error {
	return utils.CloseMany(app.closers)
}

type errorMapping struct {
	originalError string
	newError      string
}

// KnownError takes an error and tells us whether it's an error that we know about where we can print a nicely formatted version of it rather than panicking with a stack trace
func (app *App) KnownError(err error) (string, bool) {
	if commands.HasErrorCode(err, commands.ProcessLaunchFailed) {
		return app.Tr.MissingToolchainError, true
	}

	errorMessage := err.Error()

	mappings := []errorMapping{
		{
			originalError: "Got permission denied while trying to connect to the Docker daemon socket",
			newError:      app.Tr.CannotAccessDockerSocketError,
		},
		{
			originalError: "executable file not found in $PATH",
			newError:      app.Tr.MissingToolchainError,
		},
	}

	for _, mapping := range mappings {
		if strings.Contains(errorMessage, mapping.originalError) {
			return mapping.newError, true
		}
	}

	return "", false
}
