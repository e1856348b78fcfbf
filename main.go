package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/christophe-duc/lazycache/pkg/app"
	"github.com/christophe-duc/lazycache/pkg/config"
	"github.com/christophe-duc/lazycache/pkg/i18n"
	"github.com/christophe-duc/lazycache/pkg/utils"
	"github.com/docker/docker/client"
	"github.com/fatih/color"
	"github.com/go-errors/errors"
	"github.com/integrii/flaggy"
	"github.com/jesseduffield/yaml"
)

var (
	commit      string
	version     = "unversioned"
	date        string
	buildSource = "unknown"

	configFlag    = false
	debuggingFlag = false
	saveFlag      = false
	overrides     config.Overrides

	createImageTag string
	existsTag      string
	copyToImageRef string

	resetCmd       *flaggy.Subcommand
	createImageCmd *flaggy.Subcommand
	existsCmd      *flaggy.Subcommand
	copyToCmd      *flaggy.Subcommand
	copyFromCmd    *flaggy.Subcommand
	pathsCmd       *flaggy.Subcommand
)

func main() {
	info := fmt.Sprintf(
		"%s\nDate: %s\nBuildSource: %s\nCommit: %s\nOS: %s\nArch: %s",
		version,
		date,
		buildSource,
		commit,
		runtime.GOOS,
		runtime.GOARCH,
	)

	flaggy.SetName("lazycache")
	flaggy.SetDescription("Carry directories of a container build over to the next build")
	flaggy.DefaultParser.AdditionalHelpPrepend = "https://github.com/christophe-duc/lazycache"

	flaggy.Bool(&configFlag, "c", "config", "Print the current default config")
	flaggy.Bool(&debuggingFlag, "d", "debug", "a boolean")
	flaggy.Bool(&saveFlag, "s", "save", "Write the --out-dir, --cache-dir, --upload-url and --access-token values into config.yml")
	flaggy.String(&overrides.OutDir, "o", "out-dir", "Build output directory the cache is staged in")
	flaggy.StringSlice(&overrides.Directories, "D", "cache-dir", "Directory inside the build container to cache (repeatable)")
	flaggy.String(&overrides.UploadURL, "u", "upload-url", "URL of the file server receiving uploaded archives")
	flaggy.String(&overrides.AccessToken, "t", "access-token", "Token sent to the file server with every upload")
	flaggy.SetVersion(info)

	resetCmd = flaggy.NewSubcommand("reset")
	resetCmd.Description = "Empty the incremental cache directories"
	flaggy.AttachSubcommand(resetCmd, 1)

	createImageCmd = flaggy.NewSubcommand("create-image")
	createImageCmd.Description = "Package uploaded archives into the cache image"
	createImageCmd.AddPositionalValue(&createImageTag, "tag", 1, true, "Tag of the cache image")
	flaggy.AttachSubcommand(createImageCmd, 1)

	existsCmd = flaggy.NewSubcommand("exists")
	existsCmd.Description = "Check whether the cache image exists in its registry"
	existsCmd.AddPositionalValue(&existsTag, "tag", 1, true, "Tag of the cache image")
	flaggy.AttachSubcommand(existsCmd, 1)

	copyToCmd = flaggy.NewSubcommand("copy-to")
	copyToCmd.Description = "Print the Dockerfile instructions restoring cached directories"
	copyToCmd.AddPositionalValue(&copyToImageRef, "image", 1, true, "Cache image to copy from")
	flaggy.AttachSubcommand(copyToCmd, 1)

	copyFromCmd = flaggy.NewSubcommand("copy-from")
	copyFromCmd.Description = "Print the shell lines uploading cached directories"
	flaggy.AttachSubcommand(copyFromCmd, 1)

	pathsCmd = flaggy.NewSubcommand("paths")
	pathsCmd.Description = "Print where the cache is staged"
	flaggy.AttachSubcommand(pathsCmd, 1)

	flaggy.Parse()

	if configFlag {
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		err := encoder.Encode(config.GetDefaultConfig())
		if err != nil {
			log.Fatal(err.Error())
		}
		fmt.Printf("%v\n", buf.String())
		os.Exit(0)
	}

	projectDir, err := os.Getwd()
	if err != nil {
		log.Fatal(err.Error())
	}

	appConfig, err := config.NewAppConfig("lazycache", version, commit, date, buildSource, debuggingFlag, projectDir)
	if err != nil {
		log.Fatal(err.Error())
	}

	if saveFlag && !overrides.IsEmpty() {
		if err := appConfig.SaveOverrides(overrides); err != nil {
			log.Fatal(err.Error())
		}
	}
	overrides.Apply(appConfig.UserConfig)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	app, err := app.NewApp(appConfig)
	exitCode := 0
	if err == nil {
		exitCode, err = run(ctx, app)
	}
	if err != nil {
		exitCode = reportError(app, err)
	}

	if err := app.Close(); err != nil {
		app.Log.Error(err)
	}
	stop()
	os.Exit(exitCode)
}

func run(ctx context.Context, app *app.App) (int, error) {
	switch {
	case resetCmd.Used:
		return 0, app.Reset()
	case createImageCmd.Used:
		if err := app.CreateImage(ctx, createImageTag); err != nil {
			return 1, err
		}
		fmt.Fprintf(os.Stderr, "%s: %s\n", utils.ColoredString(app.Tr.CacheImageCreated, color.FgGreen), createImageTag)
	case existsCmd.Used:
		exists, err := app.ImageExists(ctx, existsTag)
		if err != nil {
			return 1, err
		}
		printExists(app.Tr, exists)
		if !exists {
			return 1, nil
		}
	case copyToCmd.Used:
		printLines(app.CopyToImage(copyToImageRef))
	case copyFromCmd.Used:
		printLines(app.CopyFromImage())
	case pathsCmd.Used:
		fmt.Print(utils.FormatMap(8, app.Paths()))
	default:
		if !saveFlag {
			flaggy.ShowHelp("")
		}
	}

	return 0, nil
}

func reportError(app *app.App, err error) int {
	if errMessage, known := app.KnownError(err); known {
		log.Println(errMessage)
		return 1
	}

	if client.IsErrConnectionFailed(err) {
		log.Println(app.Tr.ConnectionFailed)
		return 1
	}

	newErr := errors.Wrap(err, 0)
	stackTrace := newErr.ErrorStack()
	app.Log.Error(stackTrace)

	log.Printf("%s\n\n%s", app.Tr.ErrorOccurred, stackTrace)
	return 1
}

func printLines(lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Println(strings.Join(lines, "\n"))
}

func printExists(tr *i18n.TranslationSet, exists bool) {
	if exists {
		fmt.Printf("%s: %s\n", utils.ColoredString(tr.Yes, color.FgGreen), tr.ImageExists)
		return
	}
	fmt.Printf("%s: %s\n", utils.ColoredString(tr.No, color.FgRed), tr.ImageDoesNotExist)
}
