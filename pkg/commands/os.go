package commands

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/christophe-duc/lazycache/pkg/config"
	"github.com/christophe-duc/lazycache/pkg/utils"
	"github.com/jesseduffield/kill"
	"github.com/mgutz/str"
	"github.com/sirupsen/logrus"
)

// Platform stores the os state
type Platform struct {
	os string
}

// OSCommand holds all the os commands
type OSCommand struct {
	Log      *logrus.Entry
	Platform *Platform
	Config   *config.AppConfig
	command  func(string, ...string) *exec.Cmd
}

// NewOSCommand os command runner
func NewOSCommand(log *logrus.Entry, config *config.AppConfig) *OSCommand {
	return &OSCommand{
		Log:      log,
		Platform: getPlatform(),
		Config:   config,
		command:  exec.Command,
	}
}

// SetCommand sets the command function used by the struct.
// To be used for testing only
func (c *OSCommand) SetCommand(cmd func(string, ...string) *exec.Cmd) {
	c.command = cmd
}

// ExecutableFromString takes a string like `docker import foo.tar bar` and returns an executable command for it
func (c *OSCommand) ExecutableFromString(commandStr string) *exec.Cmd {
	splitCmd := str.ToArgv(commandStr)
	return c.NewCmd(splitCmd[0], splitCmd[1:]...)
}

func (c *OSCommand) NewCmd(cmdName string, commandArgs ...string) *exec.Cmd {
	cmd := c.command(cmdName, commandArgs...)
	cmd.Env = os.Environ()
	return cmd
}

// ResolveCommandTemplate fills in a command template like `docker import {{file}} {{tag}}`,
// quoting every value so that paths with spaces survive the argv split
func (c *OSCommand) ResolveCommandTemplate(commandTemplate string, values map[string]string) string {
	quoted := make(map[string]string, len(values))
	for key, value := range values {
		quoted[key] = c.Quote(value)
	}

	return utils.ResolvePlaceholderString(commandTemplate, quoted)
}

// RunExecutable runs an executable file and returns an error if there was one
func (c *OSCommand) RunExecutable(cmd *exec.Cmd) error {
	return c.RunExecutableContext(context.Background(), cmd)
}

// RunExecutableContext starts cmd and waits for it to finish. A command that could
// not be started at all is reported with the ProcessLaunchFailed code, one that
// ran but exited unsuccessfully with ProcessExitedWithFailure. If ctx is cancelled
// before the command exits, the command and its children are killed.
func (c *OSCommand) RunExecutableContext(ctx context.Context, cmd *exec.Cmd) error {
	commandStr := strings.Join(cmd.Args, " ")

	c.PrepareForChildren(cmd)

	before := time.Now()
	if err := cmd.Start(); err != nil {
		c.Log.Error(err)
		return WrapError(NewComplexError(ProcessLaunchFailed, fmt.Sprintf("could not start '%s'", commandStr), err))
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		if killErr := c.Kill(cmd); killErr != nil {
			c.Log.Error(killErr)
		}
		<-done
		err = ctx.Err()
	}

	c.Log.Info(fmt.Sprintf("'%s': %s", commandStr, time.Since(before)))

	if err != nil {
		return WrapError(NewComplexError(ProcessExitedWithFailure, fmt.Sprintf("'%s' failed", commandStr), err))
	}
	return nil
}

// Quote wraps a message in platform-specific quotation marks
func (c *OSCommand) Quote(message string) string {
	var quote string
	if c.Platform.os == "windows" {
		quote = `\"`
		message = strings.NewReplacer(
			`"`, `"'"'"`,
			`\"`, `\\"`,
		).Replace(message)
	} else {
		quote = `"`
		message = strings.NewReplacer(
			`\`, `\\`,
			`"`, `\"`,
			`$`, `\$`,
			"`", "\\`",
		).Replace(message)
	}
	return quote + message + quote
}

// Kill kills a process. If the process has Setpgid == true, then we have anticipated that it might spawn its own child processes, so we've given it a process group ID (PGID) equal to its process id (PID) and given its child processes will inherit the PGID, we can kill that group, rather than killing the process itself.
func (c *OSCommand) Kill(cmd *exec.Cmd) error {
	return kill.Kill(cmd)
}

// PrepareForChildren sets Setpgid to true on the cmd, so that when we run it as a subprocess, we can kill its group rather than the process itself. Image tools may spawn helpers of their own, and killing the parent alone would leave those running.
func (c *OSCommand) PrepareForChildren(cmd *exec.Cmd) {
	kill.PrepareForChildren(cmd)
}
