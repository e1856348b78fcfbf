package commands

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/christophe-duc/lazycache/pkg/config"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/api/types/registry"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/jsonmessage"
	"github.com/sirupsen/logrus"
)

// DockerClient is the subset of the docker API client we rely on
type DockerClient interface {
	ImageImport(ctx context.Context, source image.ImportSource, ref string, options image.ImportOptions) (io.ReadCloser, error)
	DistributionInspect(ctx context.Context, imageRef, encodedRegistryAuth string) (registry.DistributionInspect, error)
	Close() error
}

// DockerCommand talks to the docker daemon over its API rather than shelling out
type DockerCommand struct {
	Log    *logrus.Entry
	Config *config.AppConfig
	Client DockerClient
	Out    io.Writer
}

// NewDockerCommand connects to the daemon at DOCKER_HOST, or the platform default
func NewDockerCommand(log *logrus.Entry, config *config.AppConfig) (*DockerCommand, error) {
	host := os.Getenv("DOCKER_HOST")
	if host == "" {
		host = client.DefaultDockerHost
	}

	cli, err := newDockerClient(host)
	if err != nil {
		return nil, WrapError(err)
	}

	return &DockerCommand{
		Log:    log,
		Config: config,
		Client: cli,
		Out:    io.Discard,
	}, nil
}

// client.FromEnv would pin the API version to DOCKER_API_VERSION and turn off
// negotiation, so only the TLS settings are taken from the environment.
func newDockerClient(host string) (*client.Client, error) {
	return client.NewClientWithOpts(
		client.WithTLSClientConfigFromEnv(),
		client.WithAPIVersionNegotiation(),
		client.WithHost(host),
	)
}

// Close closes the underlying API client
func (c *DockerCommand) Close() error {
	return c.Client.Close()
}

// ImportImage streams the archive at file to the daemon, which creates a flat
// filesystem image tagged with tag
func (c *DockerCommand) ImportImage(ctx context.Context, file string, tag string) error {
	f, err := os.Open(file)
	if err != nil {
		return WrapError(err)
	}
	defer f.Close()

	resp, err := c.Client.ImageImport(
		ctx,
		image.ImportSource{Source: f, SourceName: "-"},
		tag,
		image.ImportOptions{Message: "incremental cache: " + filepath.Base(file)},
	)
	if err != nil {
		return WrapError(err)
	}
	defer resp.Close()

	// the daemon reports failures midway through the progress stream
	return WrapError(jsonmessage.DisplayJSONMessagesStream(resp, c.Out, 0, false, nil))
}

// ImageExists asks the daemon to resolve the image's manifest in its registry.
// Any error from the registry side is taken to mean the image does not exist;
// a daemon we cannot reach at all is an error.
func (c *DockerCommand) ImageExists(ctx context.Context, imageRef string) (bool, error) {
	if _, err := c.Client.DistributionInspect(ctx, imageRef, ""); err != nil {
		if client.IsErrConnectionFailed(err) {
			return false, WrapError(err)
		}

		c.Log.Debugf("distribution inspect of %s failed: %v", imageRef, err)
		return false, nil
	}

	return true, nil
}
