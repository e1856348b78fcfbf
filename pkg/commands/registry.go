package commands

import (
	"context"

	"github.com/google/go-containerregistry/pkg/authn"
	"github.com/google/go-containerregistry/pkg/name"
	"github.com/google/go-containerregistry/pkg/v1/remote"
	"github.com/sirupsen/logrus"
)

// RegistryCommand queries registries directly, without a local toolchain
type RegistryCommand struct {
	Log      *logrus.Entry
	Keychain authn.Keychain
}

// NewRegistryCommand uses the same credentials `docker login` stores
func NewRegistryCommand(log *logrus.Entry) *RegistryCommand {
	return &RegistryCommand{
		Log:      log,
		Keychain: authn.DefaultKeychain,
	}
}

// ImageExists sends a HEAD request for the image's manifest. Any registry,
// auth or transport failure means the image does not exist; only a reference
// we cannot parse is an error, since nothing was queried.
func (c *RegistryCommand) ImageExists(ctx context.Context, image string) (bool, error) {
	ref, err := name.ParseReference(image)
	if err != nil {
		return false, WrapError(err)
	}

	desc, err := remote.Head(ref, remote.WithContext(ctx), remote.WithAuthFromKeychain(c.Keychain))
	if err != nil {
		c.Log.Debugf("manifest HEAD of %s failed: %v", ref.Name(), err)
		return false, nil
	}

	c.Log.Debugf("found %s at %s", ref.Name(), desc.Digest)
	return true, nil
}
