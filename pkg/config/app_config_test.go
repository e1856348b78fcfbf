package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jesseduffield/yaml"
)

func newTestAppConfig(t *testing.T) *AppConfig {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	conf, err := NewAppConfig("name", "version", "commit", "date", "buildSource", false, "projectDir")
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}
	return conf
}

func TestDefaultCommandTemplates(t *testing.T) {
	conf := newTestAppConfig(t)

	actual := conf.UserConfig.CommandTemplates.ImportImage
	expected := "docker import {{file}} {{tag}}"
	if actual != expected {
		t.Fatalf("Expected %s but got %s", expected, actual)
	}

	actual = conf.UserConfig.CommandTemplates.InspectManifest
	expected = "docker manifest inspect {{image}}"
	if actual != expected {
		t.Fatalf("Expected %s but got %s", expected, actual)
	}
}

func TestNoFileServerByDefault(t *testing.T) {
	conf := newTestAppConfig(t)

	if conf.UserConfig.FileServer != nil {
		t.Fatalf("Expected no file server but got %+v", conf.UserConfig.FileServer)
	}
}

func TestUserConfigOverridesDefaults(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	conf, err := NewAppConfig("name", "version", "commit", "date", "buildSource", false, "projectDir")
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}

	content := `
cache:
  directories:
    - ~/.cache
    - /app/node_modules
fileServer:
  uploadURL: http://10.0.0.1:1234/upload
  accessToken: secret
commandTemplates:
  importImage: podman import {{file}} {{tag}}
`
	if err := os.WriteFile(conf.ConfigFilename(), []byte(content), 0o600); err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}

	conf, err = NewAppConfig("name", "version", "commit", "date", "buildSource", false, "projectDir")
	if err != nil {
		t.Fatalf("Unexpected error: %s", err)
	}

	userConfig := conf.UserConfig
	if len(userConfig.Cache.Directories) != 2 || userConfig.Cache.Directories[0] != "~/.cache" {
		t.Fatalf("Unexpected directories %v", userConfig.Cache.Directories)
	}
	if userConfig.FileServer == nil || userConfig.FileServer.AccessToken != "secret" {
		t.Fatalf("Unexpected file server %+v", userConfig.FileServer)
	}
	if userConfig.CommandTemplates.ImportImage != "podman import {{file}} {{tag}}" {
		t.Fatalf("Unexpected import template %s", userConfig.CommandTemplates.ImportImage)
	}
	// untouched keys keep their defaults
	if userConfig.CommandTemplates.InspectManifest != "docker manifest inspect {{image}}" {
		t.Fatalf("Unexpected inspect template %s", userConfig.CommandTemplates.InspectManifest)
	}
	if userConfig.Cache.OutDir != ".lazycache" {
		t.Fatalf("Unexpected out dir %s", userConfig.Cache.OutDir)
	}
}

func TestOutDir(t *testing.T) {
	conf := newTestAppConfig(t)
	conf.ProjectDir = "/src/app"

	if actual := conf.OutDir(); actual != filepath.Join("/src/app", ".lazycache") {
		t.Fatalf("Got %s", actual)
	}

	conf.UserConfig.Cache.OutDir = "/tmp/out"
	if actual := conf.OutDir(); actual != "/tmp/out" {
		t.Fatalf("Got %s", actual)
	}
}

func TestWritingToConfigFile(t *testing.T) {
	// init the AppConfig
	conf := newTestAppConfig(t)

	testFn := func(t *testing.T, ac *AppConfig, newValue string) {
		t.Helper()
		updateFn := func(uc *UserConfig) error {
			uc.Language = newValue
			return nil
		}

		err := ac.WriteToUserConfig(updateFn)
		if err != nil {
			t.Fatalf("Unexpected error: %s", err)
		}

		file, err := os.OpenFile(ac.ConfigFilename(), os.O_RDONLY, 0o660)
		if err != nil {
			t.Fatalf("Unexpected error: %s", err)
		}

		sampleUC := UserConfig{}
		err = yaml.NewDecoder(file).Decode(&sampleUC)
		if err != nil {
			t.Fatalf("Unexpected error: %s", err)
		}

		err = file.Close()
		if err != nil {
			t.Fatalf("Unexpected error: %s", err)
		}

		if sampleUC.Language != newValue {
			t.Fatalf("Got %v, Expected %v\n", sampleUC.Language, newValue)
		}
	}

	// insert value into an empty file
	testFn(t, conf, "pl")

	// modifying an existing file that already has 'language'
	testFn(t, conf, "en")
}
