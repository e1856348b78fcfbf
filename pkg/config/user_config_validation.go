package config

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Validate validates the user config
func (config *UserConfig) Validate() error {
	if !lo.Contains([]string{BackendCLI, BackendDaemon}, config.Cache.ImageBuilder) {
		return fmt.Errorf("Unrecognized image builder '%s' for 'cache.imageBuilder'. Permitted values: %s, %s",
			config.Cache.ImageBuilder, BackendCLI, BackendDaemon)
	}

	if !lo.Contains([]string{BackendCLI, BackendRegistry, BackendDaemon}, config.Cache.ExistenceChecker) {
		return fmt.Errorf("Unrecognized existence checker '%s' for 'cache.existenceChecker'. Permitted values: %s, %s, %s",
			config.Cache.ExistenceChecker, BackendCLI, BackendRegistry, BackendDaemon)
	}

	if config.Cache.ImageBuilder == BackendCLI {
		if err := validateCommandTemplate("commandTemplates.importImage", config.CommandTemplates.ImportImage, "file", "tag"); err != nil {
			return err
		}
	}

	if config.Cache.ExistenceChecker == BackendCLI {
		if err := validateCommandTemplate("commandTemplates.inspectManifest", config.CommandTemplates.InspectManifest, "image"); err != nil {
			return err
		}
	}

	for _, dir := range config.Cache.Directories {
		if strings.TrimSpace(dir) == "" {
			return fmt.Errorf("Empty directory in 'cache.directories'")
		}
	}

	return nil
}

func validateCommandTemplate(path string, template string, placeholders ...string) error {
	if strings.TrimSpace(template) == "" {
		return fmt.Errorf("Missing command template for '%s'", path)
	}

	for _, placeholder := range placeholders {
		if !strings.Contains(template, "{{"+placeholder+"}}") {
			return fmt.Errorf("Command template '%s' for '%s' does not use {{%s}}", template, path, placeholder)
		}
	}

	return nil
}
