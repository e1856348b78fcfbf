package config

// Overrides are settings given on the command line. They take precedence over
// config.yml, and --save writes them into it.
type Overrides struct {
	OutDir      string
	Directories []string
	UploadURL   string
	AccessToken string
}

// IsEmpty tells whether no override was given
func (o Overrides) IsEmpty() bool {
	return o.OutDir == "" && len(o.Directories) == 0 && o.UploadURL == "" && o.AccessToken == ""
}

// Apply sets every given override on userConfig, leaving the rest untouched
func (o Overrides) Apply(userConfig *UserConfig) {
	if o.OutDir != "" {
		userConfig.Cache.OutDir = o.OutDir
	}
	if len(o.Directories) > 0 {
		userConfig.Cache.Directories = o.Directories
	}
	if o.UploadURL == "" && o.AccessToken == "" {
		return
	}

	if userConfig.FileServer == nil {
		userConfig.FileServer = &FileServerConfig{}
	}
	if o.UploadURL != "" {
		userConfig.FileServer.UploadURL = o.UploadURL
	}
	if o.AccessToken != "" {
		userConfig.FileServer.AccessToken = o.AccessToken
	}
}

// SaveOverrides persists the given overrides into config.yml, keeping whatever
// else the file already holds
func (c *AppConfig) SaveOverrides(overrides Overrides) error {
	return c.WriteToUserConfig(func(userConfig *UserConfig) error {
		overrides.Apply(userConfig)
		return nil
	})
}
