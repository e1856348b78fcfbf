package i18n

// TranslationSet is a set of localised strings for a given language
type TranslationSet struct {
	ErrorOccurred                 string
	ConnectionFailed              string
	CannotAccessDockerSocketError string
	MissingToolchainError         string

	ResettingCacheDirs     string
	CreatingCacheImage     string
	CacheImageCreated      string
	CheckingCacheImage     string
	NoCacheDirectories     string
	NoFileServerConfigured string

	FailedToResetCacheDirs   string
	FailedToCreateCacheImage string
	FailedToCheckCacheImage  string
	FailedToLoadConfig       string

	ImageExists       string
	ImageDoesNotExist string

	No  string
	Yes string
}

func englishSet() TranslationSet {
	return TranslationSet{
		ErrorOccurred:                 "An error occurred! Please create an issue at https://github.com/christophe-duc/lazycache/issues",
		ConnectionFailed:              "connection to docker client failed. You may need to restart the docker client",
		CannotAccessDockerSocketError: "Can't access docker socket at: unix:///var/run/docker.sock\nRun lazycache as root or read https://docs.docker.com/install/linux/linux-postinstall/",
		MissingToolchainError:         "Could not run the image toolchain. Check that docker (or whatever your commandTemplates call) is installed and on your PATH",

		ResettingCacheDirs:     "resetting incremental cache directories",
		CreatingCacheImage:     "creating incremental cache image",
		CacheImageCreated:      "incremental cache image created",
		CheckingCacheImage:     "checking for incremental cache image",
		NoCacheDirectories:     "no cache directories configured, nothing to generate",
		NoFileServerConfigured: "no file server configured, nothing to upload to",

		FailedToResetCacheDirs:   "Resetting the incremental cache directories failed",
		FailedToCreateCacheImage: "Creating the incremental cache image failed",
		FailedToCheckCacheImage:  "Checking whether the incremental cache image exists failed",
		FailedToLoadConfig:       "Loading the configuration failed",

		ImageExists:       "image exists",
		ImageDoesNotExist: "image does not exist",

		No:  "no",
		Yes: "yes",
	}
}
