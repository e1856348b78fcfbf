package config

// UserConfig holds all of the user-configurable options. The fields here are all in PascalCase but in your actual config.yml they'll be in camelCase. You can view the default config with `lazycache --config`
type UserConfig struct {
	// Language is the language used for status and error messages. "auto" picks it up from your environment
	Language string `yaml:"language,omitempty"`

	// Cache determines where the incremental cache lives, which directories of the build container get cached, and which backends build and look up the cache image
	Cache CacheConfig `yaml:"cache,omitempty"`

	// FileServer is the server that receives the archives uploaded from inside the build container. Leave it out entirely and no upload commands are generated
	FileServer *FileServerConfig `yaml:"fileServer,omitempty"`

	// CommandTemplates determines what commands actually get called when we import an image or inspect a manifest. Swap `docker` for `podman` here if that's what you use
	CommandTemplates CommandTemplatesConfig `yaml:"commandTemplates,omitempty"`
}

// CacheConfig contains the settings of the incremental cache itself
type CacheConfig struct {
	// OutDir is the build output directory. The cache lives in its incremental-cache subdirectory. Relative paths are relative to the project directory
	OutDir string `yaml:"outDir,omitempty"`

	// Directories are the directories inside the build container that are carried over from one build to the next. `~` stands for /root
	Directories []string `yaml:"directories,omitempty"`

	// ImageBuilder is one of "cli" (run commandTemplates.importImage for each upload) or "daemon" (talk to the docker daemon's API directly)
	ImageBuilder string `yaml:"imageBuilder,omitempty"`

	// ExistenceChecker is one of "cli" (run commandTemplates.inspectManifest), "registry" (query the registry over HTTP) or "daemon" (ask the docker daemon to query the registry)
	ExistenceChecker string `yaml:"existenceChecker,omitempty"`
}

// FileServerConfig describes the file server that build containers upload their cached directories to
type FileServerConfig struct {
	// ListenToIP is the address the file server listens on
	ListenToIP string `yaml:"listenToIP,omitempty"`

	// Port is the port the file server listens on
	Port int `yaml:"port,omitempty"`

	// AccessToken is sent with every upload in the `t` header
	AccessToken string `yaml:"accessToken,omitempty"`

	// UploadURL is where build containers PUT their archives
	UploadURL string `yaml:"uploadURL,omitempty"`

	// FilesDir is where the file server stores what it receives. Usually the cache's uploads directory
	FilesDir string `yaml:"filesDir,omitempty"`
}

// CommandTemplatesConfig determines what commands actually get called when we run certain commands
type CommandTemplatesConfig struct {
	// ImportImage creates an image from a single archive. {{file}} is the archive and {{tag}} the tag to give the image
	ImportImage string `yaml:"importImage,omitempty"`

	// InspectManifest must exit successfully if, and only if, {{image}} exists in its registry. Its output is discarded
	InspectManifest string `yaml:"inspectManifest,omitempty"`
}

const (
	// BackendCLI runs the configured command templates
	BackendCLI = "cli"
	// BackendDaemon talks to the docker daemon's API
	BackendDaemon = "daemon"
	// BackendRegistry talks to the image's registry directly
	BackendRegistry = "registry"
)
