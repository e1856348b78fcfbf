package cache

import (
	"fmt"

	"github.com/christophe-duc/lazycache/pkg/config"
	"github.com/samber/lo"
)

// uploadRetries is how many times curl retries an upload, whatever the failure
const uploadRetries = 3

// CopyToImageCommands returns the Dockerfile instructions that copy the cached
// directories out of the cache image into the image being built, one COPY per
// directory. Every segment of the source path is optional, so the copy still
// succeeds when the cache image lacks some or all of the directories, as on
// the very first build.
func CopyToImageCommands(dirs []string, imageRef string) []string {
	return lo.Map(dirs, func(dir string, _ int) string {
		target := NormalizeDir(dir)
		source := JoinPath(AllOptional(SplitPath(target)))

		return fmt.Sprintf("COPY --from=%s %s %s", imageRef, source, target)
	})
}

// CopyFromImageCommands returns the shell lines that, run inside the build
// container, archive each cached directory, upload the archive to the file
// server and then delete the directory. Every line is a no-op when its
// directory does not exist. The lines must be run in the order given: a
// directory is only deleted after it was archived.
func CopyFromImageCommands(dirs []string, fileServer *config.FileServerConfig) []string {
	if len(dirs) == 0 || fileServer == nil {
		return []string{}
	}

	commands := make([]string, 0, len(dirs)*3)
	for _, dir := range dirs {
		target := NormalizeDir(dir)
		archive := ArchiveFileName(target)
		guard := fmt.Sprintf(`if [ -d "%s" ]; then`, target)

		commands = append(commands,
			fmt.Sprintf("%s tar -cf %s %s; fi;", guard, archive, target),
			fmt.Sprintf(`%s curl -v -T %s %s --header "t:%s" --retry %d --retry-all-errors; fi;`,
				guard, archive, fileServer.UploadURL, fileServer.AccessToken, uploadRetries),
			fmt.Sprintf("%s rm -rf %s; fi", guard, target),
		)
	}

	return commands
}
