package commands

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/pivotal-cf/jhanda"

	"github.com/RohitRed19/jReleaser-for-proto-code-gen/internal/maven"
)

// parentModulePath prefixes module paths initialized for generated modules.
const parentModulePath = "github.com/RohitRed19/jReleaser-for-proto-code-gen"

var majorVersionSuffix = regexp.MustCompile(`^v\d+$`)

type commandRunner interface {
	Run(dir string, command string, args ...string) (stdout string, stderr string, err error)
}

// UpgradeModule moves a directory's generated Go sources into the versioned
// layout for the major version declared in the parent POM, and initializes or
// rewrites the module path to match.
type UpgradeModule struct {
	Options struct {
		Pom string `short:"p" long:"pom" default:"pom.xml" description:"path to the parent POM file"`
	}

	filesystem billy.Filesystem
	pomReader  maven.PomReader
	runner     commandRunner
	logger     *log.Logger
}

func NewUpgradeModule(fs billy.Filesystem, pomReader maven.PomReader, runner commandRunner, logger *log.Logger) *UpgradeModule {
	return &UpgradeModule{
		filesystem: fs,
		pomReader:  pomReader,
		runner:     runner,
		logger:     logger,
	}
}

func (cmd *UpgradeModule) Execute(args []string) error {
	positional, err := jhanda.Parse(&cmd.Options, args)
	if err != nil {
		return err
	}

	if len(positional) != 1 {
		return fmt.Errorf("expected 1 argument (directory), got %d", len(positional))
	}
	dir := positional[0]

	cmd.logger.Printf("Upgrading Go module in `%s`", dir)

	project, err := cmd.pomReader.Read(cmd.Options.Pom)
	if err != nil {
		return err
	}

	major, err := project.MajorVersion()
	if err != nil {
		return err
	}

	versionedDir, err := cmd.moveToVersionedDirectory(dir, major)
	if err != nil {
		return fmt.Errorf("failed to move files to versioned directory: %w", err)
	}

	goModPath := cmd.filesystem.Join(versionedDir, "go.mod")
	if _, err := cmd.filesystem.Stat(goModPath); err != nil {
		cmd.logger.Println("`go.mod` does not exist. Initializing a new Go module.")

		moduleName := fmt.Sprintf("%s/%s/go/v%d", parentModulePath, filepath.Base(filepath.Clean(dir)), major)
		if _, _, err := cmd.runner.Run(versionedDir, "go", "mod", "init", moduleName); err != nil {
			return fmt.Errorf("failed to initialize Go module: %w", err)
		}

		cmd.logger.Printf("Initialized Go module with name `%s`.", moduleName)
		return nil
	}

	cmd.logger.Println("`go.mod` exists. Proceeding with upgrades.")

	moduleName, _, err := cmd.runner.Run(versionedDir, "go", "list", "-m")
	if err != nil {
		return fmt.Errorf("error getting module name: %w", err)
	}

	newModuleName, err := bumpModulePathVersion(moduleName, fmt.Sprintf("v%d", major))
	if err != nil {
		return fmt.Errorf("error updating module path: %w", err)
	}

	if newModuleName == moduleName {
		cmd.logger.Printf("Module name `%s` is already up-to-date.", newModuleName)
		return nil
	}

	if _, _, err := cmd.runner.Run(versionedDir, "go", "mod", "edit", "-module", newModuleName); err != nil {
		return fmt.Errorf("failed to edit module name: %w", err)
	}

	cmd.logger.Printf("Successfully updated module name to `%s`.", newModuleName)

	return nil
}

func (cmd *UpgradeModule) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "This command moves a module's generated sources into the go/v<major> directory for the POM's major version and updates the module path to match.",
		ShortDescription: "upgrades a generated Go module to the POM's major version",
		Flags:            cmd.Options,
	}
}

// moveToVersionedDirectory moves generated sources into <dir>/go/v<major>,
// preferring the previous major's directory as the source when it exists and
// falling back to the unversioned files under <dir>/go.
func (cmd *UpgradeModule) moveToVersionedDirectory(dir string, major uint64) (string, error) {
	fs := cmd.filesystem

	currentDir := fs.Join(dir, "go", fmt.Sprintf("v%d", major))

	sourceDir := fs.Join(dir, "go")
	if major > 1 {
		previousDir := fs.Join(dir, "go", fmt.Sprintf("v%d", major-1))
		if info, err := fs.Stat(previousDir); err == nil && info.IsDir() {
			sourceDir = previousDir
		}
	}

	if err := fs.MkdirAll(currentDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory %q: %w", currentDir, err)
	}

	err := util.Walk(fs, sourceDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// The destination lives under the source when moving unversioned
		// files; never walk into it.
		if path == currentDir {
			return filepath.SkipDir
		}

		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return fmt.Errorf("failed to compute relative file path: %w", err)
		}

		dest := fs.Join(currentDir, rel)
		if err := fs.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("failed to create destination directory: %w", err)
		}

		if err := fs.Rename(path, dest); err != nil {
			return fmt.Errorf("failed to move file %q to %q: %w", path, dest, err)
		}

		cmd.logger.Printf("Moved `%s` -> `%s`", path, dest)
		return nil
	})

	return currentDir, err
}

// bumpModulePathVersion replaces a trailing v<N> element of a module path
// with the given version, or appends the version when the path has none.
func bumpModulePathVersion(modulePath, version string) (string, error) {
	parts := strings.Split(modulePath, "/")
	if len(parts) == 1 && parts[0] == "" {
		return "", errors.New("module path is empty or invalid")
	}

	if majorVersionSuffix.MatchString(parts[len(parts)-1]) {
		parts[len(parts)-1] = version
	} else {
		parts = append(parts, version)
	}

	return strings.Join(parts, "/"), nil
}
