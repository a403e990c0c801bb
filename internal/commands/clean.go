package commands

import (
	"fmt"
	"log"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/pivotal-cf/jhanda"
)

// Clean removes previously generated files from a module directory. The Go
// module definition files stay in place so the module path and dependency
// pins survive regeneration.
type Clean struct {
	filesystem billy.Filesystem
	logger     *log.Logger
}

func NewClean(fs billy.Filesystem, logger *log.Logger) Clean {
	return Clean{
		filesystem: fs,
		logger:     logger,
	}
}

func (cmd Clean) Execute(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("expected 1 argument (directory), got %d", len(args))
	}
	dir := args[0]

	cmd.logger.Printf("Cleaning generated files in: %s", dir)

	err := util.Walk(cmd.filesystem, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		switch info.Name() {
		case "go.mod", "go.sum":
			return nil
		}

		cmd.logger.Printf("Removing `%s`", path)
		if err := cmd.filesystem.Remove(path); err != nil {
			return fmt.Errorf("failed to remove file %q: %w", path, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	cmd.logger.Println("Clean completed successfully.")

	return nil
}

func (cmd Clean) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "This command deletes all generated files under a directory, keeping go.mod and go.sum.",
		ShortDescription: "deletes generated files",
	}
}
