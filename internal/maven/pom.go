// Package maven reads the parts of a Maven POM the build helper needs.
package maven

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/go-git/go-billy/v5"
)

// Project is the subset of a POM file this tool reads.
type Project struct {
	XMLName xml.Name `xml:"project"`
	Version string   `xml:"version"`
}

type PomReader struct {
	filesystem billy.Basic
}

func NewPomReader(fs billy.Basic) PomReader {
	return PomReader{filesystem: fs}
}

func (r PomReader) Read(path string) (Project, error) {
	file, err := r.filesystem.Open(path)
	if err != nil {
		return Project{}, fmt.Errorf("unable to open POM %q: %w", path, err)
	}
	defer closeAndIgnoreError(file)

	var project Project
	if err := xml.NewDecoder(file).Decode(&project); err != nil {
		return Project{}, fmt.Errorf("unable to parse POM %q: %w", path, err)
	}

	if strings.TrimSpace(project.Version) == "" {
		return Project{}, fmt.Errorf("no <version> element found in POM %q", path)
	}

	return project, nil
}

// MajorVersion derives the project's major version, accepting Maven
// pre-release suffixes such as "1.2.0-SNAPSHOT".
func (p Project) MajorVersion() (uint64, error) {
	version, err := semver.NewVersion(strings.TrimSpace(p.Version))
	if err != nil {
		return 0, fmt.Errorf("POM version %q is not semantic: %w", p.Version, err)
	}

	return version.Major(), nil
}

func closeAndIgnoreError(c io.Closer) { _ = c.Close() }
