package setup

import (
	"fmt"
	"strings"

	"github.com/go-git/go-billy/v5"
	yaml "gopkg.in/yaml.v2"
)

type TemplateVariablesService struct {
	filesystem billy.Basic
}

func NewTemplateVariablesService(fs billy.Basic) TemplateVariablesService {
	return TemplateVariablesService{filesystem: fs}
}

// FromPathsAndPairs merges variables from YAML files and "key=value" pairs.
// Later files win over earlier ones, and pairs win over files.
func (s TemplateVariablesService) FromPathsAndPairs(paths []string, pairs []string) (map[string]string, error) {
	variables := map[string]string{}

	for _, path := range paths {
		file, err := s.filesystem.Open(path)
		if err != nil {
			return nil, fmt.Errorf("unable to open file %q: %w", path, err)
		}

		err = yaml.NewDecoder(file).Decode(&variables)
		closeAndIgnoreError(file)
		if err != nil {
			return nil, fmt.Errorf("unable to YAML parse %q: %w", path, err)
		}
	}

	for _, pair := range pairs {
		parts := strings.SplitN(pair, "=", 2)

		if len(parts) < 2 {
			return nil, fmt.Errorf("could not parse variable %q: expected variable in \"key=value\" form", pair)
		}

		variables[parts[0]] = parts[1]
	}

	return variables, nil
}
