package setup

import (
	"sort"
	"strings"
)

// Tokens recognized in setup.py templates. Replacement is literal,
// case-sensitive, and applies to every occurrence; supplied values are
// substituted verbatim.
const (
	PackageNameToken    = "${python.package.name}"
	PackageVersionToken = "${python.package.version}"
	ArtifactIDToken     = "${project.artifactId}"
)

type GenerateInput struct {
	PackageName    string
	PackageVersion string
	ArtifactID     string
	Variables      map[string]string
}

type Generator struct{}

func NewGenerator() Generator {
	return Generator{}
}

// Generate substitutes the fixed tokens and then any extra variables as
// "${key}" markers, extra keys in sorted order so output is deterministic.
// Template bytes outside recognized tokens pass through untouched.
func (g Generator) Generate(input GenerateInput, template []byte) []byte {
	content := string(template)

	content = strings.ReplaceAll(content, PackageNameToken, input.PackageName)
	content = strings.ReplaceAll(content, PackageVersionToken, NormalizeVersion(input.PackageVersion))
	content = strings.ReplaceAll(content, ArtifactIDToken, input.ArtifactID)

	keys := make([]string, 0, len(input.Variables))
	for key := range input.Variables {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		content = strings.ReplaceAll(content, "${"+key+"}", input.Variables[key])
	}

	return []byte(content)
}

// NormalizeVersion maps the Maven pre-release convention to the Python one:
// every occurrence of "-SNAPSHOT" becomes ".dev0". Versions without the
// suffix pass through unchanged.
func NormalizeVersion(version string) string {
	return strings.ReplaceAll(version, "-SNAPSHOT", ".dev0")
}
