package commands

import (
	"fmt"
	"log"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/pivotal-cf/jhanda"

	"github.com/RohitRed19/jReleaser-for-proto-code-gen/internal/setup"
)

// GenerateSetup renders a setup.py from a template by substituting the
// Python package name, the normalized package version, and the Maven
// artifact id. Extra variables may be supplied as flags; the fixed tokens
// always behave the same.
type GenerateSetup struct {
	Options struct {
		VariableFiles []string `short:"vf" long:"variables-file" description:"path to a YAML file of extra template variables"`
		Variables     []string `short:"vr" long:"variable"       description:"extra template variable in key=value format"`
	}

	filesystem       billy.Basic
	generator        setup.Generator
	variablesService setup.TemplateVariablesService
	logger           *log.Logger
}

func NewGenerateSetup(fs billy.Basic, generator setup.Generator, variablesService setup.TemplateVariablesService, logger *log.Logger) *GenerateSetup {
	return &GenerateSetup{
		filesystem:       fs,
		generator:        generator,
		variablesService: variablesService,
		logger:           logger,
	}
}

func (cmd *GenerateSetup) Execute(args []string) error {
	positional, err := jhanda.Parse(&cmd.Options, args)
	if err != nil {
		return err
	}

	if len(positional) != 5 {
		return fmt.Errorf("expected 5 arguments (template, output, package name, package version, artifact id), got %d", len(positional))
	}

	templatePath, outputPath := positional[0], positional[1]

	variables, err := cmd.variablesService.FromPathsAndPairs(cmd.Options.VariableFiles, cmd.Options.Variables)
	if err != nil {
		return fmt.Errorf("failed to parse template variables: %w", err)
	}

	template, err := util.ReadFile(cmd.filesystem, templatePath)
	if err != nil {
		return fmt.Errorf("unable to read template %q: %w", templatePath, err)
	}

	content := cmd.generator.Generate(setup.GenerateInput{
		PackageName:    positional[2],
		PackageVersion: positional[3],
		ArtifactID:     positional[4],
		Variables:      variables,
	}, template)

	err = util.WriteFile(cmd.filesystem, outputPath, content, 0o644)
	if err != nil {
		return fmt.Errorf("unable to write %q: %w", outputPath, err)
	}

	cmd.logger.Printf("Generated setup.py at %s", outputPath)

	return nil
}

func (cmd *GenerateSetup) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "This command generates a setup.py from a template, substituting the python package name, the normalized package version, and the Maven artifact id.",
		ShortDescription: "generates setup.py from a template",
		Flags:            cmd.Options,
	}
}
