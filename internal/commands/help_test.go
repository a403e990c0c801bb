package commands_test

import (
	"log"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pivotal-cf/jhanda"

	"github.com/RohitRed19/jReleaser-for-proto-code-gen/internal/commands"
	"github.com/RohitRed19/jReleaser-for-proto-code-gen/internal/setup"
)

var _ = Describe("Help", func() {
	const globalFlags = "--help, -h  bool  prints this usage information\n--version, -v  bool  prints the manage release version"

	var (
		output     strings.Builder
		commandSet jhanda.CommandSet
		help       commands.Help
	)

	BeforeEach(func() {
		output = strings.Builder{}

		logger := log.New(&output, "", 0)
		commandSet = jhanda.CommandSet{}
		commandSet["version"] = commands.NewVersion(logger, "1.0.0")
		commandSet["generate-setup"] = commands.NewGenerateSetup(nil, setup.Generator{}, setup.TemplateVariablesService{}, logger)

		help = commands.NewHelp(&output, globalFlags, commandSet)
	})

	Describe("Execute", func() {
		Context("when no command is given", func() {
			It("prints the command listing with aligned descriptions", func() {
				err := help.Execute(nil)
				Expect(err).NotTo(HaveOccurred())

				printed := output.String()
				Expect(printed).To(ContainSubstring("manage maintains the generated client modules of the services parent project"))
				Expect(printed).To(ContainSubstring("Usage: manage [options] <command> [<args>]"))
				Expect(printed).To(ContainSubstring("generate-setup  generates setup.py from a template"))
				Expect(printed).To(ContainSubstring("version         prints the manage release version"))
			})
		})

		Context("when a command name is given", func() {
			It("prints the usage for that command", func() {
				err := help.Execute([]string{"generate-setup"})
				Expect(err).NotTo(HaveOccurred())

				printed := output.String()
				Expect(printed).To(ContainSubstring("manage generate-setup"))
				Expect(printed).To(ContainSubstring("Usage: manage [options] generate-setup [<args>]"))
				Expect(printed).To(ContainSubstring("--variables-file"))
				Expect(printed).To(ContainSubstring("--variable"))
			})
		})

		Context("when the command is unknown", func() {
			It("returns an error", func() {
				err := help.Execute([]string{"nope"})
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("Usage", func() {
		It("returns usage information for the command", func() {
			Expect(help.Usage()).To(Equal(jhanda.Usage{
				Description:      "This command prints helpful usage information.",
				ShortDescription: "prints this usage information",
			}))
		})
	})
})
