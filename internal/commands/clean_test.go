package commands_test

import (
	"log"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/RohitRed19/jReleaser-for-proto-code-gen/internal/commands"
)

var _ = Describe("Clean", func() {
	var (
		fs     billy.Filesystem
		writer strings.Builder
		cmd    commands.Clean
	)

	BeforeEach(func() {
		fs = memfs.New()
		writer = strings.Builder{}

		for path, content := range map[string]string{
			"hello/go/v1/go.mod":         "module example\n",
			"hello/go/v1/go.sum":         "",
			"hello/go/v1/hello.pb.go":    "package hello\n",
			"hello/go/v1/hello_grpc.go":  "package hello\n",
			"hello/go/v1/sub/service.go": "package sub\n",
		} {
			Expect(util.WriteFile(fs, path, []byte(content), 0o644)).To(Succeed())
		}

		cmd = commands.NewClean(fs, log.New(&writer, "", 0))
	})

	Describe("Execute", func() {
		It("removes generated files but keeps go.mod and go.sum", func() {
			err := cmd.Execute([]string{"hello"})
			Expect(err).NotTo(HaveOccurred())

			for _, kept := range []string{"hello/go/v1/go.mod", "hello/go/v1/go.sum"} {
				_, err := fs.Stat(kept)
				Expect(err).NotTo(HaveOccurred(), kept)
			}

			for _, removed := range []string{
				"hello/go/v1/hello.pb.go",
				"hello/go/v1/hello_grpc.go",
				"hello/go/v1/sub/service.go",
			} {
				_, err := fs.Stat(removed)
				Expect(err).To(HaveOccurred(), removed)
			}
		})

		It("reports each removed file and completion", func() {
			err := cmd.Execute([]string{"hello"})
			Expect(err).NotTo(HaveOccurred())

			output := writer.String()
			Expect(output).To(ContainSubstring("Cleaning generated files in: hello"))
			Expect(output).To(ContainSubstring("Removing `hello/go/v1/hello.pb.go`"))
			Expect(output).NotTo(ContainSubstring("Removing `hello/go/v1/go.mod`"))
			Expect(output).To(ContainSubstring("Clean completed successfully."))
		})

		It("errors when the directory does not exist", func() {
			err := cmd.Execute([]string{"nope"})
			Expect(err).To(HaveOccurred())
		})

		It("errors when given the wrong number of arguments", func() {
			err := cmd.Execute(nil)
			Expect(err).To(MatchError("expected 1 argument (directory), got 0"))

			err = cmd.Execute([]string{"a", "b"})
			Expect(err).To(MatchError("expected 1 argument (directory), got 2"))
		})
	})

	Describe("Usage", func() {
		It("returns usage information for the command", func() {
			Expect(cmd.Usage().ShortDescription).To(Equal("deletes generated files"))
		})
	})
})
