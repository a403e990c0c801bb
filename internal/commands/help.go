package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pivotal-cf/jhanda"
)

type helpData struct {
	Title         string
	Description   string
	Usage         string
	GlobalFlags   []string
	ArgumentsName string
	ArgumentLines []string
}

func (hd helpData) String() string {
	var sb strings.Builder

	if hd.Title != "manage" {
		sb.WriteString("\n")
		sb.WriteString(hd.Title)
		sb.WriteString("\n\n")
	}
	if hd.Description != "" {
		sb.WriteString(hd.Description)
		sb.WriteString("\n\n")
	}
	if hd.Usage != "" {
		sb.WriteString("Usage: ")
		sb.WriteString(hd.Usage)
		sb.WriteString("\n")
	}
	if len(hd.GlobalFlags) > 0 {
		for _, flag := range hd.GlobalFlags {
			sb.WriteString("  ")
			sb.WriteString(flag)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if hd.ArgumentsName != "" {
		sb.WriteString(hd.ArgumentsName)
		sb.WriteString("\n")
	}

	for _, line := range hd.ArgumentLines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")

	return sb.String()
}

type Help struct {
	output   io.Writer
	flags    string
	commands jhanda.CommandSet
}

func NewHelp(output io.Writer, flags string, commands jhanda.CommandSet) Help {
	return Help{
		output:   output,
		flags:    flags,
		commands: commands,
	}
}

func (h Help) Execute(args []string) error {
	globalFlags := strings.Split(h.flags, "\n")

	var data helpData
	if len(args) == 0 {
		data = h.buildGlobalContext()
	} else {
		var err error
		data, err = h.buildCommandContext(args[0])
		if err != nil {
			return err
		}
	}
	data.GlobalFlags = globalFlags

	_, err := fmt.Fprintf(h.output, "%s", data)
	return err
}

func (h Help) Usage() jhanda.Usage {
	return jhanda.Usage{
		Description:      "This command prints helpful usage information.",
		ShortDescription: "prints this usage information",
	}
}

func (h Help) buildGlobalContext() helpData {
	names := make([]string, 0, len(h.commands))
	for name := range h.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	maxLength := maxLen(names)

	var commands []string
	for _, name := range names {
		command := h.commands[name]
		commands = append(commands, fmt.Sprintf("  %s  %s", padCommand(name, " ", maxLength), command.Usage().ShortDescription))
	}

	return helpData{
		Title:         "manage",
		Description:   "manage maintains the generated client modules of the services parent project",
		Usage:         "manage [options] <command> [<args>]",
		ArgumentsName: "Commands",
		ArgumentLines: commands,
	}
}

func (h Help) buildCommandContext(command string) (helpData, error) {
	usage, err := h.commands.Usage(command)
	if err != nil {
		return helpData{}, err
	}

	var (
		flagList        []string
		argsPlaceholder string
	)
	if usage.Flags != nil {
		flagUsage, err := jhanda.PrintUsage(usage.Flags)
		if err != nil {
			return helpData{}, err
		}

		for _, flag := range strings.Split(flagUsage, "\n") {
			if flag != "" {
				flagList = append(flagList, "  "+flag)
			}
		}

		if len(flagList) != 0 {
			argsPlaceholder = " [<args>]"
		}
	}

	return helpData{
		Title:         fmt.Sprintf("manage %s", command),
		Description:   usage.Description,
		Usage:         fmt.Sprintf("manage [options] %s%s", command, argsPlaceholder),
		ArgumentsName: "Flags",
		ArgumentLines: flagList,
	}, nil
}

func padCommand(str, pad string, length int) string {
	return str + strings.Repeat(pad, length-len(str))
}

func maxLen(slice []string) int {
	var max int
	for _, e := range slice {
		if len(e) > max {
			max = len(e)
		}
	}
	return max
}
