package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

const maxWidth = 72
const minWidth = 40

var (
	helpTitleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	helpSectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Bold(true)
	helpCommandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	helpFlagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	helpTextStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// getTerminalWidth returns the terminal width capped at maxWidth.
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < minWidth {
		return maxWidth
	}
	if width > maxWidth {
		return maxWidth
	}
	return width
}

// wrapText wraps text to the given width, preserving existing line breaks.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = maxWidth
	}

	var result []string
	for _, paragraph := range strings.Split(text, "\n") {
		if len(paragraph) <= width {
			result = append(result, paragraph)
			continue
		}

		var line string
		for _, word := range strings.Fields(paragraph) {
			if line == "" {
				line = word
			} else if len(line)+1+len(word) <= width {
				line += " " + word
			} else {
				result = append(result, line)
				line = word
			}
		}
		if line != "" {
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}

// SetStyledHelp applies consistent styling to a command's help output.
func SetStyledHelp(cmd *cobra.Command) {
	cmd.SetHelpFunc(styledHelpFunc)
}

func styledHelpFunc(cmd *cobra.Command, args []string) {
	width := getTerminalWidth()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, helpTitleStyle.Render(cmd.Name()))
	description := cmd.Long
	if description == "" {
		description = cmd.Short
	}
	if description != "" {
		fmt.Fprintln(out, helpTextStyle.Render(wrapText(description, width)))
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, helpSectionStyle.Render("Usage"))
	fmt.Fprintf(out, "  %s\n\n", cmd.UseLine())

	if subcommands := visibleSubcommands(cmd); len(subcommands) > 0 {
		fmt.Fprintln(out, helpSectionStyle.Render("Commands"))
		nameWidth := 0
		for _, sub := range subcommands {
			if len(sub.Name()) > nameWidth {
				nameWidth = len(sub.Name())
			}
		}
		for _, sub := range subcommands {
			fmt.Fprintf(out, "  %s  %s\n",
				helpCommandStyle.Render(fmt.Sprintf("%-*s", nameWidth, sub.Name())),
				helpTextStyle.Render(sub.Short))
		}
		fmt.Fprintln(out)
	}

	printFlagSection(out, "Flags", cmd.LocalFlags())
	printFlagSection(out, "Global Flags", cmd.InheritedFlags())

	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(out, "Use \"%s [command] --help\" for more information.\n", cmd.CommandPath())
	}
}

func visibleSubcommands(cmd *cobra.Command) []*cobra.Command {
	var subcommands []*cobra.Command
	for _, sub := range cmd.Commands() {
		if sub.IsAvailableCommand() {
			subcommands = append(subcommands, sub)
		}
	}
	return subcommands
}

func printFlagSection(out io.Writer, title string, flags *pflag.FlagSet) {
	if !flags.HasAvailableFlags() {
		return
	}
	fmt.Fprintln(out, helpSectionStyle.Render(title))
	flags.VisitAll(func(flag *pflag.Flag) {
		if flag.Hidden {
			return
		}
		name := "--" + flag.Name
		if flag.Shorthand != "" {
			name = "-" + flag.Shorthand + ", " + name
		}
		fmt.Fprintf(out, "  %s  %s\n",
			helpFlagStyle.Render(fmt.Sprintf("%-18s", name)),
			helpTextStyle.Render(flag.Usage))
	})
	fmt.Fprintln(out)
}
