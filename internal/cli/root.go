package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/pushswap/internal/config"
)

const (
	groupSolving = "solving"
	groupTools   = "tools"
	groupCLI     = "cli-tooling"
)

var (
	// Colors for help output sections
	groupTitleColor   = color.New(color.FgCyan, color.Bold)
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// rootCmd is the root command for pushswap.
var rootCmd = newRootCmd()

// newRootCmd builds the full command tree. Each tree has its own settings,
// so tests can run commands without sharing flag state.
func newRootCmd() *cobra.Command {
	a := newApp()

	cmd := &cobra.Command{
		Use:     "pushswap [numbers...]",
		Version: "dev",
		Short:   "Sort integers with two stacks and a fixed set of operations",
		Long: `pushswap prints a short sequence of stack operations that sorts the given
integers in ascending order on stack A, leaving stack B empty.

Numbers may be passed as separate arguments or as one quoted argument
("3 1 2"). Operations are printed one per line.`,
		Example: `  pushswap 3 1 2
  pushswap "50 10 30 20 40"
  pushswap $(pushswap gen 100) | pushswap check $(pushswap gen 100)`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, args)
		},
	}

	cmd.SetHelpFunc(customHelpFunc)

	// Global flags
	cmd.PersistentFlags().BoolVar(&a.json, "json", false, "Output in JSON format")
	config.AddFlags(cmd.PersistentFlags())

	cmd.AddGroup(&cobra.Group{
		ID:    groupSolving,
		Title: "Solving:",
	})
	cmd.AddGroup(&cobra.Group{
		ID:    groupTools,
		Title: "Inputs & Benchmarks:",
	})
	cmd.AddGroup(&cobra.Group{
		ID:    groupCLI,
		Title: "CLI & Tooling:",
	})

	checkCmd := newCheckCmd(a)
	playCmd := newPlayCmd(a)
	checkCmd.GroupID = groupSolving
	playCmd.GroupID = groupSolving
	cmd.AddCommand(checkCmd, playCmd)

	genCmd := newGenCmd(a)
	benchCmd := newBenchCmd(a)
	genCmd.GroupID = groupTools
	benchCmd.GroupID = groupTools
	cmd.AddCommand(genCmd, benchCmd)

	addToolingCommands(cmd)
	return cmd
}

// addToolingCommands adds version, help and completion to root.
func addToolingCommands(root *cobra.Command) {
	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the pushswap CLI version",
		Args:    cobra.NoArgs,
		GroupID: groupCLI,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), root.Version)
		},
	}
	root.AddCommand(versionCmd)

	helpCmd := &cobra.Command{
		Use:     "help [command]",
		Short:   "Help about any command",
		GroupID: groupCLI,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, _, err := root.Find(args)
			if err != nil || target == nil {
				target = root
			}
			return target.Help()
		},
	}
	root.SetHelpCommand(helpCmd)

	completionCmd := &cobra.Command{
		Use:     "completion",
		Short:   "Generate the autocompletion script for the specified shell",
		GroupID: groupCLI,
		Long: `Generate the autocompletion script for pushswap for the specified shell.
See each sub-command's help for details on how to use the generated script.`,
	}
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "bash",
		Short:                 "Generate the autocompletion script for bash",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.GenBashCompletion(cmd.OutOrStdout())
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "zsh",
		Short:                 "Generate the autocompletion script for zsh",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.GenZshCompletion(cmd.OutOrStdout())
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "fish",
		Short:                 "Generate the autocompletion script for fish",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "powershell",
		Short:                 "Generate the autocompletion script for powershell",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return root.GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
		},
	})
	root.AddCommand(completionCmd)
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// customHelpFunc returns a custom help function that colors group titles
func customHelpFunc(cmd *cobra.Command, args []string) {
	var help strings.Builder

	if cmd.Long != "" {
		help.WriteString(cmd.Long)
		help.WriteString("\n\n")
	} else if cmd.Short != "" {
		help.WriteString(cmd.Short)
		help.WriteString("\n\n")
	}

	help.WriteString(sectionTitleColor.Sprint("Usage:"))
	help.WriteString("\n")
	fmt.Fprintf(&help, "  %s\n\n", cmd.UseLine())

	if cmd.Example != "" {
		help.WriteString(sectionTitleColor.Sprint("Examples:"))
		help.WriteString("\n")
		help.WriteString(cmd.Example)
		help.WriteString("\n\n")
	}

	for _, group := range cmd.Groups() {
		help.WriteString(groupTitleColor.Sprint(group.Title))
		help.WriteString("\n")

		for _, c := range cmd.Commands() {
			if c.GroupID == group.ID && !c.Hidden {
				fmt.Fprintf(&help, "  %-11s %s\n", c.Name(), c.Short)
			}
		}
		help.WriteString("\n")
	}

	// Ungrouped commands
	hasUngrouped := false
	for _, c := range cmd.Commands() {
		if c.GroupID == "" && !c.Hidden {
			if !hasUngrouped {
				help.WriteString(sectionTitleColor.Sprint("Additional Commands:"))
				help.WriteString("\n")
				hasUngrouped = true
			}
			fmt.Fprintf(&help, "  %-11s %s\n", c.Name(), c.Short)
		}
	}
	if hasUngrouped {
		help.WriteString("\n")
	}

	if cmd.HasAvailableLocalFlags() || cmd.HasAvailablePersistentFlags() {
		help.WriteString(sectionTitleColor.Sprint("Flags:"))
		help.WriteString("\n")
		help.WriteString(cmd.LocalFlags().FlagUsages())
		help.WriteString(cmd.InheritedFlags().FlagUsages())
		help.WriteString("\n")
	}

	if cmd.HasAvailableSubCommands() {
		fmt.Fprintf(&help, "Use \"%s [command] --help\" for more information about a command.\n", cmd.CommandPath())
	}

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

// Execute runs the root command with args, which should already have been
// passed through NormalizeArgs.
func Execute(ctx context.Context, args []string) error {
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
