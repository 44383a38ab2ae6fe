package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"natnails.dev/internal/generation"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	createdStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("ERROR: ")+err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		only        []string
		force       bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "generate <output-dir>",
		Short: "Scaffold the site's template partials and data files",
		Long: `Writes the boilerplate layout, partials (navbar, hero, footer, button)
and sample data files into the output directory. Existing files are kept
unless --force is given or --interactive confirms each overwrite.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputDir := args[0]
			out := cmd.OutOrStdout()

			opts := generation.Options{
				Only:  only,
				Force: force,
				Report: func(path string, created bool) {
					if created {
						fmt.Fprintf(out, "  %s %s\n", createdStyle.Render("Created"), path)
					} else {
						fmt.Fprintf(out, "  %s %s (exists)\n", skippedStyle.Render("Skipped"), path)
					}
				},
			}
			if interactive {
				opts.Confirm = generation.PromptConfirmer{}
			}

			fmt.Fprintln(out, titleStyle.Render("Generating components in "+outputDir+"..."))
			res, err := generation.Generate(outputDir, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Done! %d created, %d skipped\n", len(res.Created), len(res.Skipped))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&only, "only", nil, "only generate paths matching this glob (repeatable)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing files")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "ask before overwriting each existing file")
	return cmd
}
