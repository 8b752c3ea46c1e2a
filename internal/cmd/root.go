// Package cmd implements the rl command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/recipelang/recipelang/internal/config"
	"github.com/recipelang/recipelang/internal/style"
	"github.com/recipelang/recipelang/internal/ui"
)

// Command group IDs for help output.
const (
	GroupRecipes = "recipes"
	GroupDiag    = "diagnostics"
)

var (
	// cfg is loaded once in the persistent pre-run and shared by all
	// commands.
	cfg config.Config

	plainFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "rl [file.rl]",
	Short: "RecipeLang interpreter",
	Long: `rl interprets RecipeLang, a tiny language for cooking recipes.

Run a recipe file, or start an interactive shell:

  rl pancakes.rl        # execute a recipe file
  rl                    # interactive shell
  rl check pancakes.rl  # validate without executing

Recipe files hold one statement per line; blank lines and lines
starting with '#' are ignored.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		ui.InitTheme(cfg.Theme)
		ui.ApplyThemeMode()
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return runFile(args[0])
		}
		return runShell(cmd, args)
	},
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupRecipes, Title: "Working With Recipes:"},
		&cobra.Group{ID: GroupDiag, Title: "Diagnostics:"},
	)
	rootCmd.PersistentFlags().BoolVar(&plainFlag, "plain", false,
		"Plain line-oriented shell (no full-screen UI)")
	rootCmd.SetHelpFunc(colorizedHelpFunc)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", style.ErrorPrefix, err)
		return 1
	}
	return 0
}
