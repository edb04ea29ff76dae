// Package cli defines the cobra command tree: crud subcommands (add, ls,
// edit, done, rm), the interactive list, and configuration plumbing.
package cli

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rgallais/todo/internal/config"
	"github.com/rgallais/todo/internal/store/jsonstore"
	"github.com/rgallais/todo/internal/ui"
)

// cfg is resolved once in the root PersistentPreRunE and read by every
// subcommand.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "a tiny task-tracking CLI",
	Long: `todo - a tiny task-tracking CLI

Todos live in a single JSON file, human-readable and portable.`,
	Example: `  todo add "Buy milk" -d "two liters"
  todo ls --group
  todo done 2
  todo edit 2 --title "Buy oat milk"
  todo rm 3
  todo tui`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}

		// Root flags override whatever the config files said.
		if cmd.Flags().Changed("file") {
			c.DataFile, _ = cmd.Flags().GetString("file")
		}
		if cmd.Flags().Changed("theme") {
			c.Theme, _ = cmd.Flags().GetString("theme")
		}
		if cmd.Flags().Changed("no-color") {
			c.NoColor, _ = cmd.Flags().GetBool("no-color")
		}
		if cmd.Flags().Changed("debug") {
			c.Debug, _ = cmd.Flags().GetBool("debug")
		}

		ui.SetTheme(c.Theme)
		if c.NoColor {
			ui.DisableColors()
		}
		if c.Debug {
			log.SetLevel(log.DebugLevel)
		}

		cfg = c
		return nil
	},
}

// Execute runs the root command, reports failures on stderr, and returns the
// process exit code (0 ok, 1 runtime error, 2 usage).
func Execute() int {
	err := rootCmd.Execute()
	if err != nil {
		ui.Fail(err.Error())
		var nf *jsonstore.NotFoundError
		if errors.As(err, &nf) {
			ui.Hint("Hint: run `todo ls` to see valid ids")
		}
	}
	return exitCode(err)
}

// openStore opens the configured data file.
func openStore() (*jsonstore.Store, error) {
	return jsonstore.Open(cfg.DataFile)
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a local config file")
	rootCmd.PersistentFlags().StringP("file", "f", "", "Path to the todos data file")
	rootCmd.PersistentFlags().String("theme", "", "Color theme (classic|neon|mono)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err: err}
	})

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd)
}
