package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags.
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the todo version",
	Args:  noArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("todo " + version)
	},
}
