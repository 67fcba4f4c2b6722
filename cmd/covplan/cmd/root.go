package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "covplan",
	Short: "plan coverage paths over rectilinear polygons",
	Long: `covplan decomposes a rectilinear polygon (optionally with
rectilinear holes) into monotone pieces, rasterizes it into grid cells,
and computes a boustrophedon coverage path across the whole shape.`,
}

// Execute adds all child commands to the root command and runs it. It is
// called by main.main() once.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
