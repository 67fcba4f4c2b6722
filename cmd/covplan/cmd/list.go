package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arl/covplan/store"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list the polygons known to the provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := resolveProvider(polygonFileVal)
		if err != nil {
			return err
		}
		for _, name := range provider.Names() {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&polygonFileVal, "polygons", "", "YAML file of named polygons (defaults to the built-in catalog)")
}
