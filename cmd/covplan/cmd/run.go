package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arl/covplan/pipeline"
	"github.com/arl/covplan/store"
)

var (
	cellSizeVal    float64
	toleranceVal   float64
	maxDepthVal    int
	turnPenaltyVal float64
	polygonFileVal string
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [names...]",
	Short: "run the coverage planner over one or more named polygons",
	Long: `Run the coverage planner over the named polygons (comma- or
space-separated). Unknown names fall back to running every polygon in
the provider.`,
	RunE: doRun,
}

func init() {
	RootCmd.AddCommand(runCmd)

	runCmd.Flags().Float64Var(&cellSizeVal, "cell-size", pipeline.DefaultConfig().CellSize, "grid cell size")
	runCmd.Flags().Float64Var(&toleranceVal, "tolerance", pipeline.DefaultConfig().Tolerance, "coordinate snapping tolerance")
	runCmd.Flags().IntVar(&maxDepthVal, "max-depth", pipeline.DefaultConfig().MaxDepth, "max partitioner recursion depth")
	runCmd.Flags().Float64Var(&turnPenaltyVal, "turn-penalty", pipeline.DefaultConfig().TurnPenalty, "per-excess-turn cost penalty")
	runCmd.Flags().StringVar(&polygonFileVal, "polygons", "", "YAML file of named polygons (defaults to the built-in catalog)")
}

func doRun(cmd *cobra.Command, args []string) error {
	provider, err := resolveProvider(polygonFileVal)
	if err != nil {
		return err
	}

	names := resolveNames(args, provider)
	cfg := pipeline.Config{
		CellSize:    cellSizeVal,
		Tolerance:   toleranceVal,
		MaxDepth:    maxDepthVal,
		TurnPenalty: turnPenaltyVal,
		Logger:      log.New(os.Stderr, "", log.LstdFlags),
	}

	for _, name := range names {
		polygon, ok := provider.Polygon(name)
		if !ok {
			fmt.Printf("%s: not found, skipping\n", name)
			continue
		}
		result, err := pipeline.RunPipeline(context.Background(), polygon, cfg)
		if err != nil {
			fmt.Printf("%s: %v\n", name, err)
			continue
		}
		fmt.Printf("%s: %d partitions, %d waypoints, %d connectors\n",
			name, len(result.Diagnostics.MergedPartitions), len(result.GlobalPath), len(result.Diagnostics.Connectors))
	}
	return nil
}

func resolveProvider(path string) (store.Provider, error) {
	if path == "" {
		return store.Catalog(), nil
	}
	return store.LoadYAMLFile(path)
}

// resolveNames splits comma- or space-separated names out of args and
// falls back to every known name when none are given or any is unknown.
func resolveNames(args []string, provider store.Provider) []string {
	all := provider.Names()
	known := make(map[string]bool, len(all))
	for _, n := range all {
		known[n] = true
	}

	var requested []string
	for _, arg := range args {
		for _, field := range strings.FieldsFunc(arg, func(r rune) bool { return r == ',' || r == ' ' }) {
			if field == "" {
				continue
			}
			requested = append(requested, field)
		}
	}

	if len(requested) == 0 {
		return all
	}
	for _, name := range requested {
		if !known[name] {
			return all
		}
	}
	return requested
}
