package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/routeplan/config"
	"github.com/kilianp07/routeplan/infra/input"
	"github.com/kilianp07/routeplan/infra/output"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate an existing solution file against the map",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logg := newLogger("check", cfg.Logging)

	graph, err := input.LoadGraph(cfg.Input.MapPath)
	if err != nil {
		return fmt.Errorf("load map: %w", err)
	}
	paths, err := output.Read(cfg.Output.SolutionPath)
	if err != nil {
		return fmt.Errorf("read solution: %w", err)
	}
	errs := output.Check(paths, graph)
	for _, e := range errs {
		logg.Errorf("%s", e)
	}
	if len(errs) > 0 {
		return fmt.Errorf("solution invalid: %d errors", len(errs))
	}
	logg.Infof("solution valid: %d vehicles, horizon %d", len(paths), graph.Horizon())
	return nil
}
