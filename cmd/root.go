package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/routeplan/config"
	"github.com/kilianp07/routeplan/core/plan"
	"github.com/kilianp07/routeplan/infra/input"
	"github.com/kilianp07/routeplan/infra/logger"
	"github.com/kilianp07/routeplan/infra/metrics"
	"github.com/kilianp07/routeplan/infra/output"
	"github.com/kilianp07/routeplan/internal/eventbus"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "routeplan",
	Short: "Fleet routing planner",
	RunE:  runSolve,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func runSolve(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logg := newLogger("solve", cfg.Logging)

	graph, err := input.LoadGraph(cfg.Input.MapPath)
	if err != nil {
		return fmt.Errorf("load map: %w", err)
	}
	weather, err := input.LoadWeather(cfg.Input.SensorsPath, graph.Horizon())
	if err != nil {
		return fmt.Errorf("load sensors: %w", err)
	}
	start, penalty, objectives, err := input.LoadObjectives(cfg.Input.ObjectivesPath, graph.Nodes(), graph.Horizon())
	if err != nil {
		return fmt.Errorf("load objectives: %w", err)
	}
	logg.Infof("loaded %d nodes, horizon %d, %d objectives", graph.Nodes(), graph.Horizon(), len(objectives))

	bus := eventbus.New[plan.Event]()
	var collected <-chan struct{}
	if cfg.Metrics.Enabled {
		sink, err := metrics.NewPromSink(nil)
		if err != nil {
			return fmt.Errorf("prom sink: %w", err)
		}
		collected = metrics.Collect(bus, sink)
		go func() {
			if err := metrics.StartPromServer(ctx, cfg.Metrics.Listen); err != nil {
				logg.Errorf("metrics server: %v", err)
			}
		}()
	}

	res, err := plan.Evaluate(graph, weather, objectives, start, penalty,
		plan.WithLogger(logg),
		plan.WithBus(bus),
		plan.WithFleet(cfg.Fleet.Trucks, cfg.Fleet.Drones),
	)
	bus.Close()
	if collected != nil {
		<-collected
	}
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}

	if errs := output.Check(res.Solution.Paths, graph); len(errs) > 0 {
		for _, e := range errs {
			logg.Warnf("solution check: %s", e)
		}
	}
	if err := output.Write(cfg.Output.SolutionPath, res.Solution); err != nil {
		return fmt.Errorf("write solution: %w", err)
	}
	logg.Infof("score %.2f (%d fulfilled, %d expired), solution written to %s",
		res.Score, res.Fulfilled, res.Expired, cfg.Output.SolutionPath)
	return nil
}

func newLogger(component string, cfg config.LoggingConfig) logger.Logger {
	l := logger.New(component)
	if zl, ok := l.(*logger.ZerologLogger); ok {
		zl.SetLevel(cfg.Level)
	}
	return l
}
