package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlp/internal/logging"
	"github.com/katalvlaran/lvlp/problem"
	"github.com/katalvlaran/lvlp/simplex"
)

func newSolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one instance and print the report",
		Example: `  lvlp solve --resources 20,16,12,8 --prices 10,12,15,8,9
  lvlp solve --data feed.csv --resources 5,5 --prices 1,2,3 --rule bland`,
		Args: cobra.NoArgs,
		RunE: runSolve,
	}

	f := cmd.Flags()
	f.StringSlice("resources", nil, "available quantity per resource row, comma-separated")
	f.StringSlice("prices", nil, "unit price per product column, comma-separated")
	f.String("rule", simplex.DefaultPivotRule.String(), "pivot rule: dantzig or bland")
	f.Int("max-iterations", simplex.DefaultMaxIterations, "pivot budget")
	f.Duration("time-limit", 0, "wall-clock budget, 0 for none")
	f.Float64("epsilon", simplex.DefaultEpsilon, "zero tolerance")

	return cmd
}

func runSolve(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err = cfg.RequireProblem(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Logging(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer logger.Close()

	tbl, err := problem.Load(cfg.Data)
	if err != nil {
		return err
	}
	rule, err := simplex.ParsePivotRule(cfg.Solver.Rule)
	if err != nil {
		return err
	}

	opts := []simplex.Option{
		simplex.WithPivotRule(rule),
		simplex.WithMaxIterations(cfg.Solver.MaxIterations),
		simplex.WithEpsilon(cfg.Solver.Epsilon),
		simplex.WithLogger(logger.Logger),
	}
	if cfg.Solver.TimeLimit > 0 {
		opts = append(opts, simplex.WithTimeLimit(cfg.Solver.TimeLimit))
	}

	s, err := simplex.New(cfg.Resources, cfg.Prices, tbl, opts...)
	if err != nil {
		return err
	}
	if err = s.SolveContext(cmd.Context()); err != nil {
		logger.Error("solve failed",
			slog.String("status", s.Status().String()),
			slog.Int("pivots", s.Iterations()),
			slog.Any("error", err),
		)

		return fmt.Errorf("solve: %w", err)
	}
	logger.Info("solved",
		slog.String("rule", rule.String()),
		slog.Int("pivots", s.Iterations()),
		slog.Float64("total", s.TotalValue()),
	)

	return s.WriteReport(cmd.OutOrStdout())
}
