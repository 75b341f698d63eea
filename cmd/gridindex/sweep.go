package main

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/hasbyte1/go-gridindex/internal/config"
	"github.com/hasbyte1/go-gridindex/sweep"
)

func (a *app) sweepCmd() *cobra.Command {
	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "Work with parameter sweep definitions",
	}

	planCmd := &cobra.Command{
		Use:   "plan [file]",
		Short: "List the combinations of a sweep file",
		Long: `Loads a YAML sweep definition and prints one row per combination with
its sequence number, fingerprint ID and parameter bindings.

Example sweep file:
  name: regression
  restriction: diagonal
  parameters:
    alpha: [0.1, 0.2]
    solver:
      method: [lbfgs, newton]`,
		Args: cobra.ExactArgs(1),
		RunE: a.runSweepPlan,
	}
	planCmd.Flags().Int("workers", 1, "combinations handled concurrently")
	planCmd.Flags().Float64("rate", 0, "combinations per second (0 = unlimited)")
	_ = a.v.BindPFlag(config.KeyWorkers, planCmd.Flags().Lookup("workers"))
	_ = a.v.BindPFlag(config.KeyRate, planCmd.Flags().Lookup("rate"))

	sweepCmd.AddCommand(planCmd)
	return sweepCmd
}

func (a *app) runSweepPlan(cmd *cobra.Command, args []string) error {
	s, err := sweep.LoadFile(args[0])
	if err != nil {
		return err
	}

	header := []string{"seq", "id"}
	for _, p := range s.Parameters {
		header = append(header, p.Name)
	}
	out := newRowWriter(cmd.OutOrStdout(), a.cfg.Format, header)

	limit := rate.Inf
	if a.cfg.Rate > 0 {
		limit = rate.Limit(a.cfg.Rate)
	}
	d := sweep.NewDispatcher(
		sweep.HandlerFunc(func(_ context.Context, c sweep.Combination) error {
			fields := []string{strconv.Itoa(c.Seq), c.ID}
			for _, b := range c.Bindings {
				fields = append(fields, b.Value)
			}
			return out.write(strconv.Itoa(c.Seq)+" "+c.ID+" "+c.String(), fields, c)
		}),
		sweep.WithWorkers(a.cfg.Workers),
		sweep.WithRateLimit(limit, 1),
		sweep.WithLogger(a.logger),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	report, err := d.Run(ctx, s)
	if flushErr := out.flush(); err == nil {
		err = flushErr
	}
	if err != nil {
		return err
	}
	a.logger.Info("Sweep planned",
		zap.String("run_id", report.RunID),
		zap.Int("combinations", report.Succeeded))
	return nil
}
