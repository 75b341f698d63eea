// Command gridindex enumerates grid index tuples and plans parameter
// sweeps from the command line.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hasbyte1/go-gridindex/internal/config"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New(), logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "gridindex",
		Short: "Enumerate N-dimensional grid indices and parameter sweeps",
		Long: `gridindex walks the Cartesian product of per-axis extents in odometer
order (last axis fastest), optionally restricted to the diagonal or the
lower-triangular subset.

Settings come from flags, GRIDINDEX_* environment variables, or a YAML
config file given with --config.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "YAML config file")
	pf.BoolP("verbose", "v", false, "enable debug logging")
	pf.StringP("extents", "e", "", `per-axis extents, e.g. "3,4"`)
	pf.StringP("restriction", "r", "none", "none, lowertr or diagonal")
	pf.StringP("format", "f", "text", "output format: text, json or csv")
	pf.Int("limit", 0, "stop after this many rows (0 = no limit)")
	for _, key := range []string{
		config.KeyVerbose, config.KeyExtents, config.KeyRestriction, config.KeyFormat, config.KeyLimit,
	} {
		_ = a.v.BindPFlag(key, pf.Lookup(key))
	}

	rootCmd.AddCommand(a.enumerateCmd(), a.countCmd(), a.sweepCmd())
	return rootCmd
}

// setup resolves configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	zcfg := zap.NewProductionConfig()
	if cfg.Verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
