package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-gridindex/gridindex"
	"github.com/hasbyte1/go-gridindex/internal/config"
)

func (a *app) enumerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enumerate [extent...]",
		Short: "Print every index tuple of the grid",
		Long: `Prints the index tuples of the grid in odometer order, one per line.

Extents may be given as arguments or with --extents.

Examples:
  gridindex enumerate 3 4
  gridindex enumerate --extents 3,3 --restriction diagonal --format json`,
		RunE: a.runEnumerate,
	}
}

func (a *app) countCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count [extent...]",
		Short: "Count the tuples the grid yields under its restriction",
		RunE:  a.runCount,
	}
}

// enumerator builds the grid from positional extents, falling back to the
// configured ones.
func (a *app) enumerator(args []string) (*gridindex.Enumerator, error) {
	if len(args) > 0 {
		extents, err := gridindex.ParseExtents(strings.Join(args, ","))
		if err != nil {
			return nil, err
		}
		a.cfg.Extents = extents
	}
	enum, err := a.cfg.Enumerator()
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Grid configured",
		zap.Stringer("grid", enum),
		zap.Int("size", enum.Size()))
	return enum, nil
}

func (a *app) runEnumerate(cmd *cobra.Command, args []string) error {
	enum, err := a.enumerator(args)
	if err != nil {
		return err
	}

	out := newRowWriter(cmd.OutOrStdout(), a.cfg.Format, axisHeader(enum.Dims()))
	n := 0
	for idx := range enum.All() {
		if a.cfg.Limit > 0 && n >= a.cfg.Limit {
			break
		}
		fields := itoaAll(idx)
		if err := out.write(strings.Join(fields, " "), fields, idx); err != nil {
			return err
		}
		n++
	}
	if err := out.flush(); err != nil {
		return err
	}
	a.logger.Debug("Enumeration finished", zap.Int("emitted", n))
	return nil
}

type countResult struct {
	Count int `json:"count"`
	Size  int `json:"size"`
}

func (a *app) runCount(cmd *cobra.Command, args []string) error {
	enum, err := a.enumerator(args)
	if err != nil {
		return err
	}
	res := countResult{Count: enum.Count(), Size: enum.Size()}

	out := newRowWriter(cmd.OutOrStdout(), a.cfg.Format, []string{"count", "size"})
	text := strconv.Itoa(res.Count)
	if a.cfg.Format == config.FormatText && res.Count != res.Size {
		text += " of " + strconv.Itoa(res.Size)
	}
	if err := out.write(text, itoaAll([]int{res.Count, res.Size}), res); err != nil {
		return err
	}
	return out.flush()
}
