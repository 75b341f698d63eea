// Package sweep drives per-combination work over a parameter grid.
//
// A [Sweep] names each axis of a [gridindex.Enumerator] and lists the
// values it takes. Walking the sweep yields [Combination] values: the grid
// tuple, the parameter bindings at that tuple, and a stable fingerprint ID
// suitable for naming jobs.
//
//	s, err := sweep.LoadFile("sweep.yaml")
//	if err != nil {
//	    return err
//	}
//	d := sweep.NewDispatcher(submitter, sweep.WithWorkers(8))
//	report, err := d.Run(ctx, s)
//
// The [Dispatcher] only hands combinations to a [Handler]. Submitting,
// staging and monitoring jobs is the handler's concern.
package sweep
