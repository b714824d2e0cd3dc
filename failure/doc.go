// Package failure simulates node and link failures on a topology model.
//
// A Simulator clones the model, takes the target out of service in the
// clone and compares connectivity and diameter before and after. The
// caller's model is never touched:
//
//	sim := failure.New(failure.WithLogger(log))
//	failed, rep, err := sim.SimulateNodeFailure(g, "R1")
//	if errors.Is(err, failure.ErrNodeNotFound) { ... }
//	if rep.Impact == failure.ImpactCritical { ... rep.Components ... }
//
// Link failures either delete the link (LinkRemove) or mark it down
// (LinkDown). In LinkDown mode both models are judged on their operational
// view, so links that were already down before the simulation do not count
// toward connectivity either.
package failure
