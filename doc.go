// Package alds exposes bounded container primitives through two simulations:
// a postfix expression evaluator backed by a bounded stack and a round-robin
// scheduler backed by a ready queue.
//
// End-users typically interact with the library via the Service façade
// exposed by the root package:
//
//	srv := alds.New()
//	rt := srv.Runtime()
//	result, _ := rt.Evaluate(ctx, "1 2 + 3 4 - *")
//	completed, _ := rt.Schedule(ctx, &scheduler.Workload{Quantum: 100, Processes: processes})
//
// Every call is recorded as a run that can be inspected with Runtime.Run and
// Runtime.Runs. The containers themselves live under the container package.
package alds
