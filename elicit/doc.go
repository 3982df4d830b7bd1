// Package elicit defines the cardinal-value elicitation capability used by
// the budgeted adaptive algorithm: a single Oracle interface, a per-agent
// query budget, and composable backends.
//
// Oracle:
//
//	Value(side, agent, alternative) returns the cardinal utility the agent
//	assigns to an opposite-side alternative. The value is undefined until
//	elicited; callers depend only on the interface and never on a concrete
//	source.
//
// Backends:
//
//   - Profile  — answers from two precomputed valuation matrices; missing
//     entries fail with ErrNoValuation.
//   - Func     — adapts a callback, typically an interactive source. The
//     call may block indefinitely; that is a deliberate synchronous
//     suspension point. Cancellation is budget-based (stop issuing
//     queries), never preemption of an in-flight call.
//   - Memo     — an explicit cache object passed by handle, keyed by
//     (side, agent, alternative); repeated queries never reach the inner
//     oracle. Never a package-level singleton.
//   - Budgeted — charges the agent's budget before delegating, regardless
//     of the backing implementation, and fails with ErrBudgetExceeded once
//     the agent's counter is exhausted.
//
// Compose Memo outside Budgeted — Memo(Budgeted(source)) — so cache hits
// are free and only genuine queries consume budget.
//
// Budget:
//
//	A Budget holds one non-negative counter per (side, agent), initialized
//	once per run to a uniform cap and monotonically decremented by Spend.
//	It is never replenished within a run.
//
// Failure model: a failed or malformed oracle response is fatal for the
// run — no retries. The adaptive algorithm surfaces the error together
// with its last confirmed-stable matching.
package elicit
