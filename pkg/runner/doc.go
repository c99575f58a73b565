/*
Package runner drives an engine's tick clock: a loop that calls Step at a
configurable pace until a tick budget is spent or the context ends.

The engine itself never decides when time advances; the runner is the
external driver. After every tick it can mirror the committed outputs to
an OutputTap (in-memory, Redis) for observation. Tap failures are logged
and skipped, never fatal: diagnostics must not stall the clock.

Each Run carries a generated run identifier in its log records, so
overlapping runs in one process stay distinguishable.
*/
package runner
