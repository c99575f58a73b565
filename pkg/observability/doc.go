/*
Package observability provides Prometheus instrumentation for the engine.

Metrics adapts the engine's lifecycle hooks onto a set of collectors:
tick throughput and duration, per-node compute time, and panic
recoveries. Construct it with any prometheus.Registerer and pass
Metrics.Hooks() to the engine; a nil registerer disables collection
without changing any call site.
*/
package observability
