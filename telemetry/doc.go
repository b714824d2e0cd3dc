// Package telemetry exposes topolab activity as Prometheus metrics.
//
// A Recorder is built once at startup on an explicit registry and handed to
// the components that report through it (failure simulator, menu session,
// command). There is no HTTP endpoint: the command dumps the registry with
// WriteTextfile when a metrics file is configured.
package telemetry
