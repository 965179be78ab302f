// Package metrics records conversion metrics.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so metrics never need nil checks:
//
//	conv := convert.New(extractor, target)                   // NoopRecorder
//	conv = conv.WithRecorder(metrics.NewPrometheusRecorder(reg))
//
// A one-shot tool has no scrape endpoint; WriteTextfile dumps a registry in
// the text exposition format for the node exporter's textfile collector.
package metrics
