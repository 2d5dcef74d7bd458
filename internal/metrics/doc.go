// Package metrics records configuration load metrics.
//
// Components receive a Recorder and default to NoopRecorder, so call sites
// never check for nil. The Prometheus implementation registers its collectors
// on a caller-supplied registry; WriteTextfile exports that registry for the
// node-exporter textfile collector, which suits one-shot CLI runs in CI where
// there is nothing long-lived to scrape.
package metrics
