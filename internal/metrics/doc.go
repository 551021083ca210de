// Package metrics collects run and chunk metrics on a private Prometheus
// registry and renders them in the text exposition format.
package metrics
