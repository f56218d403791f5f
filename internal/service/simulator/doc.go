// Package simulator drives a synthetic alarm workload against the in-memory
// record store: one boolean watch per configured source, values flipping on
// a ticker, notes appended on raise, and periodic open-alarm summaries read
// back through cursors. When configured it also serves the store's
// Prometheus metrics over HTTP.
package simulator
