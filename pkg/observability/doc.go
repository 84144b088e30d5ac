// Package observability turns simulation hooks and cache lookups into
// Prometheus metrics and debug logs.
package observability
