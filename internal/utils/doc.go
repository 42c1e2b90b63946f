// Package utils provides shared low-level helpers: [DoPostSync] for the
// synchronous JSON round-trip to a model endpoint and [TruncateString] for
// keeping long model text out of log lines.
package utils
