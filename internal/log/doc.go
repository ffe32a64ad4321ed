// Package log provides hashsim's logging setup on top of the standard slog
// package, with automatic masking of password-bearing attributes.
//
// hashsim's whole corpus is made of password strings. They are synthetic,
// but they are shaped like secrets, and debug logs get pasted into issues
// and CI output. The MaskHandler lets the pipeline log verbosely (counts,
// seeds, artifact paths, per-step timings) without ever emitting a literal
// password value.
//
// Usage:
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
package log
