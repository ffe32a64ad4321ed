// Package config holds hashsim's configuration: run parameters populated
// from CLI flags and the probability constants of the crack model, which can
// be overridden from an optional .hashsim YAML file.
//
// The probability constants are deliberately configuration rather than code.
// They are illustrative values with no empirical grounding; treating them as
// tunable data keeps anyone from mistaking them for validated security
// claims baked into the tool.
package config
