// Package model defines the core domain types for hashsim: password records,
// attacker dictionaries, hashing scheme configurations, per-trial outcomes,
// and aggregated summary rows.
//
// All types in this package are plain values with no I/O. Records are created
// once by their producer (generator, trial runner, aggregator) and consumed
// read-only downstream; nothing in the pipeline mutates a record after it has
// been appended to the SimulationReport.
package model
