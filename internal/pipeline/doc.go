// Package pipeline executes a simulation run as a sequence of steps over a
// shared SimulationReport: generate passwords, build the dictionary, run
// the trials, aggregate, write artifacts.
//
// A single run is strictly sequential; each step consumes what earlier
// steps put on the report. The pipeline pattern still earns its keep here
// because it gives every step uniform logging, uniform cancellation checks
// between steps, and a natural seam for the multi-seed sweep, which runs
// one independent pipeline per seed under an errgroup.
package pipeline
