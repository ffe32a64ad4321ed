// Package report renders a finished simulation into its artifacts: the
// CSV tables, the newline-delimited dictionary file, a markdown summary,
// and the two PNG bar charts.
//
// The package's contract with the core is deliberately thin: it accepts the
// read-only SimulationReport and a target destination, and nothing in the
// core depends on how (or whether) the artifacts get rendered. Individual
// writers target io.Writer so tests can render into buffers; the Artifacts
// orchestrator binds them to files in the output directory, overwriting
// unconditionally on each run.
package report
