// Package simulate implements the core of hashsim: the hash-time model, the
// crack-probability model, the trial runner, and the aggregator.
//
// Everything here is a pure function of its inputs except the trial runner,
// which consumes one uniform draw per trial from an explicitly passed random
// source. The probability constants come from config.Probabilities; they are
// illustrative values, and nothing in this package measures or cracks
// anything real.
package simulate
