// Package generator produces the synthetic inputs of a simulation run:
// the password corpus and the attacker dictionary.
//
// Both producers are deterministic. The password generator draws from an
// explicitly passed *rand.Rand, so determinism is a property of the source
// the caller constructed, not of process-wide state; the dictionary builder
// uses no randomness at all. Rerunning with the same seed reproduces the
// same corpus byte for byte.
package generator
