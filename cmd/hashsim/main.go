// Package main provides the entry point for the hashsim CLI.
//
// hashsim is an educational demo around password hashing. It times real
// hash primitives on the local machine and runs a probabilistic simulation
// of dictionary attacks against a synthetic password corpus.
//
// Usage:
//
//	hashsim measure
//	hashsim simulate
//
// See --help for all available options.
package main

// main is the entry point for hashsim.
func main() {
	Execute()
}
