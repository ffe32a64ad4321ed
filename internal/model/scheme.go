package model

import "fmt"

// Scheme is one hashing scheme configuration point to evaluate: a named
// scheme paired with the single parameter that governs its cost.
//
// Design decision: We use a sealed sum type (an interface with a private
// marker method over four concrete variants) instead of a scheme name string
// plus a parameter map. String comparison scattered across the model was the
// main source of silent fallthroughs in the script this tool grew out of:
// a dictionary-matched password under an unrecognized scheme name simply had
// no probability assigned. A type switch over Scheme cannot miss a variant
// without the default case making the bug explicit.
type Scheme interface {
	// Algorithm returns the scheme display name ("MD5", "PBKDF2", ...).
	Algorithm() string

	// ParamLabel returns the parameter column value for artifacts:
	// "" for fast digests, "iters=N", "cost=N", or "mem=NKB".
	ParamLabel() string

	// scheme marks the type as a Scheme variant. Keeping it unexported
	// seals the set of variants to this package.
	scheme()
}

// FastDigest is an unsalted single-pass digest such as MD5, SHA-1, or
// SHA-256. It carries no tunable parameter; its cost is a small constant.
type FastDigest struct {
	// Name is the digest display name: "MD5", "SHA1", or "SHA256".
	Name string
}

// Algorithm returns the digest name.
func (d FastDigest) Algorithm() string { return d.Name }

// ParamLabel returns "" because fast digests have no cost parameter.
func (d FastDigest) ParamLabel() string { return "" }

func (d FastDigest) scheme() {}

// Iterated is an iterated key-derivation scheme (PBKDF2-like) whose cost
// grows linearly with the iteration count.
type Iterated struct {
	// Iterations is the PBKDF2 iteration count.
	Iterations int
}

// Algorithm returns "PBKDF2".
func (i Iterated) Algorithm() string { return "PBKDF2" }

// ParamLabel returns "iters=N".
func (i Iterated) ParamLabel() string { return fmt.Sprintf("iters=%d", i.Iterations) }

func (i Iterated) scheme() {}

// AdaptiveCost is an adaptive scheme (bcrypt-like) whose cost grows
// exponentially with the cost factor.
type AdaptiveCost struct {
	// Cost is the bcrypt cost factor (log2 of the work).
	Cost int
}

// Algorithm returns "bcrypt".
func (a AdaptiveCost) Algorithm() string { return "bcrypt" }

// ParamLabel returns "cost=N".
func (a AdaptiveCost) ParamLabel() string { return fmt.Sprintf("cost=%d", a.Cost) }

func (a AdaptiveCost) scheme() {}

// MemoryHard is a memory-hard scheme (Argon2-like) whose cost scales with
// the configured memory size.
type MemoryHard struct {
	// MemoryKB is the configured memory in KiB.
	MemoryKB int
}

// Algorithm returns "Argon2".
func (m MemoryHard) Algorithm() string { return "Argon2" }

// ParamLabel returns "mem=NKB".
func (m MemoryHard) ParamLabel() string { return fmt.Sprintf("mem=%dKB", m.MemoryKB) }

func (m MemoryHard) scheme() {}

// DefaultSchemes returns the twelve configuration points the simulation
// evaluates: the three fast digests, PBKDF2 at 1000/10000/50000 iterations,
// bcrypt at cost 8/10/12, and Argon2 at 32/256/1024 KiB.
//
// The parameter grids match the original demo; they span roughly three
// orders of magnitude of cost per scheme, which is enough to make the decay
// curves visible in the charts.
func DefaultSchemes() []Scheme {
	return []Scheme{
		FastDigest{Name: "MD5"},
		FastDigest{Name: "SHA1"},
		FastDigest{Name: "SHA256"},
		Iterated{Iterations: 1000},
		Iterated{Iterations: 10000},
		Iterated{Iterations: 50000},
		AdaptiveCost{Cost: 8},
		AdaptiveCost{Cost: 10},
		AdaptiveCost{Cost: 12},
		MemoryHard{MemoryKB: 32},
		MemoryHard{MemoryKB: 256},
		MemoryHard{MemoryKB: 1024},
	}
}
