package probe

import (
	"crypto/md5"  //nolint:gosec // Timing a weak digest is the point, not using it
	"crypto/sha1" //nolint:gosec // Same: measured for comparison, never for security
	"crypto/sha256"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

// samplePassword is the fixed input hashed by every target. Using the same
// input everywhere keeps the comparison about the scheme, not the data.
var samplePassword = []byte("password123!")

// sampleSalt is the fixed salt for the salted KDF targets.
var sampleSalt = []byte("saltsaltsaltsalt")

// Argon2 probe parameters: a deliberately light configuration so one probe
// run finishes in seconds even on modest hardware.
const (
	argon2Time     = 2
	argon2MemoryKB = 1024
	argon2Threads  = 2
	argon2KeyLen   = 32
)

// pbkdf2KeyLen is the derived key length for the PBKDF2 targets.
const pbkdf2KeyLen = 32

// Target is one primitive configuration the probe measures.
type Target struct {
	// Name is the display name printed with the result, e.g.
	// "PBKDF2(50000)" or "bcrypt(cost=12)".
	Name string

	// Repeats is how many times the primitive is invoked for one
	// measurement. Slow schemes get fewer repeats so a full probe stays
	// fast.
	Repeats int

	// fn performs one hash computation.
	fn func()
}

// Run measures the target and returns the result.
func (t Target) Run() Measurement {
	mean, stddev := TimeIt(t.fn, t.Repeats)
	return Measurement{
		Name:     t.Name,
		Repeats:  t.Repeats,
		MeanMS:   mean,
		StddevMS: stddev,
	}
}

// Measurement is the result of timing one target.
type Measurement struct {
	Name     string
	Repeats  int
	MeanMS   float64
	StddevMS float64
}

// Capability reports whether one target can be measured in this run.
// Unavailable capabilities carry a human-readable hint printed at the point
// of use instead of a measurement; they never fail the probe.
type Capability struct {
	Target    Target
	Available bool
	Hint      string
}

// DefaultTargets returns the probed configurations: the three fast digests,
// PBKDF2 at a light and a production iteration count, bcrypt at cost 12,
// and a Argon2id sample. Repeat counts match the cost of each scheme.
func DefaultTargets() []Target {
	return []Target{
		{Name: "MD5", Repeats: 20, fn: func() {
			_ = md5.Sum(samplePassword) //nolint:gosec // measured, not trusted
		}},
		{Name: "SHA1", Repeats: 20, fn: func() {
			_ = sha1.Sum(samplePassword) //nolint:gosec // measured, not trusted
		}},
		{Name: "SHA256", Repeats: 20, fn: func() {
			_ = sha256.Sum256(samplePassword)
		}},
		{Name: "PBKDF2(1000)", Repeats: 10, fn: func() {
			_ = pbkdf2.Key(samplePassword, sampleSalt, 1000, pbkdf2KeyLen, sha256.New)
		}},
		{Name: "PBKDF2(50000)", Repeats: 5, fn: func() {
			_ = pbkdf2.Key(samplePassword, sampleSalt, 50000, pbkdf2KeyLen, sha256.New)
		}},
		{Name: "bcrypt(cost=12)", Repeats: 5, fn: func() {
			// GenerateFromPassword only errors on invalid cost; 12 is valid.
			_, _ = bcrypt.GenerateFromPassword(samplePassword, 12)
		}},
		{Name: "Argon2(t=2,mem=1024KB)", Repeats: 5, fn: func() {
			_ = argon2.IDKey(samplePassword, sampleSalt, argon2Time, argon2MemoryKB, argon2Threads, argon2KeyLen)
		}},
	}
}

// Detect performs the startup capability probe. Every primitive is linked
// into the binary, so a target is unavailable only when its scheme name is
// in skip; the Hint then tells the user how to measure it after all.
//
// Design decision: Availability is resolved here, once, into plain data.
// The measure command iterates the returned slice and either measures or
// prints the hint; no call site probes or handles missing primitives again.
func Detect(skip map[string]bool) []Capability {
	targets := DefaultTargets()
	caps := make([]Capability, 0, len(targets))
	for _, t := range targets {
		if skip[SchemeKey(t.Name)] {
			caps = append(caps, Capability{
				Target:    t,
				Available: false,
				Hint:      "skipped by --skip; re-run without --skip " + SchemeKey(t.Name) + " to measure it",
			})
			continue
		}
		caps = append(caps, Capability{Target: t, Available: true})
	}
	return caps
}

// SchemeKey reduces a target name to the lowercase scheme key used by the
// --skip flag: "PBKDF2(50000)" becomes "pbkdf2", "bcrypt(cost=12)" becomes
// "bcrypt".
func SchemeKey(name string) string {
	key := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '(' {
			break
		}
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		key = append(key, c)
	}
	return string(key)
}
