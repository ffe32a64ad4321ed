// Package probe implements the timing probe: it invokes each available
// hashing primitive a fixed number of times and reports the mean and
// standard deviation of the per-call wall-clock cost in milliseconds.
//
// Unlike the simulation's closed-form hash-time model, this package performs
// the real work: crypto/md5, crypto/sha1, and crypto/sha256 for the fast
// digests, and golang.org/x/crypto for PBKDF2, bcrypt, and Argon2. The
// numbers are wall-clock measurements useful for picking parameters on the
// machine at hand; they carry no correctness-critical precision guarantee.
//
// Availability is resolved once at startup: Detect produces a static list
// of capabilities consumed as plain data, so the point of use never handles
// a missing-primitive failure. In Go every primitive is linked statically;
// a capability is unavailable only when the user excluded it, and its Hint
// says how to get it measured.
package probe
