package simulate

import (
	"math"

	"github.com/nao1215/hashsim/internal/model"
)

// Closed-form hash-time constants, in milliseconds. The fast-digest values
// are flat; the parameterized schemes scale with their cost knob the way
// the real primitives do (linear in iterations, exponential in bcrypt cost,
// logarithmic in Argon2 memory).
const (
	md5TimeMS    = 0.05
	sha1TimeMS   = 0.08
	sha256TimeMS = 0.12

	// pbkdf2MSPerIteration is the modeled per-iteration cost.
	pbkdf2MSPerIteration = 0.00002

	// bcryptBaseMS scales 2^(cost-6): cost 10 models ~19ms, cost 12 ~77ms.
	bcryptBaseMS = 1.2

	// argon2MSPerLogKB scales log2(mem+1).
	argon2MSPerLogKB = 0.5
)

// HashTimeMS maps a scheme configuration to a believable single-hash
// computation time in milliseconds.
//
// This is a stand-in for real measurement, not a measured value. The
// `hashsim measure` command produces actual timings; this function exists so
// the simulation's tables and charts have plausible, machine-independent
// numbers that preserve the relative ordering of the schemes.
func HashTimeMS(s model.Scheme) float64 {
	switch v := s.(type) {
	case model.FastDigest:
		switch v.Name {
		case "MD5":
			return md5TimeMS
		case "SHA1":
			return sha1TimeMS
		default:
			return sha256TimeMS
		}
	case model.Iterated:
		return pbkdf2MSPerIteration * float64(v.Iterations)
	case model.AdaptiveCost:
		return bcryptBaseMS * math.Exp2(float64(v.Cost-6))
	case model.MemoryHard:
		return argon2MSPerLogKB * math.Log2(float64(v.MemoryKB)+1)
	default:
		return 1.0
	}
}
