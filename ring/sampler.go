package ring

import (
	"math"

	"github.com/princess-elisabeth/FiLIP/prng"
)

// UniformPoly draws a polynomial with independent uniform torus
// coefficients from g.
func UniformPoly(g *prng.KeyedPRNG, N int) Poly {
	p := New(N)
	for i := range p {
		p[i] = g.Uint64()
	}
	return p
}

// BinaryPoly draws a polynomial whose coefficients are independent
// uniform bits in {0, 1}, the distribution GLWE secret keys are sampled
// from (spec.md §6, "GlweSecretKey::generate_binary").
func BinaryPoly(g *prng.KeyedPRNG, N int) Poly {
	p := New(N)
	for i := range p {
		if g.Bit() {
			p[i] = 1
		}
	}
	return p
}

// GaussianPoly draws a polynomial whose coefficients are independent
// samples of a discrete Gaussian of standard deviation sigma (relative
// to the full torus range), approximated via the Box-Muller transform
// on uniform draws from g and rounded to the nearest integer, mirroring
// the shape of lattigo's ring.GaussianSampler (truncated Gaussian read
// from a PRNG onto a polynomial) specialized to a single modulus.
func GaussianPoly(g *prng.KeyedPRNG, N int, sigma float64) Poly {
	p := New(N)
	scale := sigma * math.MaxUint64
	for i := 0; i < N; i += 2 {
		u1, u2 := g.Float64(), g.Float64()
		if u1 <= 0 {
			u1 = math.SmallestNonzeroFloat64
		}
		r := math.Sqrt(-2 * math.Log(u1))
		z0 := r * math.Cos(2*math.Pi*u2) * scale
		p[i] = Torus(int64(math.Round(z0)))
		if i+1 < N {
			z1 := r * math.Sin(2*math.Pi*u2) * scale
			p[i+1] = Torus(int64(math.Round(z1)))
		}
	}
	return p
}
