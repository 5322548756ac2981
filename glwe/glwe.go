// Package glwe implements GLWE secret keys and ciphertexts over the
// single-modulus torus ring from the ring package: a GLWE ciphertext of
// dimension k is k+1 polynomials (k "mask" components and one "body"),
// decrypting as body - Σ mask_i·s_i. This is the encrypted instantiation
// of the Bit abstraction (spec.md §3/§4.1).
package glwe

import (
	"fmt"
	"io"

	"github.com/google/go-cmp/cmp"

	"github.com/princess-elisabeth/FiLIP/prng"
	"github.com/princess-elisabeth/FiLIP/ring"
)

// Parameters fixes the shape of a GLWE instance: K mask components and
// polynomials of degree N, matching spec.md's "GLWE dimension k" and
// "N" parameter-table columns.
type Parameters struct {
	K int
	N int
}

// GlweSize is the number of polynomials (mask + body) in one ciphertext.
func (p Parameters) GlweSize() int { return p.K + 1 }

// SecretKey holds the K binary-coefficient secret polynomials.
type SecretKey struct {
	Params Parameters
	S      []ring.Poly
}

// Equal reports whether two secret keys hold the same parameters and
// coefficients, comparing the S slices via each Poly's own Equal method.
func (sk *SecretKey) Equal(other *SecretKey) bool {
	return sk.Params == other.Params && cmp.Equal(sk.S, other.S)
}

// NewSecretKey draws a fresh binary GLWE secret key, the Go analogue of
// spec.md §6's `GlweSecretKey::generate_binary`.
func NewSecretKey(g *prng.KeyedPRNG, params Parameters) *SecretKey {
	s := make([]ring.Poly, params.K)
	for i := range s {
		s[i] = ring.BinaryPoly(g, params.N)
	}
	return &SecretKey{Params: params, S: s}
}

// Ciphertext is a GLWE encryption: Value[0:K] are the mask components,
// Value[K] is the body.
type Ciphertext struct {
	Params Parameters
	Value  []ring.Poly
}

// NewCiphertext allocates a zero-valued ciphertext of the given shape —
// the Go analogue of spec.md §6's `GlweCiphertext::allocate(zero, N, k+1)`.
func NewCiphertext(params Parameters) *Ciphertext {
	v := make([]ring.Poly, params.GlweSize())
	for i := range v {
		v[i] = ring.New(params.N)
	}
	return &Ciphertext{Params: params, Value: v}
}

// Mask returns the k mask components.
func (c *Ciphertext) Mask() []ring.Poly { return c.Value[:c.Params.K] }

// Body returns the body component.
func (c *Ciphertext) Body() ring.Poly { return c.Value[c.Params.K] }

// CopyNew returns a deep copy of c.
func (c *Ciphertext) CopyNew() *Ciphertext {
	v := make([]ring.Poly, len(c.Value))
	for i, p := range c.Value {
		v[i] = p.CopyNew()
	}
	return &Ciphertext{Params: c.Params, Value: v}
}

// Copy overwrites c's coefficients with other's.
func (c *Ciphertext) Copy(other *Ciphertext) {
	for i := range c.Value {
		c.Value[i].Copy(other.Value[i])
	}
}

// Zero sets every component of c back to zero.
func (c *Ciphertext) Zero() {
	for _, p := range c.Value {
		p.Zero()
	}
}

// AddInPlace computes c += other coefficient-wise.
func (c *Ciphertext) AddInPlace(other *Ciphertext) {
	for i := range c.Value {
		c.Value[i].AddInPlace(other.Value[i])
	}
}

// SubInPlace computes c -= other coefficient-wise.
func (c *Ciphertext) SubInPlace(other *Ciphertext) {
	for i := range c.Value {
		c.Value[i].SubInPlace(other.Value[i])
	}
}

// NegInPlace computes c = -c coefficient-wise.
func (c *Ciphertext) NegInPlace() {
	for _, p := range c.Value {
		p.NegInPlace()
	}
}

// Equal reports whether c and other hold identical coefficients.
func (c *Ciphertext) Equal(other *Ciphertext) bool {
	if len(c.Value) != len(other.Value) {
		return false
	}
	for i := range c.Value {
		if !c.Value[i].Equal(other.Value[i]) {
			return false
		}
	}
	return true
}

// MulMonomial returns X^shift * c, every component rotated by the same
// negacyclic monomial: a valid re-encryption of X^shift * plaintext
// under the same key, since the rotation commutes with the GLWE
// relation body = Σ mask_i·s_i + plaintext + noise (spec.md §7, "bit
// packing").
func (c *Ciphertext) MulMonomial(shift int) *Ciphertext {
	out := NewCiphertext(c.Params)
	for i, p := range c.Value {
		out.Value[i] = ring.MulMonomial(p, shift)
	}
	return out
}

// ScalarMulTorus returns c scaled by a torus constant, every component
// multiplied by the same scalar: a valid re-encryption of scalar *
// plaintext under the same key, since the multiplication commutes with
// the GLWE relation body = Σ mask_i·s_i + plaintext + noise the same
// way MulMonomial's rotation does. Used to rescale a GGSW row's gadget
// scale (2^(64-baseLog)) up to the top-bit Bit convention (2^63) when
// extracting a selector's Bit representation (spec.md §4.2,
// "Multiplexer::as_bit").
func (c *Ciphertext) ScalarMulTorus(scalar ring.Torus) *Ciphertext {
	out := NewCiphertext(c.Params)
	for i, p := range c.Value {
		out.Value[i] = ring.ScalarMulTorus(p, scalar)
	}
	return out
}

// WriteTo serializes every secret-key polynomial.
func (sk *SecretKey) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, p := range sk.S {
		n, err := p.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// ReadFrom deserializes into sk, which must already be allocated to
// Params' shape (see NewSecretKey or an empty SecretKey built with the
// same Parameters).
func (sk *SecretKey) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for _, p := range sk.S {
		n, err := p.ReadFrom(r)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// NewEmptySecretKey allocates a zero-valued secret key of the given
// shape, ready to be filled in by ReadFrom.
func NewEmptySecretKey(params Parameters) *SecretKey {
	s := make([]ring.Poly, params.K)
	for i := range s {
		s[i] = ring.New(params.N)
	}
	return &SecretKey{Params: params, S: s}
}

// WriteTo serializes every component of c.
func (c *Ciphertext) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, p := range c.Value {
		n, err := p.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// ReadFrom deserializes into c, which must already be allocated to the
// expected shape.
func (c *Ciphertext) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for _, p := range c.Value {
		n, err := p.ReadFrom(r)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (c *Ciphertext) checkShape(params Parameters) {
	if c.Params.K != params.K || c.Params.N != params.N {
		panic(fmt.Sprintf("glwe: shape mismatch: have k=%d,N=%d want k=%d,N=%d", c.Params.K, c.Params.N, params.K, params.N))
	}
}
