package glwe

import (
	"github.com/princess-elisabeth/FiLIP/prng"
	"github.com/princess-elisabeth/FiLIP/ring"
)

// Encryptor encrypts plaintext polynomials under a GLWE secret key,
// the Go analogue of lattigo's core/rlwe.Encryptor specialized to a
// single-modulus ring and a bound secret key.
type Encryptor struct {
	Params Parameters
	SK     *SecretKey
	Sigma  float64
	Gen    *prng.KeyedPRNG
}

// NewEncryptor builds an Encryptor that samples mask and noise from gen
// and encrypts under sk at standard deviation sigma.
func NewEncryptor(sk *SecretKey, sigma float64, gen *prng.KeyedPRNG) *Encryptor {
	return &Encryptor{Params: sk.Params, SK: sk, Sigma: sigma, Gen: gen}
}

// Encrypt returns a fresh GLWE encryption of msg: body = Σ mask_i·s_i +
// msg + noise, mask uniform, noise a discrete Gaussian of std-dev Sigma.
func (e *Encryptor) Encrypt(msg ring.Poly) *Ciphertext {
	ct := NewCiphertext(e.Params)
	for i := 0; i < e.Params.K; i++ {
		ct.Value[i] = ring.UniformPoly(e.Gen, e.Params.N)
	}
	body := ring.New(e.Params.N)
	for i := 0; i < e.Params.K; i++ {
		body.AddInPlace(ring.MulPoly(ct.Value[i], e.SK.S[i]))
	}
	body.AddInPlace(msg)
	if e.Sigma > 0 {
		body.AddInPlace(ring.GaussianPoly(e.Gen, e.Params.N, e.Sigma))
	}
	ct.Value[e.Params.K] = body
	return ct
}

// EncryptTrivial returns a non-random, noiseless "encryption" of msg:
// every mask component is zero and the body is msg itself. This is the
// `fill_with_new_trivial_key`-style construction spec.md §4.2 uses to
// build the deterministic gadget for Multiplexer negation.
func EncryptTrivial(msg ring.Poly, params Parameters) *Ciphertext {
	ct := NewCiphertext(params)
	ct.Value[params.K] = msg.CopyNew()
	return ct
}

// Decryptor recovers the plaintext polynomial from a GLWE ciphertext
// under the matching secret key.
type Decryptor struct {
	SK *SecretKey
}

// NewDecryptor binds a Decryptor to sk.
func NewDecryptor(sk *SecretKey) *Decryptor {
	return &Decryptor{SK: sk}
}

// Decrypt computes the noisy phase body - Σ mask_i·s_i.
func (d *Decryptor) Decrypt(ct *Ciphertext) ring.Poly {
	phase := ct.Body().CopyNew()
	for i := 0; i < d.SK.Params.K; i++ {
		phase.SubInPlace(ring.MulPoly(ct.Value[i], d.SK.S[i]))
	}
	return phase
}

// DecryptBit decrypts the constant term of ct as a single top-bit
// encoded Boolean.
func (d *Decryptor) DecryptBit(ct *Ciphertext) bool {
	phase := d.Decrypt(ct)
	return ring.DecodeBit(phase[0])
}
