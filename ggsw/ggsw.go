// Package ggsw implements GGSW (gadget GLWE) ciphertexts: the
// gadget-decomposition-friendly encryption that supports the external
// product and CMUX operations transciphering is built from. A GGSW
// ciphertext encrypting a bit m is, for a GLWE secret key of dimension
// k, k+1 "blocks" of `levels` GLWE ciphertexts each: block i<k encrypts
// -m*g_l*s_i, and the last block encrypts m*g_l directly, for every
// gadget factor g_l (spec.md §3/§4.2, "GGSW ciphertext").
package ggsw

import (
	"github.com/princess-elisabeth/FiLIP/glwe"
	"github.com/princess-elisabeth/FiLIP/prng"
	"github.com/princess-elisabeth/FiLIP/ring"
)

// Ciphertext is a GGSW encryption in the standard (non-Fourier) domain,
// the form it is built in before being transformed for evaluation.
type Ciphertext struct {
	Params  glwe.Parameters
	BaseLog int
	Levels  int
	Blocks  [][]*glwe.Ciphertext // len == Params.K+1, each entry len == Levels
}

// NewCiphertext allocates a zero-valued GGSW ciphertext of the given
// shape.
func NewCiphertext(params glwe.Parameters, baseLog, levels int) *Ciphertext {
	blocks := make([][]*glwe.Ciphertext, params.K+1)
	for i := range blocks {
		row := make([]*glwe.Ciphertext, levels)
		for l := range row {
			row[l] = glwe.NewCiphertext(params)
		}
		blocks[i] = row
	}
	return &Ciphertext{Params: params, BaseLog: baseLog, Levels: levels, Blocks: blocks}
}

// Encrypt builds a fresh GGSW encryption of the constant polynomial msg
// under sk, sampling mask and noise from gen at standard deviation
// sigma. Unlike a GLWE ciphertext's plaintext, msg here is a bare
// selector value (0 or 1, not torus-embedded) since it multiplies a
// Bit's phase directly during CMUX (spec.md §4.2 allows encrypting a
// full DSM monomial selector, not just a single bit).
func Encrypt(msg ring.Poly, sk *glwe.SecretKey, baseLog, levels int, sigma float64, gen *prng.KeyedPRNG) *Ciphertext {
	enc := glwe.NewEncryptor(sk, sigma, gen)
	params := sk.Params
	blocks := make([][]*glwe.Ciphertext, params.K+1)

	for i := 0; i < params.K; i++ {
		row := make([]*glwe.Ciphertext, levels)
		negMS := ring.MulPoly(msg, sk.S[i])
		negMS.NegInPlace()
		for l := 0; l < levels; l++ {
			scaled := ring.ScalarMulTorus(negMS, ring.GadgetFactor(baseLog, l))
			row[l] = enc.Encrypt(scaled)
		}
		blocks[i] = row
	}

	last := make([]*glwe.Ciphertext, levels)
	for l := 0; l < levels; l++ {
		scaled := ring.ScalarMulTorus(msg, ring.GadgetFactor(baseLog, l))
		last[l] = enc.Encrypt(scaled)
	}
	blocks[params.K] = last

	return &Ciphertext{Params: params, BaseLog: baseLog, Levels: levels, Blocks: blocks}
}

// EncryptBit is Encrypt specialized to a single selector bit broadcast
// as the constant polynomial 0 or 1.
func EncryptBit(bit bool, sk *glwe.SecretKey, baseLog, levels int, sigma float64, gen *prng.KeyedPRNG) *Ciphertext {
	msg := ring.New(sk.Params.N)
	if bit {
		msg.ScalarAddInPlace(1)
	}
	return Encrypt(msg, sk, baseLog, levels, sigma, gen)
}

// EncryptTrivial builds a deterministic, noiseless GGSW encryption of
// bit under sk: since the exact row content -m*g_l*s_i is known
// plaintext data (m is a public constant, s is held by whoever calls
// this), each row is a trivial (zero mask, zero noise) GLWE ciphertext
// carrying that value directly rather than a randomized encryption of
// it. This is the "gadget_zero"/"gadget_one" construction spec.md §4.2
// uses for the non-negated branch of a filtered multiplexer.
func EncryptTrivial(bit bool, sk *glwe.SecretKey, baseLog, levels int) *Ciphertext {
	params := sk.Params
	blocks := make([][]*glwe.Ciphertext, params.K+1)

	msgBit := ring.New(params.N)
	if bit {
		msgBit.ScalarAddInPlace(1)
	}

	for i := 0; i < params.K; i++ {
		negS := sk.S[i].CopyNew()
		negS.NegInPlace()
		scaledNegS := ring.MulPoly(msgBit, negS)
		row := make([]*glwe.Ciphertext, levels)
		for l := 0; l < levels; l++ {
			row[l] = glwe.EncryptTrivial(ring.ScalarMulTorus(scaledNegS, ring.GadgetFactor(baseLog, l)), params)
		}
		blocks[i] = row
	}

	last := make([]*glwe.Ciphertext, levels)
	for l := 0; l < levels; l++ {
		last[l] = glwe.EncryptTrivial(ring.ScalarMulTorus(msgBit, ring.GadgetFactor(baseLog, l)), params)
	}
	blocks[params.K] = last

	return &Ciphertext{Params: params, BaseLog: baseLog, Levels: levels, Blocks: blocks}
}

// DecryptBit recovers the encrypted bit directly from the first level
// of the last block, which encrypts m*g_0 with no decomposition needed
// — the cheap path spec.md §4.2 calls out for checking a Mux's value
// without performing a full external product.
func (c *Ciphertext) DecryptBit(dec *glwe.Decryptor) bool {
	ct := c.Blocks[c.Params.K][0]
	phase := dec.Decrypt(ct)
	shift := ring.TorusBits - c.BaseLog
	return ring.DecodeAtScale(phase[0], shift)
}
