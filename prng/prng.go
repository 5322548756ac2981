// Package prng implements the deterministic keyed pseudorandom
// generator shared by the GLWE/GGSW samplers and by the FiLIP keystream
// itself. Both paired Encrypters (spec.md §4.4) must derive identical
// index and whitening-mask sequences from the same seed; a counter-mode
// stream cipher reseeded from that key is exactly what spec.md §9
// recommends ("a ChaCha20-seeded counter mode or equivalent is
// sufficient").
package prng

import (
	"crypto/rand"
	"encoding/binary"
	"io"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/chacha20"
)

// KeyedPRNG is a reproducible byte stream: two KeyedPRNGs constructed
// from the same key produce identical output, matching the API shape
// lattigo's own utils/sampling.KeyedPRNG exposes (NewKeyedPRNG, Read,
// Reset), instantiated here over ChaCha20 rather than lattigo's
// blake2b-backed construction.
type KeyedPRNG struct {
	key, nonce []byte
	cipher     *chacha20.Cipher
}

// NewKeyedPRNG derives a ChaCha20 key and nonce from an arbitrary-length
// key via blake3 (used as a KDF, not as a MAC) and returns a PRNG ready
// to stream from counter 0.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	expanded := make([]byte, chacha20.KeySize+chacha20.NonceSize)
	h := blake3.New()
	_, _ = h.Write(key)
	expander := h.Digest()
	if _, err := io.ReadFull(expander, expanded); err != nil {
		return nil, err
	}

	g := &KeyedPRNG{
		key:   expanded[:chacha20.KeySize],
		nonce: expanded[chacha20.KeySize:],
	}
	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// NewFromSeed derives a KeyedPRNG from a 64-bit seed, the only state
// shared between a pair of Encrypters (spec.md §3, SymmetricKey
// invariants).
func NewFromSeed(seed uint64) (*KeyedPRNG, error) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], seed)
	return NewKeyedPRNG(b[:])
}

// NewRandomSeed draws a fresh, non-deterministic 64-bit seed from the
// operating system's CSPRNG, used once at Encrypter construction
// (spec.md §4.5: "a non-deterministic source").
func NewRandomSeed() (uint64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

// Reset rewinds the generator to counter 0, reproducing the same stream
// from the start.
func (g *KeyedPRNG) Reset() error {
	c, err := chacha20.NewUnauthenticatedCipher(g.key, g.nonce)
	if err != nil {
		return err
	}
	g.cipher = c
	return nil
}

// Read fills p with the next len(p) pseudorandom bytes.
func (g *KeyedPRNG) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	g.cipher.XORKeyStream(p, p)
	return len(p), nil
}

// Uint64 draws one pseudorandom 64-bit value.
func (g *KeyedPRNG) Uint64() uint64 {
	var b [8]byte
	_, _ = g.Read(b[:])
	return binary.BigEndian.Uint64(b[:])
}

// Bit draws one pseudorandom Boolean, consuming one byte of stream.
func (g *KeyedPRNG) Bit() bool {
	var b [1]byte
	_, _ = g.Read(b[:])
	return b[0]&1 == 1
}

// Float64 draws a uniform pseudorandom value in [0, 1).
func (g *KeyedPRNG) Float64() float64 {
	const mantissaBits = 53
	return float64(g.Uint64()>>(64-mantissaBits)) / float64(uint64(1)<<mantissaBits)
}

// IntN draws a uniform pseudorandom value in [0, n).
func (g *KeyedPRNG) IntN(n int) int {
	if n <= 0 {
		panic("prng: IntN requires n > 0")
	}
	// Rejection sampling against the largest multiple of n representable
	// in 63 bits (each draw's top bit is dropped) keeps the output exactly
	// uniform.
	limit := uint64(n)
	max := (uint64(1)<<63 - 1) / limit * limit
	for {
		v := g.Uint64() >> 1
		if v < max {
			return int(v % limit)
		}
	}
}
