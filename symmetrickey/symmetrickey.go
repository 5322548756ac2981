// Package symmetrickey implements the FiLIP secret key: a fixed-size
// vector of key-bit Muxes together with the subset-and-whiten sampling
// that turns it into the raw material each filter evaluation consumes
// (spec.md §4.3, "SymmetricKey").
package symmetrickey

import (
	"github.com/princess-elisabeth/FiLIP/cipher"
	"github.com/princess-elisabeth/FiLIP/prng"
	"golang.org/x/exp/slices"
)

// SymmetricKey holds Kappa key bits as Muxes (rather than Bits) so a
// filter's monomials can use them directly as CMUX selectors, plus the
// keyed generator that draws deterministic, paired index/mask sequences
// for the Encrypter and Decrypter sides of a conversation.
type SymmetricKey struct {
	Key       []cipher.Mux
	Kappa     int
	N         int
	Seed      uint64
	Generator *prng.KeyedPRNG
}

// New builds a SymmetricKey over an already-materialized key-bit vector
// of length kappa and re-derives the keyed generator two paired
// Encrypters both need from seed.
func New(key []cipher.Mux, n int, seed uint64) (*SymmetricKey, error) {
	gen, err := prng.NewFromSeed(seed)
	if err != nil {
		return nil, err
	}
	return &SymmetricKey{Key: key, Kappa: len(key), N: n, Seed: seed, Generator: gen}, nil
}

// RandomWhitenedSubset draws N distinct indices into Key without
// replacement and an independent random mask bit for each, returning
// the corresponding key-bit Muxes negated wherever their mask bit is
// set. Two SymmetricKeys built from the same seed produce identical
// sequences, call for call (spec.md §4.3, "whitened subset stream").
func (k *SymmetricKey) RandomWhitenedSubset() []cipher.Mux {
	idx := make([]int, 0, k.N)
	for len(idx) < k.N {
		c := k.Generator.IntN(k.Kappa)
		if !slices.Contains(idx, c) {
			idx = append(idx, c)
		}
	}

	out := make([]cipher.Mux, k.N)
	for i, c := range idx {
		if k.Generator.Bit() {
			out[i] = cipher.Negate(k.Key[c])
		} else {
			out[i] = k.Key[c]
		}
	}
	return out
}
