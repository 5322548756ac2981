package filter

import (
	"github.com/princess-elisabeth/FiLIP/cipher"
)

// XorThr is the thresholded XOR filter: it XORs a small linear block of
// k input bits with a threshold gate over the remaining d bits that
// fires when at least th of them are 1 (spec.md §4.1, "XorThr filter").
// FiLIP-144 instantiates this family.
type XorThr struct {
	k, d, th int
}

// NewXorThr builds a threshold filter over k linear bits and d
// thresholded bits requiring at least th ones.
func NewXorThr(k, d, th int) *XorThr {
	return &XorThr{k: k, d: d, th: th}
}

// N returns k+d, the number of key bits this filter consumes.
func (f *XorThr) N() int { return f.k + f.d }

// Evaluate XORs the k linear bits together, then XORs in a threshold
// gate over the trailing d bits. The threshold gate is a standard
// running "at least j ones seen" indicator vector: ge[j] starts true
// only for j=0, and each new bit either promotes ge[j] from ge[j-1]
// (bit is 1) or leaves it unchanged (bit is 0) — entirely Select, no
// decryption needed at any intermediate step.
func (f *XorThr) Evaluate(bits []cipher.Mux, bf cipher.BitFactory) cipher.Bit {
	out := bf.Zero()
	for i := 0; i < f.k; i++ {
		out = out.Xor(and([]int{i}, bits, bf))
	}

	ge := make([]cipher.Bit, f.th+1)
	ge[0] = bf.One()
	for j := 1; j <= f.th; j++ {
		ge[j] = bf.Zero()
	}
	for i := f.k; i < f.k+f.d; i++ {
		m := bits[i]
		for j := f.th; j >= 1; j-- {
			ge[j] = m.Select(ge[j-1], ge[j])
		}
	}

	return out.Xor(ge[f.th])
}
