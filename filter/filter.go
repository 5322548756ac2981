// Package filter implements the Boolean filtering functions a FiLIP
// keystream applies to a randomly whitened subset of the symmetric
// key: the direct sum of monomials (DSM) family and the thresholded
// XOR family (XorThr), both built purely from Bit.Xor, Mux.Select and
// Mux.AsBit so
// the same code evaluates in the clear and under FHE (spec.md §4.1/§4.3,
// "Filter trait").
package filter

import (
	"github.com/princess-elisabeth/FiLIP/cipher"
)

// Filter consumes exactly N() whitened key bits, given as Muxes so a
// monomial can use them as selectors, and produces one output Bit.
type Filter interface {
	N() int
	Evaluate(bits []cipher.Mux, bf cipher.BitFactory) cipher.Bit
}

// and computes the logical AND of a chain of Mux selectors: the first
// selector's own value is extracted directly via AsBit (the cheap
// sample-extraction path spec.md §4.2 names), and every remaining
// selector in the chain ANDs itself in via Select(acc, 0) — a CMUX that
// passes acc through when the selector is 1 and collapses it to 0
// otherwise (spec.md §4.1, "Monomial::evaluate").
func and(indices []int, bits []cipher.Mux, bf cipher.BitFactory) cipher.Bit {
	acc := bits[indices[0]].AsBit()
	for _, idx := range indices[1:] {
		acc = bits[idx].Select(acc, bf.Zero())
	}
	return acc
}
