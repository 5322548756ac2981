package filter

import (
	"github.com/princess-elisabeth/FiLIP/cipher"
	"github.com/princess-elisabeth/FiLIP/prng"
	"golang.org/x/exp/slices"
)

// DSM is a direct sum of monomials filter: its output is the XOR of
// several AND monomials of varying degree, each over a disjoint block
// of the input bits (spec.md §4.1, "DSM filter"). FiLIP-1216 and
// FiLIP-1280 both instantiate this family.
type DSM struct {
	n         int
	monomials [][]int
}

// NewDSM partitions n input positions into monomials of the given
// degrees (one monomial per entry of degrees, consuming degrees[i]
// positions each): monomial i covers the consecutive block of positions
// right after those of monomials 0..i-1, and g only draws the order of
// the positions within that block.
func NewDSM(g *prng.KeyedPRNG, n int, degrees []int) *DSM {
	monomials := make([][]int, len(degrees))
	used := 0
	for i, d := range degrees {
		idx := make([]int, 0, d)
		for len(idx) < d {
			c := used + g.IntN(d)
			if !slices.Contains(idx, c) {
				idx = append(idx, c)
			}
		}
		monomials[i] = idx
		used += d
	}
	return &DSM{n: n, monomials: monomials}
}

// N returns the number of key bits this filter consumes.
func (f *DSM) N() int { return f.n }

// Evaluate XORs together the AND of every monomial's positions.
func (f *DSM) Evaluate(bits []cipher.Mux, bf cipher.BitFactory) cipher.Bit {
	out := bf.Zero()
	for _, m := range f.monomials {
		out = out.Xor(and(m, bits, bf))
	}
	return out
}
