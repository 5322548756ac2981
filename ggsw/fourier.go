package ggsw

import (
	"github.com/princess-elisabeth/FiLIP/glwe"
	"github.com/princess-elisabeth/FiLIP/ring"
)

// FourierGLWE is one GLWE ciphertext with every component held in the
// Fourier domain, the representation a GGSW row is evaluated in.
type FourierGLWE []ring.FourierPoly

// ForwardGLWE transforms every component of ct into the Fourier domain.
func ForwardGLWE(ct *glwe.Ciphertext) FourierGLWE {
	f := make(FourierGLWE, len(ct.Value))
	for i, p := range ct.Value {
		f[i] = ring.Forward(p)
	}
	return f
}

// Fourier is a GGSW ciphertext with every row's GLWE components held in
// the Fourier domain, ready for repeated external products without
// re-transforming the (much larger) key material each time (spec.md §3:
// "a GGSW ciphertext ... stored in Fourier (DFT) form").
type Fourier struct {
	Params  glwe.Parameters
	BaseLog int
	Levels  int
	Blocks  [][]FourierGLWE // len == Params.K+1, each entry len == Levels
}

// NewEmptyFourier allocates a zero-valued Fourier ciphertext of the
// given shape, ready to be filled in by (*EncryptedMux).ReadFrom.
func NewEmptyFourier(params glwe.Parameters, baseLog, levels int) *Fourier {
	size := params.GlweSize()
	blocks := make([][]FourierGLWE, params.K+1)
	for i := range blocks {
		row := make([]FourierGLWE, levels)
		for l := range row {
			row[l] = make(FourierGLWE, size)
			for j := range row[l] {
				row[l][j] = ring.ZeroFourier(params.N)
			}
		}
		blocks[i] = row
	}
	return &Fourier{Params: params, BaseLog: baseLog, Levels: levels, Blocks: blocks}
}

// FillForward transforms every GLWE row of c into the Fourier domain.
func FillForward(c *Ciphertext) *Fourier {
	blocks := make([][]FourierGLWE, len(c.Blocks))
	for i, row := range c.Blocks {
		fr := make([]FourierGLWE, len(row))
		for l, ct := range row {
			fr[l] = ForwardGLWE(ct)
		}
		blocks[i] = fr
	}
	return &Fourier{Params: c.Params, BaseLog: c.BaseLog, Levels: c.Levels, Blocks: blocks}
}

// LastRowOfFirstLevel returns every mask and body component of the
// first level of the last block, in the Fourier domain: this GLWE row
// is a real encryption of m*g_0 under the same secret key the whole
// GGSW ciphertext was built with, and can be extracted and rescaled
// directly as a Bit without ever touching that key (spec.md §4.2,
// "Multiplexer::as_bit" — the cheap sample-extraction path, as opposed
// to a full external product).
func (f *Fourier) LastRowOfFirstLevel() FourierGLWE {
	return f.Blocks[f.Params.K][0]
}
