package ggsw

import (
	"fmt"

	"github.com/princess-elisabeth/FiLIP/glwe"
	"github.com/princess-elisabeth/FiLIP/ring"
)

// Evaluator performs external products and CMUX gates against GGSW
// ciphertexts held in Fourier form, the homomorphic analogue of
// lattigo's core/rgsw.Evaluator.
type Evaluator struct {
	Params  glwe.Parameters
	BaseLog int
	Levels  int
}

// NewEvaluator binds an Evaluator to a fixed gadget shape.
func NewEvaluator(params glwe.Parameters, baseLog, levels int) *Evaluator {
	return &Evaluator{Params: params, BaseLog: baseLog, Levels: levels}
}

func (e *Evaluator) checkShape(sel *Fourier) {
	if sel.Params.K != e.Params.K || sel.Params.N != e.Params.N {
		panic(fmt.Sprintf("ggsw: shape mismatch: have k=%d,N=%d want k=%d,N=%d", sel.Params.K, sel.Params.N, e.Params.K, e.Params.N))
	}
	if sel.BaseLog != e.BaseLog || sel.Levels != e.Levels {
		panic(fmt.Sprintf("ggsw: gadget mismatch: have baseLog=%d,levels=%d want baseLog=%d,levels=%d", sel.BaseLog, sel.Levels, e.BaseLog, e.Levels))
	}
}

// ExternalProduct computes ct ⊠ sel: decomposes every component of ct
// in the gadget basis and accumulates the matching rows of sel, both
// held in the Fourier domain for the accumulation itself (spec.md §4.2,
// "external product").
func (e *Evaluator) ExternalProduct(ct *glwe.Ciphertext, sel *Fourier) *glwe.Ciphertext {
	e.checkShape(sel)

	size := e.Params.GlweSize()
	acc := make([]ring.FourierPoly, size)
	for j := range acc {
		acc[j] = ring.ZeroFourier(e.Params.N)
	}

	for i := 0; i < size; i++ {
		digits := ring.Decompose(ct.Value[i], e.BaseLog, e.Levels)
		for l := 0; l < e.Levels; l++ {
			digitFourier := ring.Forward(digits[l])
			row := sel.Blocks[i][l]
			for j := 0; j < size; j++ {
				acc[j].MulAddInPlace(digitFourier, row[j])
			}
		}
	}

	out := glwe.NewCiphertext(e.Params)
	for j := 0; j < size; j++ {
		out.Value[j] = ring.Backward(acc[j])
	}
	return out
}

// CMUX returns ct0 when sel encrypts 0 and ct1 when sel encrypts 1,
// without decrypting sel: ct0 + sel⊠(ct1-ct0) (spec.md §4.1, the
// homomorphic evaluation of a filter's multiplexer gate).
func (e *Evaluator) CMUX(sel *Fourier, ct1, ct0 *glwe.Ciphertext) *glwe.Ciphertext {
	diff := ct1.CopyNew()
	diff.SubInPlace(ct0)
	prod := e.ExternalProduct(diff, sel)
	out := ct0.CopyNew()
	out.AddInPlace(prod)
	return out
}
