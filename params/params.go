// Package params collects the named parameter sets a FiLIP instance can
// be built from: the symmetric-key size and filter shape on one side,
// and the shared FHE ring/gadget parameters transciphering runs against
// on the other (spec.md §5, "Parameter sets").
package params

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
	"github.com/princess-elisabeth/FiLIP/filter"
	"github.com/princess-elisabeth/FiLIP/glwe"
	"github.com/princess-elisabeth/FiLIP/prng"
)

// FilterKind distinguishes the two filter families spec.md §4.1 names.
type FilterKind int

const (
	// DSM is the direct-sum-of-monomials family.
	DSM FilterKind = iota
	// XorThr is the thresholded-XOR family.
	XorThr
)

// FHE bundles the GLWE ring shape and gadget/noise parameters shared by
// every FiLIP parameter set for transciphering (spec.md §5, "shared FHE
// parameters").
type FHE struct {
	Glwe    glwe.Parameters
	BaseLog int
	Levels  int
	Sigma   float64
}

// Parameters fully describes one named FiLIP instance: its symmetric
// key size, its filter shape, and the FHE parameters it transciphers
// under.
type Parameters struct {
	Name       string
	Kappa      int
	N          int
	Kind       FilterKind
	DSMDegrees []int // populated when Kind == DSM
	XorK       int   // populated when Kind == XorThr
	XorD       int
	XorTh      int
	FHEParams  FHE
}

// sharedFHE is the single FHE parameter set every named instance
// transciphers under (spec.md §5: "k=1, N=1024, a gadget base log of 5
// over 6 levels, and a noise standard deviation of 10^-9").
var sharedFHE = FHE{
	Glwe:    glwe.Parameters{K: 1, N: 1024},
	BaseLog: 5,
	Levels:  6,
	Sigma:   1e-9,
}

// FiLIP1216 is the maximum-security DSM instance: kappa=16384, n=1216,
// monomial weight distribution m=[128,64,0,80,0,0,0,80] (128 degree-1,
// 64 degree-2, 80 degree-4, 80 degree-8 monomials — spec.md §3).
func FiLIP1216() *Parameters {
	return &Parameters{
		Name:  "FiLIP-1216",
		Kappa: 16384,
		N:     1216,
		Kind:  DSM,
		DSMDegrees: expandDegreeCounts(map[int]int{
			1: 128,
			2: 64,
			4: 80,
			8: 80,
		}),
		FHEParams: sharedFHE,
	}
}

// FiLIP1280 is the lighter-key DSM instance: kappa=4096, n=1280,
// monomial weight distribution m=[128,64,0,...,0,64] (128 degree-1, 64
// degree-2, 64 degree-16 monomials — spec.md §3).
func FiLIP1280() *Parameters {
	return &Parameters{
		Name:  "FiLIP-1280",
		Kappa: 4096,
		N:     1280,
		Kind:  DSM,
		DSMDegrees: expandDegreeCounts(map[int]int{
			1:  128,
			2:  64,
			16: 64,
		}),
		FHEParams: sharedFHE,
	}
}

// FiLIP144 is the thresholded-XOR instance: kappa=16384, n=144 (k=81
// linear bits XORed with a "32 of 63" threshold gate — spec.md §3).
func FiLIP144() *Parameters {
	return &Parameters{
		Name:      "FiLIP-144",
		Kappa:     16384,
		N:         144,
		Kind:      XorThr,
		XorK:      81,
		XorD:      63,
		XorTh:     32,
		FHEParams: sharedFHE,
	}
}

// expandDegreeCounts turns a degree -> monomial-count map into the
// per-monomial degree list filter.NewDSM expects (one entry per
// monomial), in ascending degree order, the Go analogue of spec.md §3's
// literal m[] weight-distribution arrays.
func expandDegreeCounts(counts map[int]int) []int {
	degrees := make([]int, 0, len(counts))
	for d := 0; d <= maxKey(counts); d++ {
		for i := 0; i < counts[d]; i++ {
			degrees = append(degrees, d)
		}
	}
	return degrees
}

func maxKey(m map[int]int) int {
	max := 0
	for k := range m {
		if k > max {
			max = k
		}
	}
	return max
}

// registry indexes every named instance by name for List/Lookup.
var registry = map[string]func() *Parameters{
	"FiLIP-1216": FiLIP1216,
	"FiLIP-1280": FiLIP1280,
	"FiLIP-144":  FiLIP144,
}

// List returns the names of every registered parameter set.
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// Lookup returns the named parameter set, or an error if unknown.
func Lookup(name string) (*Parameters, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("params: unknown parameter set %q", name)
	}
	return ctor(), nil
}

// Filter builds the filter.Filter this parameter set describes, using g
// to draw its (deterministic, seed-derived) monomial/threshold layout.
func (p *Parameters) Filter(g *prng.KeyedPRNG) filter.Filter {
	switch p.Kind {
	case XorThr:
		return filter.NewXorThr(p.XorK, p.XorD, p.XorTh)
	default:
		return filter.NewDSM(g, p.N, p.DSMDegrees)
	}
}

// Validate checks that the gadget decomposition's rounding error
// (2^(63-baseLog*levels) in torus units) and the encryption noise's
// standard deviation in torus units (sigma*2^64) together stay inside
// the quarter-torus margin DecodeBit rounds against. It compares one
// standard deviation, not a Gaussian tail bound. The quantities are
// computed with math/big (bigfloat scales sigma) since they span more
// than sixty bits and float64 alone would mask an unsafe parameter
// choice with its own rounding error.
func (p *Parameters) Validate() error {
	f := p.FHEParams
	totalBits := f.BaseLog * f.Levels
	if totalBits >= 64 {
		return fmt.Errorf("params: %s: baseLog*levels = %d leaves no room for a gadget rounding margin", p.Name, totalBits)
	}

	roundingBits := 64 - totalBits - 1
	roundingBound := new(big.Float).SetMantExp(big.NewFloat(1), roundingBits)

	sigmaScaled := bigfloat.Mul(big.NewFloat(f.Sigma), new(big.Float).SetMantExp(big.NewFloat(1), 64))
	noiseMargin := new(big.Float).SetMantExp(big.NewFloat(1), 62) // quarter of the torus

	budget := new(big.Float).Sub(noiseMargin, roundingBound)
	if sigmaScaled.Cmp(budget) >= 0 {
		return fmt.Errorf("params: %s: encryption noise sigma=%.3e leaves no safety margin under the gadget rounding error", p.Name, f.Sigma)
	}
	return nil
}
