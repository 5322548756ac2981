package cipher

import (
	"github.com/princess-elisabeth/FiLIP/ggsw"
	"github.com/princess-elisabeth/FiLIP/glwe"
	"github.com/princess-elisabeth/FiLIP/prng"
	"github.com/princess-elisabeth/FiLIP/ring"
)

// BitFactory builds the constant Bits (0 and 1) a filter needs to seed
// its DSM/XorThr evaluation, in whichever world it is parameterized
// over (spec.md §4.1's "Bit::zero"/"Bit::one").
type BitFactory interface {
	Zero() Bit
	One() Bit
	Descriptor() string
}

// MuxFactory is the Mux-world analogue of BitFactory: it builds the
// constant (no real secret bit) multiplexers 0 and 1 (spec.md §4.1's
// "Multiplexer::zero"/"Multiplexer::one"). The filters in package filter
// take only a BitFactory and do not use it.
type MuxFactory interface {
	Zero() Mux
	One() Mux
	Descriptor() string
}

// ClearBitFactory builds plaintext Bits.
type ClearBitFactory struct{}

func (ClearBitFactory) Zero() Bit          { return NewClearBit(false) }
func (ClearBitFactory) One() Bit           { return NewClearBit(true) }
func (ClearBitFactory) Descriptor() string { return "clear" }

// ClearMuxFactory builds plaintext Muxes.
type ClearMuxFactory struct{}

func (ClearMuxFactory) Zero() Mux          { return NewClearMux(false) }
func (ClearMuxFactory) One() Mux           { return NewClearMux(true) }
func (ClearMuxFactory) Descriptor() string { return "clear" }

// EncryptedBitFactory builds the constant GLWE Bits (0 and 1) a filter's
// AND/XOR accumulators seed themselves with. These are drawn hundreds of
// times per keystream bit (once per AND step, once per XOR accumulator
// init), so — like EncryptedMuxFactory's constant gadgets — they are
// built as trivial (zero mask, zero noise) encryptions rather than fresh
// real ones: a real encryption here would be both wasted work and
// needless noise stacked into every CMUX chain (spec.md §4.1, "a
// trivial GLWE encoding of 1"). SK/Sigma/Gen are kept for the ring
// parameters they carry and because other call sites key off this same
// factory shape; only the ring's N, not the key or noise generator, is
// used to build Zero/One.
type EncryptedBitFactory struct {
	SK    *glwe.SecretKey
	Sigma float64
	Gen   *prng.KeyedPRNG

	zero, one *EncryptedBit
}

func (f *EncryptedBitFactory) trivial(b bool) *EncryptedBit {
	msg := ring.New(f.SK.Params.N)
	msg.ScalarAddInPlace(ring.EncodeBit(b))
	return NewEncryptedBit(glwe.EncryptTrivial(msg, f.SK.Params))
}

func (f *EncryptedBitFactory) Zero() Bit {
	if f.zero == nil {
		f.zero = f.trivial(false)
	}
	return f.zero
}

func (f *EncryptedBitFactory) One() Bit {
	if f.one == nil {
		f.one = f.trivial(true)
	}
	return f.one
}

func (f *EncryptedBitFactory) Descriptor() string {
	return "glwe"
}

// EncryptedMuxFactory builds deterministic, noiseless GGSW encryptions
// of the constants 0 and 1 (spec.md §4.2's
// "zero_with_fhe_parameters"/"one_with_fhe_parameters"), a fresh one on
// every Zero/One call. Trivial here
// means zero mask and zero noise, not zero knowledge of SK: building a
// correct constant GGSW ciphertext still requires the secret key.
type EncryptedMuxFactory struct {
	SK      *glwe.SecretKey
	BaseLog int
	Levels  int
	Eval    *ggsw.Evaluator
}

func (f *EncryptedMuxFactory) mux(b bool) Mux {
	ct := ggsw.EncryptTrivial(b, f.SK, f.BaseLog, f.Levels)
	return NewEncryptedMux(ggsw.FillForward(ct), f.Eval)
}

func (f *EncryptedMuxFactory) Zero() Mux { return f.mux(false) }
func (f *EncryptedMuxFactory) One() Mux  { return f.mux(true) }

func (f *EncryptedMuxFactory) Descriptor() string {
	return "ggsw"
}
