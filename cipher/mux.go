package cipher

import (
	"fmt"
	"io"

	"github.com/princess-elisabeth/FiLIP/ggsw"
	"github.com/princess-elisabeth/FiLIP/glwe"
	"github.com/princess-elisabeth/FiLIP/ring"
)

// Mux is a single filter multiplexer decision, clear or encrypted: it
// selects between two Bits without (in the encrypted world) ever
// revealing which one it picked (spec.md §4.1, "Multiplexer::select").
// AsBit extracts m's own selector value as a Bit directly, the cheap
// alternative to m.Select(one, zero) a DSM/XorThr evaluation uses when
// it just needs the key bit itself rather than a selection between two
// other values (spec.md §4.2, "Multiplexer::as_bit").
type Mux interface {
	Select(one, zero Bit) Bit
	AsBit() Bit
	WriteTo(w io.Writer) (int64, error)
	ReadFrom(r io.Reader) (int64, error)
}

// ClearMux is the plaintext instantiation of Mux.
type ClearMux bool

// NewClearMux wraps a plain bool as a Mux.
func NewClearMux(b bool) *ClearMux {
	m := ClearMux(b)
	return &m
}

// Value returns the underlying bool.
func (m *ClearMux) Value() bool { return bool(*m) }

// Select returns one if m is true, zero otherwise.
func (m *ClearMux) Select(one, zero Bit) Bit {
	if bool(*m) {
		return one
	}
	return zero
}

// AsBit returns m's own value as a Bit.
func (m *ClearMux) AsBit() Bit { return NewClearBit(bool(*m)) }

// WriteTo writes m as a single byte.
func (m *ClearMux) WriteTo(w io.Writer) (int64, error) {
	buf := []byte{0}
	if bool(*m) {
		buf[0] = 1
	}
	n, err := w.Write(buf)
	return int64(n), err
}

// ReadFrom reads one byte back into m.
func (m *ClearMux) ReadFrom(r io.Reader) (int64, error) {
	buf := make([]byte, 1)
	n, err := io.ReadFull(r, buf)
	if err != nil {
		return int64(n), err
	}
	*m = ClearMux(buf[0] != 0)
	return int64(n), nil
}

// negatedMux wraps a Mux and swaps its two selection branches, giving
// NOT(m).Select(one, zero) == m.Select(zero, one) without ever touching
// the underlying ciphertext — the whitening step of a symmetric key's
// random subset (spec.md §4.3, "XOR the subset with a random mask")
// needs exactly this and nothing more expensive.
type negatedMux struct {
	inner Mux
}

// Negate returns a Mux that selects the other way around from m.
func Negate(m Mux) Mux {
	if n, ok := m.(negatedMux); ok {
		return n.inner
	}
	return negatedMux{inner: m}
}

func (n negatedMux) Select(one, zero Bit) Bit            { return n.inner.Select(zero, one) }
func (n negatedMux) WriteTo(w io.Writer) (int64, error)  { return n.inner.WriteTo(w) }
func (n negatedMux) ReadFrom(r io.Reader) (int64, error) { return n.inner.ReadFrom(r) }

// AsBit returns NOT(inner.AsBit()): inner's own value XORed with a
// trivial (zero mask, zero noise) encoding of 1, the same "trivial
// constant" discipline the rest of the package uses rather than any
// homomorphic ciphertext negation.
func (n negatedMux) AsBit() Bit {
	b := n.inner.AsBit()
	switch v := b.(type) {
	case *ClearBit:
		return NewClearBit(!bool(*v))
	case *EncryptedBit:
		one := glwe.EncryptTrivial(ring.ConstantPoly(v.CT.Params.N, ring.EncodeBit(true)), v.CT.Params)
		return v.Xor(&EncryptedBit{CT: one})
	default:
		panic(fmt.Sprintf("cipher: AsBit: unsupported Bit type %T for negation", b))
	}
}

// EncryptedMux is the FHE instantiation of Mux: a GGSW ciphertext held
// in Fourier form, selecting via CMUX under a shared Evaluator.
type EncryptedMux struct {
	CT   *ggsw.Fourier
	Eval *ggsw.Evaluator
}

// NewEncryptedMux pairs an already-transformed GGSW ciphertext with the
// evaluator that will drive its CMUX gates.
func NewEncryptedMux(ct *ggsw.Fourier, eval *ggsw.Evaluator) *EncryptedMux {
	return &EncryptedMux{CT: ct, Eval: eval}
}

// NewEmptyEncryptedMux allocates a zero-valued EncryptedMux of the
// evaluator's shape, ready to be filled in by ReadFrom.
func NewEmptyEncryptedMux(eval *ggsw.Evaluator) *EncryptedMux {
	ct := ggsw.NewEmptyFourier(eval.Params, eval.BaseLog, eval.Levels)
	return &EncryptedMux{CT: ct, Eval: eval}
}

// Select runs CMUX(m, one, zero) homomorphically.
func (m *EncryptedMux) Select(one, zero Bit) Bit {
	o1 := one.(*EncryptedBit)
	o0 := zero.(*EncryptedBit)
	res := m.Eval.CMUX(m.CT, o1.CT, o0.CT)
	return &EncryptedBit{CT: res}
}

// AsBit extracts m's own selector bit directly from the first level of
// the GGSW ciphertext's last block: that row is already a real GLWE
// encryption of m*g_0 under the same secret key, so Backward-transforming
// it and rescaling from the gadget's g_0 scale up to the top-bit Bit
// convention (2^63) recovers exactly the Bit m's value, without ever
// running a CMUX or touching the secret key (spec.md §4.2,
// "Multiplexer::as_bit").
func (m *EncryptedMux) AsBit() Bit {
	row := m.CT.LastRowOfFirstLevel()
	params := m.Eval.Params
	ct := glwe.NewCiphertext(params)
	for i, fp := range row {
		ct.Value[i] = ring.Backward(fp)
	}
	shift := ring.TorusBits - m.Eval.BaseLog
	rescaled := ct.ScalarMulTorus(ring.Torus(1) << uint(ring.TorusBits-1-shift))
	return &EncryptedBit{CT: rescaled}
}

// WriteTo serializes the Fourier-domain coefficients of every block,
// level and component of the underlying GGSW ciphertext directly (the
// standard-domain form is not retained once transformed), as raw
// float64 bit patterns, so ReadFrom restores them bit for bit with no
// transform in between.
func (m *EncryptedMux) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, block := range m.CT.Blocks {
		for _, row := range block {
			for _, fp := range row {
				n, err := writeFourierPoly(w, fp)
				total += n
				if err != nil {
					return total, err
				}
			}
		}
	}
	return total, nil
}

// ReadFrom deserializes into m.CT, which must already be allocated to
// the expected shape.
func (m *EncryptedMux) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for _, block := range m.CT.Blocks {
		for _, row := range block {
			for i := range row {
				n, fp, err := readFourierPoly(r, len(row[i]))
				total += n
				if err != nil {
					return total, err
				}
				row[i] = fp
			}
		}
	}
	return total, nil
}
