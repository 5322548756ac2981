// Package cipher abstracts a single ciphertext bit and its filter
// multiplexer over two worlds, clear (plain bool, for reference
// evaluation and testing) and encrypted (a real GLWE/GGSW ciphertext),
// behind the same pair of interfaces: the Go analogue of spec.md §9's
// "Bit and Multiplexer as traits, implemented once in the clear and
// once under FHE" — expressed as interfaces rather than generics
// because spec.md explicitly steers away from Go generics here.
package cipher

import (
	"io"

	"github.com/princess-elisabeth/FiLIP/glwe"
)

// Bit is a single ciphertext bit, clear or encrypted, that can be
// combined by XOR (the operation a filter's whitening mask and a
// FiLIP keystream bit both need) and serialized.
type Bit interface {
	Xor(other Bit) Bit
	WriteTo(w io.Writer) (int64, error)
	ReadFrom(r io.Reader) (int64, error)
}

// ClearBit is the plaintext instantiation of Bit, used for reference
// evaluation of a filter and for tests that don't need FHE at all.
type ClearBit bool

// NewClearBit wraps a plain bool as a Bit.
func NewClearBit(b bool) *ClearBit {
	c := ClearBit(b)
	return &c
}

// Value returns the underlying bool.
func (b *ClearBit) Value() bool { return bool(*b) }

// Xor returns the Boolean XOR of b and other, which must also be a
// *ClearBit.
func (b *ClearBit) Xor(other Bit) Bit {
	o := other.(*ClearBit)
	r := ClearBit(bool(*b) != bool(*o))
	return &r
}

// WriteTo writes b as a single byte, 1 for true and 0 for false.
func (b *ClearBit) WriteTo(w io.Writer) (int64, error) {
	buf := []byte{0}
	if bool(*b) {
		buf[0] = 1
	}
	n, err := w.Write(buf)
	return int64(n), err
}

// ReadFrom reads one byte back into b.
func (b *ClearBit) ReadFrom(r io.Reader) (int64, error) {
	buf := make([]byte, 1)
	n, err := io.ReadFull(r, buf)
	if err != nil {
		return int64(n), err
	}
	*b = ClearBit(buf[0] != 0)
	return int64(n), nil
}

// EncryptedBit is the FHE instantiation of Bit: a GLWE ciphertext with
// the cleartext bit embedded at the top of its body's constant term.
type EncryptedBit struct {
	CT *glwe.Ciphertext
}

// NewEncryptedBit wraps an already-computed GLWE ciphertext as a Bit.
func NewEncryptedBit(ct *glwe.Ciphertext) *EncryptedBit {
	return &EncryptedBit{CT: ct}
}

// NewEmptyEncryptedBit allocates a zero-valued EncryptedBit of the given
// shape, ready to be filled in by ReadFrom.
func NewEmptyEncryptedBit(params glwe.Parameters) *EncryptedBit {
	return &EncryptedBit{CT: glwe.NewCiphertext(params)}
}

// Xor returns the homomorphic XOR of b and other: plain ciphertext
// addition, which is exact here because the top-bit encoding makes
// (b1+b2 mod 2) coincide with b1 XOR b2 (spec.md §4.1, "Bit::xor").
func (b *EncryptedBit) Xor(other Bit) Bit {
	o := other.(*EncryptedBit)
	sum := b.CT.CopyNew()
	sum.AddInPlace(o.CT)
	return &EncryptedBit{CT: sum}
}

// WriteTo serializes the underlying ciphertext.
func (b *EncryptedBit) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, p := range b.CT.Value {
		n, err := p.WriteTo(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// ReadFrom deserializes into b.CT, which must already be allocated to
// the expected shape.
func (b *EncryptedBit) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	for _, p := range b.CT.Value {
		n, err := p.ReadFrom(r)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
