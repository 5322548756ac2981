// Package encrypter implements the FiLIP stream: evaluating a filter
// over successive whitened subsets of a symmetric key to produce a
// keystream, then combining that keystream with a message either
// entirely in the clear (the fast symmetric path a real client runs)
// or, given an FHE-encrypted key, homomorphically against a stream of
// already-public ciphertext bits (transciphering, the path a server
// with no knowledge of the key runs) — spec.md §4.4, "Encrypter".
package encrypter

import (
	"github.com/princess-elisabeth/FiLIP/cipher"
	"github.com/princess-elisabeth/FiLIP/filter"
	"github.com/princess-elisabeth/FiLIP/glwe"
	"github.com/princess-elisabeth/FiLIP/ring"
	"github.com/princess-elisabeth/FiLIP/symmetrickey"
)

// Encrypter evaluates one FiLIP keystream. Two Encrypters built from
// SymmetricKeys sharing the same seed (one over the clear world, one
// over the encrypted world) produce the same sequence of whitened
// subsets, so their keystreams only ever differ by world, never by
// content — the property spec.md §4.4 calls out as the reason
// transciphering recovers exactly the message a clear-world Encrypter
// would have produced.
type Encrypter struct {
	Key        *symmetrickey.SymmetricKey
	Filter     filter.Filter
	BitFactory cipher.BitFactory
}

// New pairs a symmetric key with the filter it feeds and the Bit world
// its output should be produced in.
func New(key *symmetrickey.SymmetricKey, f filter.Filter, bf cipher.BitFactory) *Encrypter {
	return &Encrypter{Key: key, Filter: f, BitFactory: bf}
}

// NextKeystreamBit draws the next whitened subset from Key and
// evaluates Filter over it.
func (e *Encrypter) NextKeystreamBit() cipher.Bit {
	subset := e.Key.RandomWhitenedSubset()
	return e.Filter.Evaluate(subset, e.BitFactory)
}

// Stream draws n successive keystream bits.
func (e *Encrypter) Stream(n int) []cipher.Bit {
	out := make([]cipher.Bit, n)
	for i := range out {
		out[i] = e.NextKeystreamBit()
	}
	return out
}

// Encrypt XORs msg with the keystream in the clear, producing the
// ciphertext bits a real client would actually transmit. Panics if e
// was not built over the clear world.
func (e *Encrypter) Encrypt(msg []bool) []bool {
	out := make([]bool, len(msg))
	for i, b := range msg {
		ks := e.NextKeystreamBit().(*cipher.ClearBit)
		out[i] = b != ks.Value()
	}
	return out
}

// Decrypt recovers the message from ciphertext bits produced by
// Encrypt; XOR is its own inverse, so this is Encrypt under another
// name run over the same keystream position.
func (e *Encrypter) Decrypt(ctxt []bool) []bool {
	return e.Encrypt(ctxt)
}

// Transcipher turns a stream of already-public ciphertext bits into FHE
// encryptions of the original message bits, without ever learning the
// symmetric key itself: it evaluates the keystream homomorphically
// (Key and Filter must have been built over the encrypted world) and
// XORs each keystream bit with a trivial, noiseless FHE encryption of
// the corresponding ciphertext bit (spec.md §4.4/§6, "transcipher").
func (e *Encrypter) Transcipher(ctxt []bool, fhe glwe.Parameters) []cipher.Bit {
	out := make([]cipher.Bit, len(ctxt))
	for i, c := range ctxt {
		ks := e.NextKeystreamBit()
		trivial := cipher.NewEncryptedBit(glwe.EncryptTrivial(ring.ConstantPoly(fhe.N, ring.EncodeBit(c)), fhe))
		out[i] = ks.Xor(trivial)
	}
	return out
}
