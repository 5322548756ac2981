package encrypter

import (
	"github.com/princess-elisabeth/FiLIP/cipher"
	"github.com/princess-elisabeth/FiLIP/ggsw"
	"github.com/princess-elisabeth/FiLIP/glwe"
	"github.com/princess-elisabeth/FiLIP/prng"
)

// GenerateClearKey draws kappa independent random key bits from gen, the
// plaintext symmetric key a real client holds.
func GenerateClearKey(gen *prng.KeyedPRNG, kappa int) []cipher.Mux {
	key := make([]cipher.Mux, kappa)
	for i := range key {
		key[i] = cipher.NewClearMux(gen.Bit())
	}
	return key
}

// GenerateEncryptedKey builds the bit-for-bit FHE encryption of clear
// under sk: the form shipped to a server that transciphers without ever
// holding the symmetric key itself (spec.md §4.5, "key generation").
func GenerateEncryptedKey(clear []cipher.Mux, sk *glwe.SecretKey, baseLog, levels int, sigma float64, gen *prng.KeyedPRNG, eval *ggsw.Evaluator) []cipher.Mux {
	key := make([]cipher.Mux, len(clear))
	for i, c := range clear {
		bit := c.(*cipher.ClearMux).Value()
		ct := ggsw.EncryptBit(bit, sk, baseLog, levels, sigma, gen)
		key[i] = cipher.NewEncryptedMux(ggsw.FillForward(ct), eval)
	}
	return key
}
