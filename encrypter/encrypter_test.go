package encrypter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/princess-elisabeth/FiLIP/cipher"
	"github.com/princess-elisabeth/FiLIP/filter"
	"github.com/princess-elisabeth/FiLIP/ggsw"
	"github.com/princess-elisabeth/FiLIP/glwe"
	"github.com/princess-elisabeth/FiLIP/prng"
	"github.com/princess-elisabeth/FiLIP/symmetrickey"
)

func testGen(t *testing.T, seed uint64) *prng.KeyedPRNG {
	g, err := prng.NewFromSeed(seed)
	require.NoError(t, err)
	return g
}

func TestClearRoundTrip(t *testing.T) {
	const kappa, n = 32, 6
	f := filter.NewDSM(testGen(t, 1), n, []int{1, 1, 2, 2})

	key := GenerateClearKey(testGen(t, 2), kappa)
	sk, err := symmetrickey.New(key, n, 99)
	require.NoError(t, err)
	enc := New(sk, f, cipher.ClearBitFactory{})

	dk, err := symmetrickey.New(key, n, 99)
	require.NoError(t, err)
	dec := New(dk, f, cipher.ClearBitFactory{})

	msg := []bool{true, false, true, true, false, false, true, false, true, true}
	ctxt := enc.Encrypt(msg)
	got := dec.Decrypt(ctxt)
	require.Equal(t, msg, got)
}

func TestTranscipherMatchesClearEncryption(t *testing.T) {
	const kappa, n = 24, 5
	const baseLog, levels = 4, 8
	glweParams := glwe.Parameters{K: 1, N: 8}

	f := filter.NewXorThr(2, 3, 2)

	sk := glwe.NewSecretKey(testGen(t, 11), glweParams)
	clearKey := GenerateClearKey(testGen(t, 12), kappa)
	eval := ggsw.NewEvaluator(glweParams, baseLog, levels)
	encryptedKey := GenerateEncryptedKey(clearKey, sk, baseLog, levels, 1e-9, testGen(t, 13), eval)

	clearSK, err := symmetrickey.New(clearKey, n, 55)
	require.NoError(t, err)
	clearEnc := New(clearSK, f, cipher.ClearBitFactory{})

	encSK, err := symmetrickey.New(encryptedKey, n, 55)
	require.NoError(t, err)
	bf := &cipher.EncryptedBitFactory{SK: sk, Sigma: 1e-9, Gen: testGen(t, 14)}
	fheEnc := New(encSK, f, bf)

	msg := []bool{true, false, true, true, false, false, true, false}
	ctxt := clearEnc.Encrypt(msg)

	fheBits := fheEnc.Transcipher(ctxt, glweParams)
	dec := glwe.NewDecryptor(sk)
	for i, b := range fheBits {
		got := dec.DecryptBit(b.(*cipher.EncryptedBit).CT)
		require.Equal(t, msg[i], got, "bit %d", i)
	}
}
