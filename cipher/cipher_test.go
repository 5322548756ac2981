package cipher

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/princess-elisabeth/FiLIP/ggsw"
	"github.com/princess-elisabeth/FiLIP/glwe"
	"github.com/princess-elisabeth/FiLIP/prng"
)

const (
	baseLog = 4
	levels  = 8
)

func testParams() glwe.Parameters { return glwe.Parameters{K: 1, N: 8} }

func testGen(t *testing.T, seed uint64) *prng.KeyedPRNG {
	g, err := prng.NewFromSeed(seed)
	require.NoError(t, err)
	return g
}

func TestClearBitXor(t *testing.T) {
	for _, tc := range []struct{ a, b, want bool }{
		{false, false, false}, {false, true, true}, {true, true, false},
	} {
		got := NewClearBit(tc.a).Xor(NewClearBit(tc.b)).(*ClearBit)
		require.Equal(t, tc.want, got.Value())
	}
}

func TestClearBitWriteReadRoundTrip(t *testing.T) {
	b := NewClearBit(true)
	var buf bytes.Buffer
	_, err := b.WriteTo(&buf)
	require.NoError(t, err)

	got := NewClearBit(false)
	_, err = got.ReadFrom(&buf)
	require.NoError(t, err)
	require.True(t, got.Value())
}

func TestClearMuxSelect(t *testing.T) {
	one, zero := NewClearBit(true), NewClearBit(false)
	require.True(t, NewClearMux(true).Select(one, zero).(*ClearBit).Value())
	require.False(t, NewClearMux(false).Select(one, zero).(*ClearBit).Value())
}

func TestClearMuxAsBit(t *testing.T) {
	require.True(t, NewClearMux(true).AsBit().(*ClearBit).Value())
	require.False(t, NewClearMux(false).AsBit().(*ClearBit).Value())
	require.False(t, Negate(NewClearMux(true)).AsBit().(*ClearBit).Value())
	require.True(t, Negate(NewClearMux(false)).AsBit().(*ClearBit).Value())
}

func TestEncryptedBitXorDecrypts(t *testing.T) {
	params := testParams()
	sk := glwe.NewSecretKey(testGen(t, 1), params)
	bf := &EncryptedBitFactory{SK: sk, Sigma: 1e-9, Gen: testGen(t, 2)}
	dec := glwe.NewDecryptor(sk)

	got := bf.Zero().Xor(bf.One()).(*EncryptedBit)
	require.True(t, dec.DecryptBit(got.CT))
}

func TestEncryptedMuxSelect(t *testing.T) {
	params := testParams()
	sk := glwe.NewSecretKey(testGen(t, 3), params)
	gen := testGen(t, 4)
	dec := glwe.NewDecryptor(sk)
	eval := ggsw.NewEvaluator(params, baseLog, levels)

	bf := &EncryptedBitFactory{SK: sk, Sigma: 1e-9, Gen: gen}
	mf := &EncryptedMuxFactory{SK: sk, BaseLog: baseLog, Levels: levels, Eval: eval}

	one, zero := bf.One(), bf.Zero()
	require.True(t, dec.DecryptBit(mf.One().Select(one, zero).(*EncryptedBit).CT))
	require.False(t, dec.DecryptBit(mf.Zero().Select(one, zero).(*EncryptedBit).CT))
}

func TestEncryptedMuxAsBitDecrypts(t *testing.T) {
	params := testParams()
	sk := glwe.NewSecretKey(testGen(t, 9), params)
	dec := glwe.NewDecryptor(sk)
	eval := ggsw.NewEvaluator(params, baseLog, levels)
	mf := &EncryptedMuxFactory{SK: sk, BaseLog: baseLog, Levels: levels, Eval: eval}

	require.True(t, dec.DecryptBit(mf.One().AsBit().(*EncryptedBit).CT))
	require.False(t, dec.DecryptBit(mf.Zero().AsBit().(*EncryptedBit).CT))
	require.False(t, dec.DecryptBit(Negate(mf.One()).AsBit().(*EncryptedBit).CT))
	require.True(t, dec.DecryptBit(Negate(mf.Zero()).AsBit().(*EncryptedBit).CT))
}

func TestEncryptedMuxAsBitDecryptsNoisyEncryption(t *testing.T) {
	params := testParams()
	sk := glwe.NewSecretKey(testGen(t, 10), params)
	gen := testGen(t, 11)
	dec := glwe.NewDecryptor(sk)
	eval := ggsw.NewEvaluator(params, baseLog, levels)

	for _, bit := range []bool{false, true} {
		ct := ggsw.EncryptBit(bit, sk, baseLog, levels, 1e-9, gen)
		m := NewEncryptedMux(ggsw.FillForward(ct), eval)
		require.Equal(t, bit, dec.DecryptBit(m.AsBit().(*EncryptedBit).CT))
	}
}

func TestNegateMuxFlipsSelection(t *testing.T) {
	params := testParams()
	sk := glwe.NewSecretKey(testGen(t, 5), params)
	gen := testGen(t, 6)
	dec := glwe.NewDecryptor(sk)
	eval := ggsw.NewEvaluator(params, baseLog, levels)

	bf := &EncryptedBitFactory{SK: sk, Sigma: 1e-9, Gen: gen}
	mf := &EncryptedMuxFactory{SK: sk, BaseLog: baseLog, Levels: levels, Eval: eval}

	one, zero := bf.One(), bf.Zero()
	negOne := Negate(mf.One())
	require.False(t, dec.DecryptBit(negOne.Select(one, zero).(*EncryptedBit).CT))

	// Negate is its own inverse.
	require.True(t, dec.DecryptBit(Negate(negOne).Select(one, zero).(*EncryptedBit).CT))
}

func TestEncryptedMuxWriteReadRoundTrip(t *testing.T) {
	params := testParams()
	sk := glwe.NewSecretKey(testGen(t, 7), params)
	eval := ggsw.NewEvaluator(params, baseLog, levels)
	mf := &EncryptedMuxFactory{SK: sk, BaseLog: baseLog, Levels: levels, Eval: eval}

	m := mf.One().(*EncryptedMux)
	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)

	got := NewEmptyEncryptedMux(eval)
	_, err = got.ReadFrom(&buf)
	require.NoError(t, err)

	bf := &EncryptedBitFactory{SK: sk, Sigma: 1e-9, Gen: testGen(t, 8)}
	dec := glwe.NewDecryptor(sk)
	one, zero := bf.One(), bf.Zero()
	require.True(t, dec.DecryptBit(got.Select(one, zero).(*EncryptedBit).CT))
}
