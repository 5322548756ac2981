package ring

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeBit(t *testing.T) {
	require.False(t, DecodeBit(EncodeBit(false)))
	require.True(t, DecodeBit(EncodeBit(true)))

	// Small perturbations (simulated noise) must not flip the decoded bit.
	require.True(t, DecodeBit(EncodeBit(true)+37))
	require.False(t, DecodeBit(EncodeBit(false)-41))
}

func TestPolyArithmetic(t *testing.T) {
	p := Poly{1, 2, 3, 4}
	q := Poly{4, 3, 2, 1}

	sum := p.CopyNew()
	sum.AddInPlace(q)
	require.Equal(t, Poly{5, 5, 5, 5}, sum)

	diff := sum.CopyNew()
	diff.SubInPlace(q)
	require.True(t, diff.Equal(p))

	neg := p.CopyNew()
	neg.NegInPlace()
	neg.AddInPlace(p)
	require.True(t, neg.Equal(New(4)))
}

func TestPolyWriteReadRoundTrip(t *testing.T) {
	p := Poly{1, 2, 3, 4, 5, 6, 7, 8}
	var buf bytes.Buffer
	_, err := p.WriteTo(&buf)
	require.NoError(t, err)

	q := New(8)
	_, err = q.ReadFrom(&buf)
	require.NoError(t, err)
	require.True(t, p.Equal(q))
}

// MulPoly in Z[X]/(X^4+1): (1+X) * (1+X) = 1 + 2X + X^2.
func TestMulPolySmall(t *testing.T) {
	p := Poly{1, 1, 0, 0}
	got := MulPoly(p, p)
	want := Poly{1, 2, 1, 0}
	require.True(t, want.Equal(got), "got %v want %v", got, want)
}

// X^2 * X^2 = X^4 = -1 in Z[X]/(X^4+1).
func TestMulMonomialWraparound(t *testing.T) {
	p := Poly{0, 0, 1, 0} // X^2
	got := MulMonomial(p, 2)
	want := Poly{Torus(0) - 1, 0, 0, 0} // -1
	require.True(t, want.Equal(got), "got %v want %v", got, want)
}

func TestMulMonomialZeroShiftIsIdentity(t *testing.T) {
	p := Poly{1, 2, 3, 4}
	require.True(t, p.Equal(MulMonomial(p, 0)))
}

func TestDecomposeReconstructs(t *testing.T) {
	const baseLog, levels = 4, 15 // covers the top 60 bits; the low 4 are rounded away
	x := Torus(0x0123_4567_89AB_CDEF)
	digits := decomposeScalar(x, baseLog, levels)

	var reconstructed int64
	for l, d := range digits {
		shift := uint(TorusBits - (l+1)*baseLog)
		reconstructed += d << shift
	}
	require.InDelta(t, float64(x), float64(uint64(reconstructed)), float64(uint64(1)<<(TorusBits-baseLog*levels)))
}

func TestGadgetFactorHalves(t *testing.T) {
	require.Equal(t, Torus(1)<<63, GadgetFactor(1, 0))
	require.Equal(t, Torus(1)<<62, GadgetFactor(1, 1))
}
