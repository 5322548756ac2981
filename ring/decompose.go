package ring

// Decompose splits p into `levels` signed-digit polynomials in base
// 2^baseLog, most significant level first, such that
//
//	p ≈ Σ_l digits[l] * 2^(64 - (l+1)*baseLog)
//
// with a rounding error bounded by half the smallest gadget step. This
// is the decomposition the GGSW external product applies to both
// components of the input ciphertext before multiplying each digit
// against the corresponding gadget row (spec.md §4.2/§6, "gadget
// power matrix").
func Decompose(p Poly, baseLog, levels int) []Poly {
	N := p.N()
	out := make([]Poly, levels)
	for l := range out {
		out[l] = New(N)
	}
	for j := 0; j < N; j++ {
		digits := decomposeScalar(p[j], baseLog, levels)
		for l := 0; l < levels; l++ {
			out[l][j] = Torus(digits[l])
		}
	}
	return out
}

// decomposeScalar decomposes a single torus element into signed digits
// in [-B/2, B/2), B = 2^baseLog, propagating carries from the least
// significant extracted digit towards the most significant.
func decomposeScalar(x Torus, baseLog, levels int) []int64 {
	B := uint64(1) << uint(baseLog)
	half := int64(B >> 1)

	total := baseLog * levels
	rounded := x
	if total < TorusBits {
		roundBit := Torus(1) << uint(TorusBits-total-1)
		rounded = x + roundBit
	}

	mask := B - 1
	digits := make([]int64, levels)
	for l := 0; l < levels; l++ {
		shift := uint(TorusBits - (l+1)*baseLog)
		digits[l] = int64((rounded >> shift) & mask)
	}

	var carry int64
	for l := levels - 1; l >= 0; l-- {
		d := digits[l] + carry
		if d >= half {
			d -= int64(B)
			carry = 1
		} else {
			carry = 0
		}
		digits[l] = d
	}
	return digits
}

// GadgetFactor returns g_l = 2^(64 - (l+1)*baseLog), the l-th (1-indexed
// in spec.md, 0-indexed here) entry of the gadget vector.
func GadgetFactor(baseLog, level int) Torus {
	shift := TorusBits - (level+1)*baseLog
	if shift <= 0 {
		return 0
	}
	return Torus(1) << uint(shift)
}
