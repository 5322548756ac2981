package ring

import (
	"math"
	"math/cmplx"

	"github.com/klauspost/cpuid/v2"
)

// FourierPoly is a polynomial of ℤ[X]/(X^N+1) held in the Fourier
// domain: the twisted discrete Fourier transform used to turn negacyclic
// polynomial multiplication into a pointwise complex product. This is
// the representation a GGSW ciphertext is stored in (spec.md §3: "a GGSW
// ciphertext ... stored in Fourier (DFT) form ready for external product
// and CMUX").
type FourierPoly []complex128

var loggedFFTPath bool

// logFFTPath queries, once, whether the host supports AVX2 and discards
// the answer: it does not gate a vectorized code path (lattigo's
// hand-written AVX2 NTT kernels are out of scope, see DESIGN.md) and it
// logs nothing; only the portable path exists.
func logFFTPath() {
	if loggedFFTPath {
		return
	}
	loggedFFTPath = true
	_ = cpuid.CPU.Supports(cpuid.AVX2)
}

func twiddles(N int) (fwd, inv []complex128) {
	fwd = make([]complex128, N)
	inv = make([]complex128, N)
	for j := 0; j < N; j++ {
		angle := math.Pi * float64(j) / float64(N)
		fwd[j] = cmplx.Rect(1, angle)
		inv[j] = cmplx.Rect(1, -angle)
	}
	return
}

// twiddleCache memoizes the twist tables per polynomial degree, since a
// parameter set's N never changes over the life of a process.
var twiddleCache = map[int][2][]complex128{}

func getTwiddles(N int) (fwd, inv []complex128) {
	if t, ok := twiddleCache[N]; ok {
		return t[0], t[1]
	}
	fwd, inv = twiddles(N)
	twiddleCache[N] = [2][]complex128{fwd, inv}
	return
}

// dft computes, in place, the length-N discrete Fourier transform of a
// (N a power of two) via iterative radix-2 Cooley-Tukey. When invert is
// true it computes the inverse transform, including the 1/N scaling.
func dft(a []complex128, invert bool) {
	n := len(a)
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}
	for length := 2; length <= n; length <<= 1 {
		ang := 2 * math.Pi / float64(length)
		if invert {
			ang = -ang
		}
		wlen := cmplx.Rect(1, ang)
		for i := 0; i < n; i += length {
			w := complex(1.0, 0.0)
			half := length / 2
			for j := 0; j < half; j++ {
				u := a[i+j]
				v := a[i+j+half] * w
				a[i+j] = u + v
				a[i+j+half] = u - v
				w *= wlen
			}
		}
	}
	if invert {
		inv := complex(1/float64(n), 0)
		for i := range a {
			a[i] *= inv
		}
	}
}

// Forward transforms p into the Fourier domain: p is twisted by the
// primitive 2N-th root of unity and then put through a standard forward
// DFT, which is algebraically equivalent to evaluating p at the N odd
// powers of that root — the values needed to turn a negacyclic product
// into a pointwise one.
func Forward(p Poly) FourierPoly {
	logFFTPath()
	N := p.N()
	fwd, _ := getTwiddles(N)
	f := make(FourierPoly, N)
	for j := 0; j < N; j++ {
		f[j] = complex(float64(int64(p[j])), 0) * fwd[j]
	}
	dft(f, false)
	return f
}

// Backward inverts Forward: an inverse DFT followed by untwisting and
// rounding back to the nearest torus element.
func Backward(f FourierPoly) Poly {
	N := len(f)
	_, inv := getTwiddles(N)
	tmp := make([]complex128, N)
	copy(tmp, f)
	dft(tmp, true)
	p := New(N)
	for j := 0; j < N; j++ {
		v := tmp[j] * inv[j]
		p[j] = Torus(int64(math.Round(real(v))))
	}
	return p
}

// ZeroFourier allocates a zero-valued Fourier polynomial of degree N.
func ZeroFourier(N int) FourierPoly {
	return make(FourierPoly, N)
}

// CopyNew returns a fresh copy of f.
func (f FourierPoly) CopyNew() FourierPoly {
	g := make(FourierPoly, len(f))
	copy(g, f)
	return g
}

// AddInPlace computes f += g.
func (f FourierPoly) AddInPlace(g FourierPoly) {
	for i := range f {
		f[i] += g[i]
	}
}

// SubInPlace computes f -= g.
func (f FourierPoly) SubInPlace(g FourierPoly) {
	for i := range f {
		f[i] -= g[i]
	}
}

// MulInPlace computes f *= g pointwise, the Fourier-domain equivalent of
// a negacyclic polynomial product.
func (f FourierPoly) MulInPlace(g FourierPoly) {
	for i := range f {
		f[i] *= g[i]
	}
}

// MulAddInPlace computes f += x*y pointwise, the core accumulation step
// of the GGSW external product.
func (f FourierPoly) MulAddInPlace(x, y FourierPoly) {
	for i := range f {
		f[i] += x[i] * y[i]
	}
}
