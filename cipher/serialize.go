package cipher

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/princess-elisabeth/FiLIP/ring"
)

// writeFourierPoly writes a Fourier-domain polynomial as pairs of
// big-endian float64 bit patterns (real, imaginary), the same
// raw-bits-not-text convention ring.Poly.WriteTo uses for torus
// elements.
func writeFourierPoly(w io.Writer, fp ring.FourierPoly) (int64, error) {
	buf := make([]byte, 16*len(fp))
	for i, c := range fp {
		binary.BigEndian.PutUint64(buf[i*16:], math.Float64bits(real(c)))
		binary.BigEndian.PutUint64(buf[i*16+8:], math.Float64bits(imag(c)))
	}
	n, err := w.Write(buf)
	return int64(n), err
}

// readFourierPoly reads back a polynomial of degree N written by
// writeFourierPoly.
func readFourierPoly(r io.Reader, n int) (int64, ring.FourierPoly, error) {
	buf := make([]byte, 16*n)
	read, err := io.ReadFull(r, buf)
	if err != nil {
		return int64(read), nil, err
	}
	fp := make(ring.FourierPoly, n)
	for i := range fp {
		re := math.Float64frombits(binary.BigEndian.Uint64(buf[i*16:]))
		im := math.Float64frombits(binary.BigEndian.Uint64(buf[i*16+8:]))
		fp[i] = complex(re, im)
	}
	return int64(read), fp, nil
}
