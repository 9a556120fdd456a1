// Package qam maps byte streams onto square QAM constellations and back.
package qam

import (
	"fmt"
	"math"
)

// Order is the size of the square QAM constellation.
type Order int

const (
	Order4  Order = 4  // QPSK, 2 bits per symbol
	Order16 Order = 16 // 16-QAM, 4 bits per symbol
	Order64 Order = 64 // 64-QAM, 6 bits per symbol
)

// PeakMagnitude is the magnitude of the constellation corner points.
// The OFDM demodulator scales the strongest received bin to this value,
// so a noiseless symbol lands exactly back on the grid.
const PeakMagnitude = 3.0

// BitsPerSymbol returns the number of bits carried by one constellation
// point, or 0 for an unsupported order.
func (o Order) BitsPerSymbol() int {
	switch o {
	case Order4:
		return 2
	case Order16:
		return 4
	case Order64:
		return 6
	}
	return 0
}

func (o Order) String() string {
	switch o {
	case Order4:
		return "QPSK"
	case Order16:
		return "16-QAM"
	case Order64:
		return "64-QAM"
	}
	return fmt.Sprintf("QAM(%d)", int(o))
}

// Modem maps bit groups onto a Gray-coded square constellation and back.
// Bits are consumed MSB-first within each byte; each group of
// BitsPerSymbol bits selects one point.
type Modem struct {
	order  Order
	bits   int
	points []complex128
}

// NewModem creates a mapper/demapper for the given order.
func NewModem(order Order) (*Modem, error) {
	bits := order.BitsPerSymbol()
	if bits == 0 {
		return nil, fmt.Errorf("qam: unsupported order %d", int(order))
	}
	m := &Modem{order: order, bits: bits}
	m.generate(1 << (bits / 2))
	return m, nil
}

// generate builds the Gray-coded odd-integer lattice for a side-by-side
// grid, scaled so the corner points sit at PeakMagnitude.
func (m *Modem) generate(side int) {
	m.points = make([]complex128, side*side)
	scale := PeakMagnitude / (math.Sqrt2 * float64(side-1))

	for i := range m.points {
		row := i / side
		col := i % side

		grayRow := row ^ (row >> 1)
		grayCol := col ^ (col >> 1)

		x := float64(2*grayCol - side + 1)
		y := float64(2*grayRow - side + 1)

		m.points[i] = complex(x*scale, y*scale)
	}
}

// BitsPerSymbol returns the number of bits per constellation point.
func (m *Modem) BitsPerSymbol() int {
	return m.bits
}

// Modulate maps data onto constellation points. A trailing partial bit
// group is zero-padded.
func (m *Modem) Modulate(data []byte) []complex128 {
	totalBits := len(data) * 8
	numSymbols := (totalBits + m.bits - 1) / m.bits
	symbols := make([]complex128, numSymbols)

	for s := 0; s < numSymbols; s++ {
		idx := 0
		for b := 0; b < m.bits; b++ {
			pos := s*m.bits + b
			bit := 0
			if pos < totalBits {
				bit = int(data[pos/8]>>(7-pos%8)) & 1
			}
			idx = idx<<1 | bit
		}
		symbols[s] = m.points[idx]
	}
	return symbols
}

// Demodulate decides each symbol to the nearest constellation point and
// packs the recovered bits back into bytes. A trailing partial byte is
// zero-padded. Out-of-range amplitudes are never an error; the decision
// is always made to the nearest valid point.
func (m *Modem) Demodulate(symbols []complex128) []byte {
	totalBits := len(symbols) * m.bits
	data := make([]byte, (totalBits+7)/8)

	for s, sym := range symbols {
		idx := m.nearest(sym)
		for b := 0; b < m.bits; b++ {
			bit := byte(idx>>(m.bits-1-b)) & 1
			pos := s*m.bits + b
			data[pos/8] |= bit << (7 - pos%8)
		}
	}
	return data
}

// nearest returns the index of the constellation point with minimum
// Euclidean distance to sym.
func (m *Modem) nearest(sym complex128) int {
	minDist := math.MaxFloat64
	minIdx := 0

	for i, p := range m.points {
		d := real(sym-p)*real(sym-p) + imag(sym-p)*imag(sym-p)
		if d < minDist {
			minDist = d
			minIdx = i
		}
	}
	return minIdx
}
