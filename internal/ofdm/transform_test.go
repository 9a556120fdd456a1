package ofdm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineShapes(t *testing.T) {
	e := NewEngine(128)
	assert.Equal(t, 128, e.Len())

	src := make([]float64, 128)
	coeffs := e.Forward(nil, src)
	assert.Len(t, coeffs, 65)

	back := e.Inverse(nil, coeffs)
	assert.Len(t, back, 128)
}

func TestEngineRoundTripScalesByLength(t *testing.T) {
	const n = 128
	e := NewEngine(n)

	src := make([]float64, n)
	for i := range src {
		src[i] = math.Sin(2*math.Pi*5*float64(i)/n) + 0.25*math.Cos(2*math.Pi*17*float64(i)/n)
	}

	back := e.Inverse(nil, e.Forward(nil, src))
	require.Len(t, back, n)

	// unnormalized pair: a round trip multiplies by the sequence length
	for i := range src {
		assert.InDelta(t, n*src[i], back[i], 1e-9, "sample %d", i)
	}
}

func TestEngineForwardSingleTone(t *testing.T) {
	const n = 128
	e := NewEngine(n)

	src := make([]float64, n)
	for i := range src {
		src[i] = math.Cos(2 * math.Pi * 10 * float64(i) / n)
	}

	coeffs := e.Forward(nil, src)
	for k, c := range coeffs {
		mag := math.Hypot(real(c), imag(c))
		if k == 10 {
			assert.InDelta(t, n/2, mag, 1e-9)
		} else {
			assert.InDelta(t, 0, mag, 1e-9, "bin %d", k)
		}
	}
}
