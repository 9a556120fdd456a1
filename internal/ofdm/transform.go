package ofdm

import "gonum.org/v1/gonum/dsp/fourier"

// Engine is a fixed-size real-to-complex transform pair. Forward consumes
// Len() real samples and produces Len()/2+1 complex coefficients; Inverse
// is the reciprocal. Neither direction normalizes, so a forward/inverse
// round trip multiplies the sequence by Len(); the demodulator's blind
// equalizer absorbs that scale.
//
// An injected engine is shared read-only and never mutated after
// construction. The gonum-backed default keeps internal scratch, so
// concurrent calls on one shared instance must be serialized by the
// caller; per-instance engines need no locking.
type Engine interface {
	Forward(dst []complex128, src []float64) []complex128
	Inverse(dst []float64, src []complex128) []float64
	Len() int
}

type fftEngine struct {
	fft *fourier.FFT
}

// NewEngine returns the default gonum-backed transform of size n.
func NewEngine(n int) Engine {
	return &fftEngine{fft: fourier.NewFFT(n)}
}

func (e *fftEngine) Len() int {
	return e.fft.Len()
}

func (e *fftEngine) Forward(dst []complex128, src []float64) []complex128 {
	return e.fft.Coefficients(dst, src)
}

func (e *fftEngine) Inverse(dst []float64, src []complex128) []float64 {
	return e.fft.Sequence(dst, src)
}
