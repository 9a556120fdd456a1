package ofdm

import (
	"fmt"
	"math/cmplx"

	"github.com/jeongseonghan/software-modem/internal/qam"
)

// Demodulator recovers one symbol's worth of payload bytes from a
// time-domain sample block. Like the Modulator it carries no state across
// calls.
type Demodulator struct {
	consts *Constants
	modem  *qam.Modem
	engine Engine
}

// NewDemodulator creates an OFDM demodulator from cfg.
func NewDemodulator(cfg Config) (*Demodulator, error) {
	consts, modem, engine, err := cfg.build()
	if err != nil {
		return nil, err
	}
	return &Demodulator{consts: consts, modem: modem, engine: engine}, nil
}

// SymbolLength returns the number of samples per OFDM symbol, cyclic
// prefix included. It matches the paired Modulator's for equal configs.
func (d *Demodulator) SymbolLength() int {
	return d.consts.SymbolLength()
}

// DataCapacity returns the number of payload bytes one symbol carries.
func (d *Demodulator) DataCapacity() int {
	return d.consts.DataCapacity(d.modem.BitsPerSymbol())
}

// DemodulateSymbol recovers the payload from one received symbol. in must
// hold exactly SymbolLength() samples; a mismatch signals a
// caller-configuration error and no output is produced.
//
// The cyclic prefix is discarded, the forward transform yields
// numSubcarriers+1 bins, the spectrum is blindly equalized, and the data
// bins are QAM-demapped. The result is always DataCapacity() bytes; the
// caller trims trailing zero padding to recover the original payload
// length.
func (d *Demodulator) DemodulateSymbol(in []float32) ([]byte, error) {
	if len(in) != d.SymbolLength() {
		return nil, fmt.Errorf("ofdm: symbol buffer must be %d samples, got %d", d.SymbolLength(), len(in))
	}

	// strip cyclic prefix
	block := make([]float64, 2*d.consts.NumSubcarriers)
	for i := range block {
		block[i] = float64(in[d.consts.CyclicPrefixLength+i])
	}

	spectrum := d.engine.Forward(nil, block)
	equalize(spectrum)
	symbols := extractData(d.consts, spectrum)

	data := d.modem.Demodulate(symbols)
	return data[:d.DataCapacity()], nil
}

// equalize scales the spectrum so the strongest bin sits at the
// constellation corner magnitude, compensating unknown transmit and
// transform gain. It is a blind per-symbol normalization, not a channel
// estimator; an all-zero spectrum is left untouched.
func equalize(spectrum []complex128) {
	maxMag := 0.0
	for _, v := range spectrum {
		if mag := cmplx.Abs(v); mag > maxMag {
			maxMag = mag
		}
	}
	if maxMag <= 0 {
		return
	}

	scale := complex(qam.PeakMagnitude/maxMag, 0)
	for i := range spectrum {
		spectrum[i] *= scale
	}
}
