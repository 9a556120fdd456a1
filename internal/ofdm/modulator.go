package ofdm

import (
	"fmt"

	"github.com/jeongseonghan/software-modem/internal/qam"
)

// Modulator turns one symbol's worth of payload bytes into a time-domain
// sample block with cyclic prefix. It is stateless across calls beyond its
// immutable configuration, so independent instances are safe to use from
// separate goroutines.
type Modulator struct {
	consts *Constants
	modem  *qam.Modem
	engine Engine
}

// NewModulator creates an OFDM modulator from cfg.
func NewModulator(cfg Config) (*Modulator, error) {
	consts, modem, engine, err := cfg.build()
	if err != nil {
		return nil, err
	}
	return &Modulator{consts: consts, modem: modem, engine: engine}, nil
}

// SymbolLength returns the number of samples per OFDM symbol, cyclic
// prefix included: 2*numSubcarriers + cyclicPrefixLength.
func (m *Modulator) SymbolLength() int {
	return m.consts.SymbolLength()
}

// DataCapacity returns the exact number of payload bytes one symbol
// carries.
func (m *Modulator) DataCapacity() int {
	return m.consts.DataCapacity(m.modem.BitsPerSymbol())
}

// ModulateSymbol writes one OFDM symbol into out. data must hold exactly
// DataCapacity() bytes and out exactly SymbolLength() samples; a mismatch
// signals a caller-configuration error and nothing is written.
//
// The payload is QAM-mapped onto the data bins, pilots and guards are
// inserted, the inverse transform produces 2*numSubcarriers real samples,
// and the last cyclicPrefixLength of them are prepended as the cyclic
// prefix.
func (m *Modulator) ModulateSymbol(data []byte, out []float32) error {
	if len(data) != m.DataCapacity() {
		return fmt.Errorf("ofdm: payload must be %d bytes, got %d", m.DataCapacity(), len(data))
	}
	if len(out) != m.SymbolLength() {
		return fmt.Errorf("ofdm: output buffer must be %d samples, got %d", m.SymbolLength(), len(out))
	}

	symbols := m.modem.Modulate(data)
	spectrum := buildSpectrum(m.consts, symbols)
	block := m.engine.Inverse(nil, spectrum)

	cp := m.consts.CyclicPrefixLength
	n := len(block)
	for i := 0; i < cp; i++ {
		out[i] = float32(block[n-cp+i])
	}
	for i, v := range block {
		out[cp+i] = float32(v)
	}
	return nil
}
