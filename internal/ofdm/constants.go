// Package ofdm implements single-symbol OFDM modulation and demodulation
// on top of a real-to-complex transform and a QAM mapper.
package ofdm

import "fmt"

// Constants holds the subcarrier layout derived from one configuration.
//
// The real transform of size 2*NumSubcarriers yields NumSubcarriers+1
// frequency bins, indices 0 through NumSubcarriers. Bin 0 (DC) and bin
// NumSubcarriers (Nyquist) are guards and stay empty. Every
// PilotSubcarrierEvery-th bin in between carries the pilot reference, and
// the remaining bins carry data in ascending index order. That ordering is
// the canonical mapping between symbol-vector position and subcarrier, so
// modulator and demodulator derive identical layouts from identical
// parameters.
type Constants struct {
	NumSubcarriers       int
	CyclicPrefixLength   int
	PilotSubcarrierEvery int

	// DataIndices lists the data-carrying bins in ascending order.
	DataIndices []int
	NumPilots   int
}

// NewConstants derives the layout. It fails when there is no room for the
// guard bins, the pilot interval is not positive, or the cyclic prefix
// does not fit inside one transform block.
func NewConstants(numSubcarriers, pilotEvery, cyclicPrefixLength int) (*Constants, error) {
	if numSubcarriers < 3 {
		return nil, fmt.Errorf("ofdm: need at least 3 subcarriers, got %d", numSubcarriers)
	}
	if pilotEvery < 1 {
		return nil, fmt.Errorf("ofdm: pilot interval must be positive, got %d", pilotEvery)
	}
	if cyclicPrefixLength < 0 || cyclicPrefixLength >= 2*numSubcarriers {
		return nil, fmt.Errorf("ofdm: cyclic prefix length %d must be in [0, %d)", cyclicPrefixLength, 2*numSubcarriers)
	}

	c := &Constants{
		NumSubcarriers:       numSubcarriers,
		CyclicPrefixLength:   cyclicPrefixLength,
		PilotSubcarrierEvery: pilotEvery,
	}
	for i := 1; i < numSubcarriers; i++ {
		if i%pilotEvery == 0 {
			c.NumPilots++
		} else {
			c.DataIndices = append(c.DataIndices, i)
		}
	}
	return c, nil
}

// SymbolLength returns the number of time-domain samples per OFDM symbol,
// cyclic prefix included.
func (c *Constants) SymbolLength() int {
	return 2*c.NumSubcarriers + c.CyclicPrefixLength
}

// NumBins returns the number of frequency bins produced by the transform.
func (c *Constants) NumBins() int {
	return c.NumSubcarriers + 1
}

// DataCapacity returns the number of payload bytes one symbol carries at
// the given bits-per-symbol, rounded down to whole bytes.
func (c *Constants) DataCapacity(bitsPerSymbol int) int {
	return len(c.DataIndices) * bitsPerSymbol / 8
}
