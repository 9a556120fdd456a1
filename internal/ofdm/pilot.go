package ofdm

// pilotValue is the known reference carried on pilot bins (BPSK +1).
// The demodulator does not read it back yet; the blind per-symbol
// equalizer stands in for pilot-based channel estimation.
var pilotValue = complex(1, 0)

// buildSpectrum assembles the full frequency-domain vector for one symbol:
// zero at the guard bins, the pilot reference at pilot bins, and the QAM
// points on the data bins in ascending order. Data bins beyond the mapped
// symbols stay zero.
func buildSpectrum(c *Constants, symbols []complex128) []complex128 {
	spectrum := make([]complex128, c.NumBins())

	for i := 1; i < c.NumSubcarriers; i++ {
		if i%c.PilotSubcarrierEvery == 0 {
			spectrum[i] = pilotValue
		}
	}
	for j, idx := range c.DataIndices {
		if j >= len(symbols) {
			break
		}
		spectrum[idx] = symbols[j]
	}
	return spectrum
}

// extractData pulls the data bins out of a received spectrum in the same
// ascending order the modulator filled them.
func extractData(c *Constants, spectrum []complex128) []complex128 {
	symbols := make([]complex128, len(c.DataIndices))
	for i, idx := range c.DataIndices {
		symbols[i] = spectrum[idx]
	}
	return symbols
}
