package ofdm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstantsLayout64(t *testing.T) {
	c, err := NewConstants(64, 4, 4)
	require.NoError(t, err)

	assert.Equal(t, 132, c.SymbolLength())
	assert.Equal(t, 65, c.NumBins())
	assert.Equal(t, 15, c.NumPilots)
	assert.Len(t, c.DataIndices, 48)

	// 16-QAM: 48 data bins * 4 bits / 8 = 24 bytes
	assert.Equal(t, 24, c.DataCapacity(4))

	for i, idx := range c.DataIndices {
		assert.NotZero(t, idx, "DC is guard")
		assert.NotEqual(t, 64, idx, "Nyquist is guard")
		assert.NotZero(t, idx%4, "pilot bin %d in data set", idx)
		if i > 0 {
			assert.Greater(t, idx, c.DataIndices[i-1], "ascending order")
		}
	}
}

func TestConstantsDeterministic(t *testing.T) {
	a, err := NewConstants(64, 4, 16)
	require.NoError(t, err)
	b, err := NewConstants(64, 4, 16)
	require.NoError(t, err)

	assert.Equal(t, a.DataIndices, b.DataIndices)
	assert.Equal(t, a.NumPilots, b.NumPilots)
	assert.Equal(t, a.SymbolLength(), b.SymbolLength())
}

func TestConstantsValidation(t *testing.T) {
	tests := []struct {
		name        string
		subcarriers int
		pilotEvery  int
		cpLen       int
	}{
		{"too few subcarriers", 2, 4, 0},
		{"zero pilot interval", 64, 0, 4},
		{"negative pilot interval", 64, -1, 4},
		{"negative cyclic prefix", 64, 4, -1},
		{"cyclic prefix too long", 64, 4, 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConstants(tt.subcarriers, tt.pilotEvery, tt.cpLen)
			assert.Error(t, err)
		})
	}
}

func TestConstantsAccountsForEveryBin(t *testing.T) {
	for _, pilotEvery := range []int{1, 2, 4, 7} {
		c, err := NewConstants(32, pilotEvery, 8)
		require.NoError(t, err)

		// guards + pilots + data cover the 31 bins between DC and Nyquist
		assert.Equal(t, 31, c.NumPilots+len(c.DataIndices), "pilotEvery=%d", pilotEvery)
	}
}
