package ofdm

import (
	"fmt"

	"github.com/jeongseonghan/software-modem/internal/qam"
)

// DefaultPilotEvery is the pilot interval used when Config leaves
// PilotSubcarrierEvery at zero.
const DefaultPilotEvery = 4

// Config describes one modulator/demodulator pairing. The same values must
// be used on both ends for the round trip to agree. A Config is consumed
// at construction time and never read again.
type Config struct {
	NumSubcarriers     int
	CyclicPrefixLength int

	// PilotSubcarrierEvery places the pilot reference on every n-th
	// usable bin. Zero selects DefaultPilotEvery.
	PilotSubcarrierEvery int

	Order qam.Order

	// Engine optionally injects a shared transform sized
	// 2*NumSubcarriers. Nil constructs a private plan.
	Engine Engine
}

func (cfg Config) build() (*Constants, *qam.Modem, Engine, error) {
	pilotEvery := cfg.PilotSubcarrierEvery
	if pilotEvery == 0 {
		pilotEvery = DefaultPilotEvery
	}

	modem, err := qam.NewModem(cfg.Order)
	if err != nil {
		return nil, nil, nil, err
	}

	consts, err := NewConstants(cfg.NumSubcarriers, pilotEvery, cfg.CyclicPrefixLength)
	if err != nil {
		return nil, nil, nil, err
	}

	engine := cfg.Engine
	if engine == nil {
		engine = NewEngine(2 * cfg.NumSubcarriers)
	} else if engine.Len() != 2*cfg.NumSubcarriers {
		return nil, nil, nil, fmt.Errorf("ofdm: engine size %d does not match 2*%d subcarriers", engine.Len(), cfg.NumSubcarriers)
	}

	return consts, modem, engine, nil
}
