// Command ofdm-demo round-trips a short message through one OFDM symbol.
//
// Usage:
//
//	ofdm-demo -message "Hello, OFDM!"
//	ofdm-demo -subcarriers 64 -cp 4 -order 64
//	ofdm-demo -config modem.yaml -wav symbol.wav
//
// The message is zero-padded to one symbol's data capacity, modulated into
// a time-domain sample block, demodulated back, and compared. With -wav the
// waveform is also written as 16-bit mono PCM.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"gopkg.in/yaml.v3"

	"github.com/jeongseonghan/software-modem/internal/ofdm"
	"github.com/jeongseonghan/software-modem/internal/qam"
)

// demoConfig mirrors the modem parameters in YAML form. Values from a
// -config file override the flags.
type demoConfig struct {
	Subcarriers  int `yaml:"subcarriers"`
	CyclicPrefix int `yaml:"cyclic_prefix"`
	PilotEvery   int `yaml:"pilot_every"`
	Order        int `yaml:"order"`
	SampleRate   int `yaml:"sample_rate"`
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	message := flag.String("message", "Hello, OFDM!", "Message to round-trip")
	subcarriers := flag.Int("subcarriers", 64, "Number of subcarriers")
	cpLen := flag.Int("cp", 4, "Cyclic prefix length in samples")
	pilotEvery := flag.Int("pilot-every", ofdm.DefaultPilotEvery, "Pilot subcarrier interval")
	order := flag.Int("order", 16, "QAM order (4, 16 or 64)")
	configPath := flag.String("config", "", "Optional YAML config file")
	wavPath := flag.String("wav", "", "Optional WAV file to write the symbol to")
	rate := flag.Int("rate", 44100, "WAV sample rate in Hz")
	flag.Parse()

	cfg := demoConfig{
		Subcarriers:  *subcarriers,
		CyclicPrefix: *cpLen,
		PilotEvery:   *pilotEvery,
		Order:        *order,
		SampleRate:   *rate,
	}
	if *configPath != "" {
		if err := loadConfig(*configPath, &cfg); err != nil {
			return err
		}
	}

	modemCfg := ofdm.Config{
		NumSubcarriers:       cfg.Subcarriers,
		CyclicPrefixLength:   cfg.CyclicPrefix,
		PilotSubcarrierEvery: cfg.PilotEvery,
		Order:                qam.Order(cfg.Order),
	}

	modulator, err := ofdm.NewModulator(modemCfg)
	if err != nil {
		return err
	}
	demodulator, err := ofdm.NewDemodulator(modemCfg)
	if err != nil {
		return err
	}

	capacity := modulator.DataCapacity()
	if len(*message) > capacity {
		return fmt.Errorf("message is %d bytes but one %s symbol carries %d", len(*message), modemCfg.Order, capacity)
	}
	payload := make([]byte, capacity)
	copy(payload, *message)

	samples := make([]float32, modulator.SymbolLength())
	if err := modulator.ModulateSymbol(payload, samples); err != nil {
		return err
	}
	fmt.Printf("Modulated %d bytes into %d samples (first 8: %v)\n", capacity, len(samples), samples[:8])

	if *wavPath != "" {
		if err := writeWAV(*wavPath, samples, cfg.SampleRate); err != nil {
			return err
		}
		fmt.Printf("Wrote %s (%d Hz, 16-bit mono)\n", *wavPath, cfg.SampleRate)
	}

	decoded, err := demodulator.DemodulateSymbol(samples)
	if err != nil {
		return err
	}
	decoded = bytes.TrimRight(decoded, "\x00")

	fmt.Printf("Demodulated: %q\n", decoded)
	if string(decoded) != *message {
		return fmt.Errorf("round trip mismatch: %q != %q", decoded, *message)
	}
	fmt.Println("Round trip OK")
	return nil
}

func loadConfig(path string, cfg *demoConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// writeWAV scales the symbol to the 16-bit PCM range and writes it as a
// mono WAV file.
func writeWAV(path string, samples []float32, rate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create wav: %w", err)
	}
	defer f.Close()

	peak := float32(0)
	for _, s := range samples {
		if s > peak {
			peak = s
		}
		if -s > peak {
			peak = -s
		}
	}
	if peak == 0 {
		peak = 1
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		SourceBitDepth: 16,
		Data:           make([]int, len(samples)),
	}
	for i, s := range samples {
		buf.Data[i] = int(s / peak * 32767)
	}

	enc := wav.NewEncoder(f, rate, 16, 1, 1)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("write wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalize wav: %w", err)
	}
	return nil
}
