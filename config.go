package poly

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cbegin/poly-go/internal/sequence"
	"github.com/cbegin/poly-go/internal/synth"
)

// Config holds every range the engine draws from. The zero Config is not
// usable; start from DefaultConfig.
type Config struct {
	Sequence sequence.Params `json:"sequence"`
	Synth    synth.Params    `json:"synth"`
}

func DefaultConfig() Config {
	return Config{
		Sequence: sequence.DefaultParams(),
		Synth:    synth.DefaultParams(),
	}
}

func (c Config) Validate() error {
	if err := c.Sequence.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := c.Synth.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return nil
}

// ParseConfig decodes JSON over DefaultConfig, so a document only needs the
// fields it changes.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a JSON config from path. A missing file yields the
// defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}
	return ParseConfig(data)
}

func (c Config) MarshalIndent() ([]byte, error) {
	return json.MarshalIndent(c, "", "  ")
}
