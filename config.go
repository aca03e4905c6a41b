package earthgen

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmchurch/earthgen/geo"
)

// Config is a struct that holds all configuration options for the planet
// generation.
type Config struct {
	*geo.TerrainConfig
	*geo.ClimateConfig
}

// NewConfig returns a new Config with default values.
func NewConfig() *Config {
	return &Config{
		TerrainConfig: geo.NewTerrainConfig(),
		ClimateConfig: geo.NewClimateConfig(),
	}
}

// Correct clamps all values into their legal ranges.
func (c *Config) Correct() {
	c.TerrainConfig.Correct()
	c.ClimateConfig.Correct()
}

// LoadConfig reads a JSON settings file on top of the defaults. Missing
// keys keep their default value.
func LoadConfig(path string) (*Config, error) {
	cfg := NewConfig()
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(cfg); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	cfg.Correct()
	return cfg, nil
}
