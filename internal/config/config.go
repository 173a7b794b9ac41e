// Package config loads table setups from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete simulation configuration
type Config struct {
	Table   *TableSettings `hcl:"table,block"`
	Players []PlayerConfig `hcl:"player,block"`
}

// TableSettings holds table-level settings
type TableSettings struct {
	Blind            int    `hcl:"blind,optional"`
	DoubleBlindEvery int    `hcl:"double_blind_every,optional"`
	Rounds           int    `hcl:"rounds,optional"`
	Seed             int64  `hcl:"seed,optional"`
	LogLevel         string `hcl:"log_level,optional"`
}

// PlayerConfig seats one player
type PlayerConfig struct {
	Name     string `hcl:"name,label"`
	Markers  int    `hcl:"markers,optional"`
	Strategy string `hcl:"strategy,optional"`
}

const (
	defaultBlind    = 50
	defaultRounds   = 1000
	defaultMarkers  = 2500
	defaultStrategy = "heuristic"
	defaultLogLevel = "info"
)

// Default returns a heads-up table of two heuristic players
func Default() *Config {
	return &Config{
		Table: &TableSettings{
			Blind:    defaultBlind,
			Rounds:   defaultRounds,
			LogLevel: defaultLogLevel,
		},
		Players: []PlayerConfig{
			{Name: "Alice", Markers: defaultMarkers, Strategy: defaultStrategy},
			{Name: "Bob", Markers: defaultMarkers, Strategy: defaultStrategy},
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Table == nil {
		c.Table = &TableSettings{}
	}
	if c.Table.Blind == 0 {
		c.Table.Blind = defaultBlind
	}
	if c.Table.Rounds == 0 {
		c.Table.Rounds = defaultRounds
	}
	if c.Table.LogLevel == "" {
		c.Table.LogLevel = defaultLogLevel
	}
	for i := range c.Players {
		if c.Players[i].Markers == 0 {
			c.Players[i].Markers = defaultMarkers
		}
		if c.Players[i].Strategy == "" {
			c.Players[i].Strategy = defaultStrategy
		}
	}
}

// Validate checks the configuration. known reports whether a strategy name
// is registered.
func (c *Config) Validate(known func(string) bool) error {
	if c.Table.Blind < 2 || c.Table.Blind%2 != 0 {
		return fmt.Errorf("blind must be an even number of at least 2, got %d", c.Table.Blind)
	}
	if c.Table.DoubleBlindEvery < 0 {
		return fmt.Errorf("double_blind_every must not be negative")
	}
	if c.Table.Rounds < 1 {
		return fmt.Errorf("rounds must be positive")
	}
	if len(c.Players) < 2 {
		return fmt.Errorf("at least two players must be configured")
	}

	seen := make(map[string]bool, len(c.Players))
	for _, p := range c.Players {
		if seen[p.Name] {
			return fmt.Errorf("player %s: duplicate name", p.Name)
		}
		seen[p.Name] = true
		if p.Markers <= 0 {
			return fmt.Errorf("player %s: markers must be positive", p.Name)
		}
		if known != nil && !known(p.Strategy) {
			return fmt.Errorf("player %s: invalid strategy %s", p.Name, p.Strategy)
		}
	}
	return nil
}
