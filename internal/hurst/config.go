package hurst

import (
	"fmt"
	"strconv"
	"strings"
)

// SectionMode selects how the series is split for sectioned regression.
type SectionMode string

const (
	SectionsFull    SectionMode = "full"
	SectionsPeriods SectionMode = "periods"
	SectionsScales  SectionMode = "scales"
)

// SectionConfig configures the Partitioner.
type SectionConfig struct {
	Mode   SectionMode `yaml:"mode"`
	Count  int         `yaml:"count"`  // number of sub-periods for SectionsPeriods
	Window int         `yaml:"window"` // scale points per section for SectionsScales
}

// Config controls scale generation and sectioning.
type Config struct {
	MinExponent int           `yaml:"min_exponent"`
	MaxExponent int           `yaml:"max_exponent"`
	MinScale    int           `yaml:"min_scale"`
	Workers     int           `yaml:"workers"`
	Sections    SectionConfig `yaml:"sections"`
}

// DefaultConfig returns exponents 2..6, a minimum chunk of 2 and halves as sections.
func DefaultConfig() Config {
	return Config{
		MinExponent: 2,
		MaxExponent: 6,
		MinScale:    2,
		Workers:     1,
		Sections:    SectionConfig{Mode: SectionsPeriods, Count: 2},
	}
}

// Validate checks the exponent range and the section policy.
func (c Config) Validate() error {
	if c.MinExponent < 1 {
		return fmt.Errorf("min_exponent must be >= 1, got %d", c.MinExponent)
	}
	if c.MaxExponent <= c.MinExponent {
		return fmt.Errorf("max_exponent (%d) must be greater than min_exponent (%d)", c.MaxExponent, c.MinExponent)
	}
	if c.MaxExponent > 30 {
		return fmt.Errorf("max_exponent must be <= 30, got %d", c.MaxExponent)
	}
	if c.MinScale < 2 {
		return fmt.Errorf("min_scale must be >= 2, got %d", c.MinScale)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	switch c.Sections.Mode {
	case SectionsFull:
	case SectionsPeriods:
		if c.Sections.Count < 1 {
			return fmt.Errorf("sections.count must be >= 1, got %d", c.Sections.Count)
		}
	case SectionsScales:
		if c.Sections.Window < 2 {
			return fmt.Errorf("sections.window must be >= 2, got %d", c.Sections.Window)
		}
	default:
		return fmt.Errorf("unknown sections.mode %q", c.Sections.Mode)
	}
	return nil
}

// ParseSections parses a section policy such as "full", "halves", "thirds",
// "periods:4" or "scales:3".
func ParseSections(policy string) (SectionConfig, error) {
	policy = strings.ToLower(strings.TrimSpace(policy))
	switch policy {
	case "full", "none":
		return SectionConfig{Mode: SectionsFull}, nil
	case "halves":
		return SectionConfig{Mode: SectionsPeriods, Count: 2}, nil
	case "thirds":
		return SectionConfig{Mode: SectionsPeriods, Count: 3}, nil
	}

	mode, arg, ok := strings.Cut(policy, ":")
	if !ok {
		return SectionConfig{}, fmt.Errorf("unknown section policy %q", policy)
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return SectionConfig{}, fmt.Errorf("section policy %q: %w", policy, err)
	}
	switch SectionMode(mode) {
	case SectionsPeriods:
		return SectionConfig{Mode: SectionsPeriods, Count: n}, nil
	case SectionsScales:
		return SectionConfig{Mode: SectionsScales, Window: n}, nil
	}
	return SectionConfig{}, fmt.Errorf("unknown section policy %q", policy)
}
