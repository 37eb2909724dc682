package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is a named, reusable validation configuration.
//
//	name: nightly
//	description: "Full catalog with extra flow witnesses"
//	witnesses: 1024
//	seed: 7
//	parallelism: 4
//	gates: [H, CX, MPP]
//	checks: [inverse, flows]
type Profile struct {
	// Name identifies the profile in logs and stored runs.
	Name string `yaml:"name"`

	Description string `yaml:"description,omitempty"`

	// Witnesses overrides DefaultWitnesses when positive.
	Witnesses int `yaml:"witnesses,omitempty"`

	Seed int64 `yaml:"seed,omitempty"`

	Parallelism int `yaml:"parallelism,omitempty"`

	// Gates restricts the run; names may be aliases in any case.
	Gates []string `yaml:"gates,omitempty"`

	// Checks restricts the run to these check names.
	Checks []string `yaml:"checks,omitempty"`
}

// LoadProfile reads and validates a profile YAML file.
// Unknown fields are rejected so typos do not silently widen a run.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}
	return ParseProfile(data)
}

// ParseProfile decodes and validates profile YAML.
func ParseProfile(data []byte) (*Profile, error) {
	var p Profile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := validateProfile(&p); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return &p, nil
}

func validateProfile(p *Profile) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Witnesses < 0 {
		return fmt.Errorf("witnesses must be non-negative, got %d", p.Witnesses)
	}
	if p.Parallelism < 0 {
		return fmt.Errorf("parallelism must be non-negative, got %d", p.Parallelism)
	}
	for i, name := range p.Gates {
		if name == "" {
			return fmt.Errorf("gates[%d]: name is empty", i)
		}
	}
	for i, name := range p.Checks {
		if _, ok := ParseCheck(name); !ok {
			return fmt.Errorf("checks[%d]: unknown check %q", i, name)
		}
	}
	return nil
}

// Options converts the profile into run options. Fields the profile leaves
// unset keep their Options defaults.
func (p *Profile) Options() Options {
	opts := Options{
		Gates:       append([]string(nil), p.Gates...),
		Witnesses:   p.Witnesses,
		Seed:        p.Seed,
		Parallelism: p.Parallelism,
	}
	for _, name := range p.Checks {
		c, _ := ParseCheck(name)
		opts.Checks = append(opts.Checks, c)
	}
	return opts
}
