package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/clarith/clog"
	"gopkg.in/yaml.v3"
)

// Config is the YAML document read by "clarith print".
//
//	max: 64
//	values:
//	  - name: two thirds
//	    num: 2
//	    den: 3
//	  - name: reciprocal of seven
//	    num: 7
//	    den: 1
//	    transform: [0, 1, 1, 0]
type Config struct {
	Max    int         `yaml:"max"`
	Values []ValueSpec `yaml:"values"`
}

// ValueSpec is num/den, optionally passed through the homographic map
// with coefficients nx, n, dx, d.
type ValueSpec struct {
	Name      string `yaml:"name"`
	Num       int    `yaml:"num"`
	Den       int    `yaml:"den"`
	Transform []int  `yaml:"transform,omitempty"`
}

var errNoValues = errors.New("config lists no values")

// LoadConfig reads and validates a config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the structure of the config. Arithmetic failures such
// as a zero denominator are reported when the value is built.
func (c *Config) Validate() error {
	if c.Max < 0 {
		return fmt.Errorf("max must not be negative, got %d", c.Max)
	}
	if len(c.Values) == 0 {
		return errNoValues
	}
	for i, v := range c.Values {
		if v.Name == "" {
			c.Values[i].Name = fmt.Sprintf("#%d", i+1)
		}
		if err := c.Values[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the transform arity.
func (s ValueSpec) Validate() error {
	if n := len(s.Transform); n != 0 && n != 4 {
		return fmt.Errorf("%s: transform needs 4 coefficients, got %d", s.Name, n)
	}
	return nil
}

// Build constructs the value.
func (s ValueSpec) Build() (clog.Value, error) {
	v, err := clog.Ratio(s.Num, s.Den)
	if err != nil || len(s.Transform) == 0 {
		return v, err
	}
	t := s.Transform
	return clog.Homographic(v, t[0], t[1], t[2], t[3])
}
