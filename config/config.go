// Package config holds the training configuration and reads it from
// YAML files.
package config

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/bobonovski/goibm/alignment"
)

const (
	Exhaustive = "exhaustive"
	Factored   = "factored"
)

type Config struct {
	// number of EM rounds
	Iterations int `yaml:"iterations"`
	// registered estimator, exhaustive or factored
	Estimator string `yaml:"estimator"`
	// first or all
	Occurrence string `yaml:"occurrence"`
	// goroutines running the E-step, 1 runs it sequentially
	Workers int `yaml:"workers"`
	// largest alignment space the exhaustive estimator may build, 0 for no bound
	MaxAlignments int `yaml:"max_alignments"`
	// show a progress bar over the rounds
	Progress bool `yaml:"progress"`
}

// Default is full alignment enumeration with
// first occurrence counting, run sequentially
func Default() Config {
	return Config{
		Iterations: 10,
		Estimator:  Exhaustive,
		Occurrence: alignment.FirstOccurrence.String(),
		Workers:    1,
	}
}

// Load reads a YAML file on top of the defaults
func Load(fn string) (Config, error) {
	return LoadFrom(fn, Default())
}

// LoadFrom reads a YAML file on top of base, keys missing from the file
// keep the value of base
func LoadFrom(fn string, base Config) (Config, error) {
	c := base
	data, err := ioutil.ReadFile(fn)
	if err != nil {
		return c, errors.Wrapf(err, "read config %s", fn)
	}
	if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return c, errors.Wrapf(err, "parse config %s", fn)
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.Iterations < 0 {
		return errors.Errorf("negative iteration count %d", c.Iterations)
	}
	if c.Workers < 0 {
		return errors.Errorf("negative worker count %d", c.Workers)
	}
	if c.MaxAlignments < 0 {
		return errors.Errorf("negative alignment bound %d", c.MaxAlignments)
	}
	switch c.Estimator {
	case Exhaustive, Factored:
	default:
		return errors.Errorf("unknown estimator %q", c.Estimator)
	}
	if _, err := alignment.ParseOccurrence(c.Occurrence); err != nil {
		return err
	}
	return nil
}

// get the parsed occurrence strategy, FirstOccurrence if invalid
func (c Config) OccurrenceStrategy() alignment.Occurrence {
	occ, err := alignment.ParseOccurrence(c.Occurrence)
	if err != nil {
		return alignment.FirstOccurrence
	}
	return occ
}
