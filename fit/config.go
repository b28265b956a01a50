/*package fit ties together the density estimation machinery behind a
config file: it reads a [fit.config] file and turns it into the search
grid, fold splitter, and estimator settings that the density package
consumes.*/
package fit

import (
	"fmt"
	"strings"

	"github.com/grb-tools/grbfit/density"
	"github.com/grb-tools/grbfit/math/rand"
	"github.com/grb-tools/grbfit/parse"
	"github.com/grb-tools/grbfit/version"
)

// Config holds every user-settable knob of a bandwidth search.
//
// A zero Seed requests a time-based seed, which makes runs
// non-reproducible. When Bandwidths is non-empty it overrides the
// generated [MinBandwidth, MaxBandwidth] grid entirely.
type Config struct {
	Version   string
	Folds     int64
	Seed      int64
	Generator string

	Bandwidths     []string
	MinBandwidth   float64
	MaxBandwidth   float64
	GridBandwidths int64
	Alphas         []float64
}

func (cfg *Config) vars() *parse.ConfigVars {
	vars := parse.NewConfigVars("fit.config")

	vars.String(&cfg.Version, "Version", version.SourceVersion)
	vars.Int(&cfg.Folds, "Folds", 2)
	vars.Int(&cfg.Seed, "Seed", 0)
	vars.String(&cfg.Generator, "Generator", "Xorshift")
	vars.Strings(&cfg.Bandwidths, "Bandwidths", []string{})
	vars.Float(&cfg.MinBandwidth, "MinBandwidth", 0.01)
	vars.Float(&cfg.MaxBandwidth, "MaxBandwidth", 1)
	vars.Int(&cfg.GridBandwidths, "GridBandwidths", 10)
	vars.Floats(&cfg.Alphas, "Alphas", []float64{1})

	return vars
}

// DefaultConfig returns a Config with every variable at its default.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.vars()
	return cfg
}

// ReadConfig reads and validates a [fit.config] file. Variables the file
// does not assign keep their defaults.
func ReadConfig(fname string) (*Config, error) {
	cfg := &Config{}
	if err := parse.ReadConfig(fname, cfg.vars()); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if later, err := version.Later(cfg.Version, version.SourceVersion); err != nil {
		return fmt.Errorf(
			"I couldn't parse the Version variable '%s': %s",
			cfg.Version, err.Error(),
		)
	} else if later {
		return fmt.Errorf(
			"The config file was written for version %s, but this is "+
				"version %s.", cfg.Version, version.SourceVersion,
		)
	}

	if cfg.Folds < 2 {
		return fmt.Errorf(
			"The variable 'Folds' was set to %d, but cross validation "+
				"needs at least 2 folds.", cfg.Folds,
		)
	}
	if cfg.Seed < 0 {
		return fmt.Errorf(
			"The variable 'Seed' was set to %d, but it cannot be "+
				"negative.", cfg.Seed,
		)
	}
	if _, err := cfg.generatorType(); err != nil {
		return err
	}

	for _, str := range cfg.Bandwidths {
		if _, err := density.ParseBandwidth(str); err != nil {
			return fmt.Errorf(
				"The variable 'Bandwidths' contains '%s': %s",
				str, err.Error(),
			)
		}
	}
	if cfg.MinBandwidth <= 0 {
		return fmt.Errorf(
			"The variable 'MinBandwidth' was set to %g, but it must "+
				"be positive.", cfg.MinBandwidth,
		)
	}
	if cfg.MaxBandwidth < cfg.MinBandwidth {
		return fmt.Errorf(
			"The variable 'MaxBandwidth' was set to %g, which is "+
				"smaller than MinBandwidth = %g.",
			cfg.MaxBandwidth, cfg.MinBandwidth,
		)
	}
	if cfg.GridBandwidths < 1 {
		return fmt.Errorf(
			"The variable 'GridBandwidths' was set to %d, but the "+
				"grid needs at least one bandwidth.", cfg.GridBandwidths,
		)
	}

	if len(cfg.Alphas) == 0 {
		return fmt.Errorf("The variable 'Alphas' was set to an " +
			"empty list.")
	}
	for _, alpha := range cfg.Alphas {
		if alpha < 0 || alpha > 1 {
			return fmt.Errorf(
				"The variable 'Alphas' contains %g, which is outside "+
					"[0, 1].", alpha,
			)
		}
	}

	return nil
}

func (cfg *Config) generatorType() (rand.GeneratorType, error) {
	switch strings.ToLower(cfg.Generator) {
	case "xorshift":
		return rand.Xorshift, nil
	case "golang":
		return rand.Golang, nil
	case "tausworthe":
		return rand.Tausworthe, nil
	}
	return 0, fmt.Errorf(
		"The variable 'Generator' was set to '%s'. The supported "+
			"generators are 'Xorshift', 'Golang', and 'Tausworthe'.",
		cfg.Generator,
	)
}

// Grid builds the search grid the Config describes: either the explicitly
// listed bandwidths or the Scott and Silverman rules of thumb followed by
// GridBandwidths log-spaced values in [MinBandwidth, MaxBandwidth].
func (cfg *Config) Grid() (density.Grid, error) {
	var bws []density.Bandwidth
	if len(cfg.Bandwidths) > 0 {
		for _, str := range cfg.Bandwidths {
			bw, err := density.ParseBandwidth(str)
			if err != nil {
				return density.Grid{}, err
			}
			bws = append(bws, bw)
		}
	} else {
		bws = []density.Bandwidth{
			{Rule: density.Scott}, {Rule: density.Silverman},
		}
		bws = append(bws, density.LogSpacedBandwidths(
			cfg.MinBandwidth, cfg.MaxBandwidth, int(cfg.GridBandwidths),
		)...)
	}

	alphas := make([]float64, len(cfg.Alphas))
	copy(alphas, cfg.Alphas)

	return density.Grid{Bandwidths: bws, Alphas: alphas}, nil
}

// Splitter builds the fold splitter the Config describes.
func (cfg *Config) Splitter() (*density.KFold, error) {
	gt, err := cfg.generatorType()
	if err != nil {
		return nil, err
	}

	var gen *rand.Generator
	if cfg.Seed == 0 {
		gen = rand.NewTimeSeed(gt)
	} else {
		gen = rand.New(gt, uint64(cfg.Seed))
	}

	return &density.KFold{K: int(cfg.Folds), Gen: gen}, nil
}

// ExampleConfig returns an example [fit.config] file with every variable
// at its default.
func ExampleConfig() string {
	return `[fit.config]

# Version of the tool this file was written for.
Version = ` + version.SourceVersion + `

# Folds is the number of cross validation folds.
Folds = 2

# Seed seeds the generator that shuffles points into folds. Seed = 0
# selects a time-based seed, which makes runs non-reproducible.
Seed = 0

# Generator selects the underlying random number generator. The supported
# generators are Xorshift, Golang, and Tausworthe.
Generator = Xorshift

# Bandwidths explicitly lists the candidate bandwidths. Each entry is
# 'scott', 'silverman', or a positive number. When set, it overrides the
# generated grid below.
# Bandwidths = scott, silverman, 0.1

# MinBandwidth, MaxBandwidth, and GridBandwidths control the generated
# bandwidth grid: GridBandwidths values log-spaced across
# [MinBandwidth, MaxBandwidth], tried after the Scott and Silverman rules
# of thumb.
MinBandwidth = 0.01
MaxBandwidth = 1
GridBandwidths = 10

# Alphas lists the candidate local sensitivity parameters. Each entry must
# be in [0, 1].
Alphas = 1`
}
