package fit

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grb-tools/grbfit/density"
)

func writeConfig(t *testing.T, text string) (fname string, cleanup func()) {
	dir, err := ioutil.TempDir("", "fit_test")
	if err != nil {
		t.Fatalf("TempDir() error: %v", err)
	}

	fname = filepath.Join(dir, "fit.config")
	if err := ioutil.WriteFile(fname, []byte(text), 0666); err != nil {
		os.RemoveAll(dir)
		t.Fatalf("WriteFile() error: %v", err)
	}
	return fname, func() { os.RemoveAll(dir) }
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Folds != 2 {
		t.Errorf("Default Folds = %d, not 2.", cfg.Folds)
	}
	if cfg.Seed != 0 {
		t.Errorf("Default Seed = %d, not 0.", cfg.Seed)
	}
	if cfg.Generator != "Xorshift" {
		t.Errorf("Default Generator = %q.", cfg.Generator)
	}
	if len(cfg.Alphas) != 1 || cfg.Alphas[0] != 1 {
		t.Errorf("Default Alphas = %v, not {1}.", cfg.Alphas)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("Default config does not validate: %v", err)
	}
}

func TestDefaultGridMatchesDensityDefault(t *testing.T) {
	grid, err := DefaultConfig().Grid()
	if err != nil {
		t.Fatalf("Grid() error: %v", err)
	}

	want := density.DefaultGrid()
	if len(grid.Bandwidths) != len(want.Bandwidths) {
		t.Fatalf("Default config grid has %d bandwidths, but the "+
			"default grid has %d.",
			len(grid.Bandwidths), len(want.Bandwidths))
	}
	for i := range want.Bandwidths {
		if grid.Bandwidths[i] != want.Bandwidths[i] {
			t.Errorf("Bandwidth %d is %v, not %v.",
				i, grid.Bandwidths[i], want.Bandwidths[i])
		}
	}
	if len(grid.Alphas) != 1 || grid.Alphas[0] != 1 {
		t.Errorf("Alphas = %v, not {1}.", grid.Alphas)
	}
}

func TestReadConfig(t *testing.T) {
	fname, cleanup := writeConfig(t, `[fit.config]
Folds = 5
Seed = 1337
Generator = tausworthe
Bandwidths = scott, 0.1, 0.5
Alphas = 0.5, 1
`)
	defer cleanup()

	cfg, err := ReadConfig(fname)
	if err != nil {
		t.Fatalf("ReadConfig() error: %v", err)
	}

	if cfg.Folds != 5 {
		t.Errorf("Folds = %d, not 5.", cfg.Folds)
	}
	if cfg.Seed != 1337 {
		t.Errorf("Seed = %d, not 1337.", cfg.Seed)
	}
	if cfg.MinBandwidth != 0.01 || cfg.MaxBandwidth != 1 {
		t.Errorf("Unassigned bandwidth bounds did not keep their "+
			"defaults: [%g, %g].", cfg.MinBandwidth, cfg.MaxBandwidth)
	}

	grid, err := cfg.Grid()
	if err != nil {
		t.Fatalf("Grid() error: %v", err)
	}
	if len(grid.Bandwidths) != 3 {
		t.Fatalf("Explicit bandwidth list produced %d candidates.",
			len(grid.Bandwidths))
	}
	if grid.Bandwidths[0].Rule != density.Scott ||
		grid.Bandwidths[1] != density.FixedBandwidth(0.1) {
		t.Errorf("Explicit bandwidths parsed as %v.", grid.Bandwidths)
	}
	if len(grid.Alphas) != 2 {
		t.Errorf("Alphas = %v.", grid.Alphas)
	}

	kf, err := cfg.Splitter()
	if err != nil {
		t.Fatalf("Splitter() error: %v", err)
	}
	if kf.K != 5 {
		t.Errorf("Splitter K = %d, not 5.", kf.K)
	}
	if kf.Gen == nil {
		t.Errorf("Splitter has no generator.")
	}
}

func TestSplitterSeedDeterminism(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 99

	kf1, err := cfg.Splitter()
	if err != nil {
		t.Fatalf("Splitter() error: %v", err)
	}
	kf2, err := cfg.Splitter()
	if err != nil {
		t.Fatalf("Splitter() error: %v", err)
	}

	folds1, err := kf1.Split(16)
	if err != nil {
		t.Fatalf("Split() error: %v", err)
	}
	folds2, err := kf2.Split(16)
	if err != nil {
		t.Fatalf("Split() error: %v", err)
	}

	for i := range folds1 {
		for j := range folds1[i].Test {
			if folds1[i].Test[j] != folds2[i].Test[j] {
				t.Fatalf("Splitters from the same seed disagree at "+
					"fold %d.", i)
			}
		}
	}
}

func TestReadConfigErrors(t *testing.T) {
	table := []struct{ name, text string }{
		{"bad folds", "[fit.config]\nFolds = 1\n"},
		{"negative seed", "[fit.config]\nSeed = -3\n"},
		{"bad generator", "[fit.config]\nGenerator = meow\n"},
		{"bad bandwidth", "[fit.config]\nBandwidths = scott, meow\n"},
		{"bad bounds", "[fit.config]\nMinBandwidth = 1\nMaxBandwidth = 0.1\n"},
		{"zero min", "[fit.config]\nMinBandwidth = 0\n"},
		{"empty grid", "[fit.config]\nGridBandwidths = 0\n"},
		{"bad alpha", "[fit.config]\nAlphas = 0.5, 2\n"},
		{"future version", "[fit.config]\nVersion = 99.0.0\n"},
		{"unknown variable", "[fit.config]\nMeow = 7\n"},
		{"wrong header", "[meow.config]\nFolds = 3\n"},
	}

	for _, test := range table {
		fname, cleanup := writeConfig(t, test.text)
		_, err := ReadConfig(fname)
		cleanup()
		if err == nil {
			t.Errorf("ReadConfig() accepted a config with %s.", test.name)
		}
	}

	if _, err := ReadConfig("does_not_exist.config"); err == nil {
		t.Errorf("ReadConfig() accepted a missing file.")
	}
}

func TestExampleConfigParses(t *testing.T) {
	fname, cleanup := writeConfig(t, ExampleConfig())
	defer cleanup()

	cfg, err := ReadConfig(fname)
	if err != nil {
		t.Fatalf("ReadConfig(ExampleConfig()) error: %v", err)
	}

	def := DefaultConfig()
	if cfg.Folds != def.Folds || cfg.Seed != def.Seed ||
		!strings.EqualFold(cfg.Generator, def.Generator) ||
		cfg.MinBandwidth != def.MinBandwidth ||
		cfg.MaxBandwidth != def.MaxBandwidth ||
		cfg.GridBandwidths != def.GridBandwidths {
		t.Errorf("ExampleConfig() does not round-trip to the defaults.")
	}
}
