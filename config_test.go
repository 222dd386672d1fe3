package nndist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rmera/nndist/traj/xyz"
)

func writeFile(Te *testing.T, name, content string) string {
	Te.Helper()
	path := filepath.Join(Te.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		Te.Fatal(err)
	}
	return path
}

func TestLoadConfigYAML(Te *testing.T) {
	path := writeFile(Te, "nndist.yaml", `traj: run.xyz
begin: 2
end: 10
mode: timeseries
bins: 200
json: true
`)
	c, err := LoadConfig(path)
	if err != nil {
		Te.Fatal(err)
	}
	if c.Traj != "run.xyz" || c.Begin != 2 || c.End != 10 || c.Mode != ModeTimeSeries || c.Bins != 200 || !c.JSON {
		Te.Errorf("wrong values decoded: %+v", c)
	}
	if c.BinWidth != DefaultBinWidth || c.Prefix != DefaultPrefix || c.Marker != xyz.DefaultMarker || c.DistBins != DefaultDistBins {
		Te.Errorf("defaults not set: %+v", c)
	}
	if err := c.Check(); err != nil {
		Te.Error(err)
	}
}

func TestLoadConfigTOML(Te *testing.T) {
	path := writeFile(Te, "nndist.toml", `traj = "run.xyz.gz"
begin = 3
mode = "distribution"
binwidth = 0.5
outdir = "results"
`)
	c, err := LoadConfig(path)
	if err != nil {
		Te.Fatal(err)
	}
	if c.Traj != "run.xyz.gz" || c.Begin != 3 || c.Mode != ModeDistribution || c.BinWidth != 0.5 || c.OutDir != "results" {
		Te.Errorf("wrong values decoded: %+v", c)
	}
	if c.End != LastFrame {
		Te.Errorf("a missing end should mean the last frame, got %d", c.End)
	}
	if err := c.Check(); err != nil {
		Te.Error(err)
	}
}

func TestLoadConfigErrors(Te *testing.T) {
	if _, err := LoadConfig(filepath.Join(Te.TempDir(), "none.yaml")); err == nil {
		Te.Error("expected an error for a missing file")
	}
	path := writeFile(Te, "bad.yaml", "begin: [1, 2\n")
	if _, err := LoadConfig(path); err == nil {
		Te.Error("expected a decoding error")
	}
}

func TestConfigCheck(Te *testing.T) {
	bad := map[string]func(c *Config){
		"notraj":   func(c *Config) { c.Traj = "" },
		"begin":    func(c *Config) { c.Begin = 0 },
		"end":      func(c *Config) { c.End = 1; c.Begin = 2 },
		"negend":   func(c *Config) { c.End = -2 },
		"mode":     func(c *Config) { c.Mode = "pie" },
		"bins":     func(c *Config) { c.Bins = 1 },
		"distbins": func(c *Config) { c.DistBins = 1 },
		"width":    func(c *Config) { c.BinWidth = -1 },
		"dt":       func(c *Config) { c.Dt = -0.1 },
	}
	for name, f := range bad {
		c := NewConfig("traj.xyz", 1, 5)
		f(c)
		if err := c.Check(); err == nil {
			Te.Errorf("%s: expected an error", name)
		}
	}
	if err := NewConfig("traj.xyz", 1, LastFrame).Check(); err != nil {
		Te.Error(err)
	}
}

func TestNewConfigFrames(Te *testing.T) {
	c := NewConfig("traj.xyz", 0, 3)
	if c.Begin != 0 {
		Te.Errorf("NewConfig changed the first frame to %d", c.Begin)
	}
	if err := c.Check(); err == nil {
		Te.Error("expected an error for frame 0")
	}
	c = NewConfig("traj.xyz", 2, 0)
	if c.End != 0 {
		Te.Errorf("NewConfig changed the last frame to %d", c.End)
	}
	if err := c.Check(); err == nil {
		Te.Error("expected an error for a last frame of 0")
	}
}
