package nndist

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/rmera/nndist/histo"
)

func TestFileSinkNames(Te *testing.T) {
	F := &FileSink{Dir: "out", Prefix: DefaultPrefix}
	if n := F.DataName(1, 100); n != filepath.Join("out", "dppc_p_nnfr1_to_fr100.dat") {
		Te.Errorf("wrong data file name %s", n)
	}
	if n := F.PlotName(3, -1); n != filepath.Join("out", "dppc_p_nn_fr3_to_fr-1") {
		Te.Errorf("wrong plot name %s", n)
	}
}

func TestFileSinkData(Te *testing.T) {
	F := &FileSink{Dir: Te.TempDir(), Prefix: DefaultPrefix}
	sample := []float64{1, 5, 1.5, 2.000001}
	if err := F.WriteData(1, 2, sample); err != nil {
		Te.Fatal(err)
	}
	f, err := os.Open(F.DataName(1, 2))
	if err != nil {
		Te.Fatal(err)
	}
	defer f.Close()
	s := bufio.NewScanner(f)
	var lines []string
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if len(lines) != len(sample) {
		Te.Fatalf("expected %d lines, got %d", len(sample), len(lines))
	}
	if lines[0] != "1.000000000000000000e+00" {
		Te.Errorf("unexpected format %q", lines[0])
	}
	for i, l := range lines {
		v, err := strconv.ParseFloat(l, 64)
		if err != nil || v != sample[i] {
			Te.Errorf("line %d: %q does not hold %v", i, l, sample[i])
		}
	}
}

func TestFileSinkHistogram(Te *testing.T) {
	F := &FileSink{Dir: Te.TempDir(), Prefix: "x_", JSON: true}
	h := histo.NewData(histo.Dividers(20, 1), []float64{4, 4.5, 5, 5.2, 6})
	if err := F.RenderHistogram(1, 2, h); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(F.PlotName(1, 2) + ".png"); err != nil {
		Te.Error(err)
	}
	b, err := os.ReadFile(F.PlotName(1, 2) + ".json")
	if err != nil {
		Te.Fatal(err)
	}
	h2 := new(histo.Data)
	if err := json.Unmarshal(b, h2); err != nil {
		Te.Fatal(err)
	}
	if h2.Total() != 5 {
		Te.Errorf("expected 5 values in the decoded histogram, got %d", h2.Total())
	}
}

func TestFileSinkDistributions(Te *testing.T) {
	F := &FileSink{Dir: Te.TempDir(), Prefix: "x_", JSON: true}
	m := histo.NewMatrix(2, 1, histo.Dividers(10, 1))
	m.NewHisto(0, 0, nil, []float64{1, 1.5, 2}, 0)
	m.NewHisto(1, 0, nil, []float64{3, 4, 5, 6}, 1)
	if err := F.RenderDistributions(1, 3, m); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(F.distName(1, 3) + ".png"); err != nil {
		Te.Error(err)
	}
	b, err := os.ReadFile(F.distName(1, 3) + ".json")
	if err != nil {
		Te.Fatal(err)
	}
	m2 := new(histo.Matrix)
	if err := json.Unmarshal(b, m2); err != nil {
		Te.Fatal(err)
	}
	if r, c := m2.Dims(); r != 2 || c != 1 {
		Te.Fatalf("wrong dimensions after decoding: %d x %d", r, c)
	}
	if m2.View(1, 0).Total() != 4 || m2.View(1, 0).ID() != 1 {
		Te.Errorf("wrong second histogram after decoding: %v", m2.View(1, 0))
	}
}

func TestAnalyze(Te *testing.T) {
	dir := Te.TempDir()
	path := filepath.Join(dir, "traj.xyz")
	if err := os.WriteFile(path, []byte(fiveFrames()), 0o644); err != nil {
		Te.Fatal(err)
	}
	c := NewConfig(path, 1, LastFrame)
	c.OutDir = dir
	res, err := Analyze(c)
	if err != nil {
		Te.Fatal(err)
	}
	if res.End != 5 {
		Te.Errorf("expected 5 frames, got %d", res.End)
	}
	F := NewFileSink(c)
	for _, name := range []string{F.DataName(1, 5), F.PlotName(1, 5) + ".png"} {
		if _, err := os.Stat(name); err != nil {
			Te.Error(err)
		}
	}
	c.Mode = ModeTimeSeries
	if _, err := Analyze(c); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(F.tsName(1, 5) + ".png"); err != nil {
		Te.Error(err)
	}
	c.Mode = ModeDistribution
	if _, err := Analyze(c); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(F.distName(1, 5) + ".png"); err != nil {
		Te.Error(err)
	}
}
