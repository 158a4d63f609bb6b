package levels

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/Jamess-Nguyen/ai-flappy-bird/internal/sim"
)

func TestBuiltInCatalog(t *testing.T) {
	catalog := BuiltIn()

	wantIDs := []string{"floor_test", "hard", "marathon", "medium", "simple"}
	if len(catalog) != len(wantIDs) {
		t.Fatalf("Catalog size: got %d, want %d", len(catalog), len(wantIDs))
	}
	for i, id := range wantIDs {
		if catalog[i].ID != id {
			t.Errorf("Catalog[%d]: got %q, want %q", i, catalog[i].ID, id)
		}
	}

	for _, lvl := range catalog {
		if err := lvl.Validate(); err != nil {
			t.Errorf("Built-in level %s fails validation: %v", lvl.ID, err)
		}
	}
}

func TestMarathonGeneration(t *testing.T) {
	lvl, ok := Get("marathon")
	if !ok {
		t.Fatal("marathon missing from catalog")
	}

	if len(lvl.Pipes) != 200 {
		t.Fatalf("Marathon pipe count: got %d, want 200", len(lvl.Pipes))
	}

	prevX := lvl.Pipes[0].X
	for i, p := range lvl.Pipes[1:] {
		if p.X-prevX != 200 {
			t.Fatalf("Marathon spacing broke at pipe %d: %v -> %v", i+1, prevX, p.X)
		}
		prevX = p.X
	}

	// Gap centers cycle over ten values, heights over five
	if lvl.Pipes[0].GapCenter != 150 || lvl.Pipes[9].GapCenter != 510 {
		t.Errorf("Gap center cycle wrong: first %v, tenth %v", lvl.Pipes[0].GapCenter, lvl.Pipes[9].GapCenter)
	}
	if lvl.Pipes[10].GapCenter != lvl.Pipes[0].GapCenter {
		t.Error("Gap centers should repeat every 10 pipes")
	}
	if lvl.Pipes[5].GapHeight != lvl.Pipes[0].GapHeight {
		t.Error("Gap heights should repeat every 5 pipes")
	}
}

func TestValidateRejectsBadLevels(t *testing.T) {
	cases := []struct {
		name string
		lvl  Level
	}{
		{"no id", Level{}},
		{"zero gap height", Level{ID: "x", Pipes: []PipeRequest{{X: 100, GapCenter: 300}}}},
		{"descending x", Level{ID: "x", Pipes: []PipeRequest{
			{X: 400, GapCenter: 300, GapHeight: 150},
			{X: 200, GapCenter: 300, GapHeight: 150},
		}}},
	}

	for _, tc := range cases {
		if err := tc.lvl.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestSampleFloorStaysInBand(t *testing.T) {
	cfg := sim.DefaultConfig()
	band := FloorBand{Min: 480, Max: 580}
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		floor := SampleFloor(band, cfg, rng)
		if floor < 480 || floor > 580 {
			t.Fatalf("Floor %v outside band [480, 580]", floor)
		}
	}
}

func TestSampleFloorFallbackBand(t *testing.T) {
	cfg := sim.DefaultConfig()
	rng := rand.New(rand.NewSource(1))

	// Unset and inverted bands fall back to the bottom quarter of the field.
	for _, band := range []FloorBand{{}, {Min: 500, Max: 400}} {
		floor := SampleFloor(band, cfg, rng)
		if floor < 450 || floor > 600 {
			t.Errorf("Fallback floor %v outside bottom quarter for band %+v", floor, band)
		}
	}
}

func TestPlacePipesPreservesGapHeight(t *testing.T) {
	reqs := []PipeRequest{
		{X: 400, GapCenter: 300, GapHeight: 150},
		{X: 650, GapCenter: 250, GapHeight: 145}, // Odd height survives exactly
	}

	pipes := PlacePipes(reqs, 550)
	for i, p := range pipes {
		want := reqs[i].GapHeight
		if got := p.GapBottom - p.GapTop; got != want {
			t.Errorf("Pipe %d gap height: got %v, want %v", i, got, want)
		}
		center := (p.GapTop + p.GapBottom) / 2
		if center != reqs[i].GapCenter {
			t.Errorf("Pipe %d center moved without need: got %v, want %v", i, center, reqs[i].GapCenter)
		}
	}
}

func TestPlacePipesClampsCenter(t *testing.T) {
	floorY := 550.0

	// Too high: the center clamps to halfGap so the gap top sits at 0.
	high := PlacePipes([]PipeRequest{{X: 400, GapCenter: 10, GapHeight: 150}}, floorY)[0]
	if high.GapTop != 0 {
		t.Errorf("High gap top: got %v, want 0", high.GapTop)
	}

	// Too low: the gap bottom clamps to floor minus clearance.
	low := PlacePipes([]PipeRequest{{X: 400, GapCenter: 580, GapHeight: 150}}, floorY)[0]
	if low.GapBottom != floorY-floorClearance {
		t.Errorf("Low gap bottom: got %v, want %v", low.GapBottom, floorY-floorClearance)
	}

	// Height preserved through both clamps
	if h := high.GapBottom - high.GapTop; h != 150 {
		t.Errorf("Clamped gap height: got %v, want 150", h)
	}
	if h := low.GapBottom - low.GapTop; h != 150 {
		t.Errorf("Clamped gap height: got %v, want 150", h)
	}
}

func TestPlacePipesInvertedBand(t *testing.T) {
	// A gap taller than the space above the floor: the feasible band is
	// inverted, so the gap is centered on the band's midpoint.
	floorY := 100.0
	pipe := PlacePipes([]PipeRequest{{X: 400, GapCenter: 50, GapHeight: 150}}, floorY)[0]

	wantCenter := (75.0 + 15.0) / 2 // (halfGap + floor-clearance-halfGap) / 2
	center := (pipe.GapTop + pipe.GapBottom) / 2
	if center != wantCenter {
		t.Errorf("Inverted band center: got %v, want %v", center, wantCenter)
	}
	if h := pipe.GapBottom - pipe.GapTop; h != 150 {
		t.Errorf("Inverted band gap height: got %v, want 150", h)
	}
}

func TestMaterializeDeterministic(t *testing.T) {
	cfg := sim.DefaultConfig()
	lvl, _ := Get("medium")

	w1, err := Materialize(lvl, cfg, 42)
	if err != nil {
		t.Fatalf("Materialize failed: %v", err)
	}
	w2, err := Materialize(lvl, cfg, 42)
	if err != nil {
		t.Fatalf("Materialize failed: %v", err)
	}

	if w1.FloorY != w2.FloorY {
		t.Errorf("Floor diverged for equal seeds: %v vs %v", w1.FloorY, w2.FloorY)
	}
	for i := range w1.Pipes {
		if w1.Pipes[i] != w2.Pipes[i] {
			t.Errorf("Pipe %d diverged: %+v vs %+v", i, w1.Pipes[i], w2.Pipes[i])
		}
	}

	w3, err := Materialize(lvl, cfg, 43)
	if err != nil {
		t.Fatalf("Materialize failed: %v", err)
	}
	if w3.FloorY < float64(lvl.Floor.Min) || w3.FloorY > float64(lvl.Floor.Max) {
		t.Errorf("Floor %v outside level band %+v", w3.FloorY, lvl.Floor)
	}
}

func TestMaterializeRejectsInvalidLevel(t *testing.T) {
	cfg := sim.DefaultConfig()
	bad := Level{ID: "bad", Pipes: []PipeRequest{{X: 400, GapCenter: 300, GapHeight: -1}}}

	if _, err := Materialize(bad, cfg, 1); err == nil {
		t.Error("Expected error for invalid level")
	}
}

func TestLoaderReadsYAML(t *testing.T) {
	dir := t.TempDir()
	level := `id: custom
name: Custom
description: A test level
floor: {min: 500, max: 600}
pipes:
  - {x: 400, gap_center: 300, gap_height: 150}
  - {x: 700, gap_center: 250, gap_height: 140}
`
	if err := os.WriteFile(filepath.Join(dir, "custom.yaml"), []byte(level), 0o644); err != nil {
		t.Fatal(err)
	}
	// Invalid files are skipped, not fatal
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("pipes: nope"), 0o644); err != nil {
		t.Fatal(err)
	}

	lvls, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) != 1 {
		t.Fatalf("Expected 1 valid level, got %d", len(lvls))
	}
	if lvls[0].ID != "custom" || len(lvls[0].Pipes) != 2 {
		t.Errorf("Loaded level wrong: %+v", lvls[0])
	}
	if lvls[0].Pipes[1].GapCenter != 250 {
		t.Errorf("Pipe fields wrong: %+v", lvls[0].Pipes[1])
	}
}

func TestFindPrefersBuiltIn(t *testing.T) {
	dir := t.TempDir()
	shadow := `id: simple
name: Impostor
floor: {min: 500, max: 600}
pipes:
  - {x: 400, gap_center: 300, gap_height: 150}
`
	if err := os.WriteFile(filepath.Join(dir, "simple.yaml"), []byte(shadow), 0o644); err != nil {
		t.Fatal(err)
	}

	lvl, err := Find("simple", dir)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if lvl.Name == "Impostor" {
		t.Error("Built-in level should shadow the custom file")
	}

	if _, err := Find("does-not-exist", dir); err == nil {
		t.Error("Expected error for unknown level")
	}
}

func TestAllMergesCustomLevels(t *testing.T) {
	dir := t.TempDir()
	level := `id: zz_custom
name: Custom
floor: {min: 500, max: 600}
pipes:
  - {x: 400, gap_center: 300, gap_height: 150}
`
	if err := os.WriteFile(filepath.Join(dir, "zz.yaml"), []byte(level), 0o644); err != nil {
		t.Fatal(err)
	}

	lvls, err := All(dir)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(lvls) != len(BuiltIn())+1 {
		t.Fatalf("Expected catalog plus one custom level, got %d", len(lvls))
	}
	if lvls[len(lvls)-1].ID != "zz_custom" {
		t.Errorf("Custom level missing or unsorted: last is %q", lvls[len(lvls)-1].ID)
	}
}
