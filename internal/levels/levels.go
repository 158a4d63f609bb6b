// Package levels defines level configurations for the flappy simulation and
// turns them into materialized worlds. A level is a floor band plus an
// ordered list of pipe placement requests; materialization samples a floor
// from the band and clamps each requested gap into the vertical space the
// floor leaves available.
package levels

import (
	"fmt"
	"math"
	"sort"
)

// PipeRequest asks for a pipe at a horizontal position with a desired gap
// center and gap height. The center may be adjusted during materialization;
// the height never is.
type PipeRequest struct {
	X         float64 `yaml:"x"`
	GapCenter float64 `yaml:"gap_center"`
	GapHeight float64 `yaml:"gap_height"`
}

// FloorBand is the inclusive range the floor position is sampled from.
type FloorBand struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Level is a complete level definition.
type Level struct {
	ID          string        `yaml:"id"`
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Floor       FloorBand     `yaml:"floor"`
	Pipes       []PipeRequest `yaml:"pipes"`
}

// Validate reports the first structural problem with the level: non-finite
// coordinates, non-positive gap heights, or pipes out of ascending x order.
func (l Level) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("levels: level has no id")
	}
	prevX := math.Inf(-1)
	for i, p := range l.Pipes {
		if !isFinite(p.X) || !isFinite(p.GapCenter) || !isFinite(p.GapHeight) {
			return fmt.Errorf("levels: %s: pipe %d has non-finite values", l.ID, i)
		}
		if p.GapHeight <= 0 {
			return fmt.Errorf("levels: %s: pipe %d has gap height %v, must be positive", l.ID, i, p.GapHeight)
		}
		if p.X < prevX {
			return fmt.Errorf("levels: %s: pipe %d at x=%v breaks ascending order", l.ID, i, p.X)
		}
		prevX = p.X
	}
	return nil
}

// BuiltIn returns the built-in level catalog, sorted by ID.
func BuiltIn() []Level {
	lvls := []Level{
		{
			ID:          "simple",
			Name:        "Simple (1 Pipe)",
			Description: "Single pipe to test basic navigation",
			Floor:       FloorBand{Min: 500, Max: 600},
			Pipes: []PipeRequest{
				{X: 400, GapCenter: 300, GapHeight: 150},
			},
		},
		{
			ID:          "medium",
			Name:        "Medium (5 Pipes)",
			Description: "Five pipes with varying gaps",
			Floor:       FloorBand{Min: 480, Max: 600},
			Pipes: []PipeRequest{
				{X: 400, GapCenter: 300, GapHeight: 150},
				{X: 650, GapCenter: 250, GapHeight: 150},
				{X: 900, GapCenter: 350, GapHeight: 140},
				{X: 1150, GapCenter: 280, GapHeight: 160},
				{X: 1400, GapCenter: 320, GapHeight: 150},
			},
		},
		{
			ID:          "hard",
			Name:        "Hard (10 Pipes)",
			Description: "Ten pipes with challenging gaps",
			Floor:       FloorBand{Min: 450, Max: 600},
			Pipes: []PipeRequest{
				{X: 400, GapCenter: 300, GapHeight: 150},
				{X: 650, GapCenter: 200, GapHeight: 140},
				{X: 900, GapCenter: 380, GapHeight: 140},
				{X: 1150, GapCenter: 250, GapHeight: 145},
				{X: 1400, GapCenter: 350, GapHeight: 140},
				{X: 1650, GapCenter: 220, GapHeight: 150},
				{X: 1900, GapCenter: 330, GapHeight: 140},
				{X: 2150, GapCenter: 270, GapHeight: 145},
				{X: 2400, GapCenter: 310, GapHeight: 140},
				{X: 2650, GapCenter: 290, GapHeight: 150},
			},
		},
		{
			ID:          "floor_test",
			Name:        "Floor Test",
			Description: "No pipes, just a randomized floor",
			Floor:       FloorBand{Min: 450, Max: 550},
		},
		marathon(),
	}

	sort.Slice(lvls, func(i, j int) bool { return lvls[i].ID < lvls[j].ID })
	return lvls
}

// marathon generates the 200-pipe stress level: fixed spacing, gap centers
// cycling through the full field height, gap heights cycling 140..180.
func marathon() Level {
	pipes := make([]PipeRequest, 0, 200)
	for i := 0; i < 200; i++ {
		pipes = append(pipes, PipeRequest{
			X:         float64(450 + i*200),
			GapCenter: float64(150 + (i%10)*40),
			GapHeight: float64(140 + (i%5)*10),
		})
	}
	return Level{
		ID:          "marathon",
		Name:        "Marathon (200 Pipes!)",
		Description: "Ultimate stress test with 200 pipes",
		Floor:       FloorBand{Min: 480, Max: 580},
		Pipes:       pipes,
	}
}

// Get looks up a built-in level by ID.
func Get(id string) (Level, bool) {
	for _, l := range BuiltIn() {
		if l.ID == id {
			return l, true
		}
	}
	return Level{}, false
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
