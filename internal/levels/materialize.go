package levels

import (
	"math/rand"

	"github.com/Jamess-Nguyen/ai-flappy-bird/internal/sim"
)

// floorClearance is how far above the floor every gap must end.
const floorClearance = 10

// Materialize validates a level and builds a simulation world from it.
// The floor is sampled uniformly from the level's band (deterministic per
// seed), then every requested gap is clamped into the feasible vertical band
// the floor leaves. Gap heights are always preserved exactly.
func Materialize(lvl Level, cfg sim.Config, seed int64) (*sim.World, error) {
	if err := lvl.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	floorY := SampleFloor(lvl.Floor, cfg, rng)
	pipes := PlacePipes(lvl.Pipes, floorY)

	return sim.NewWorld(cfg, floorY, pipes)
}

// SampleFloor picks a floor position uniformly (inclusive) from the band.
// An unset or inverted band falls back to the bottom quarter of the field.
func SampleFloor(band FloorBand, cfg sim.Config, rng *rand.Rand) float64 {
	min, max := band.Min, band.Max
	if min <= 0 || max < min {
		min = int(cfg.ScreenH * 0.75)
		max = int(cfg.ScreenH)
	}
	return float64(min + rng.Intn(max-min+1))
}

// PlacePipes turns placement requests into pipes against a known floor.
// Each gap center is clamped into [halfGap, floor-clearance-halfGap]; when
// that band is inverted (gap taller than the available space) the gap is
// centered on the band's midpoint instead of failing. The decision logic's
// defensive apex fallback relies on gaps occasionally landing near-infeasibly
// close to the floor, so this must not be "fixed" to reject them.
func PlacePipes(reqs []PipeRequest, floorY float64) []sim.Pipe {
	pipes := make([]sim.Pipe, 0, len(reqs))
	for _, req := range reqs {
		halfGap := req.GapHeight / 2
		lo := halfGap
		hi := floorY - floorClearance - halfGap

		center := req.GapCenter
		switch {
		case lo > hi:
			center = (lo + hi) / 2
		case center < lo:
			center = lo
		case center > hi:
			center = hi
		}

		pipes = append(pipes, sim.Pipe{
			X:         req.X,
			GapTop:    center - halfGap,
			GapBottom: center + halfGap,
		})
	}
	return pipes
}
