// Package autopilot implements the rule-based jump decision for the flappy
// simulation. The decision is a pure function of one snapshot: an ordered
// list of rules is evaluated top-down and the first rule that claims the
// frame decides. The function keeps no state between calls.
//
// The cascade has four leaves: floor emergency, bottom-pipe emergency, apex
// climb (gaps in the upper half of the field) and bottom-pipe bounce (gaps in
// the lower half). The apex leaf carries a defensive fallback for gaps placed
// so low that apex targeting is geometrically impossible.
package autopilot

import "github.com/Jamess-Nguyen/ai-flappy-bird/internal/sim"

// Rule names, in evaluation order.
const (
	RuleFloorEmergency = "floor-emergency"
	RulePipeEmergency  = "pipe-emergency"
	RuleNoPipe         = "no-pipe"
	RuleApexFallback   = "apex-fallback"
	RuleApex           = "apex"
	RuleBottomBounce   = "bottom-bounce"
)

const (
	// emergencyRange is how close (in world units) a pipe must be before the
	// bottom-pipe emergency check runs. Open interval: a pipe at exactly the
	// pilot's x is already overlapping and no longer approached.
	emergencyRange = 150

	// emergencySteps is how many frames ahead the emergency check simulates.
	emergencySteps = 5

	// emergencySlack widens the emergency collision test by a few units to
	// catch jumps that were made slightly too early.
	emergencySlack = 5

	// minSafetyMargin floors the size-proportional collision buffer.
	minSafetyMargin = 5

	// floorFallbackBand is how close the apex altitude floor may get to the
	// real floor before apex targeting is abandoned for bottom bouncing.
	floorFallbackBand = 20
)

// Decision is the outcome of one evaluation: whether to jump and which rule
// decided it.
type Decision struct {
	Jump bool
	Rule string
}

// frame holds the quantities every rule reasons over, derived once per call.
type frame struct {
	snap       sim.Snapshot
	margin     float64 // max(0.1*h, 0.1*w, 5)
	nextBottom float64 // pilot bottom edge one frame ahead, no jump
	apexRise   float64 // rise of one jump: impulse^2 / (2*gravity)
}

// rule decides one frame. claimed reports whether this rule matched; once a
// rule claims the frame, no later rule is consulted.
type rule struct {
	name string
	eval func(f *frame) (jump, claimed bool)
}

// rules is the priority cascade, highest priority first.
var rules = []rule{
	{RuleFloorEmergency, floorEmergency},
	{RulePipeEmergency, pipeEmergency},
	{RuleNoPipe, noPipe},
	{RuleApexFallback, apexFallback},
	{RuleApex, apex},
	{RuleBottomBounce, bottomBounce},
}

// Decide evaluates the rule cascade for one snapshot.
func Decide(snap sim.Snapshot) Decision {
	f := derive(snap)
	for _, r := range rules {
		if jump, claimed := r.eval(&f); claimed {
			return Decision{Jump: jump, Rule: r.name}
		}
	}
	// Unreachable: bottomBounce claims every frame that gets that far.
	return Decision{Rule: RuleNoPipe}
}

// ShouldJump is the plain boolean form of Decide.
func ShouldJump(snap sim.Snapshot) bool {
	return Decide(snap).Jump
}

func derive(snap sim.Snapshot) frame {
	p := snap.Pilot

	margin := p.Height * 0.1
	if w := p.Width * 0.1; w > margin {
		margin = w
	}
	if margin < minSafetyMargin {
		margin = minSafetyMargin
	}

	nextVelocity := p.Velocity + snap.Gravity
	nextY := p.Y + nextVelocity

	apexRise := 0.0
	if snap.Gravity > 0 {
		apexRise = snap.JumpImpulse * snap.JumpImpulse / (2 * snap.Gravity)
	}

	return frame{
		snap:       snap,
		margin:     margin,
		nextBottom: nextY + p.Height,
		apexRise:   apexRise,
	}
}

// floorEmergency keeps the pilot off the floor no matter what the pipes look
// like. It claims the frame only when a jump is needed.
func floorEmergency(f *frame) (bool, bool) {
	if f.nextBottom+f.margin >= f.snap.FloorY {
		return true, true
	}
	return false, false
}

// pipeEmergency catches collision courses with the bottom pipe that the
// strategy rules missed, by simulating a few frames of free fall. It
// intentionally duplicates part of the bottom-bounce logic as a safety net.
func pipeEmergency(f *frame) (bool, bool) {
	pipe := f.snap.CurrentPipe
	if pipe == nil {
		return false, false
	}
	distance := pipe.X - f.snap.Pilot.X
	if distance <= 0 || distance >= emergencyRange {
		return false, false
	}

	y := f.snap.Pilot.Y
	velocity := f.snap.Pilot.Velocity
	for i := 0; i < emergencySteps; i++ {
		velocity += f.snap.Gravity
		y += velocity
	}
	predictedBottom := y + f.snap.Pilot.Height

	if predictedBottom+emergencySlack >= pipe.GapBottom {
		return true, true
	}
	return false, false
}

// noPipe claims every frame without a current pipe: floor safety already ran,
// so there is nothing left to do.
func noPipe(f *frame) (bool, bool) {
	if f.snap.CurrentPipe == nil {
		return false, true
	}
	return false, false
}

// minimumY is the altitude floor for the apex strategy: jumping at this
// height puts the jump's apex 3/4 of the way up the gap.
func minimumY(f *frame) float64 {
	pipe := f.snap.CurrentPipe
	target := pipe.GapBottom - pipe.GapHeight()*0.75
	return target + f.apexRise
}

// apexFallback claims upper-half gaps whose computed altitude floor conflicts
// with the real floor (gap too low, floor too high). Apex targeting is not
// geometrically valid there, so it bounces along the gap bottom instead.
func apexFallback(f *frame) (bool, bool) {
	pipe := f.snap.CurrentPipe
	if pipe == nil || pipe.GapCenter() > f.snap.ScreenH/2 {
		return false, false
	}
	if minimumY(f) < f.snap.FloorY-floorFallbackBand {
		return false, false
	}
	return f.nextBottom+f.margin >= pipe.GapBottom, true
}

// apex claims the remaining upper-half gaps: jump whenever the pilot is at or
// below the altitude floor, producing a continuous bounce-and-climb rather
// than a one-shot action.
func apex(f *frame) (bool, bool) {
	pipe := f.snap.CurrentPipe
	if pipe == nil || pipe.GapCenter() > f.snap.ScreenH/2 {
		return false, false
	}
	return f.snap.Pilot.Y >= minimumY(f), true
}

// bottomBounce claims lower-half gaps: treat the gap bottom as a temporary
// floor and jump just before hitting it. Same shape as floorEmergency,
// parameterized on the gap boundary.
func bottomBounce(f *frame) (bool, bool) {
	pipe := f.snap.CurrentPipe
	if pipe == nil {
		return false, false
	}
	return f.nextBottom+f.margin >= pipe.GapBottom, true
}
