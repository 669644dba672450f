package scale

import (
	"math"

	moremath "github.com/aclements/go-moremath/scale"
)

// Locator produces ordered tick positions inside a domain. Major ticks get
// labels; minor ticks only marks and optional grid lines.
type Locator interface {
	Ticks(d Domain) []float64
	MinorTicks(d Domain) []float64
}

// Default MaxN tuning.
const (
	// DefaultMaxNBins caps the major tick count of the MaxN locator.
	DefaultMaxNBins = 10

	// DefaultMaxNMinorBins caps the minor tick count of the MaxN locator.
	DefaultMaxNMinorBins = 50
)

// maxNSteps are the step multipliers tried per decade.
var maxNSteps = []float64{1, 2, 2.5, 5}

// piSteps are the pi-multiple step candidates.
var piSteps = []float64{
	math.Pi / 8, math.Pi / 6, math.Pi / 4, math.Pi / 3, math.Pi / 2, math.Pi,
}

// =============================================================================
// MaxN
// =============================================================================

// MaxN places at most Bins major ticks on round-numbered steps: the smallest
// step of the form {1, 2, 2.5, 5} x 10^k that keeps the count under Bins.
type MaxN struct {
	// Bins caps the major tick count. Zero resolves to DefaultMaxNBins.
	Bins int

	// MinorBins caps the minor tick count. Zero resolves to
	// DefaultMaxNMinorBins.
	MinorBins int

	// steps overrides the step candidates; nil means maxNSteps.
	steps []float64
}

// NewPiMultiple returns a locator stepping in clean fractions and multiples
// of pi. Pair it with the pi-multiple formatter.
func NewPiMultiple(bins int) *MaxN {
	return &MaxN{Bins: bins, MinorBins: bins, steps: piSteps}
}

// Ticks implements [Locator].
func (l *MaxN) Ticks(d Domain) []float64 {
	bins := l.Bins
	if bins == 0 {
		bins = DefaultMaxNBins
	}
	return stepTicks(d, bins, l.stepCandidates())
}

// MinorTicks implements [Locator].
func (l *MaxN) MinorTicks(d Domain) []float64 {
	bins := l.MinorBins
	if bins == 0 {
		bins = DefaultMaxNMinorBins
	}
	return stepTicks(d, bins, l.stepCandidates())
}

func (l *MaxN) stepCandidates() []float64 {
	if l.steps != nil {
		return l.steps
	}
	return maxNSteps
}

// stepTicks finds the smallest candidate step that yields at most bins
// ticks, then emits every multiple of it covering the domain.
func stepTicks(d Domain, bins int, steps []float64) []float64 {
	span := d.Span()
	if span <= 0 || bins <= 0 {
		return nil
	}
	target := span / float64(bins)

	// Start near the right decade, then walk the candidate list.
	sc := math.Pow(10, math.Floor(math.Log10(target)))
	idx := 0
	step := func() float64 { return steps[idx] * sc }
	for step() > target {
		if idx == 0 {
			idx = len(steps)
			sc *= 0.1
		}
		idx--
	}
	for step() < target {
		idx++
		if idx == len(steps) {
			idx = 0
			sc *= 10
		}
	}
	st := step()

	vmin := math.Floor(d.Min/st) * st
	low := largestStepLE(d.Min-vmin, st)
	high := smallestStepGE(d.Max-vmin, st)

	ticks := make([]float64, 0, int(high-low)+1)
	for val := low; val <= high; val++ {
		ticks = append(ticks, vmin+val*st)
	}
	return ticks
}

func stepClose(a, b float64) bool { return math.Abs(a-b) < 1e-10 }

// largestStepLE returns the largest integer k with k*step <= value, tolerant
// of floating error at the boundary.
func largestStepLE(value, step float64) float64 {
	div, mod := math.Floor(value/step), math.Mod(value, step)
	if stepClose(mod/step, 1) {
		return div + 1
	}
	return div
}

// smallestStepGE returns the smallest integer k with k*step >= value.
func smallestStepGE(value, step float64) float64 {
	div, mod := math.Floor(value/step), math.Mod(value, step)
	if stepClose(mod/step, 0) {
		return div
	}
	return div + 1
}

// =============================================================================
// FixedStep
// =============================================================================

// FixedStep places ticks every Step data units, aligned on multiples of the
// step. Minor ticks subdivide each step in five.
type FixedStep struct {
	Step float64
}

// Ticks implements [Locator].
func (l FixedStep) Ticks(d Domain) []float64 {
	return fixedTicks(d, l.Step)
}

// MinorTicks implements [Locator].
func (l FixedStep) MinorTicks(d Domain) []float64 {
	return fixedTicks(d, l.Step/5)
}

func fixedTicks(d Domain, step float64) []float64 {
	if step <= 0 || d.Span() <= 0 {
		return nil
	}
	start := math.Ceil(d.Min/step-1e-10) * step
	var ticks []float64
	for v := start; v <= d.Max+step*1e-10; v += step {
		ticks = append(ticks, v)
	}
	return ticks
}

// =============================================================================
// Log
// =============================================================================

// LogTicks places major ticks at integer powers of Base. Minor ticks are the
// Base-1 linear subdivisions of each decade.
type LogTicks struct {
	Base float64
}

// Ticks implements [Locator].
func (l LogTicks) Ticks(d Domain) []float64 {
	return l.ticks(d, false)
}

// MinorTicks implements [Locator].
func (l LogTicks) MinorTicks(d Domain) []float64 {
	return l.ticks(d, true)
}

func (l LogTicks) ticks(d Domain, includeMinor bool) []float64 {
	base := l.Base
	if base == 0 {
		base = 10
	}
	if d.Min <= 0 || d.Max <= 0 || base <= 1 {
		return nil
	}
	logb := func(x float64) float64 { return math.Log(x) / math.Log(base) }
	minExp := int(math.Ceil(logb(d.Min) - 1e-10))
	maxExp := int(math.Floor(logb(d.Max) + 1e-10))

	var ticks []float64
	for exp := minExp; exp <= maxExp; exp++ {
		tick := math.Pow(base, float64(exp))
		if includeMinor {
			incr := tick / base
			for minor := 2 * incr; minor < tick && !stepClose(minor, tick); minor += incr {
				if minor >= d.Min {
					ticks = append(ticks, minor)
				}
			}
		}
		ticks = append(ticks, tick)
	}
	return ticks
}

// =============================================================================
// Auto (nice numbers)
// =============================================================================

// Auto delegates tick selection to the nice-number search in
// go-moremath, which picks the lowest tick level fitting Bins.
type Auto struct {
	// Bins caps the major tick count. Zero resolves to DefaultMaxNBins.
	Bins int
}

// Ticks implements [Locator].
func (l Auto) Ticks(d Domain) []float64 {
	major, _ := l.split(d)
	return major
}

// MinorTicks implements [Locator].
func (l Auto) MinorTicks(d Domain) []float64 {
	_, minor := l.split(d)
	return minor
}

func (l Auto) split(d Domain) (major, minor []float64) {
	if d.Span() <= 0 {
		return nil, nil
	}
	bins := l.Bins
	if bins == 0 {
		bins = DefaultMaxNBins
	}
	ls := moremath.Linear{Min: d.Min, Max: d.Max}
	return ls.Ticks(moremath.TickOptions{Max: bins})
}
