// Package catalog holds the types of systems and search configurations,
// the sentinel errors, and the capability check (RequireCapability) the
// driver uses before running an algorithm. The tables of systems and named
// configurations, and their lookup, live in internal/preset.
package catalog

import "github.com/cwbudde/stabregion/internal/compiter"

// Par is a parameter point (p1, p2) in the search domain.
type Par struct {
	P1 float64
	P2 float64
}

// Limits is the axis-aligned search rectangle [P1Min,P1Max] x [P2Min,P2Max].
type Limits struct {
	P1Min, P1Max float64
	P2Min, P2Max float64
}

// P1Span returns P1Max - P1Min.
func (l Limits) P1Span() float64 { return l.P1Max - l.P1Min }

// P2Span returns P2Max - P2Min.
func (l Limits) P2Span() float64 { return l.P2Max - l.P2Min }

// Contains reports whether p lies within the closed rectangle.
func (l Limits) Contains(p Par) bool {
	if p.P1 < l.P1Min || p.P1 > l.P1Max {
		return false
	}
	if p.P2 < l.P2Min || p.P2 > l.P2Max {
		return false
	}
	return true
}

// DistanceToNearestSide returns the distance from p to the closest edge of
// the rectangle along either axis, used to bound pregion/ray growth when
// limits are enforced.
func (l Limits) DistanceToNearestSide(p Par) float64 {
	p1 := min(absF(p.P1-l.P1Min), absF(p.P1-l.P1Max))
	p2 := min(absF(p.P2-l.P2Min), absF(p.P2-l.P2Max))
	return min(p1, p2)
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// ContourConfiguration defines the Bromwich contour used by the winding
// engine: logarithmic sampling of the imaginary axis from w_min to w_max
// (both branches) plus a closing semicircle of radius w_max.
//
// Invariant: 0 < WMin < WMax, Steps >= 3.
type ContourConfiguration struct {
	WMin  float64
	WMax  float64
	Steps int
}

// LogSpace returns the contour's w-samples on [WMin, WMax].
func (c ContourConfiguration) LogSpace() compiter.Sequence {
	return compiter.LogSpace(c.WMin, c.WMax, c.Steps)
}

// Delta is a sum type: either an absolute tolerance or a tolerance expressed
// as a fraction of the search domain's span, resolved per-direction by the
// engines before being handed to the maximizer.
type Delta struct {
	abs      float64
	rel      float64
	isAbsolute bool
}

// AbsDelta constructs an absolute termination tolerance.
func AbsDelta(abs float64) Delta { return Delta{abs: abs, isAbsolute: true} }

// RelDelta constructs a tolerance expressed as a fraction of the domain span.
func RelDelta(rel float64) Delta { return Delta{rel: rel, isAbsolute: false} }

// IsAbsolute reports whether the delta is an absolute value.
func (d Delta) IsAbsolute() bool { return d.isAbsolute }

// Rel returns the fractional value; only meaningful when !IsAbsolute().
func (d Delta) Rel() float64 { return d.rel }

// Abs returns the absolute value; only meaningful when IsAbsolute().
func (d Delta) Abs() float64 { return d.abs }

// System is the immutable capability record for one characteristic-function
// family. A nil optional field means the corresponding algorithm cannot run
// on this system (see RequireCapability).
type System struct {
	Name       string
	Parameters [2]string

	// F evaluates the characteristic function; must be entire in s for
	// every p in the relevant Limits.
	F func(s complex128, p Par) complex128

	// LineDenominator, if present, is a provably-valid upper bound (via
	// analytic differentiation + interval arithmetic) on
	// |d f(iw; p + t*(cos theta, sin theta)) / dt| uniformly over t in
	// [thMin, thMax]. Required by the line engine.
	LineDenominator func(w float64, p Par, theta, thMin, thMax float64) float64

	// RegionFractionPrecalcNumerator returns |f(iw;p0)|/G(w,p0,eps) reusing
	// numerator samples already computed on wLog. Required by the region
	// engine.
	RegionFractionPrecalcNumerator func(numerator, wLog []float64, p0 Par, eps float64) compiter.Sequence

	// RegionFraction is the same ratio but recomputes the numerator on an
	// arbitrary linear w-grid. Required by the region engine.
	RegionFraction func(wLin []float64, p0 Par, eps float64) compiter.Sequence
}

// HasLineDenominator reports whether the line algorithm can run on sys.
func (s System) HasLineDenominator() bool { return s.LineDenominator != nil }

// HasRegionFraction reports whether the region algorithm can run on sys.
func (s System) HasRegionFraction() bool {
	return s.RegionFractionPrecalcNumerator != nil && s.RegionFraction != nil
}

// LineConfiguration is a static recipe for the line algorithm.
type LineConfiguration struct {
	Name    string
	System  System
	Limits  Limits
	Origins []Par

	Contour ContourConfiguration
	Delta   Delta
	Safeguard float64

	RayCount      int
	WStepsLinear  int
	LogSpaceMinW  float64
	LogSpaceMaxW  float64
	LogSpaceSteps int
}

// GetLogSpace returns the system's precomputed log-spaced w-grid for this
// configuration's minimization calls.
func (c LineConfiguration) GetLogSpace() []float64 {
	return compiter.Collect(compiter.LogSpace(c.LogSpaceMinW, c.LogSpaceMaxW, c.LogSpaceSteps))
}

// RegionConfiguration is a static recipe for the region algorithm.
type RegionConfiguration struct {
	Name    string
	System  System
	Limits  Limits
	Origins []Par

	Contour   ContourConfiguration
	Delta     Delta
	Safeguard float64

	SpawnCount      int
	EnforceLimits   bool
	MaxIter         int // 0 means no cap
	CheckObsoletion bool

	WStepsLinear  int
	LogSpaceMinW  float64
	LogSpaceMaxW  float64
	LogSpaceSteps int
}

// GetLogSpace returns the system's precomputed log-spaced w-grid for this
// configuration's minimization calls.
func (c RegionConfiguration) GetLogSpace() []float64 {
	return compiter.Collect(compiter.LogSpace(c.LogSpaceMinW, c.LogSpaceMaxW, c.LogSpaceSteps))
}
