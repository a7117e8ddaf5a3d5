// Package lineengine implements the line algorithm: from an origin, a
// fan of rays in directions rescaled to the search rectangle's aspect
// ratio, each extended by certified jumps until it saturates or reaches
// the rectangle's boundary.
package lineengine

import (
	"context"
	"math"
	"math/cmplx"

	"github.com/cwbudde/stabregion/internal/catalog"
	"github.com/cwbudde/stabregion/internal/diag"
	"github.com/cwbudde/stabregion/internal/maximize"
	"github.com/cwbudde/stabregion/internal/minimize"
	"github.com/cwbudde/stabregion/internal/wpool"
	"github.com/cwbudde/stabregion/internal/wspace"
)

// limitShrink is the multiplicative safety factor applied to the
// in-rectangle distance limit computed for each ray, so a ray never lands
// exactly on the boundary (where the predicate's sense can be ambiguous
// due to floating-point rounding).
const limitShrink = 0.9999

// Ray is a single certified radial segment from an origin.
type Ray struct {
	Origin   catalog.Par
	Angle    float64
	Length   float64
	Segments []float64 // non-nil only in verbose mode
}

// RayFan is every ray spawned from one origin, plus the origin's nu.
type RayFan struct {
	Origin catalog.Par
	Rays   []Ray
	Nu     int
}

// Run produces the RayFan for a single origin. bounds, if non-nil, records
// the cross-call (min_w, max_w) diagnostic per §4.4/§9.
func Run(ctx context.Context, cfg catalog.LineConfiguration, origin catalog.Par, nu int, verbose bool, pool *wspace.Pool, bounds *diag.WBounds) RayFan {
	angles := spawnAngles(cfg.RayCount, cfg.Limits)
	wLog := cfg.GetLogSpace()

	rays := make([]Ray, len(angles))
	for i, alpha := range angles {
		rays[i] = computeRay(cfg, origin, alpha, wLog, verbose, pool, bounds)
	}

	return RayFan{Origin: origin, Rays: rays, Nu: nu}
}

// RunAll runs Run for every configured origin concurrently via p, blocking
// until every fan has been computed. bounds, if non-nil, accumulates the
// (min_w, max_w) diagnostic across every origin and every worker goroutine.
func RunAll(ctx context.Context, cfg catalog.LineConfiguration, nuOf func(catalog.Par) int, verbose bool, p *wpool.Pool, scratch *wspace.Pool, bounds *diag.WBounds) ([]RayFan, error) {
	fans := make([]RayFan, len(cfg.Origins))
	errs := make(chan error, len(cfg.Origins))

	for i, origin := range cfg.Origins {
		i, origin := i, origin
		err := p.Submit(ctx, func() {
			nu := nuOf(origin)
			fans[i] = Run(ctx, cfg, origin, nu, verbose, scratch, bounds)
			errs <- nil
		})
		if err != nil {
			return nil, err
		}
	}
	for range cfg.Origins {
		if err := <-errs; err != nil {
			return nil, err
		}
	}
	return fans, nil
}

// spawnAngles generates rayCount equally spaced angles in (-pi, pi], then
// anisotropically rescales each so that ray density looks uniform across
// limits' rectangle rather than uniform in angle.
func spawnAngles(rayCount int, limits catalog.Limits) []float64 {
	angles := make([]float64, rayCount)
	aspect := limits.P1Span() / limits.P2Span()

	for i := 0; i < rayCount; i++ {
		alpha := -math.Pi + 2*math.Pi*float64(i+1)/float64(rayCount)
		angles[i] = rescaleAngle(alpha, aspect)
	}
	return angles
}

func rescaleAngle(alpha, aspect float64) float64 {
	quadrantCorrection := 0.0
	switch {
	case alpha < -math.Pi/2:
		quadrantCorrection = -math.Pi
	case alpha > math.Pi/2:
		quadrantCorrection = math.Pi
	}
	return math.Atan(math.Tan(alpha)/aspect) + quadrantCorrection
}

// deltaRel2Abs converts a relative-to-domain delta to an absolute value
// along direction alpha, returning +Inf when cos(alpha) is zero to within
// rounding (|cos(alpha)| < 1e-12; the limit alone then controls the ray).
func deltaRel2Abs(delta catalog.Delta, limits catalog.Limits, alpha float64) float64 {
	if delta.IsAbsolute() {
		return delta.Abs()
	}
	c := math.Cos(alpha)
	if math.Abs(c) < 1e-12 {
		return math.Inf(1)
	}
	p1Delta := math.Abs(limits.P1Span() * delta.Rel() / c)
	p2Delta := math.Abs(limits.P2Span() * delta.Rel() / c)
	return math.Min(p1Delta, p2Delta)
}

// rectangleLimit returns the largest theta for which origin +
// theta*(cos alpha, sin alpha) stays inside limits, shrunk by
// limitShrink.
func rectangleLimit(origin catalog.Par, alpha float64, limits catalog.Limits) float64 {
	c, s := math.Cos(alpha), math.Sin(alpha)
	pred := func(theta float64) bool {
		p := catalog.Par{P1: origin.P1 + theta*c, P2: origin.P2 + theta*s}
		return limits.Contains(p)
	}
	raw := maximize.GetMaximumCondition(pred, 1e-6, math.Inf(1))
	return raw * limitShrink
}

func computeRay(cfg catalog.LineConfiguration, origin catalog.Par, alpha float64, wLog []float64, verbose bool, pool *wspace.Pool, bounds *diag.WBounds) Ray {
	limit := rectangleLimit(origin, alpha, cfg.Limits)
	delta := deltaRel2Abs(cfg.Delta, cfg.Limits, alpha)

	theta := 0.0
	var segments []float64
	if verbose {
		segments = []float64{0}
	}

	for {
		jump := certifiedJump(cfg, origin, alpha, theta, wLog, pool, bounds)
		jump *= cfg.Safeguard
		if jump <= delta {
			break
		}
		theta += jump
		if verbose {
			segments = append(segments, theta)
		}
		if theta >= limit {
			theta = limit
			break
		}
	}

	return Ray{Origin: origin, Angle: alpha, Length: theta, Segments: segments}
}

// certifiedJump finds the largest deltaTheta such that deltaTheta is
// strictly less than min_{w>0} |f(iw; p)| / L(w, origin, alpha, theta,
// theta+deltaTheta), where p = origin + theta*(cos alpha, sin alpha).
func certifiedJump(cfg catalog.LineConfiguration, origin catalog.Par, alpha, theta float64, wLog []float64, pool *wspace.Pool, bounds *diag.WBounds) float64 {
	c, s := math.Cos(alpha), math.Sin(alpha)
	p := catalog.Par{P1: origin.P1 + theta*c, P2: origin.P2 + theta*s}
	numerator := wspace.Magnitudes(pool, cfg.System, p, wLog)

	pred := func(deltaTheta float64) bool {
		d := func(w float64) float64 {
			return cfg.System.LineDenominator(w, origin, alpha, theta, theta+deltaTheta)
		}
		phi := func(w float64) float64 {
			return cmplx.Abs(cfg.System.F(complex(0, w), p)) / d(w)
		}
		bound := minimize.Slow(wLog, numerator, d, phi, bounds)
		return deltaTheta < bound
	}
	return maximize.GetMaximumCondition(pred, 1e-6, math.Inf(1))
}
