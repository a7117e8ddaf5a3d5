// Package compiter provides restartable finite sample sequences used by the
// contour builder and the hybrid minimizer.
package compiter

import "math"

// Sequence is a lazy, restartable finite sequence of float64 values.
//
// Each is called once per traversal and may be called any number of times;
// implementations must not retain cursor state between calls. Returning
// false from fn stops the traversal early.
type Sequence interface {
	Len() int
	Each(fn func(i int, x float64) bool)
}

// Slice adapts a plain []float64 as a Sequence.
type Slice []float64

// Len returns the number of elements.
func (s Slice) Len() int { return len(s) }

// Each visits every element in order.
func (s Slice) Each(fn func(i int, x float64) bool) {
	for i, x := range s {
		if !fn(i, x) {
			return
		}
	}
}

// Collect materializes a Sequence into a []float64.
func Collect(s Sequence) []float64 {
	out := make([]float64, 0, s.Len())
	s.Each(func(_ int, x float64) bool {
		out = append(out, x)
		return true
	})
	return out
}

type logSpace struct {
	a, b float64
	n    int
}

// LogSpace returns an n-point strictly-increasing sequence with x[0]=a,
// x[n-1]=b, logarithmically spaced (log(x) linear in the index). Requires
// a, b > 0 and n >= 1; for n == 1 the single point is a.
func LogSpace(a, b float64, n int) Sequence {
	return logSpace{a: a, b: b, n: n}
}

func (s logSpace) Len() int { return s.n }

func (s logSpace) Each(fn func(i int, x float64) bool) {
	if s.n <= 0 {
		return
	}
	if s.n == 1 {
		fn(0, s.a)
		return
	}
	logA := math.Log(s.a)
	logB := math.Log(s.b)
	step := (logB - logA) / float64(s.n-1)
	for i := 0; i < s.n; i++ {
		var x float64
		switch i {
		case 0:
			x = s.a
		case s.n - 1:
			x = s.b
		default:
			x = math.Exp(logA + step*float64(i))
		}
		if !fn(i, x) {
			return
		}
	}
}

type linSpace struct {
	a, b float64
	n    int
}

// LinSpace returns an n-point arithmetic sequence with x[0]=a, x[n-1]=b.
func LinSpace(a, b float64, n int) Sequence {
	return linSpace{a: a, b: b, n: n}
}

func (s linSpace) Len() int { return s.n }

func (s linSpace) Each(fn func(i int, x float64) bool) {
	if s.n <= 0 {
		return
	}
	if s.n == 1 {
		fn(0, s.a)
		return
	}
	step := (s.b - s.a) / float64(s.n-1)
	for i := 0; i < s.n; i++ {
		var x float64
		switch i {
		case 0:
			x = s.a
		case s.n - 1:
			x = s.b
		default:
			x = s.a + step*float64(i)
		}
		if !fn(i, x) {
			return
		}
	}
}

// Map returns a Sequence that applies fn to every element of s lazily.
func Map(s Sequence, fn func(x float64) float64) Sequence {
	return mapped{s: s, fn: fn}
}

type mapped struct {
	s  Sequence
	fn func(float64) float64
}

func (m mapped) Len() int { return m.s.Len() }

func (m mapped) Each(fn func(i int, x float64) bool) {
	m.s.Each(func(i int, x float64) bool {
		return fn(i, m.fn(x))
	})
}
