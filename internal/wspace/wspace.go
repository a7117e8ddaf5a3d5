// Package wspace provides pooled scratch buffers and a batched
// |f(iw; p)| evaluator used by the line and region engines
// wherever a system's characteristic function needs to be sampled across
// many frequencies at once.
package wspace

import (
	"sync"

	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/stabregion/internal/catalog"
)

// Buffer holds three same-length scratch slices: the real and imaginary
// parts of f(iw;p) at a batch of frequencies, and the output magnitudes.
type Buffer struct {
	re, im, out []float64
}

// Resize grows the buffer's slices to length n, reusing backing arrays
// when capacity allows, and returns the (re, im, out) views of length n.
func (b *Buffer) Resize(n int) (re, im, out []float64) {
	b.re = growTo(b.re, n)
	b.im = growTo(b.im, n)
	b.out = growTo(b.out, n)
	return b.re, b.im, b.out
}

func growTo(s []float64, n int) []float64 {
	if cap(s) >= n {
		return s[:n]
	}
	return make([]float64, n)
}

// Pool recycles Buffers across calls to Magnitudes, which the line and
// region engines use to sample |f| across the log-spaced frequency grid,
// avoiding a fresh scratch allocation per call.
type Pool struct {
	pool sync.Pool
}

// NewPool returns an empty Pool.
func NewPool() *Pool {
	return &Pool{pool: sync.Pool{New: func() any { return &Buffer{} }}}
}

// Get returns a Buffer from the pool, or a fresh one if the pool is empty.
func (p *Pool) Get() *Buffer {
	return p.pool.Get().(*Buffer)
}

// Put returns b to the pool for reuse.
func (p *Pool) Put(b *Buffer) {
	p.pool.Put(b)
}

// Magnitudes evaluates |sys.F(i*w[k]; p)| for every w[k], writing into a
// buffer borrowed from pool and returning a freshly allocated result slice
// (safe for the caller to retain after the buffer is returned to the
// pool).
func Magnitudes(pool *Pool, sys catalog.System, p catalog.Par, w []float64) []float64 {
	b := pool.Get()
	defer pool.Put(b)

	re, im, out := b.Resize(len(w))
	for i, wi := range w {
		v := sys.F(complex(0, wi), p)
		re[i] = real(v)
		im[i] = imag(v)
	}
	vecmath.Magnitude(out, re, im)

	result := make([]float64, len(w))
	copy(result, out)
	return result
}
