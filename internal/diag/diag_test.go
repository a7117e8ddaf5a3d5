package diag

import (
	"math"
	"sync"
	"testing"
)

func TestWBoundsInitiallyNaN(t *testing.T) {
	b := NewWBounds()
	if !math.IsNaN(b.Min()) || !math.IsNaN(b.Max()) {
		t.Fatalf("fresh WBounds should report NaN until first Observe")
	}
}

func TestWBoundsSingleThreaded(t *testing.T) {
	b := NewWBounds()
	for _, w := range []float64{5, 1, 9, 3} {
		b.Observe(w)
	}
	if b.Min() != 1 {
		t.Errorf("Min() = %v, want 1", b.Min())
	}
	if b.Max() != 9 {
		t.Errorf("Max() = %v, want 9", b.Max())
	}
}

func TestWBoundsConcurrent(t *testing.T) {
	b := NewWBounds()
	var wg sync.WaitGroup
	for i := 1; i <= 1000; i++ {
		wg.Add(1)
		go func(w float64) {
			defer wg.Done()
			b.Observe(w)
		}(float64(i))
	}
	wg.Wait()
	if b.Min() != 1 {
		t.Errorf("Min() = %v, want 1", b.Min())
	}
	if b.Max() != 1000 {
		t.Errorf("Max() = %v, want 1000", b.Max())
	}
}
