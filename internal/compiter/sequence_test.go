package compiter

import (
	"math"
	"testing"
)

func TestLogSpaceEndpoints(t *testing.T) {
	s := LogSpace(1e-3, 1e5, 10)
	got := Collect(s)
	if len(got) != 10 {
		t.Fatalf("len = %d, want 10", len(got))
	}
	if got[0] != 1e-3 {
		t.Fatalf("x[0] = %v, want 1e-3", got[0])
	}
	if got[len(got)-1] != 1e5 {
		t.Fatalf("x[n-1] = %v, want 1e5", got[len(got)-1])
	}
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Fatalf("not strictly increasing at %d: %v <= %v", i, got[i], got[i-1])
		}
	}
}

func TestLinSpaceEndpoints(t *testing.T) {
	got := Collect(LinSpace(-math.Pi, math.Pi, 5))
	if got[0] != -math.Pi || got[len(got)-1] != math.Pi {
		t.Fatalf("endpoints wrong: %v", got)
	}
	step := got[1] - got[0]
	for i := 2; i < len(got); i++ {
		d := got[i] - got[i-1]
		if math.Abs(d-step) > 1e-12 {
			t.Fatalf("non-uniform step at %d: %v vs %v", i, d, step)
		}
	}
}

func TestSequenceRestartable(t *testing.T) {
	s := LogSpace(1, 100, 4)
	a := Collect(s)
	b := Collect(s)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sequence not restartable at %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestEachEarlyStop(t *testing.T) {
	s := LinSpace(0, 10, 11)
	count := 0
	s.Each(func(i int, x float64) bool {
		count++
		return i < 3
	})
	if count != 4 {
		t.Fatalf("count = %d, want 4 (stops after i=3 returns false)", count)
	}
}

func TestLogSpaceSingle(t *testing.T) {
	got := Collect(LogSpace(5, 5, 1))
	if len(got) != 1 || got[0] != 5 {
		t.Fatalf("got %v", got)
	}
}
