package maximize

import (
	"math"
	"testing"
)

func TestGetMaximumConditionWithinLimit(t *testing.T) {
	got := GetMaximumCondition(func(x float64) bool { return x <= 5 }, 0.1, 10)
	if got < 5.0 || got > 5.2 {
		t.Fatalf("got %v, want in [5.0, 5.2]", got)
	}
}

func TestGetMaximumConditionPinnedAtLimit(t *testing.T) {
	got := GetMaximumCondition(func(x float64) bool { return x <= 5 }, 0.1, 3)
	if got < 2.8 || got > 3.0 {
		t.Fatalf("got %v, want in [2.8, 3.0]", got)
	}
}

func TestGetMaximumConditionReturnsZeroWhenImmediatelyFalse(t *testing.T) {
	got := GetMaximumCondition(func(x float64) bool { return x <= 0 }, 1e-3, 10)
	if got != 0 {
		t.Fatalf("got %v, want 0", got)
	}
}

func TestGetMaximumConditionAlwaysTrueReachesLimit(t *testing.T) {
	got := GetMaximumCondition(func(float64) bool { return true }, 0.1, 7.5)
	if got != 7.5 {
		t.Fatalf("got %v, want 7.5", got)
	}
}

func TestGetMaximumConditionPanicsWithoutProgress(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic when floating-point progress is impossible")
		}
	}()
	GetMaximumCondition(func(float64) bool { return true }, 0, math.Inf(1))
}
