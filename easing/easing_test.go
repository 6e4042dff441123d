package easing

import (
	"math"
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

func TestOutCubicEndpoints(t *testing.T) {
	if got := OutCubic(0); got != 0 {
		t.Errorf("OutCubic(0) = %v, want 0", got)
	}
	if got := OutCubic(1); got != 1 {
		t.Errorf("OutCubic(1) = %v, want 1", got)
	}
	if got := OutCubic(0.5); got != 0.875 {
		t.Errorf("OutCubic(0.5) = %v, want 0.875", got)
	}
}

func TestOutCubicIsMonotonic(t *testing.T) {
	prev := OutCubic(0)
	for i := 1; i <= 1000; i++ {
		p := float64(i) / 1000
		v := OutCubic(p)
		if v < prev {
			t.Fatalf("OutCubic(%v) = %v < OutCubic(previous) = %v", p, v, prev)
		}
		prev = v
	}
}

func TestOutCubicMatchesGween(t *testing.T) {
	gw := FromTween(ease.OutCubic)
	for _, p := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		if diff := math.Abs(OutCubic(p) - gw(p)); diff > 1e-6 {
			t.Errorf("OutCubic(%v) = %v, gween gives %v", p, OutCubic(p), gw(p))
		}
	}
}

func TestTriangle(t *testing.T) {
	tests := []struct {
		p    float64
		want float64
	}{
		{0, 0},
		{0.25, 0.5},
		{0.5, 1},
		{0.75, 0.5},
		{1, 0},
	}
	for _, tt := range tests {
		if got := Triangle(tt.p); got != tt.want {
			t.Errorf("Triangle(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  time.Duration
		duration time.Duration
		want     float64
	}{
		{"start", 0, 200 * time.Millisecond, 0},
		{"half", 100 * time.Millisecond, 200 * time.Millisecond, 0.5},
		{"end", 200 * time.Millisecond, 200 * time.Millisecond, 1},
		{"past end clamps", time.Second, 200 * time.Millisecond, 1},
		{"negative clamps", -time.Millisecond, 200 * time.Millisecond, 0},
		{"zero duration", 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Progress(tt.elapsed, tt.duration); got != tt.want {
				t.Errorf("Progress() = %v, want %v", got, tt.want)
			}
		})
	}
}
