package gamemath

import "testing"

func TestNormalize(t *testing.T) {
	got := Vec{3, 4}.Normalize(Vec{1, 0})
	if got.X != 0.6 || got.Y != 0.8 {
		t.Errorf("Normalize() = %v, want {0.6 0.8}", got)
	}
	if got := (Vec{}).Normalize(Vec{1, 0}); got != (Vec{1, 0}) {
		t.Errorf("Normalize(zero) = %v, want fallback {1 0}", got)
	}
}

func TestRectIntersectsCircle(t *testing.T) {
	box := CenteredRect(Vec{100, 100}, 20, 40)
	tests := []struct {
		name   string
		center Vec
		radius float64
		want   bool
	}{
		{"center inside", Vec{100, 100}, 1, true},
		{"touching edge", Vec{80, 100}, 10, true},
		{"just outside edge", Vec{79, 100}, 10, false},
		{"corner miss", Vec{80, 70}, 10, false},
		{"corner hit", Vec{85, 75}, 8, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.IntersectsCircle(tt.center, tt.radius); got != tt.want {
				t.Errorf("IntersectsCircle(%v, %v) = %v, want %v", tt.center, tt.radius, got, tt.want)
			}
		})
	}
}

func TestDashes(t *testing.T) {
	got := Dashes(Vec{0, 0}, Vec{25, 0}, 10, 5)
	want := []Segment{
		{A: Vec{0, 0}, B: Vec{10, 0}},
		{A: Vec{15, 0}, B: Vec{25, 0}},
	}
	if len(got) != len(want) {
		t.Fatalf("Dashes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Dashes()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if got := Dashes(Vec{5, 5}, Vec{5, 5}, 10, 10); got != nil {
		t.Errorf("Dashes() of empty line = %v, want nil", got)
	}
	if got := Dashes(Vec{}, Vec{0, 100}, 10, 10); len(got) != 5 {
		t.Errorf("len(Dashes()) over 100px = %d, want 5", len(got))
	}
}
