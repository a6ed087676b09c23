package spacedrep

import "testing"

func TestNextInterval(t *testing.T) {
	tests := []struct {
		name     string
		grade    Grade
		previous float64
		want     int
	}{
		{"wrong resets from large", GradeWrong, 40, 1},
		{"wrong resets from base", GradeWrong, 1, 1},
		{"wrong with no history", GradeWrong, 0, 1},
		{"correct from 10", GradeCorrect, 10, 15},
		{"correct from 2", GradeCorrect, 2, 3},
		{"correct from 1 rounds half up", GradeCorrect, 1, 2},
		{"correct from 3 rounds half up", GradeCorrect, 3, 5},
		{"correct with no history", GradeCorrect, 0, 2},
		{"perfect from 10", GradePerfect, 10, 25},
		{"perfect from 1 rounds half up", GradePerfect, 1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextInterval(tt.grade, tt.previous); got != tt.want {
				t.Errorf("NextInterval(%v, %v) = %d, want %d", tt.grade, tt.previous, got, tt.want)
			}
		})
	}
}

func TestNextInterval_WrongAlwaysBase(t *testing.T) {
	for _, prev := range []float64{-3, 0, 0.5, 1, 7, 1e6} {
		if got := NextInterval(GradeWrong, prev); got != 1 {
			t.Errorf("NextInterval(wrong, %v) = %d, want 1", prev, got)
		}
	}
}

func TestRound_HalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0.5, 1},
		{1.5, 2},
		{2.25, 2},
		{2.5, 3},
		{3.375, 3},
	}
	for _, tt := range tests {
		if got := Round(tt.in); got != tt.want {
			t.Errorf("Round(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestGradeFor(t *testing.T) {
	if GradeFor(true) != GradeCorrect {
		t.Error("GradeFor(true) should be GradeCorrect")
	}
	if GradeFor(false) != GradeWrong {
		t.Error("GradeFor(false) should be GradeWrong")
	}
}
