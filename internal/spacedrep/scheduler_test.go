package spacedrep

import (
	"slices"
	"testing"
)

func TestRecordReview_CreatesRecordLazily(t *testing.T) {
	s := NewScheduler(nil)
	if _, ok := s.Get(3); ok {
		t.Fatal("expected no record before first grading")
	}

	rec := s.RecordReview(3, GradeCorrect)
	if rec.Reviews != 1 {
		t.Errorf("Reviews = %d, want 1", rec.Reviews)
	}
	if rec.Interval != 2 {
		t.Errorf("Interval = %d, want 2", rec.Interval)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestRecordReview_ChainedArithmetic(t *testing.T) {
	s := NewScheduler(nil)

	s.RecordReview(9, GradeWrong)
	s.RecordReview(9, GradeCorrect)
	rec := s.RecordReview(9, GradeCorrect)

	if rec.Reviews != 3 {
		t.Errorf("Reviews = %d, want 3", rec.Reviews)
	}
	// 1 -> 1.5 -> 2.25, rounded once for display.
	if rec.Interval != 2 {
		t.Errorf("Interval = %d, want 2", rec.Interval)
	}
	if rec.Weight != 2.25 {
		t.Errorf("Weight = %v, want 2.25", rec.Weight)
	}
}

func TestRecordReview_WrongCountsAsReview(t *testing.T) {
	s := NewScheduler(map[int]Record{1: {Interval: 15, Weight: 15, Reviews: 4}})
	rec := s.RecordReview(1, GradeWrong)
	if rec.Reviews != 5 {
		t.Errorf("Reviews = %d, want 5", rec.Reviews)
	}
	if rec.Interval != 1 {
		t.Errorf("Interval = %d, want 1", rec.Interval)
	}
}

func TestRecordReview_LegacyRecordWithoutWeight(t *testing.T) {
	s := NewScheduler(map[int]Record{4: {Interval: 2, Reviews: 1}})
	rec := s.RecordReview(4, GradeCorrect)
	if rec.Interval != 3 {
		t.Errorf("Interval = %d, want 3", rec.Interval)
	}
}

func TestNewScheduler_CopiesInput(t *testing.T) {
	in := map[int]Record{1: {Interval: 1, Reviews: 1}}
	s := NewScheduler(in)
	s.RecordReview(1, GradeCorrect)
	if in[1].Reviews != 1 {
		t.Error("scheduler mutated the seed map")
	}

	all := s.All()
	all[1] = Record{}
	if rec, _ := s.Get(1); rec.Reviews != 2 {
		t.Error("All() returned the internal map")
	}
}

func TestDueOrder(t *testing.T) {
	records := map[int]Record{
		1: {Interval: 5, Reviews: 3},
		2: {Interval: 1, Reviews: 4},
		3: {Interval: 1, Reviews: 1},
		4: {Interval: 2, Reviews: 2},
		0: {Interval: 1, Reviews: 1},
	}
	got := DueOrder(records)
	want := []int{0, 3, 2, 4, 1}
	if !slices.Equal(got, want) {
		t.Errorf("DueOrder = %v, want %v", got, want)
	}
}
