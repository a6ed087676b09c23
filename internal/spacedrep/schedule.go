package spacedrep

import "math"

// Grade is the outcome of a single review of a word.
type Grade int

const (
	GradeWrong   Grade = iota // Wrong answer, spacing resets
	GradeCorrect              // Correct answer
	GradePerfect              // Reserved for three-way grading; the two-way UI never sends it
)

// BaseInterval is the interval weight a new or failed word starts from.
const BaseInterval = 1.0

// Interval growth multipliers per grade.
const (
	CorrectMultiplier = 1.5
	PerfectMultiplier = 2.5
)

// GradeFor maps a two-way outcome to a Grade.
func GradeFor(correct bool) Grade {
	if correct {
		return GradeCorrect
	}
	return GradeWrong
}

// String returns the grade name.
func (g Grade) String() string {
	switch g {
	case GradeWrong:
		return "wrong"
	case GradeCorrect:
		return "correct"
	case GradePerfect:
		return "perfect"
	}
	return "unknown"
}

// NextWeight returns the unrounded interval weight after a review.
// A non-positive previous weight is treated as BaseInterval.
func NextWeight(g Grade, previous float64) float64 {
	if previous <= 0 {
		previous = BaseInterval
	}
	switch g {
	case GradeCorrect:
		return previous * CorrectMultiplier
	case GradePerfect:
		return previous * PerfectMultiplier
	default:
		return BaseInterval
	}
}

// NextInterval returns the next review interval after a review, rounded
// half away from zero.
func NextInterval(g Grade, previous float64) int {
	return Round(NextWeight(g, previous))
}

// Round rounds half away from zero. All displayed and stored intervals go
// through it.
func Round(w float64) int {
	return int(math.Round(w))
}
