package session

// Summary holds the data displayed once a quiz finishes.
type Summary struct {
	Score    int
	Total    int
	Correct  int
	Wrong    int
	Accuracy float64
	Log      []LogEntry
}

// BuildSummary derives a Summary from a snapshot.
func BuildSummary(s State) Summary {
	wrong := s.WrongCount()
	total := len(s.Log)

	var accuracy float64
	if total > 0 {
		accuracy = float64(total-wrong) / float64(total)
	}

	return Summary{
		Score:    s.Score,
		Total:    total,
		Correct:  total - wrong,
		Wrong:    wrong,
		Accuracy: accuracy,
		Log:      s.Log,
	}
}

// CanRetry reports whether a weakness review is available.
func (s Summary) CanRetry() bool {
	return s.Wrong > 0
}
