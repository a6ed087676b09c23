package spacedrep

// Record is the persisted review state of a single word.
//
// Interval is the rounded value shown to the learner and stored. Weight keeps
// the unrounded chain so repeated gradings do not compound rounding error;
// records written without a weight fall back to Interval.
type Record struct {
	Interval int     `json:"interval"`
	Weight   float64 `json:"weight,omitempty"`
	Reviews  int     `json:"reviews"`
}

// weight returns the effective unrounded weight of r.
func (r Record) weight() float64 {
	if r.Weight > 0 {
		return r.Weight
	}
	if r.Interval > 0 {
		return float64(r.Interval)
	}
	return BaseInterval
}

// Review returns the record after one more grading event.
func (r Record) Review(g Grade) Record {
	w := NextWeight(g, r.weight())
	return Record{
		Interval: Round(w),
		Weight:   w,
		Reviews:  r.Reviews + 1,
	}
}
