package spacedrep

import "sort"

// Scheduler owns the per-word review records.
type Scheduler struct {
	records map[int]Record
}

// NewScheduler creates a scheduler seeded with previously persisted records.
// The input map is copied.
func NewScheduler(records map[int]Record) *Scheduler {
	s := &Scheduler{records: make(map[int]Record, len(records))}
	for id, rec := range records {
		if rec.Reviews < 0 {
			continue
		}
		s.records[id] = rec
	}
	return s
}

// RecordReview grades a word, creating its record on first sight, and
// returns the updated record.
func (s *Scheduler) RecordReview(wordID int, g Grade) Record {
	rec := s.records[wordID].Review(g)
	s.records[wordID] = rec
	return rec
}

// Get returns the record for a word, if one exists.
func (s *Scheduler) Get(wordID int) (Record, bool) {
	rec, ok := s.records[wordID]
	return rec, ok
}

// Len returns the number of tracked words.
func (s *Scheduler) Len() int {
	return len(s.records)
}

// All returns a copy of every record.
func (s *Scheduler) All() map[int]Record {
	result := make(map[int]Record, len(s.records))
	for id, rec := range s.records {
		result[id] = rec
	}
	return result
}

// DueOrder returns tracked word ids, most urgent first: lowest interval,
// then fewest reviews, then id.
func DueOrder(records map[int]Record) []int {
	ids := make([]int, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := records[ids[i]], records[ids[j]]
		if a.Interval != b.Interval {
			return a.Interval < b.Interval
		}
		if a.Reviews != b.Reviews {
			return a.Reviews < b.Reviews
		}
		return ids[i] < ids[j]
	})
	return ids
}
