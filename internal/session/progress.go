package session

import "github.com/abhisek/prepdeck/internal/spacedrep"

// Progress returns the review record for wordID.
func (m *Machine) Progress(wordID int) (spacedrep.Record, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.progress.Get(wordID)
}

// ProgressRecords returns a copy of every review record.
func (m *Machine) ProgressRecords() map[int]spacedrep.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.progress.All()
}
