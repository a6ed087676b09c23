package session

// EventKind names the transition an Event reports.
type EventKind int

const (
	EventVocabularyLoaded EventKind = iota
	EventSessionStarted
	EventAnswered
	EventAdvanced
	EventModeChanged
	EventPreferencesChanged
)

func (k EventKind) String() string {
	switch k {
	case EventVocabularyLoaded:
		return "vocabulary_loaded"
	case EventSessionStarted:
		return "session_started"
	case EventAnswered:
		return "answered"
	case EventAdvanced:
		return "advanced"
	case EventModeChanged:
		return "mode_changed"
	case EventPreferencesChanged:
		return "preferences_changed"
	}
	return "unknown"
}

// Event is published to observers after every transition.
type Event struct {
	Kind  EventKind
	State State
}

type observer struct {
	id int
	fn func(Event)
}

// Subscribe registers fn to be called after each transition, outside the
// machine's lock. The returned function removes the subscription.
func (m *Machine) Subscribe(fn func(Event)) (unsubscribe func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextObserver++
	id := m.nextObserver
	m.observers = append(m.observers, observer{id: id, fn: fn})

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, o := range m.observers {
			if o.id == id {
				m.observers = append(m.observers[:i:i], m.observers[i+1:]...)
				return
			}
		}
	}
}

// publish captures the event and observer list under the lock and returns
// a function that delivers it once the lock is released.
func (m *Machine) publish(kind EventKind) func() {
	ev := Event{Kind: kind, State: m.snapshotLocked()}
	obs := make([]func(Event), len(m.observers))
	for i, o := range m.observers {
		obs[i] = o.fn
	}
	return func() {
		for _, fn := range obs {
			fn(ev)
		}
	}
}
