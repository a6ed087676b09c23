package session

// ToggleTheme flips the dark mode preference and returns the new value.
func (m *Machine) ToggleTheme() bool {
	m.mu.Lock()
	m.darkMode = !m.darkMode
	v := m.darkMode
	m.persistLocked()
	notify := m.publish(EventPreferencesChanged)
	m.mu.Unlock()

	notify()
	return v
}

// ToggleAudio flips the audio preference and returns the new value.
func (m *Machine) ToggleAudio() bool {
	m.mu.Lock()
	m.audioEnabled = !m.audioEnabled
	v := m.audioEnabled
	m.persistLocked()
	notify := m.publish(EventPreferencesChanged)
	m.mu.Unlock()

	notify()
	return v
}

// Speak pronounces text unless audio is disabled.
func (m *Machine) Speak(text string) {
	m.mu.Lock()
	enabled := m.audioEnabled
	m.mu.Unlock()
	if enabled {
		m.speaker.Speak(text)
	}
}

// SpeakWord pronounces the current card's headword.
func (m *Machine) SpeakWord() {
	m.mu.Lock()
	w, ok := m.currentLocked()
	m.mu.Unlock()
	if ok {
		m.Speak(w.Front)
	}
}

// SpeakExample pronounces the current card's example sentence with the
// headword substituted for the placeholder.
func (m *Machine) SpeakExample() {
	m.mu.Lock()
	w, ok := m.currentLocked()
	m.mu.Unlock()
	if !ok {
		return
	}
	if ex := w.Example(); !ex.IsZero() {
		m.Speak(ex.Spoken(w.Front))
	}
}
