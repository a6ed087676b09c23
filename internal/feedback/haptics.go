package feedback

import (
	"io"
	"sync"
)

// TerminalHaptics approximates haptics on a terminal: the error pattern
// rings the bell, every other style is silent.
type TerminalHaptics struct {
	mu sync.Mutex
	w  io.Writer
}

// NewTerminalHaptics writes bell characters to w.
func NewTerminalHaptics(w io.Writer) *TerminalHaptics {
	return &TerminalHaptics{w: w}
}

func (h *TerminalHaptics) Vibrate(style Style) {
	if style != Error || h.w == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	_, _ = io.WriteString(h.w, "\a")
}

// Recorder captures notifications in memory.
type Recorder struct {
	mu      sync.Mutex
	spoken  []string
	vibrate []Style
}

func (r *Recorder) Speak(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spoken = append(r.spoken, text)
}

func (r *Recorder) Vibrate(style Style) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vibrate = append(r.vibrate, style)
}

// Spoken returns every text passed to Speak, in order.
func (r *Recorder) Spoken() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.spoken...)
}

// Vibrations returns every style passed to Vibrate, in order.
func (r *Recorder) Vibrations() []Style {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Style(nil), r.vibrate...)
}
