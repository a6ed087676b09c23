// Package feedback holds the audio and haptic collaborators the session
// notifies. Every call is fire-and-forget: implementations never block the
// caller and never report errors back.
package feedback

// Style is a haptic pattern.
type Style string

const (
	Light   Style = "light"
	Medium  Style = "medium"
	Heavy   Style = "heavy"
	Success Style = "success"
	Error   Style = "error"
)

// Speaker pronounces text.
type Speaker interface {
	Speak(text string)
}

// Haptics plays a haptic pattern.
type Haptics interface {
	Vibrate(style Style)
}

// Nop is a Speaker and Haptics that does nothing.
type Nop struct{}

func (Nop) Speak(string)  {}
func (Nop) Vibrate(Style) {}
