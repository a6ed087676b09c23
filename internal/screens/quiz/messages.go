package quiz

import "github.com/abhisek/prepdeck/internal/session"

// advanceMsg fires once the answer result has been shown long enough.
type advanceMsg struct {
	ticket session.Ticket
}
