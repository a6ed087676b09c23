package feedback

import (
	"context"
	"log/slog"
	"os/exec"
	"strings"
	"sync"
)

// CommandSpeaker speaks by running an external text-to-speech command with
// the text as its final argument. A new utterance cancels the previous one.
type CommandSpeaker struct {
	name   string
	args   []string
	logger *slog.Logger
	run    func(ctx context.Context, name string, args ...string) error

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewSpeaker parses command (for example "espeak-ng -v zh") into a
// CommandSpeaker. An empty command yields Nop.
func NewSpeaker(command string, logger *slog.Logger) Speaker {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CommandSpeaker{
		name:   fields[0],
		args:   fields[1:],
		logger: logger,
		run:    runCommand,
	}
}

// Speak starts the command in the background and returns immediately.
func (s *CommandSpeaker) Speak(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = cancel
	s.mu.Unlock()

	args := append(append([]string(nil), s.args...), text)
	go func() {
		defer cancel()
		if err := s.run(ctx, s.name, args...); err != nil && ctx.Err() == nil {
			s.logger.Warn("speech command failed", "command", s.name, "error", err)
		}
	}()
}

func runCommand(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}
