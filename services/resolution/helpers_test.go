package resolution

import (
	"context"
	"errors"
	"sync"
)

// stubGenerator is a deterministic TextGenerator: it returns its canned
// reply, or its error when set.
type stubGenerator struct {
	reply string
	err   error

	mu      sync.Mutex
	prompts []string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	s.mu.Unlock()

	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func (s *stubGenerator) lastPrompt() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.prompts) == 0 {
		return ""
	}
	return s.prompts[len(s.prompts)-1]
}

// scriptedGenerator replays replies in order, one per call.
type scriptedGenerator struct {
	mu      sync.Mutex
	replies []string
}

func (s *scriptedGenerator) Generate(_ context.Context, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.replies) == 0 {
		return "", errors.New("script exhausted")
	}
	reply := s.replies[0]
	s.replies = s.replies[1:]
	return reply, nil
}

var errBackendDown = errors.New("text generation backend unreachable")
