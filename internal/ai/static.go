package ai

import (
	"context"
	"sync"
)

// StaticCompleter is a Completer that returns canned responses. It backs
// stage-agent tests and the offline dry-run mode; responses are consumed in
// order and the final entry repeats once the queue drains.
type StaticCompleter struct {
	mu        sync.Mutex
	responses []string
	err       error
	requests  []*CompletionRequest
}

// NewStaticCompleter returns a completer that replays the given responses.
func NewStaticCompleter(responses ...string) *StaticCompleter {
	return &StaticCompleter{responses: responses}
}

// NewFailingCompleter returns a completer whose every call fails with err.
func NewFailingCompleter(err error) *StaticCompleter {
	return &StaticCompleter{err: err}
}

// Complete records the request and replays the next canned response.
func (s *StaticCompleter) Complete(_ context.Context, req *CompletionRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, req)
	if s.err != nil {
		return "", s.err
	}
	if len(s.responses) == 0 {
		return "", nil
	}
	resp := s.responses[0]
	if len(s.responses) > 1 {
		s.responses = s.responses[1:]
	}
	return resp, nil
}

// Requests returns a copy of every request seen so far.
func (s *StaticCompleter) Requests() []*CompletionRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*CompletionRequest, len(s.requests))
	copy(out, s.requests)
	return out
}
