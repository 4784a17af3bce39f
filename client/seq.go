package client

import "sync"

// sequencer hands out a monotonic sequence number per resource key so that
// list responses arriving out of order can be recognized and dropped.
// Without it, two overlapping requests would leave the display reflecting
// whichever response happened to land last.
type sequencer struct {
	mu     sync.Mutex
	latest map[string]uint64
}

// next registers a new request for key and returns its sequence number.
func (s *sequencer) next(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.latest == nil {
		s.latest = make(map[string]uint64)
	}
	s.latest[key]++
	return s.latest[key]
}

// isCurrent reports whether seq still is the newest request issued for key.
func (s *sequencer) isCurrent(key string, seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest[key] == seq
}

// guard wraps a list fetch: if a newer request for the same key was issued
// while this one was in flight, the result is discarded as ErrStale.
func (c *Client) guard(key string, fetch func() error) error {
	seq := c.seq.next(key)
	if err := fetch(); err != nil {
		return err
	}
	if !c.seq.isCurrent(key, seq) {
		return ErrStale
	}
	return nil
}
