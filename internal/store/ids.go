package store

import "time"

// IDSource hands out strictly increasing item ids. Ids follow the wall
// clock in milliseconds but never repeat, even when called many times in
// the same millisecond.
type IDSource struct {
	now  func() time.Time
	last int64
}

// NewIDSource creates an id source driven by now. A nil now uses time.Now.
func NewIDSource(now func() time.Time) *IDSource {
	if now == nil {
		now = time.Now
	}
	return &IDSource{now: now}
}

// Next returns a fresh id
func (s *IDSource) Next() int64 {
	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}

// Observe makes sure later ids are greater than id
func (s *IDSource) Observe(id int64) {
	if id > s.last {
		s.last = id
	}
}
