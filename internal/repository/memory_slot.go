package repository

import (
	"context"
	"sync"

	"github.com/lewtec/galeria/internal/domain"
)

// MemorySlot keeps the value in process memory
type MemorySlot struct {
	mu       sync.Mutex
	value    string
	ok       bool
	writeErr error
	readErrs []error
	writes   int
}

// NewMemorySlot creates an empty slot
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

// NewMemorySlotWith creates a slot already holding value
func NewMemorySlotWith(value string) *MemorySlot {
	return &MemorySlot{value: value, ok: true}
}

func (s *MemorySlot) Read(ctx context.Context) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.readErrs) > 0 {
		err := s.readErrs[0]
		s.readErrs = s.readErrs[1:]
		return "", false, err
	}
	return s.value, s.ok, nil
}

func (s *MemorySlot) Write(ctx context.Context, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	s.value, s.ok = value, true
	s.writes++
	return nil
}

// FailWrites makes every following Write return err. A nil err restores
// normal behavior.
func (s *MemorySlot) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErr = err
}

// FailNextRead makes the next Read return err, once
func (s *MemorySlot) FailNextRead(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readErrs = append(s.readErrs, err)
}

// Writes returns how many writes succeeded
func (s *MemorySlot) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

var _ domain.Slot = (*MemorySlot)(nil)
