package gallery

import (
	"sync"

	"github.com/lewtec/galeria/internal/domain"
)

// Flash queues notifications until the next page is rendered
type Flash struct {
	mu       sync.Mutex
	messages []string
}

func NewFlash() *Flash {
	return &Flash{}
}

// Notify queues a message id. Consecutive duplicates are collapsed.
func (f *Flash) Notify(messageID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if n := len(f.messages); n > 0 && f.messages[n-1] == messageID {
		return
	}
	f.messages = append(f.messages, messageID)
}

// Drain returns the queued message ids and empties the queue
func (f *Flash) Drain() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	ret := f.messages
	f.messages = nil
	return ret
}

var _ domain.Notifier = (*Flash)(nil)
