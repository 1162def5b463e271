package domain

import "context"

// DefaultSlotKey is the key the gallery collection is stored under
const DefaultSlotKey = "bettiahHeritagGallery"

// Slot is a single durable key-value cell holding the serialized collection
type Slot interface {
	// Read returns the stored value. ok is false when nothing was stored yet.
	Read(ctx context.Context) (value string, ok bool, err error)

	// Write replaces the stored value
	Write(ctx context.Context, value string) error
}

// Notifier delivers user facing messages, identified by message id
type Notifier interface {
	Notify(messageID string)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(messageID string)

func (f NotifierFunc) Notify(messageID string) {
	f(messageID)
}

// Message ids emitted by the gallery
const (
	NoticeSaveFailed = "notice.save_failed"
	NoticeAdded      = "notice.added"
	NoticeDeleted    = "notice.deleted"
	NoticeNoFile     = "notice.no_file"
	NoticeNotImage   = "notice.not_image"
	NoticeReadFailed = "notice.read_failed"
	NoticeNotDeleted = "notice.delete_unconfirmed"
)
