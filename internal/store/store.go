// Package store keeps the gallery collection in memory together with its tag
// index and writes every mutation through to a Slot.
package store

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"github.com/lewtec/galeria/internal/domain"
)

// Store owns the ordered collection and the derived tag index.
// It is not safe for concurrent use.
type Store struct {
	slot     domain.Slot
	notifier domain.Notifier
	logger   *zap.Logger
	ids      *IDSource

	items []domain.Item
	tags  *domain.TagIndex
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used for storage failures
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithNotifier sets where user facing failures are reported
func WithNotifier(notifier domain.Notifier) Option {
	return func(s *Store) {
		s.notifier = notifier
	}
}

// WithIDSource replaces the default clock based id source
func WithIDSource(ids *IDSource) Option {
	return func(s *Store) {
		s.ids = ids
	}
}

// New creates an empty store backed by slot
func New(slot domain.Slot, opts ...Option) *Store {
	s := &Store{
		slot:     slot,
		notifier: domain.NotifierFunc(func(string) {}),
		logger:   zap.NewNop(),
		tags:     domain.NewTagIndex(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ids == nil {
		s.ids = NewIDSource(nil)
	}
	return s
}

// Add appends a new item tagged from the comma separated rawTags and writes
// the collection through.
func (s *Store) Add(ctx context.Context, data, rawTags string) domain.Item {
	item := domain.Item{
		ID:   s.ids.Next(),
		Data: data,
		Tags: domain.ParseTags(rawTags),
	}
	s.items = append(s.items, item)
	s.tags.Add(item.Tags...)
	s.logger.Debug("item added", zap.Int64("id", item.ID), zap.Strings("tags", item.Tags))
	_ = s.Persist(ctx)
	return item.Clone()
}

// Remove deletes the item with the given id. Unknown ids are ignored and
// reported with false.
func (s *Store) Remove(ctx context.Context, id int64) bool {
	idx := slices.IndexFunc(s.items, func(item domain.Item) bool {
		return item.ID == id
	})
	if idx < 0 {
		s.logger.Debug("remove of unknown item ignored", zap.Int64("id", id))
		return false
	}
	s.items = slices.Delete(s.items, idx, idx+1)
	s.tags = domain.IndexTags(s.items)
	s.logger.Debug("item removed", zap.Int64("id", id))
	_ = s.Persist(ctx)
	return true
}

// Load replaces the in-memory collection with the persisted one. Missing or
// unreadable data yields an empty collection.
func (s *Store) Load(ctx context.Context) []domain.Item {
	items, _ := s.load(ctx)
	return items
}

// load is Load that also reports whether the slot could not be read at all.
// Absent or malformed data is not a read failure.
func (s *Store) load(ctx context.Context) ([]domain.Item, error) {
	s.items = nil
	s.tags = domain.NewTagIndex()

	value, ok, err := s.slot.Read(ctx)
	if err != nil {
		s.logger.Warn("while reading gallery from storage", zap.Error(err))
		return s.Items(), err
	}
	if !ok {
		s.logger.Info("no stored gallery found")
		return s.Items(), nil
	}
	items, err := Decode(value)
	if err != nil {
		s.logger.Warn("while loading gallery", zap.Error(err))
		return s.Items(), nil
	}

	s.items = items
	s.tags = domain.IndexTags(items)
	for _, item := range items {
		s.ids.Observe(item.ID)
	}
	s.logger.Info("gallery loaded", zap.Int("items", len(items)), zap.Int("tags", s.tags.Len()))
	return s.Items(), nil
}

// LoadOrSeed loads the stored collection and falls back to the placeholder
// items when it is empty. Seeded items are persisted right away. When the
// slot cannot be read the gallery starts empty and nothing is written, so
// the stored data survives.
func (s *Store) LoadOrSeed(ctx context.Context) []domain.Item {
	items, err := s.load(ctx)
	if err != nil {
		s.logger.Warn("not seeding, storage is unreadable")
		return items
	}
	if len(items) > 0 {
		return items
	}
	s.Replace(ctx, SeedItems(s.ids))
	s.logger.Info("gallery seeded", zap.Int("items", len(s.items)))
	return s.Items()
}

// Replace swaps the whole collection and writes it through
func (s *Store) Replace(ctx context.Context, items []domain.Item) error {
	s.items = make([]domain.Item, 0, len(items))
	for _, item := range items {
		s.items = append(s.items, item.Clone())
		s.ids.Observe(item.ID)
	}
	s.tags = domain.IndexTags(s.items)
	return s.Persist(ctx)
}

// Persist writes the collection to the slot. A failure is logged and
// notified once; the in-memory collection is kept as is.
func (s *Store) Persist(ctx context.Context) error {
	value, err := Encode(s.items)
	if err == nil {
		err = s.slot.Write(ctx, value)
	}
	if err != nil {
		s.logger.Error("while saving gallery to storage", zap.Error(err))
		s.notifier.Notify(domain.NoticeSaveFailed)
		return err
	}
	return nil
}

// Items returns a copy of the collection in order
func (s *Store) Items() []domain.Item {
	ret := make([]domain.Item, len(s.items))
	for i, item := range s.items {
		ret[i] = item.Clone()
	}
	return ret
}

// Tags returns a snapshot of the tag index
func (s *Store) Tags() *domain.TagIndex {
	return s.tags.Clone()
}

// Get looks an item up by id
func (s *Store) Get(id int64) (domain.Item, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item.Clone(), true
		}
	}
	return domain.Item{}, false
}

// Len returns the number of items
func (s *Store) Len() int {
	return len(s.items)
}
