package store

import (
	"encoding/json"
	"fmt"

	"github.com/lewtec/galeria/internal/domain"
)

// Encode serializes a collection to the persisted JSON array layout
func Encode(items []domain.Item) (string, error) {
	if items == nil {
		items = []domain.Item{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("while encoding collection: %w", err)
	}
	return string(data), nil
}

// Decode parses the persisted JSON array layout. Items without tags get the
// untagged sentinel so the collection invariants hold for hand edited data.
func Decode(value string) ([]domain.Item, error) {
	var items []domain.Item
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		return nil, fmt.Errorf("while decoding collection: %w", err)
	}
	for i := range items {
		if len(items[i].Tags) == 0 {
			items[i].Tags = []string{domain.UntaggedTag}
		}
	}
	return items, nil
}
