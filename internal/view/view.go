// Package view projects the gallery collection into display models. Nothing
// here touches HTML; the gallery package pushes these models into templates.
package view

import (
	"fmt"

	"github.com/lewtec/galeria/internal/domain"
)

// EmptyMessage is shown instead of an empty grid
const EmptyMessage = "No images found. Upload some heritage photos!"

// Card is one visible item
type Card struct {
	ID   int64    `json:"id"`
	Data string   `json:"data"`
	Tags []string `json:"tags"`
}

// Gallery is the visible part of the collection
type Gallery struct {
	Cards []Card `json:"cards"`
	// Placeholder is set only when Cards is empty
	Placeholder string `json:"placeholder,omitempty"`
}

// Empty reports whether the placeholder is shown
func (g Gallery) Empty() bool {
	return len(g.Cards) == 0
}

// TagButton is one control of the tag bar
type TagButton struct {
	// Tag is empty for the "All" control
	Tag    string `json:"tag"`
	Label  string `json:"label"`
	Count  int    `json:"count"`
	Active bool   `json:"active"`
}

// All reports whether the button clears the filter
func (b TagButton) All() bool {
	return b.Tag == ""
}

// TagBar lists the "All" control followed by one control per indexed tag
type TagBar struct {
	Buttons []TagButton `json:"buttons"`
}

// Active returns the active control
func (t TagBar) Active() TagButton {
	for _, b := range t.Buttons {
		if b.Active {
			return b
		}
	}
	return TagButton{}
}

// Count returns the count shown for tag, and false when tag has no control
func (t TagBar) Count(tag string) (int, bool) {
	for _, b := range t.Buttons {
		if !b.All() && b.Tag == tag {
			return b.Count, true
		}
	}
	return 0, false
}

// Render computes the visible cards under filter, preserving collection order
func Render(items []domain.Item, filter domain.Filter) Gallery {
	g := Gallery{Cards: []Card{}}
	for _, item := range items {
		if !filter.Matches(item) {
			continue
		}
		g.Cards = append(g.Cards, Card{
			ID:   item.ID,
			Data: item.Data,
			Tags: append([]string(nil), item.Tags...),
		})
	}
	if len(g.Cards) == 0 {
		g.Placeholder = EmptyMessage
	}
	return g
}

// RenderTagBar computes the tag controls with their item counts. The "All"
// control is active without a filter, otherwise the control of the filtered
// tag is. A filter on a tag that is not indexed leaves every control inactive.
func RenderTagBar(items []domain.Item, index *domain.TagIndex, filter domain.Filter) TagBar {
	tags := index.Tags()
	bar := TagBar{Buttons: make([]TagButton, 0, len(tags)+1)}
	bar.Buttons = append(bar.Buttons, TagButton{
		Label:  fmt.Sprintf("All (%d)", len(items)),
		Count:  len(items),
		Active: filter.IsNone(),
	})
	for _, tag := range tags {
		count := 0
		for _, item := range items {
			if item.HasTag(tag) {
				count++
			}
		}
		bar.Buttons = append(bar.Buttons, TagButton{
			Tag:    tag,
			Label:  fmt.Sprintf("%s (%d)", tag, count),
			Count:  count,
			Active: !filter.IsNone() && filter.Tag() == tag,
		})
	}
	return bar
}
