package domain

import (
	"slices"
	"strings"
)

// UntaggedTag is assigned to items uploaded without any usable tag.
const UntaggedTag = "untagged"

// Item represents one photo in the gallery
type Item struct {
	Data string   `json:"data"`
	Tags []string `json:"tags"`
	ID   int64    `json:"id"`
}

// HasTag reports whether the item carries tag
func (i Item) HasTag(tag string) bool {
	return slices.Contains(i.Tags, tag)
}

// Clone returns a copy that does not share the tag slice
func (i Item) Clone() Item {
	i.Tags = slices.Clone(i.Tags)
	return i
}

// ParseTags turns comma separated user input into normalized tags.
// The result is never empty.
func ParseTags(raw string) []string {
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		tag := strings.ToLower(strings.TrimSpace(part))
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		tags = append(tags, UntaggedTag)
	}
	return tags
}
