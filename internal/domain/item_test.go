package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"empty input", "", []string{UntaggedTag}},
		{"only separators and spaces", " , , ", []string{UntaggedTag}},
		{"case folded and trimmed in order", "Temple, ANCIENT ", []string{"temple", "ancient"}},
		{"single tag", "palace", []string{"palace"}},
		{"inner spaces kept", "  Colonial Era ,x", []string{"colonial era", "x"}},
		{"duplicates kept", "a,A, a", []string{"a", "a", "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTags(tt.raw))
		})
	}
}

func TestItem_HasTag(t *testing.T) {
	item := Item{ID: 1, Tags: []string{"palace", "historical"}}

	assert.True(t, item.HasTag("palace"))
	assert.False(t, item.HasTag("Palace"))
	assert.False(t, item.HasTag(""))
}

func TestItem_Clone(t *testing.T) {
	item := Item{ID: 1, Data: "d", Tags: []string{"a"}}
	clone := item.Clone()
	clone.Tags[0] = "b"

	assert.Equal(t, "a", item.Tags[0])
}
