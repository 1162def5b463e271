package domain

// TagIndex is the set of distinct tags of a collection, iterated in
// first-seen order.
type TagIndex struct {
	order []string
	seen  map[string]struct{}
}

// NewTagIndex creates an empty index
func NewTagIndex() *TagIndex {
	return &TagIndex{seen: make(map[string]struct{})}
}

// IndexTags builds an index from scratch over items
func IndexTags(items []Item) *TagIndex {
	idx := NewTagIndex()
	for _, item := range items {
		idx.Add(item.Tags...)
	}
	return idx
}

// Add inserts the tags that are not present yet
func (t *TagIndex) Add(tags ...string) {
	for _, tag := range tags {
		if _, ok := t.seen[tag]; ok {
			continue
		}
		t.seen[tag] = struct{}{}
		t.order = append(t.order, tag)
	}
}

// Has reports whether tag is in the index
func (t *TagIndex) Has(tag string) bool {
	_, ok := t.seen[tag]
	return ok
}

// Len returns the number of distinct tags
func (t *TagIndex) Len() int {
	return len(t.order)
}

// Tags returns the tags in insertion order
func (t *TagIndex) Tags() []string {
	ret := make([]string, len(t.order))
	copy(ret, t.order)
	return ret
}

// Clone returns an independent copy
func (t *TagIndex) Clone() *TagIndex {
	ret := NewTagIndex()
	ret.Add(t.order...)
	return ret
}
