package domain

// Filter selects which items are visible. The zero value shows everything.
type Filter struct {
	tag string
	set bool
}

// NoFilter shows all items
func NoFilter() Filter {
	return Filter{}
}

// TagFilter shows only items carrying tag. Tags that are not indexed are
// accepted and simply match nothing.
func TagFilter(tag string) Filter {
	return Filter{tag: tag, set: true}
}

// FilterFromQuery maps an optional query value to a filter, the empty
// string meaning "show all".
func FilterFromQuery(value string) Filter {
	if value == "" {
		return NoFilter()
	}
	return TagFilter(value)
}

// IsNone reports whether the filter shows everything
func (f Filter) IsNone() bool {
	return !f.set
}

// Tag returns the filtered tag, or "" when there is no filter
func (f Filter) Tag() string {
	return f.tag
}

// Matches reports whether item is visible under the filter
func (f Filter) Matches(item Item) bool {
	if !f.set {
		return true
	}
	return item.HasTag(f.tag)
}
