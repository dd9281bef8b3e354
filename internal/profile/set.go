package profile

import "strings"

// Set is an ordered collection of normalized, unique values.
type Set struct {
	items []string
}

// Normalize turns a comma separated free text field into a Set.
// Items are trimmed and lowercased; empty items and duplicates are dropped,
// the first occurrence wins.
func Normalize(text string) Set {
	var set Set
	seen := make(map[string]struct{})

	for _, part := range strings.Split(text, ",") {
		item := strings.ToLower(strings.TrimSpace(part))
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		set.items = append(set.items, item)
	}

	return set
}

func (s Set) Len() int {
	return len(s.items)
}

func (s Set) Empty() bool {
	return len(s.items) == 0
}

func (s Set) Contains(value string) bool {
	for _, item := range s.items {
		if item == value {
			return true
		}
	}
	return false
}

// Values returns a copy of the items in insertion order.
func (s Set) Values() []string {
	values := make([]string, len(s.items))
	copy(values, s.items)
	return values
}

// Any reports whether fn holds for at least one item.
func (s Set) Any(fn func(item string) bool) bool {
	for _, item := range s.items {
		if fn(item) {
			return true
		}
	}
	return false
}

func (s Set) String() string {
	return strings.Join(s.items, ", ")
}
