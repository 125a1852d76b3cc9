package catalog

import (
	"unicode"
	"unicode/utf8"

	"concierge/models"
)

// AllCategory is the synthetic category that disables category filtering.
const AllCategory = "all"

// OrderedSet keeps distinct strings in first-seen order.
type OrderedSet struct {
	order []string
	index map[string]struct{}
}

func NewOrderedSet(values ...string) *OrderedSet {
	s := &OrderedSet{index: make(map[string]struct{})}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v and reports whether it was new.
func (s *OrderedSet) Add(v string) bool {
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = struct{}{}
	s.order = append(s.order, v)
	return true
}

func (s *OrderedSet) Contains(v string) bool {
	_, ok := s.index[v]
	return ok
}

func (s *OrderedSet) Len() int { return len(s.order) }

// Values returns a copy of the members in insertion order.
func (s *OrderedSet) Values() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// DeriveCategories returns "all" followed by every distinct non-empty
// category in order of first appearance.
func DeriveCategories(items []models.ExclusiveService) []string {
	set := NewOrderedSet(AllCategory)
	for _, item := range items {
		if item.Category != "" {
			set.Add(item.Category)
		}
	}
	return set.Values()
}

// CategoryLabel upper-cases the first letter for display.
func CategoryLabel(category string) string {
	r, size := utf8.DecodeRuneInString(category)
	if r == utf8.RuneError {
		return category
	}
	return string(unicode.ToUpper(r)) + category[size:]
}
