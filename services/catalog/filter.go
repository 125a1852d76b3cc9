package catalog

import (
	"strings"

	"concierge/models"
)

const (
	NoServicesMessage = "No services available at the moment."
	NoMatchMessage    = "No services match your search criteria."
)

// Criteria is the user's current search term and category selection.
type Criteria struct {
	Search   string `form:"search" json:"search"`
	Category string `form:"category" json:"category"`
}

// Normalize maps an empty category to "all".
func (c Criteria) Normalize() Criteria {
	if c.Category == "" {
		c.Category = AllCategory
	}
	return c
}

// Active reports whether any filter narrows the listing.
func (c Criteria) Active() bool {
	c = c.Normalize()
	return c.Search != "" || c.Category != AllCategory
}

// Filter keeps items whose title or description contains the search term
// (case-insensitively) and whose category equals the selected one. It never
// mutates items.
func Filter(items []models.ExclusiveService, c Criteria) []models.ExclusiveService {
	c = c.Normalize()
	term := strings.ToLower(c.Search)

	out := make([]models.ExclusiveService, 0, len(items))
	for _, item := range items {
		if !matchesSearch(item, term) {
			continue
		}
		if c.Category != AllCategory && item.Category != c.Category {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesSearch(item models.ExclusiveService, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(item.ServiceTitle), term) ||
		strings.Contains(strings.ToLower(item.Description), term)
}

// EmptyMessage picks the no-results text for a filtered listing.
func EmptyMessage(c Criteria) string {
	if c.Active() {
		return NoMatchMessage
	}
	return NoServicesMessage
}
