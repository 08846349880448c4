// Package catalog implements client-side filtering of the fetched sneaker
// list. Filtering is a pure reduction over the full set and is recomputed
// from scratch whenever the source data or any filter input changes.
package catalog

import (
	"strings"

	"kickitup/internal/models"
)

// Brands and Conditions are the filter values the catalog view offers.
// ConditionAll bypasses the condition filter.
var (
	Brands     = []string{"NIKE", "ADIDAS", "NEW BALANCE", "PUMA", "CONVERSE", "VANS"}
	Conditions = []string{ConditionAll, "NEW", "LIKE NEW", "USED"}
)

const ConditionAll = "ALL"

// Filter holds the three independent predicates of the catalog view.
// The zero value matches everything.
type Filter struct {
	// Search is matched case-insensitively as a substring of name OR brand.
	Search string
	// Brands is a multi-select with OR semantics; empty means no brand filter.
	Brands []string
	// Condition is a single-select; empty or ConditionAll means no filter.
	Condition string
}

// Match reports whether s satisfies every active predicate.
func (f Filter) Match(s models.Sneaker) bool {
	if term := strings.TrimSpace(f.Search); term != "" {
		term = strings.ToLower(term)
		if !strings.Contains(strings.ToLower(s.Name), term) &&
			!strings.Contains(strings.ToLower(s.Brand), term) {
			return false
		}
	}

	if len(f.Brands) > 0 {
		found := false
		for _, b := range f.Brands {
			if strings.EqualFold(b, s.Brand) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.Condition != "" && f.Condition != ConditionAll {
		if !strings.EqualFold(f.Condition, s.Condition) {
			return false
		}
	}

	return true
}

// ToggleBrand returns a copy of f with the brand added if absent or removed
// if already selected, mirroring a multi-select toggle.
func (f Filter) ToggleBrand(brand string) Filter {
	out := make([]string, 0, len(f.Brands)+1)
	removed := false
	for _, b := range f.Brands {
		if strings.EqualFold(b, brand) {
			removed = true
			continue
		}
		out = append(out, b)
	}
	if !removed {
		out = append(out, brand)
	}
	f.Brands = out
	return f
}

// Describe summarizes the active predicates for display. Returns "" when the
// filter matches everything.
func (f Filter) Describe() string {
	var parts []string
	if term := strings.TrimSpace(f.Search); term != "" {
		parts = append(parts, "search="+term)
	}
	if len(f.Brands) > 0 {
		parts = append(parts, "brands="+strings.Join(f.Brands, "|"))
	}
	if f.Condition != "" && f.Condition != ConditionAll {
		parts = append(parts, "condition="+f.Condition)
	}
	return strings.Join(parts, ", ")
}

// Apply returns the items matching f, preserving input order. The result is
// always a fresh slice; the input is never mutated.
func Apply(items []models.Sneaker, f Filter) []models.Sneaker {
	filtered := make([]models.Sneaker, 0, len(items))
	for _, s := range items {
		if f.Match(s) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}
