package catalog

import (
	"context"
	"slices"
	"strings"
)

// Default free-text scope when no search fields are named.
var (
	defaultScalarSearch   = []string{FieldUniqueID, FieldAuthor, FieldDeathDate, FieldCentury}
	defaultSequenceSearch = []string{FieldCategories, FieldTitles, FieldShuhras}
)

// Search evaluates a free-text term plus filter criteria against the full
// table. Results keep their source order; this is a stable filter, not a
// re-sort. An empty term with empty criteria returns the full cached set
// unchanged.
func (s *Store) Search(ctx context.Context, term string, fields []string, criteria FilterCriteria) ([]Manuscript, error) {
	all, err := s.Manuscripts(ctx)
	if err != nil {
		return nil, err
	}
	return filterManuscripts(all, term, fields, criteria), nil
}

func filterManuscripts(all []Manuscript, term string, fields []string, criteria FilterCriteria) []Manuscript {
	if strings.TrimSpace(term) == "" && len(criteria) == 0 {
		return all
	}

	out := make([]Manuscript, 0, len(all))
	for _, m := range all {
		if matchesTerm(m, term, fields) && matchesCriteria(m, criteria) {
			out = append(out, m)
		}
	}
	return out
}

// matchesTerm applies the case-insensitive free-text test. With named
// fields the record matches when ANY of them contains the term; without,
// the default scalar and sequence scopes are tried with the same ANY-of
// semantics. Sequence fields match when any element contains the term.
func matchesTerm(m Manuscript, term string, fields []string) bool {
	if strings.TrimSpace(term) == "" {
		return true
	}
	needle := strings.ToLower(term)

	if len(fields) > 0 {
		for _, f := range fields {
			if fieldContains(m, f, needle) {
				return true
			}
		}
		return false
	}

	for _, f := range defaultScalarSearch {
		if fieldContains(m, f, needle) {
			return true
		}
	}
	for _, f := range defaultSequenceSearch {
		if fieldContains(m, f, needle) {
			return true
		}
	}
	return false
}

func fieldContains(m Manuscript, field, needle string) bool {
	if vals, ok := m.sequenceField(field); ok {
		for _, v := range vals {
			if strings.Contains(strings.ToLower(v), needle) {
				return true
			}
		}
		return false
	}
	if v, ok := m.scalarField(field); ok {
		return v != "" && strings.Contains(strings.ToLower(v), needle)
	}
	return false
}

// matchesCriteria is a conjunction over all filter entries. Entries that
// carry no information (empty scalar, or a range with both bounds blank)
// are skipped.
func matchesCriteria(m Manuscript, criteria FilterCriteria) bool {
	for field, f := range criteria {
		if f.empty() {
			continue
		}
		if !matchesFilter(m, field, f) {
			return false
		}
	}
	return true
}

func (f Filter) empty() bool {
	return f.Value == "" &&
		strings.TrimSpace(f.Range.Min) == "" &&
		strings.TrimSpace(f.Range.Max) == ""
}

// matchesFilter applies the per-field rules. The asymmetry across fields
// (exact element for categories, substring-of-element for titles and
// shuhras, exact for century, plain substring for the scalar fields) is
// deliberate and mirrors the distinct filter widgets of the browsing UI.
func matchesFilter(m Manuscript, field string, f Filter) bool {
	switch field {
	case FieldDeathDateRange:
		return isDateInRange(m.DeathDate, f.Range.Min, f.Range.Max)
	case FieldCategories:
		return slices.Contains(m.Categories, f.Value)
	case FieldCentury:
		return m.Century == f.Value
	case FieldTitles:
		return anyElementContains(m.Titles, f.Value)
	case FieldShuhras:
		return anyElementContains(m.Shuhras, f.Value)
	case FieldDeathDate:
		return m.DeathDate != "" && strings.Contains(m.DeathDate, f.Value)
	case FieldAuthor:
		return m.Author != "" && strings.Contains(m.Author, f.Value)
	case FieldUniqueID:
		return m.UniqueID != "" && strings.Contains(m.UniqueID, f.Value)
	}
	// Unknown filter fields carry no information.
	return true
}

func anyElementContains(vals []string, sub string) bool {
	for _, v := range vals {
		if strings.Contains(v, sub) {
			return true
		}
	}
	return false
}

// isDateInRange decides whether a free-text date falls inside [min, max].
// An empty date is in range only when both bounds are blank, so any
// constrained range excludes records with unknown dates while a fully open
// range keeps them. A date or bound whose digit extraction fails
// contributes no match (date) or no constraint (bound). Both bounds are
// inclusive.
func isDateInRange(date, min, max string) bool {
	if strings.TrimSpace(date) == "" {
		return strings.TrimSpace(min) == "" && strings.TrimSpace(max) == ""
	}

	v, ok := ExtractInteger(date)
	if !ok {
		return false
	}
	if strings.TrimSpace(min) != "" {
		if lo, ok := ExtractInteger(min); ok && v < lo {
			return false
		}
	}
	if strings.TrimSpace(max) != "" {
		if hi, ok := ExtractInteger(max); ok && v > hi {
			return false
		}
	}
	return true
}
