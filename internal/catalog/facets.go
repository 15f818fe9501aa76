package catalog

import (
	"context"
	"sort"
	"strings"
)

// UniqueValues returns the sorted set of distinct non-empty values the
// named field takes across all records, for populating filter choice
// lists. Sequence fields contribute every trimmed element; scalar fields
// their trimmed value. An unknown field yields an empty slice.
func (s *Store) UniqueValues(ctx context.Context, field string) ([]string, error) {
	all, err := s.Manuscripts(ctx)
	if err != nil {
		return nil, err
	}
	return uniqueFieldValues(all, field), nil
}

func uniqueFieldValues(all []Manuscript, field string) []string {
	seen := make(map[string]struct{})
	for _, m := range all {
		if vals, ok := m.sequenceField(field); ok {
			for _, v := range vals {
				if v = strings.TrimSpace(v); v != "" {
					seen[v] = struct{}{}
				}
			}
			continue
		}
		if v, ok := m.scalarField(field); ok {
			if v = strings.TrimSpace(v); v != "" {
				seen[v] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
