package catalog

import "sort"

// SortManuscripts returns a copy of ms stably sorted on a scalar string
// key. Keys without a defined ordering (sequence fields, unknown names)
// return the copy in source order. The input slice is never mutated.
func SortManuscripts(ms []Manuscript, key string, desc bool) []Manuscript {
	out := make([]Manuscript, len(ms))
	copy(out, ms)

	if _, ok := (Manuscript{}).scalarField(key); !ok {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, _ := out[i].scalarField(key)
		b, _ := out[j].scalarField(key)
		if desc {
			return a > b
		}
		return a < b
	})
	return out
}

// Paginate returns page number page (0-based) of size pageSize, clamped to
// the result length. Pages past the end yield an empty slice, never an
// error.
func Paginate(ms []Manuscript, page, pageSize int) []Manuscript {
	if page < 0 || pageSize <= 0 {
		return []Manuscript{}
	}
	start := page * pageSize
	if start >= len(ms) {
		return []Manuscript{}
	}
	end := start + pageSize
	if end > len(ms) {
		end = len(ms)
	}
	return ms[start:end]
}
