package catalog

import (
	"context"
	"strings"
)

// ChunkForID returns the 1-based index of the location chunk expected to
// hold id. Ids with no numeric component default to a value of 0 and so
// route to chunk 1.
func ChunkForID(id string) int {
	n, _ := ExtractInteger(id)
	return n/chunkSize + 1
}

// Locations resolves the known physical copies of a manuscript id. The
// routed chunk is searched for an exact unique_id match first; failing
// that, ids are compared by their numeric core, which tolerates differing
// alphabetic prefixes ("MS-1054" vs "1054"). Within each rule the first
// match in source order wins. An unknown id yields an empty slice, never
// an error.
func (s *Store) Locations(ctx context.Context, id string) []Location {
	id = strings.TrimSpace(id)
	recs := s.ensureChunk(ctx, ChunkForID(id))

	for _, rec := range recs {
		if rec.uniqueID == id {
			return rec.locations
		}
	}

	if run := firstDigitRun(NormalizeDigits(id)); run != "" {
		for _, rec := range recs {
			if rec.numericID != "" && rec.numericID == run {
				return rec.locations
			}
		}
	}
	return []Location{}
}
