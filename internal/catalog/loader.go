package catalog

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
)

// readTable parses CSV text into header-keyed rows. Header names and cell
// values are trimmed of surrounding whitespace; rows whose every cell is
// empty are skipped. Short rows are tolerated (missing trailing columns
// read as empty).
func readTable(text string) ([]map[string]string, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		empty := true
		for i, name := range header {
			var v string
			if i < len(rec) {
				v = strings.TrimSpace(rec[i])
			}
			if v != "" {
				empty = false
			}
			row[name] = v
		}
		if empty {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// decodeStringList decodes a JSON-array cell into a string slice. An empty
// cell decodes to an empty slice, never nil.
func decodeStringList(cell string) ([]string, error) {
	if cell == "" {
		return []string{}, nil
	}
	var vals []string
	if err := json.Unmarshal([]byte(cell), &vals); err != nil {
		return nil, err
	}
	if vals == nil {
		vals = []string{}
	}
	return vals, nil
}

// parseManuscripts decodes the main metadata table. A malformed JSON cell
// fails the whole load with a row-identifying error; corrupt metadata
// should be loud rather than silently thinned out.
func parseManuscripts(text string) ([]Manuscript, error) {
	rows, err := readTable(text)
	if err != nil {
		return nil, err
	}

	out := make([]Manuscript, 0, len(rows))
	for i, row := range rows {
		m := Manuscript{
			UniqueID:  row[FieldUniqueID],
			Author:    row[FieldAuthor],
			DeathDate: row[FieldDeathDate],
			Century:   row[FieldCentury],
		}
		for _, col := range []struct {
			name string
			dst  *[]string
		}{
			{FieldCategories, &m.Categories},
			{FieldTitles, &m.Titles},
			{FieldShuhras, &m.Shuhras},
		} {
			vals, err := decodeStringList(row[col.name])
			if err != nil {
				return nil, fmt.Errorf("row %d (id %q): decode %s: %w", i+1, m.UniqueID, col.name, err)
			}
			*col.dst = vals
		}
		out = append(out, m)
	}
	return out, nil
}

// parseLocationChunk decodes one location chunk. Unlike the main table, a
// malformed ms_locations cell degrades that row to an empty location list
// with a warning; chunks are sparse supplementary data and one bad row
// should not hide the rest of the chunk.
func parseLocationChunk(text string, logger *slog.Logger) ([]locationRecord, error) {
	rows, err := readTable(text)
	if err != nil {
		return nil, err
	}

	out := make([]locationRecord, 0, len(rows))
	for _, row := range rows {
		rec := locationRecord{
			uniqueID:  row[FieldUniqueID],
			locations: []Location{},
		}
		rec.numericID = firstDigitRun(NormalizeDigits(rec.uniqueID))

		if cell := row["ms_locations"]; cell != "" {
			var locs []Location
			if err := json.Unmarshal([]byte(cell), &locs); err != nil {
				logger.Warn("malformed ms_locations cell, keeping row without locations",
					"unique_id", rec.uniqueID, "error", err)
			} else if locs != nil {
				rec.locations = locs
			}
		}
		out = append(out, rec)
	}
	return out, nil
}
