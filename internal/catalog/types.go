package catalog

// Field names for search scoping, filtering, faceting and sorting. These
// match the column names of the metadata table.
const (
	FieldUniqueID       = "unique_id"
	FieldCategories     = "categories"
	FieldTitles         = "titles"
	FieldAuthor         = "author"
	FieldShuhras        = "shuhras"
	FieldDeathDate      = "death_date"
	FieldCentury        = "century"
	FieldDeathDateRange = "death_date_range"
)

// Manuscript is one catalog entry from the main metadata table. The
// sequence fields are always non-nil: an empty source cell decodes to an
// empty slice, never a missing field.
type Manuscript struct {
	UniqueID   string   `json:"unique_id"`
	Categories []string `json:"categories"`
	Titles     []string `json:"titles"`
	Author     string   `json:"author"`
	Shuhras    []string `json:"shuhras"`
	DeathDate  string   `json:"death_date"`
	Century    string   `json:"century"`
}

// scalarField returns the value of a named scalar field. The bool is false
// for sequence fields and unknown names.
func (m Manuscript) scalarField(name string) (string, bool) {
	switch name {
	case FieldUniqueID:
		return m.UniqueID, true
	case FieldAuthor:
		return m.Author, true
	case FieldDeathDate:
		return m.DeathDate, true
	case FieldCentury:
		return m.Century, true
	}
	return "", false
}

// sequenceField returns the elements of a named sequence field.
func (m Manuscript) sequenceField(name string) ([]string, bool) {
	switch name {
	case FieldCategories:
		return m.Categories, true
	case FieldTitles:
		return m.Titles, true
	case FieldShuhras:
		return m.Shuhras, true
	}
	return nil, false
}

// KnownField reports whether name is a queryable manuscript field.
func KnownField(name string) bool {
	if _, ok := (Manuscript{}).scalarField(name); ok {
		return true
	}
	_, ok := (Manuscript{}).sequenceField(name)
	return ok
}

// Location is one physical copy of a manuscript held by a library.
type Location struct {
	Library    string `json:"library"`
	Country    string `json:"country"`
	City       string `json:"city"`
	CatalogNum string `json:"catalog_num"`
}

// locationRecord pairs a stored manuscript id with its location list
// inside a chunk. The numeric core of the id is extracted once at parse
// time so fallback matching does not re-run the digit normalizer on every
// lookup.
type locationRecord struct {
	uniqueID  string
	numericID string // first digit run of uniqueID, "" when it has none
	locations []Location
}

// DateRange bounds a death-date filter. A blank bound is unconstrained.
type DateRange struct {
	Min string `json:"min"`
	Max string `json:"max"`
}

// Filter is one entry of a FilterCriteria: a scalar match value, or a date
// range when keyed by FieldDeathDateRange.
type Filter struct {
	Value string
	Range DateRange
}

// FilterCriteria maps a field name to its filter. A matching record must
// satisfy every entry; entries carrying no information are skipped.
type FilterCriteria map[string]Filter
