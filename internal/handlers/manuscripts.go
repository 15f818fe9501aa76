package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ammusto/khazain-browser/internal/catalog"
	"github.com/ammusto/khazain-browser/internal/contextutil"
)

const defaultPageSize = 25

// CatalogHandler serves the manuscript browsing endpoints.
type CatalogHandler struct {
	store *catalog.Store
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(store *catalog.Store) *CatalogHandler {
	return &CatalogHandler{store: store}
}

// ListResponse is the paginated search result payload.
type ListResponse struct {
	Total    int                  `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
	Items    []catalog.Manuscript `json:"items"`
}

// DetailResponse pairs a manuscript with its resolved locations, the two
// lookups the detail view makes.
type DetailResponse struct {
	Manuscript catalog.Manuscript `json:"manuscript"`
	Locations  []catalog.Location `json:"locations"`
}

// LocationsResponse is the payload of the locations-only endpoint.
type LocationsResponse struct {
	UniqueID  string             `json:"unique_id"`
	Locations []catalog.Location `json:"locations"`
}

// FacetResponse lists the distinct values a field takes.
type FacetResponse struct {
	Field  string   `json:"field"`
	Values []string `json:"values"`
}

// filterParams maps query parameters to catalog filter field names.
var filterParams = map[string]string{
	"unique_id":  catalog.FieldUniqueID,
	"author":     catalog.FieldAuthor,
	"category":   catalog.FieldCategories,
	"title":      catalog.FieldTitles,
	"shuhra":     catalog.FieldShuhras,
	"century":    catalog.FieldCentury,
	"death_date": catalog.FieldDeathDate,
}

// List handles GET /api/manuscripts: free-text search (q, field), filters,
// and a sorted, paginated view of the result set.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	q := r.URL.Query()

	var fields []string
	if f := q.Get("field"); f != "" && f != "all" {
		if !catalog.KnownField(f) {
			writeError(ctx, w, http.StatusBadRequest, "unknown search field: "+f)
			return
		}
		fields = []string{f}
	}

	criteria := catalog.FilterCriteria{}
	for param, field := range filterParams {
		if v := q.Get(param); v != "" {
			criteria[field] = catalog.Filter{Value: v}
		}
	}
	if min, max := q.Get("death_min"), q.Get("death_max"); min != "" || max != "" {
		criteria[catalog.FieldDeathDateRange] = catalog.Filter{
			Range: catalog.DateRange{Min: min, Max: max},
		}
	}

	results, err := h.store.Search(ctx, q.Get("q"), fields, criteria)
	if err != nil {
		logger.ErrorContext(ctx, "catalog search failed", "error", err)
		writeError(ctx, w, http.StatusInternalServerError, "failed to load catalog")
		return
	}

	sorted := catalog.SortManuscripts(results, q.Get("sort"), q.Get("dir") == "desc")
	page := parseIntParam(q.Get("page"), 0)
	pageSize := parseIntParam(q.Get("page_size"), defaultPageSize)

	writeJSON(ctx, w, http.StatusOK, ListResponse{
		Total:    len(results),
		Page:     page,
		PageSize: pageSize,
		Items:    catalog.Paginate(sorted, page, pageSize),
	})
}

// Detail handles GET /api/manuscripts/{id}: the first metadata record with
// an exactly matching id, plus its resolved locations.
func (h *CatalogHandler) Detail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	all, err := h.store.Manuscripts(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "catalog load failed", "error", err)
		writeError(ctx, w, http.StatusInternalServerError, "failed to load catalog")
		return
	}

	for _, m := range all {
		if m.UniqueID == id {
			writeJSON(ctx, w, http.StatusOK, DetailResponse{
				Manuscript: m,
				Locations:  h.store.Locations(ctx, id),
			})
			return
		}
	}
	writeError(ctx, w, http.StatusNotFound, "manuscript not found")
}

// Locations handles GET /api/manuscripts/{id}/locations. An unknown id
// returns an empty list, not an error.
func (h *CatalogHandler) Locations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := strings.TrimSpace(chi.URLParam(r, "id"))

	writeJSON(ctx, w, http.StatusOK, LocationsResponse{
		UniqueID:  id,
		Locations: h.store.Locations(ctx, id),
	})
}

// Facet handles GET /api/facets/{field}: the sorted distinct values of one
// field, for filter choice lists.
func (h *CatalogHandler) Facet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	field := chi.URLParam(r, "field")

	if !catalog.KnownField(field) {
		writeError(ctx, w, http.StatusBadRequest, "unknown field: "+field)
		return
	}

	values, err := h.store.UniqueValues(ctx, field)
	if err != nil {
		logger.ErrorContext(ctx, "facet lookup failed", "field", field, "error", err)
		writeError(ctx, w, http.StatusInternalServerError, "failed to load catalog")
		return
	}
	writeJSON(ctx, w, http.StatusOK, FacetResponse{Field: field, Values: values})
}

func parseIntParam(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}
	return n
}
