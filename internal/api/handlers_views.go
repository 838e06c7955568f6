// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/medalboard/internal/logging"
	"github.com/tomtom215/medalboard/internal/models"
	"github.com/tomtom215/medalboard/internal/query"
)

// viewInfo describes one servable view for clients building a dashboard.
type viewInfo struct {
	Kind        query.Kind `json:"kind"`
	Description string     `json:"description"`
	Params      []string   `json:"params,omitempty"`
}

var viewCatalog = map[query.Kind]viewInfo{
	query.KindTopAthletes:     {Description: "Athletes with the most medals", Params: []string{paramN}},
	query.KindTopRegions:      {Description: "Regions with the most medals", Params: []string{paramN}},
	query.KindMedalTimeSeries: {Description: "Medals per year for the top teams", Params: []string{paramK, paramWindowMin, paramWindowMax}},
	query.KindAgeHistogram:    {Description: "Participations per age bucket", Params: []string{paramBucketWidth}},
	query.KindGenderSplit:     {Description: "Participations per sex"},
	query.KindMapPoints:       {Description: "Participations per host city coordinate"},
	query.KindSeasonSplit:     {Description: "Participations per season"},
}

// ListViews returns every view kind with the parameters it reads.
//
// GET /api/v1/views
func (h *Handler) ListViews(w http.ResponseWriter, r *http.Request) {
	kinds := query.Kinds()
	views := make([]viewInfo, 0, len(kinds))
	for _, k := range kinds {
		info := viewCatalog[k]
		info.Kind = k
		views = append(views, info)
	}
	respondSuccess(w, r, views, models.Metadata{Rows: len(views)})
}

// View computes one view under the filter given in the query string.
//
// GET /api/v1/views/{kind}?year=&year_min=&year_max=&region=&n=&k=&bucket_width=&window_min=&window_max=
//
// Responses:
//   - 200 with the result table; metadata.empty is set when the filter
//     selected nothing
//   - 400 FILTER_ERROR for a malformed or structurally invalid filter
//   - 400 VALIDATION_ERROR for out-of-range view parameters
//   - 404 UNKNOWN_VIEW for a kind that is not served
func (h *Handler) View(w http.ResponseWriter, r *http.Request) {
	kind, err := query.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		respondErrorDetails(w, http.StatusNotFound, unknownViewError(err), nil)
		return
	}

	req, perr := parseViewRequest(kind, r.URL.Query(), h.engine.FilterOptions())
	if perr != nil {
		respondErrorDetails(w, http.StatusBadRequest, perr.apiError(), nil)
		return
	}

	result, err := h.engine.View(r.Context(), req)
	if err != nil {
		status, apiErr := classifyViewError(err)
		var logErr error
		if status >= http.StatusInternalServerError {
			logErr = err
		}
		respondErrorDetails(w, status, apiErr, logErr)
		return
	}

	if result.Empty {
		logging.CtxDebug(r.Context()).
			Str("kind", string(kind)).
			Stringer("filter", result.Filter).
			Msg("Filter selected no records")
	}

	respondSuccess(w, r, result.Data, models.Metadata{
		QueryTimeMS: result.Duration.Milliseconds(),
		Cached:      result.Cached,
		Empty:       result.Empty,
		Rows:        result.Rows,
	})
}

// FilterOptions returns the regions and year bounds available for filtering.
//
// GET /api/v1/filters/options
func (h *Handler) FilterOptions(w http.ResponseWriter, r *http.Request) {
	opts := h.engine.FilterOptions()
	respondSuccess(w, r, opts, models.Metadata{Rows: len(opts.Regions)})
}
