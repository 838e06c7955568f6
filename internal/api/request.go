// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/tomtom215/medalboard/internal/filter"
	"github.com/tomtom215/medalboard/internal/models"
	"github.com/tomtom215/medalboard/internal/query"
)

// Query string parameters of the view endpoint.
const (
	paramYear        = "year"
	paramYearMin     = "year_min"
	paramYearMax     = "year_max"
	paramRegion      = "region"
	paramN           = "n"
	paramK           = "k"
	paramBucketWidth = "bucket_width"
	paramWindowMin   = "window_min"
	paramWindowMax   = "window_max"
)

// paramError is a query string value that is not a well-formed integer.
type paramError struct {
	code  string
	param string
	value string
}

func (e *paramError) Error() string {
	return fmt.Sprintf("%s must be an integer, got %q", e.param, e.value)
}

func (e *paramError) apiError() *models.APIError {
	return &models.APIError{
		Code:    e.code,
		Message: e.Error(),
		Details: map[string]interface{}{"field": e.param},
	}
}

// parseViewRequest builds a view request from the query string. A range
// with only one bound set is closed with the dataset's year bounds.
// Structural checks (inverted ranges, blank regions, parameter limits) are
// left to the engine.
func parseViewRequest(kind query.Kind, q url.Values, bounds models.FilterOptions) (query.Request, *paramError) {
	req := query.Request{Kind: kind}

	year, err := intParam(q, paramYear, codeFilterError)
	if err != nil {
		return req, err
	}
	if year != nil {
		req.Filter = req.Filter.WithYear(*year)
	}

	yearRange, err := rangeParam(q, paramYearMin, paramYearMax, codeFilterError, bounds)
	if err != nil {
		return req, err
	}
	req.Filter.Range = yearRange

	if region := q.Get(paramRegion); region != "" {
		req.Filter = req.Filter.WithRegion(region)
	}

	for _, p := range []struct {
		name string
		dst  *int
	}{
		{paramN, &req.Params.N},
		{paramK, &req.Params.K},
		{paramBucketWidth, &req.Params.BucketWidth},
	} {
		v, err := intParam(q, p.name, codeValidationError)
		if err != nil {
			return req, err
		}
		if v != nil {
			*p.dst = *v
		}
	}

	window, err := rangeParam(q, paramWindowMin, paramWindowMax, codeValidationError, bounds)
	if err != nil {
		return req, err
	}
	req.Params.Window = window

	return req, nil
}

// intParam returns nil when the parameter is absent or empty.
func intParam(q url.Values, name, code string) (*int, *paramError) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &paramError{code: code, param: name, value: raw}
	}
	return &v, nil
}

func rangeParam(q url.Values, minName, maxName, code string, bounds models.FilterOptions) (*filter.YearRange, *paramError) {
	lo, err := intParam(q, minName, code)
	if err != nil {
		return nil, err
	}
	hi, err := intParam(q, maxName, code)
	if err != nil {
		return nil, err
	}
	if lo == nil && hi == nil {
		return nil, nil
	}

	r := &filter.YearRange{Min: bounds.MinYear, Max: bounds.MaxYear}
	if lo != nil {
		r.Min = *lo
	}
	if hi != nil {
		r.Max = *hi
	}
	return r, nil
}
