// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

package filter

import (
	"github.com/tomtom215/medalboard/internal/validation"
)

// FilterError reports a structurally invalid filter, such as a year range
// whose minimum exceeds its maximum. A request carrying an invalid filter is
// rejected; it is never treated as the identity filter.
//
//nolint:revive // FilterError reads better than Error at call sites
type FilterError struct {
	verr *validation.RequestValidationError
}

func newFilterError(verr *validation.RequestValidationError) *FilterError {
	return &FilterError{verr: verr}
}

func (e *FilterError) Error() string {
	return "invalid filter: " + e.verr.Error()
}

// Fields returns the names of the filter fields that failed validation.
func (e *FilterError) Fields() []string {
	errs := e.verr.Errors()
	fields := make([]string, len(errs))
	for i := range errs {
		fields[i] = errs[i].Field()
	}
	return fields
}

// APIError converts the error to the FILTER_ERROR response format.
func (e *FilterError) APIError() *validation.APIError {
	return e.verr.ToAPIErrorWithCode("FILTER_ERROR")
}

func (e *FilterError) Unwrap() error {
	if e.verr == nil {
		return nil
	}
	return e.verr
}
