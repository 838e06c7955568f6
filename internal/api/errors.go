// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/medalboard/internal/filter"
	"github.com/tomtom215/medalboard/internal/models"
	"github.com/tomtom215/medalboard/internal/query"
	"github.com/tomtom215/medalboard/internal/validation"
)

// Error codes sent in APIError.Code.
const (
	codeFilterError     = "FILTER_ERROR"
	codeValidationError = "VALIDATION_ERROR"
	codeUnknownView     = "UNKNOWN_VIEW"
	codeServiceError    = "SERVICE_ERROR"
	codeInternalError   = "INTERNAL_ERROR"
)

// classifyViewError maps an engine error to a status code and error body.
func classifyViewError(err error) (int, *models.APIError) {
	var fe *filter.FilterError
	if errors.As(err, &fe) {
		return http.StatusBadRequest, toModelError(fe.APIError())
	}

	if errors.Is(err, query.ErrInvalidParams) {
		var verr *validation.RequestValidationError
		if errors.As(err, &verr) {
			return http.StatusBadRequest, toModelError(verr.ToAPIError())
		}
		return http.StatusBadRequest, &models.APIError{Code: codeValidationError, Message: err.Error()}
	}

	if errors.Is(err, query.ErrUnknownView) {
		return http.StatusNotFound, unknownViewError(err)
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable, &models.APIError{Code: codeServiceError, Message: "Request canceled"}
	}

	return http.StatusInternalServerError, &models.APIError{Code: codeInternalError, Message: "Failed to compute view"}
}

func unknownViewError(err error) *models.APIError {
	kinds := query.Kinds()
	available := make([]string, len(kinds))
	for i, k := range kinds {
		available[i] = string(k)
	}
	return &models.APIError{
		Code:    codeUnknownView,
		Message: err.Error(),
		Details: map[string]interface{}{"available": available},
	}
}

func toModelError(e *validation.APIError) *models.APIError {
	return &models.APIError{Code: e.Code, Message: e.Message, Details: e.Details}
}
