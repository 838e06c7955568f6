// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

// Package validation provides struct validation using go-playground/validator v10.
//
// A thread-safe singleton validator is shared by the filter, query parameter
// and configuration types. Failures are translated into short human-readable
// messages that name fields by their json tag, so a message refers to the
// same name a client used in its query string.
//
// # Quick Start
//
//	type YearRange struct {
//	    Min int `json:"min" validate:"gte=0"`
//	    Max int `json:"max" validate:"gte=0,gtefield=Min"`
//	}
//
//	if verr := validation.ValidateStruct(&r); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// # Custom Tags
//
//   - notblank: string must contain a non-whitespace character
//
// # Error Message Translation
//
//	required      -> "year is required"
//	notblank      -> "region must not be blank"
//	gte=1         -> "n must be greater than or equal to 1"
//	lte=100       -> "k must be less than or equal to 100"
//	gtefield=Min  -> "max must be greater than or equal to min"
//	max=100       -> "region must be at most 100 characters"
//	oneof=a b     -> "format must be one of: a b"
//
// # API Error Integration
//
// ToAPIError produces a VALIDATION_ERROR; ToAPIErrorWithCode lets a caller
// report the same failures under a domain code such as FILTER_ERROR. A single
// failure carries field, tag and value in Details; several failures are
// listed under Details["fields"].
package validation
