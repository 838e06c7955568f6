// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

package validation

import (
	"strings"
	"testing"
)

// ===================================================================================================
// Singleton Validator Tests
// ===================================================================================================

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}

	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

// ===================================================================================================
// ValidateStruct Tests
// ===================================================================================================

type testRange struct {
	Min int `json:"min" validate:"gte=0"`
	Max int `json:"max" validate:"gte=0,gtefield=Min"`
}

type testRequest struct {
	Region  string     `json:"region" validate:"omitempty,notblank,max=10"`
	N       int        `json:"n" validate:"gte=1,lte=1000"`
	Format  string     `json:"format" validate:"omitempty,oneof=json table"`
	Name    string     `validate:"required"`
	MinYear int        `json:"-" validate:"gte=0"`
	Range   *testRange `json:"range"`
}

func validRequest() testRequest {
	return testRequest{N: 10, Name: "medals"}
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input func() testRequest
	}{
		{
			name:  "minimal",
			input: validRequest,
		},
		{
			name: "all fields",
			input: func() testRequest {
				r := validRequest()
				r.Region = "USA"
				r.Format = "table"
				r.Range = &testRange{Min: 1896, Max: 2016}
				return r
			},
		},
		{
			name: "single year range",
			input: func() testRequest {
				r := validRequest()
				r.Range = &testRange{Min: 2000, Max: 2000}
				return r
			},
		},
		{
			name: "boundary n",
			input: func() testRequest {
				r := validRequest()
				r.N = 1000
				return r
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.input()
			if err := ValidateStruct(&input); err != nil {
				t.Errorf("ValidateStruct() returned unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*testRequest)
		wantField   string
		wantTag     string
		wantMessage string
	}{
		{
			name:        "blank region",
			mutate:      func(r *testRequest) { r.Region = "   " },
			wantField:   "region",
			wantTag:     "notblank",
			wantMessage: "region must not be blank",
		},
		{
			name:        "long region",
			mutate:      func(r *testRequest) { r.Region = "Democratic Republic" },
			wantField:   "region",
			wantTag:     "max",
			wantMessage: "region must be at most 10 characters",
		},
		{
			name:        "zero n",
			mutate:      func(r *testRequest) { r.N = 0 },
			wantField:   "n",
			wantTag:     "gte",
			wantMessage: "n must be greater than or equal to 1",
		},
		{
			name:        "large n",
			mutate:      func(r *testRequest) { r.N = 1001 },
			wantField:   "n",
			wantTag:     "lte",
			wantMessage: "n must be less than or equal to 1000",
		},
		{
			name:        "unknown format",
			mutate:      func(r *testRequest) { r.Format = "csv" },
			wantField:   "format",
			wantTag:     "oneof",
			wantMessage: "format must be one of: json table",
		},
		{
			name:        "missing untagged field",
			mutate:      func(r *testRequest) { r.Name = "" },
			wantField:   "Name",
			wantTag:     "required",
			wantMessage: "Name is required",
		},
		{
			name:        "json dash falls back to field name",
			mutate:      func(r *testRequest) { r.MinYear = -1 },
			wantField:   "MinYear",
			wantTag:     "gte",
			wantMessage: "MinYear must be greater than or equal to 0",
		},
		{
			name:        "inverted nested range",
			mutate:      func(r *testRequest) { r.Range = &testRange{Min: 2010, Max: 2000} },
			wantField:   "max",
			wantTag:     "gtefield",
			wantMessage: "max must be greater than or equal to min",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validRequest()
			tt.mutate(&input)

			verr := ValidateStruct(&input)
			if verr == nil {
				t.Fatal("ValidateStruct() expected error, got nil")
			}

			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(errs), verr)
			}
			if got := errs[0].Field(); got != tt.wantField {
				t.Errorf("Field() = %q, want %q", got, tt.wantField)
			}
			if got := errs[0].Tag(); got != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", got, tt.wantTag)
			}
			if got := errs[0].Error(); got != tt.wantMessage {
				t.Errorf("Error() = %q, want %q", got, tt.wantMessage)
			}
		})
	}
}

func TestValidateStruct_MultipleErrors(t *testing.T) {
	input := testRequest{N: 0, Region: " "}

	verr := ValidateStruct(&input)
	if verr == nil {
		t.Fatal("ValidateStruct() expected error, got nil")
	}

	if got := len(verr.Errors()); got != 3 {
		t.Fatalf("expected 3 errors, got %d: %v", got, verr)
	}

	msg := verr.Error()
	for _, want := range []string{"region must not be blank", "n must be greater than or equal to 1", "Name is required"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
	if strings.Count(msg, "; ") != 2 {
		t.Errorf("Error() = %q, want messages joined by \"; \"", msg)
	}
}

// ===================================================================================================
// API Error Conversion Tests
// ===================================================================================================

func TestToAPIError_SingleField(t *testing.T) {
	input := validRequest()
	input.N = -5

	apiErr := ValidateStruct(&input).ToAPIError()

	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Message != "n must be greater than or equal to 1" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "n" {
		t.Errorf("Details[field] = %v, want n", apiErr.Details["field"])
	}
	if apiErr.Details["tag"] != "gte" {
		t.Errorf("Details[tag] = %v, want gte", apiErr.Details["tag"])
	}
	if apiErr.Details["value"] != -5 {
		t.Errorf("Details[value] = %v, want -5", apiErr.Details["value"])
	}
}

func TestToAPIError_MultipleFields(t *testing.T) {
	input := testRequest{N: 0}

	apiErr := ValidateStruct(&input).ToAPIError()

	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok {
		t.Fatalf("Details[fields] has type %T", apiErr.Details["fields"])
	}
	if len(fields) != 2 {
		t.Fatalf("len(fields) = %d, want 2", len(fields))
	}
	for _, f := range fields {
		if f["message"] == "" {
			t.Errorf("field %v has no message", f["field"])
		}
	}
}

func TestToAPIErrorWithCode(t *testing.T) {
	input := validRequest()
	input.Range = &testRange{Min: 2016, Max: 1896}

	apiErr := ValidateStruct(&input).ToAPIErrorWithCode("FILTER_ERROR")

	if apiErr.Code != "FILTER_ERROR" {
		t.Errorf("Code = %q, want FILTER_ERROR", apiErr.Code)
	}
	if apiErr.Message != "max must be greater than or equal to min" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestToAPIError_Empty(t *testing.T) {
	apiErr := (&RequestValidationError{}).ToAPIError()

	if apiErr.Message != "Validation failed" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "Validation failed")
	}
	if got := (&RequestValidationError{}).Error(); got != "validation failed" {
		t.Errorf("Error() = %q, want %q", got, "validation failed")
	}
}

// ===================================================================================================
// Helper Tests
// ===================================================================================================

func TestToSnake(t *testing.T) {
	tests := map[string]string{
		"Min":         "min",
		"MinYear":     "min_year",
		"bucketWidth": "bucket_width",
		"":            "",
	}

	for in, want := range tests {
		if got := toSnake(in); got != want {
			t.Errorf("toSnake(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateStruct_Concurrent(t *testing.T) {
	done := make(chan struct{})
	for i := 0; i < 50; i++ {
		go func(i int) {
			defer func() { done <- struct{}{} }()
			input := validRequest()
			input.N = i % 3
			verr := ValidateStruct(&input)
			if (i%3 == 0) != (verr != nil) {
				t.Errorf("iteration %d: unexpected result %v", i, verr)
			}
		}(i)
	}
	for i := 0; i < 50; i++ {
		<-done
	}
}
