// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingColumns is wrapped by IngestError when a source file lacks a
// required column.
var ErrMissingColumns = errors.New("missing required columns")

// IngestError reports a source file that could not be turned into records.
// Ingestion is all-or-nothing: when Build returns an IngestError no store exists.
type IngestError struct {
	// Path is the source file that failed.
	Path string
	// Op names the ingestion step: "read", "verify", "merge" or "scan".
	Op string
	// Missing lists required columns absent from the file, if any.
	Missing []string
	Err     error
}

func (e *IngestError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("ingest %s: %s: %v: %s", e.Op, e.Path, e.Err, strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("ingest %s: %s: %v", e.Op, e.Path, e.Err)
}

func (e *IngestError) Unwrap() error {
	return e.Err
}
