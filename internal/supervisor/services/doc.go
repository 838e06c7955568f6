// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

// Package services adapts the server's long-running components to
// suture.Service: HTTPServerService for the API listener and WarmerService
// for the startup cache warm-up.
package services
