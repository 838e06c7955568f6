// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

/*
Package config loads application configuration with koanf.

Sources, lowest to highest priority:
  - built-in defaults
  - YAML file (config.yaml, /etc/medalboard/config.yaml, or CONFIG_PATH)
  - environment variables

Environment Variables:

Dataset:
  - ATHLETES_PATH: athlete events CSV (default: data/athlete_events.csv)
  - REGIONS_PATH: NOC region lookup CSV (default: data/noc_regions.csv)

Query:
  - DEFAULT_TOP_N: rows in top athletes/regions views (default: 10)
  - DEFAULT_TOP_K: teams in the medal time series (default: 10)
  - DEFAULT_BUCKET_WIDTH: age histogram bin width (default: 2)
  - WARM_ON_STARTUP: compute identity-filter views at startup (default: true)

Server:
  - HTTP_HOST (default: 0.0.0.0), HTTP_PORT (default: 3857)
  - HTTP_TIMEOUT: request timeout (default: 30s)

Security:
  - CORS_ORIGINS: comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW (default: 100 per 1m)
  - DISABLE_RATE_LIMIT (default: false)

Logging:
  - LOG_LEVEL (default: info), LOG_FORMAT json|console (default: json)
  - LOG_CALLER (default: false)

Example YAML:

	dataset:
	  athletes_path: /data/athlete_events.csv
	  regions_path: /data/noc_regions.csv
	query:
	  default_top_n: 20
	server:
	  port: 8080
	security:
	  cors_origins: ["https://medals.example.com"]
*/
package config
