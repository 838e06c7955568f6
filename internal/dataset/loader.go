// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	// DuckDB driver - reads the CSV sources and performs the region merge
	_ "github.com/duckdb/duckdb-go/v2"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/medalboard/internal/logging"
	"github.com/tomtom215/medalboard/internal/metrics"
	"github.com/tomtom215/medalboard/internal/models"
)

const (
	athletesTable = "athletes_raw"
	regionsTable  = "regions_raw"
)

// Required columns, matched case-insensitively against the CSV headers.
var (
	requiredAthleteColumns = []string{"name", "sex", "age", "noc", "medal", "year", "season"}
	requiredRegionColumns  = []string{"noc", "region"}
	optionalAthleteColumns = []string{"id", "height", "weight", "team", "games", "city", "sport", "event"}
)

// Raw coordinate headers seen in the wild, in order of preference.
var (
	latitudeAliases  = []string{"latitude", "latitudes", "lat"}
	longitudeAliases = []string{"longitude", "longitudes", "lon", "lng", "long"}
)

// columnSet maps lower-cased column names to the name as written in the file.
type columnSet map[string]string

func (c columnSet) missing(required []string) []string {
	var out []string
	for _, name := range required {
		if _, ok := c[name]; !ok {
			out = append(out, name)
		}
	}
	return out
}

func (c columnSet) firstOf(aliases []string) (string, bool) {
	for _, alias := range aliases {
		if actual, ok := c[alias]; ok {
			return actual, true
		}
	}
	return "", false
}

// Build loads the athlete and region CSV files and returns the merged store.
//
// Both files are read into an in-memory DuckDB database concurrently. Athletes
// are left-merged with regions on NOC, so a code without a region row keeps a
// null region. The regions "notes" column is never read and raw coordinate
// headers are mapped onto latitude/longitude. Rows whose Year is not an integer
// are dropped. Any failure aborts the build and no store is returned.
func Build(ctx context.Context, athletesPath, regionsPath string) (*Store, error) {
	start := time.Now()

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	defer db.Close() //nolint:errcheck // in-memory database, nothing to flush

	g, gctx := errgroup.WithContext(ctx)
	var athleteCols, regionCols columnSet
	g.Go(func() error {
		cols, err := loadCSV(gctx, db, athletesTable, athletesPath, requiredAthleteColumns)
		athleteCols = cols
		return err
	})
	g.Go(func() error {
		cols, err := loadCSV(gctx, db, regionsTable, regionsPath, requiredRegionColumns)
		regionCols = cols
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if missing := athleteCols.missing(optionalAthleteColumns); len(missing) > 0 {
		logging.Warn().Strs("columns", missing).Str("path", athletesPath).Msg("Optional athlete columns absent, values left empty")
	}

	query := mergeQuery(athleteCols, regionCols)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, &IngestError{Path: athletesPath, Op: "merge", Err: err}
	}
	defer rows.Close() //nolint:errcheck // read-only query

	records, dropped, err := scanRecords(rows)
	if err != nil {
		return nil, &IngestError{Path: athletesPath, Op: "scan", Err: err}
	}

	store := NewStore(records)
	duration := time.Since(start)
	metrics.RecordIngest(duration, store.Len(), dropped)

	logging.Info().
		Str("athletes", athletesPath).
		Str("regions", regionsPath).
		Int("rows_read", len(records)+dropped).
		Int("rows_dropped", dropped).
		Int("records", store.Len()).
		Int("regions_resolved", len(store.regions)).
		Dur("duration", duration).
		Str("dataset_id", store.ID()).
		Msg("Dataset loaded")

	return store, nil
}

// loadCSV materializes one CSV file as a table of VARCHAR columns and checks
// its header against the required column list.
func loadCSV(ctx context.Context, db *sql.DB, table, path string, required []string) (columnSet, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &IngestError{Path: path, Op: "read", Err: err}
	}

	stmt := fmt.Sprintf(
		"CREATE TABLE %s AS SELECT * FROM read_csv(%s, header = true, all_varchar = true)",
		table, quoteLiteral(path),
	)
	if _, err := db.ExecContext(ctx, stmt); err != nil {
		return nil, &IngestError{Path: path, Op: "read", Err: err}
	}

	cols, err := tableColumns(ctx, db, table)
	if err != nil {
		return nil, &IngestError{Path: path, Op: "verify", Err: err}
	}
	if missing := cols.missing(required); len(missing) > 0 {
		return nil, &IngestError{Path: path, Op: "verify", Missing: missing, Err: ErrMissingColumns}
	}

	logging.Debug().Str("path", path).Str("table", table).Int("columns", len(cols)).Msg("CSV source loaded")
	return cols, nil
}

// tableColumns lists the columns of a table through information_schema.
func tableColumns(ctx context.Context, db *sql.DB, table string) (columnSet, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT column_name FROM information_schema.columns WHERE table_name = ?",
		table,
	)
	if err != nil {
		return nil, fmt.Errorf("list columns of %s: %w", table, err)
	}
	defer rows.Close() //nolint:errcheck // read-only query

	cols := make(columnSet)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan column name: %w", err)
		}
		key := strings.ToLower(strings.TrimSpace(name))
		if _, dup := cols[key]; !dup {
			cols[key] = name
		}
	}
	return cols, rows.Err()
}

// mergeQuery builds the SELECT that cleans the athlete rows and left-joins the
// region lookup. Regions are reduced to the first row per NOC so the join can
// never multiply athlete rows.
func mergeQuery(athletes, regions columnSet) string {
	a := func(name string) string {
		if actual, ok := athletes[name]; ok {
			return clean("a." + quoteIdent(actual))
		}
		return "NULL"
	}

	latExpr, lonExpr := "NULL", "NULL"
	regionLat, regionLon := "NULL", "NULL"
	if lat, ok := athletes.firstOf(latitudeAliases); ok {
		latExpr = clean("a." + quoteIdent(lat))
	} else if lat, ok := regions.firstOf(latitudeAliases); ok {
		regionLat = clean(quoteIdent(lat))
		latExpr = "r.latitude"
	}
	if lon, ok := athletes.firstOf(longitudeAliases); ok {
		lonExpr = clean("a." + quoteIdent(lon))
	} else if lon, ok := regions.firstOf(longitudeAliases); ok {
		regionLon = clean(quoteIdent(lon))
		lonExpr = "r.longitude"
	}

	return fmt.Sprintf(`WITH regions AS (
	SELECT noc, region, latitude, longitude FROM (
		SELECT %s AS noc, %s AS region, %s AS latitude, %s AS longitude, rowid AS ord
		FROM %s
	)
	WHERE noc IS NOT NULL
	QUALIFY row_number() OVER (PARTITION BY noc ORDER BY ord) = 1
)
SELECT
	%s, %s, TRY_CAST(%s AS DOUBLE),
	%s, %s, r.region,
	%s, TRY_CAST(%s AS DOUBLE), %s, %s, %s, %s, %s,
	TRY_CAST(%s AS DOUBLE), TRY_CAST(%s AS DOUBLE),
	%s, TRY_CAST(%s AS DOUBLE), TRY_CAST(%s AS DOUBLE)
FROM %s a
LEFT JOIN regions r ON %s = r.noc
ORDER BY a.rowid`,
		clean(quoteIdent(regions["noc"])), clean(quoteIdent(regions["region"])), regionLat, regionLon,
		regionsTable,
		a("name"), a("sex"), a("age"),
		a("team"), a("noc"),
		a("games"), a("year"), a("season"), a("city"), a("sport"), a("event"), a("medal"),
		latExpr, lonExpr,
		a("id"), a("height"), a("weight"),
		athletesTable,
		a("noc"),
	)
}

// scanRecords converts merged rows into records. It returns the number of
// rows dropped because their year was missing or not an integer.
func scanRecords(rows *sql.Rows) ([]models.Record, int, error) {
	var (
		records []models.Record
		dropped int
	)
	for rows.Next() {
		var (
			name, sex, team, noc, region      sql.NullString
			games, season, city, sport, event sql.NullString
			medal, athleteID                  sql.NullString
			age, year, latitude, longitude    sql.NullFloat64
			height, weight                    sql.NullFloat64
		)
		if err := rows.Scan(
			&name, &sex, &age,
			&team, &noc, &region,
			&games, &year, &season, &city, &sport, &event, &medal,
			&latitude, &longitude,
			&athleteID, &height, &weight,
		); err != nil {
			return nil, 0, fmt.Errorf("scan record: %w", err)
		}

		if !year.Valid || year.Float64 != math.Trunc(year.Float64) {
			dropped++
			continue
		}

		r := models.Record{
			AthleteID: athleteID.String,
			Height:    measurement(height),
			Weight:    measurement(weight),

			Name:   name.String,
			Sex:    sex.String,
			Team:   team.String,
			NOC:    noc.String,
			Region: region.String,
			Games:  games.String,
			Year:   int(year.Float64),
			Season: season.String,
			City:   city.String,
			Sport:  sport.String,
			Event:  event.String,
			Medal:  medal.String,
		}
		if age.Valid && !math.IsNaN(age.Float64) {
			r.Age = int(math.Round(age.Float64))
			r.HasAge = true
		}
		if validCoordinate(latitude, 90) && validCoordinate(longitude, 180) {
			r.Latitude = latitude.Float64
			r.Longitude = longitude.Float64
			r.HasCoords = true
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate records: %w", err)
	}
	return records, dropped, nil
}

// measurement returns v, or zero when it is missing or NaN. NaN never compares
// equal, so it would defeat duplicate detection.
func measurement(v sql.NullFloat64) float64 {
	if !v.Valid || math.IsNaN(v.Float64) {
		return 0
	}
	return v.Float64
}

func validCoordinate(v sql.NullFloat64, limit float64) bool {
	return v.Valid && !math.IsNaN(v.Float64) && math.Abs(v.Float64) <= limit
}

// clean trims a VARCHAR expression and maps empty and "NA" cells to NULL.
func clean(expr string) string {
	return fmt.Sprintf("NULLIF(NULLIF(TRIM(%s), ''), 'NA')", expr)
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
