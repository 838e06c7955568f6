// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

package dataset

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/medalboard/internal/models"
)

const athletesCSV = `ID,Name,Sex,Age,Height,Weight,Team,NOC,Games,Year,Season,City,Sport,Event,Medal
1,A Dijiang,M,24,180,80,China,CHN,1992 Summer,1992,Summer,Barcelona,Basketball,Basketball Men's Basketball,NA
2,"Phelps, Michael",M,23,193,91,United States,USA,2008 Summer,2008,Summer,Beijing,Swimming,Swimming Men's 200 metres Freestyle,Gold
2,"Phelps, Michael",M,23,193,91,United States,USA,2008 Summer,2008,Summer,Beijing,Swimming,Swimming Men's 200 metres Freestyle,Gold
3,Jane Roe,F,NA,NA,NA,Unified Team,EUN,1992 Winter,1992,Winter,Albertville,Alpine Skiing,Alpine Skiing Women's Downhill,Silver
4,Bad Year,M,30,NA,NA,Nowhere,XXX,,unknown,Summer,,Athletics,Athletics Men's Marathon,NA
5,Half Year,M,31,NA,NA,Nowhere,XXX,,1992.5,Summer,,Athletics,Athletics Men's Marathon,NA
`

const regionsCSV = `NOC,region,notes
CHN,China,
USA,USA,
USA,Duplicate,should never win
`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestBuild_MergesAndCleans(t *testing.T) {
	t.Parallel()

	store, err := Build(context.Background(),
		writeFixture(t, "athletes.csv", athletesCSV),
		writeFixture(t, "regions.csv", regionsCSV),
	)
	require.NoError(t, err)

	records := slices.Collect(store.All())
	require.Len(t, records, 3, "duplicate and non-integer-year rows must be removed")

	byName := make(map[string]models.Record)
	for _, r := range records {
		byName[r.Name] = r
	}

	dijiang := byName["A Dijiang"]
	assert.Equal(t, "China", dijiang.Region)
	assert.Equal(t, models.MedalNone, dijiang.Medal, "NA medal is no medal")
	assert.True(t, dijiang.HasAge)
	assert.Equal(t, 24, dijiang.Age)
	assert.Equal(t, "Basketball", dijiang.Sport)

	phelps := byName["Phelps, Michael"]
	assert.Equal(t, "2", phelps.AthleteID)
	assert.InDelta(t, 193.0, phelps.Height, 1e-9)
	assert.InDelta(t, 91.0, phelps.Weight, 1e-9)
	assert.Equal(t, "USA", phelps.Region, "first region row per NOC wins")
	assert.Equal(t, models.MedalGold, phelps.Medal)
	assert.Equal(t, 2008, phelps.Year)

	roe := byName["Jane Roe"]
	assert.False(t, roe.HasRegion(), "EUN has no region row")
	assert.Equal(t, "EUN", roe.NOC)
	assert.False(t, roe.HasAge)
	assert.Zero(t, roe.Height, "NA height is left at zero")
	assert.Equal(t, "Winter", roe.Season)

	assert.Equal(t, []string{"China", "USA"}, store.Regions())
	minYear, maxYear := store.YearBounds()
	assert.Equal(t, 1992, minYear)
	assert.Equal(t, 2008, maxYear)
}

func TestBuild_DistinctAthleteIDsAreNotDuplicates(t *testing.T) {
	t.Parallel()

	athletes := "ID,Name,Sex,Age,Height,Weight,Team,NOC,Year,Season,Medal\n" +
		"10,Li Wei,M,25,NA,NA,China,CHN,2008,Summer,Gold\n" +
		"11,Li Wei,M,25,NA,NA,China,CHN,2008,Summer,Gold\n" +
		"11,Li Wei,M,25,NA,NA,China,CHN,2008,Summer,Gold\n" +
		"12,Li Wei,M,25,170,NA,China,CHN,2008,Summer,Gold\n"

	store, err := Build(context.Background(),
		writeFixture(t, "athletes.csv", athletes),
		writeFixture(t, "regions.csv", regionsCSV),
	)
	require.NoError(t, err)

	var ids []string
	for r := range store.All() {
		ids = append(ids, r.AthleteID)
	}
	assert.Equal(t, []string{"10", "11", "12"}, ids)
}

func TestBuild_PreservesSourceOrder(t *testing.T) {
	t.Parallel()

	store, err := Build(context.Background(),
		writeFixture(t, "athletes.csv", athletesCSV),
		writeFixture(t, "regions.csv", regionsCSV),
	)
	require.NoError(t, err)

	var names []string
	for r := range store.All() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"A Dijiang", "Phelps, Michael", "Jane Roe"}, names)
}

func TestBuild_NormalizesCoordinateHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
	}{
		{name: "plural capitalized", header: "Latitudes,Longitudes"},
		{name: "short lower", header: "lat,lng"},
		{name: "short upper", header: "LAT,LON"},
		{name: "canonical", header: "latitude,longitude"},
		{name: "long alias", header: "Latitude,Long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			athletes := "Name,Sex,Age,Team,NOC,Year,Season,City,Medal," + tt.header + "\n" +
				"Usain Bolt,M,22,Jamaica,JAM,2008,Summer,Beijing,Gold,39.9042,116.4074\n" +
				"Nobody,M,22,Jamaica,JAM,2008,Summer,Beijing,NA,NA,NA\n"

			store, err := Build(context.Background(),
				writeFixture(t, "athletes.csv", athletes),
				writeFixture(t, "regions.csv", "NOC,region\nJAM,Jamaica\n"),
			)
			require.NoError(t, err)
			require.Equal(t, 2, store.Len())

			mapped := ProjectForMapping(store)
			require.Equal(t, 1, mapped.Len())
			for r := range mapped.All() {
				assert.Equal(t, "Usain Bolt", r.Name)
				assert.InDelta(t, 39.9042, r.Latitude, 1e-9)
				assert.InDelta(t, 116.4074, r.Longitude, 1e-9)
			}
		})
	}
}

func TestBuild_CoordinatesFromRegionLookup(t *testing.T) {
	t.Parallel()

	athletes := "Name,Sex,Age,Team,NOC,Year,Season,Medal\n" +
		"Paavo Nurmi,M,23,Finland,FIN,1920,Summer,Gold\n" +
		"Lost Athlete,M,23,Atlantis,ATL,1920,Summer,NA\n"
	regions := "NOC,region,Latitudes,Longitudes\nFIN,Finland,60.17,24.94\n"

	store, err := Build(context.Background(),
		writeFixture(t, "athletes.csv", athletes),
		writeFixture(t, "regions.csv", regions),
	)
	require.NoError(t, err)

	mapped := ProjectForMapping(store)
	require.Equal(t, 1, mapped.Len())
	for r := range mapped.All() {
		assert.Equal(t, "Paavo Nurmi", r.Name)
		assert.InDelta(t, 60.17, r.Latitude, 1e-9)
	}
}

func TestBuild_ColumnMatchIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	athletes := "NAME,sex,AGE,noc,MEDAL,year,SEASON\nCarl Lewis,M,23,USA,Gold,1984,Summer\n"
	regions := "noc,REGION\nUSA,USA\n"

	store, err := Build(context.Background(),
		writeFixture(t, "athletes.csv", athletes),
		writeFixture(t, "regions.csv", regions),
	)
	require.NoError(t, err)
	require.Equal(t, 1, store.Len())
	for r := range store.All() {
		assert.Equal(t, "Carl Lewis", r.Name)
		assert.Equal(t, "USA", r.Region)
		assert.Empty(t, r.Team, "optional column absent")
	}
}

func TestBuild_MissingRequiredColumns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		athletes    string
		regions     string
		wantMissing []string
	}{
		{
			name:        "athletes without medal",
			athletes:    "Name,Sex,Age,NOC,Year,Season\nX,M,20,USA,2000,Summer\n",
			regions:     regionsCSV,
			wantMissing: []string{"medal"},
		},
		{
			name:        "athletes without year and season",
			athletes:    "Name,Sex,Age,NOC,Medal\nX,M,20,USA,Gold\n",
			regions:     regionsCSV,
			wantMissing: []string{"year", "season"},
		},
		{
			name:        "regions without region",
			athletes:    athletesCSV,
			regions:     "NOC,notes\nUSA,\n",
			wantMissing: []string{"region"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store, err := Build(context.Background(),
				writeFixture(t, "athletes.csv", tt.athletes),
				writeFixture(t, "regions.csv", tt.regions),
			)
			require.Error(t, err)
			assert.Nil(t, store)
			assert.ErrorIs(t, err, ErrMissingColumns)

			var ingestErr *IngestError
			require.ErrorAs(t, err, &ingestErr)
			assert.Equal(t, "verify", ingestErr.Op)
			assert.Equal(t, tt.wantMissing, ingestErr.Missing)
		})
	}
}

func TestBuild_UnreadableFile(t *testing.T) {
	t.Parallel()

	regions := writeFixture(t, "regions.csv", regionsCSV)
	missing := filepath.Join(t.TempDir(), "does-not-exist.csv")

	store, err := Build(context.Background(), missing, regions)
	require.Error(t, err)
	assert.Nil(t, store)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	var ingestErr *IngestError
	require.ErrorAs(t, err, &ingestErr)
	assert.Equal(t, missing, ingestErr.Path)
	assert.Equal(t, "read", ingestErr.Op)
}

func TestBuild_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Build(ctx,
		writeFixture(t, "athletes.csv", athletesCSV),
		writeFixture(t, "regions.csv", regionsCSV),
	)
	assert.Error(t, err)
}

func TestQuoteLiteral(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "'plain.csv'", quoteLiteral("plain.csv"))
	assert.Equal(t, "'it''s.csv'", quoteLiteral("it's.csv"))
	assert.Equal(t, `"Name"`, quoteIdent("Name"))
	assert.Equal(t, `"a""b"`, quoteIdent(`a"b`))
}
