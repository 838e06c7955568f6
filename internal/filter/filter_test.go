// Medalboard - Olympic Medal Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/medalboard

package filter

import (
	"errors"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/tomtom215/medalboard/internal/models"
)

func fixture() Rows {
	return Rows{
		{Name: "A", Year: 1996, Region: "USA", Medal: models.MedalGold},
		{Name: "B", Year: 2000, Region: "USA", Medal: models.MedalGold},
		{Name: "C", Year: 2000, Region: "Australia", Medal: models.MedalSilver},
		{Name: "D", Year: 2000, Region: ""},
		{Name: "E", Year: 2004, Region: "usa"},
		{Name: "F", Year: 2008, Region: "China", Medal: models.MedalBronze},
	}
}

func names(rows []models.Record) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Name
	}
	return out
}

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "identity", filter: Filter{}, want: []string{"A", "B", "C", "D", "E", "F"}},
		{name: "year", filter: Filter{}.WithYear(2000), want: []string{"B", "C", "D"}},
		{name: "range inclusive", filter: Filter{}.WithRange(2000, 2004), want: []string{"B", "C", "D", "E"}},
		{name: "year supersedes range", filter: Filter{}.WithRange(1990, 2010).WithYear(1996), want: []string{"A"}},
		{name: "region case-insensitive", filter: Filter{}.WithRegion("USA"), want: []string{"A", "B", "E"}},
		{name: "region lower input", filter: Filter{}.WithRegion("usa"), want: []string{"A", "B", "E"}},
		{name: "region and year", filter: Filter{}.WithYear(2000).WithRegion("Usa"), want: []string{"B"}},
		{name: "region and range", filter: Filter{}.WithRange(2001, 2010).WithRegion("china"), want: []string{"F"}},
		{name: "no match", filter: Filter{}.WithYear(1900), want: []string{}},
		{name: "unknown region", filter: Filter{}.WithRegion("Atlantis"), want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Apply(fixture(), tt.filter)
			if got == nil {
				t.Fatal("Apply() returned nil slice")
			}
			if !slices.Equal(names(got), tt.want) {
				t.Errorf("Apply() = %v, want %v", names(got), tt.want)
			}
		})
	}
}

func TestApply_UnresolvedRegionNeverMatches(t *testing.T) {
	t.Parallel()

	for _, region := range []string{"USA", "Australia", "China", "NA"} {
		for _, r := range Apply(fixture(), Filter{}.WithRegion(region)) {
			if !r.HasRegion() {
				t.Errorf("region %q matched unresolved record %q", region, r.Name)
			}
		}
	}
}

func TestApply_Idempotent(t *testing.T) {
	t.Parallel()

	filters := []Filter{
		{},
		Filter{}.WithYear(2000),
		Filter{}.WithRange(1996, 2004),
		Filter{}.WithRegion("USA"),
		Filter{}.WithYear(2000).WithRegion("australia"),
	}

	for _, f := range filters {
		once := Apply(fixture(), f)
		twice := Apply(Rows(once), f)
		if !slices.Equal(once, twice) {
			t.Errorf("filter %s: apply twice = %v, once = %v", f, names(twice), names(once))
		}
	}
}

func TestApply_Composable(t *testing.T) {
	t.Parallel()

	year := Filter{}.WithYear(2000)
	region := Filter{}.WithRegion("USA")
	both := Filter{}.WithYear(2000).WithRegion("USA")

	yearThenRegion := Apply(Rows(Apply(fixture(), year)), region)
	regionThenYear := Apply(Rows(Apply(fixture(), region)), year)
	combined := Apply(fixture(), both)

	if !slices.Equal(yearThenRegion, combined) {
		t.Errorf("year then region = %v, combined = %v", names(yearThenRegion), names(combined))
	}
	if !slices.Equal(regionThenYear, combined) {
		t.Errorf("region then year = %v, combined = %v", names(regionThenYear), names(combined))
	}
}

func TestApply_DoesNotModifySource(t *testing.T) {
	t.Parallel()

	src := fixture()
	before := slices.Clone(src)

	out := Apply(src, Filter{}.WithYear(2000))
	out[0].Name = "mutated"

	if !slices.Equal(src, before) {
		t.Error("Apply() modified or aliased its source")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		filter     Filter
		wantErr    bool
		wantFields []string
	}{
		{name: "identity", filter: Filter{}},
		{name: "year", filter: Filter{}.WithYear(2016)},
		{name: "range", filter: Filter{}.WithRange(1896, 2016)},
		{name: "single year range", filter: Filter{}.WithRange(2000, 2000)},
		{name: "region", filter: Filter{}.WithRegion("Germany")},
		{name: "inverted range", filter: Filter{}.WithRange(2010, 2000), wantErr: true, wantFields: []string{"max"}},
		{name: "negative year", filter: Filter{}.WithYear(-4), wantErr: true, wantFields: []string{"year"}},
		{name: "negative range", filter: Filter{}.WithRange(-10, 2000), wantErr: true, wantFields: []string{"min"}},
		{name: "blank region", filter: Filter{}.WithRegion("   "), wantErr: true, wantFields: []string{"region"}},
		{name: "long region", filter: Filter{}.WithRegion(strings.Repeat("x", 101)), wantErr: true, wantFields: []string{"region"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.filter.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}

			var fe *FilterError
			if !errors.As(err, &fe) {
				t.Fatalf("Validate() error = %v, want *FilterError", err)
			}
			if !slices.Equal(fe.Fields(), tt.wantFields) {
				t.Errorf("Fields() = %v, want %v", fe.Fields(), tt.wantFields)
			}
			if apiErr := fe.APIError(); apiErr.Code != "FILTER_ERROR" {
				t.Errorf("APIError().Code = %q, want FILTER_ERROR", apiErr.Code)
			}
		})
	}
}

func TestValidate_InvertedRangeMessage(t *testing.T) {
	t.Parallel()

	err := Filter{}.WithRange(2010, 2000).Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	want := "invalid filter: max must be greater than or equal to min"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	f := Filter{}.WithRange(1990, 2000).WithYear(1996).WithRegion("  Great Britain ")
	n := f.Normalize()

	if n.Range != nil {
		t.Error("Normalize() kept range alongside year")
	}
	if n.Year == nil || *n.Year != 1996 {
		t.Errorf("Normalize() year = %v", n.Year)
	}
	if n.Region != "great britain" {
		t.Errorf("Normalize() region = %q", n.Region)
	}

	// Normalized filter does not share pointers with the original
	*n.Year = 2000
	if *f.Year != 1996 {
		t.Error("Normalize() aliases the original year")
	}
}

func TestNormalize_Equivalence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Filter
		want bool
	}{
		{name: "both identity", a: Filter{}, b: Filter{}, want: true},
		{name: "same year distinct pointers", a: Filter{}.WithYear(2000), b: Filter{}.WithYear(2000), want: true},
		{name: "different years", a: Filter{}.WithYear(2000), b: Filter{}.WithYear(2004), want: false},
		{name: "region case", a: Filter{}.WithRegion("USA"), b: Filter{}.WithRegion("usa"), want: true},
		{name: "year hides range", a: Filter{}.WithYear(2000).WithRange(1, 3000), b: Filter{}.WithYear(2000), want: true},
		{name: "range vs identity", a: Filter{}.WithRange(1896, 2016), b: Filter{}, want: false},
		{name: "different ranges", a: Filter{}.WithRange(1896, 2016), b: Filter{}.WithRange(1900, 2016), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := reflect.DeepEqual(tt.a.Normalize(), tt.b.Normalize())
			if got != tt.want {
				t.Errorf("normalized %v == %v: got %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestIsIdentityAndString(t *testing.T) {
	t.Parallel()

	if !(Filter{}).IsIdentity() {
		t.Error("zero filter is not identity")
	}
	if (Filter{}).WithRegion("USA").IsIdentity() {
		t.Error("region filter reported as identity")
	}

	tests := []struct {
		filter Filter
		want   string
	}{
		{Filter{}, "all"},
		{Filter{}.WithYear(2000), "year=2000"},
		{Filter{}.WithRange(1996, 2004).WithRegion("USA"), "years=1996..2004 region=usa"},
	}
	for _, tt := range tests {
		if got := tt.filter.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
