package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSeasonOf(t *testing.T) {
	testCases := []struct {
		in         Date
		wantYear   int
		wantSeason Season
	}{
		{New(2022, time.January, 1), 2022, Winter},
		{New(2022, time.February, 28), 2022, Winter},
		{New(2022, time.March, 1), 2022, Spring},
		{New(2022, time.May, 31), 2022, Spring},
		{New(2022, time.June, 1), 2022, Summer},
		{New(2022, time.August, 31), 2022, Summer},
		{New(2022, time.September, 1), 2022, Fall},
		{New(2022, time.November, 30), 2022, Fall},
		{New(2022, time.December, 1), 2023, Winter},
		{New(2022, time.December, 31), 2023, Winter},
	}
	for _, tc := range testCases {
		year, season := SeasonOf(tc.in)
		if year != tc.wantYear || season != tc.wantSeason {
			t.Errorf("SeasonOf(%v) = %d, %v want %d, %v", tc.in, year, season, tc.wantYear, tc.wantSeason)
		}
	}
}

func TestSeasonRange(t *testing.T) {
	testCases := []struct {
		year   int
		season Season
		want   Range
	}{
		{2024, Winter, Range{New(2023, time.December, 1), New(2024, time.February, 29)}},
		{2023, Winter, Range{New(2022, time.December, 1), New(2023, time.February, 28)}},
		{2023, Spring, Range{New(2023, time.March, 1), New(2023, time.May, 31)}},
		{2023, Summer, Range{New(2023, time.June, 1), New(2023, time.August, 31)}},
		{2023, Fall, Range{New(2023, time.September, 1), New(2023, time.November, 30)}},
	}
	for _, tc := range testCases {
		if got := SeasonRange(tc.year, tc.season); got != tc.want {
			t.Errorf("SeasonRange(%d, %v) = %v want %v", tc.year, tc.season, got, tc.want)
		}
	}
}

// TestSeasonCalendar checks that every day of a year lands in the season range SeasonOf assigns it,
// and that the ranges of a season-year never overlap.
func TestSeasonCalendar(t *testing.T) {
	for on := New(2021, time.January, 1); on.Year() < 2025; on = on.Add(1) {
		year, season := SeasonOf(on)
		if r := SeasonRange(year, season); !r.Contains(on) {
			t.Fatalf("SeasonRange(SeasonOf(%v)) = %v does not contain it", on, r)
		}
	}
	for _, a := range Seasons {
		for _, b := range Seasons {
			if a != b && SeasonRange(2022, a).Overlaps(SeasonRange(2022, b)) {
				t.Errorf("SeasonRange(2022, %v) overlaps SeasonRange(2022, %v)", a, b)
			}
		}
	}
}

func TestSeasonText(t *testing.T) {
	b, err := json.Marshal(map[Season]int{Fall: 4, Winter: 1})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if want := `{"Fall":4,"Winter":1}`; string(b) != want {
		t.Errorf("json.Marshal() = %s want %s", b, want)
	}
	var back map[Season]int
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if back[Fall] != 4 || back[Winter] != 1 {
		t.Errorf("json.Unmarshal() = %v", back)
	}
	if _, err := ParseSeason("monsoon"); err == nil {
		t.Errorf("ParseSeason(%q) must fail", "monsoon")
	}
	if s, _ := ParseSeason("Autumn"); s != Fall {
		t.Errorf("ParseSeason(%q) = %v want Fall", "Autumn", s)
	}
}
