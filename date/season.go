package date

import (
	"fmt"
	"strings"
	"time"
)

// Season is a meteorological season of the northern hemisphere.
type Season int

const (
	Winter Season = iota // December, January, February
	Spring               // March to May
	Summer               // June to August
	Fall                 // September to November
)

// Seasons lists the seasons in the order they happen within a season-year.
var Seasons = []Season{Winter, Spring, Summer, Fall}

func (s Season) String() string {
	switch s {
	case Winter:
		return "Winter"
	case Spring:
		return "Spring"
	case Summer:
		return "Summer"
	case Fall:
		return "Fall"
	default:
		panic(fmt.Sprintf("unknown season %d", s))
	}
}

// ParseSeason parses a season name, case insensitive. "autumn" is accepted for Fall.
func ParseSeason(s string) (Season, error) {
	switch strings.ToLower(s) {
	case "winter":
		return Winter, nil
	case "spring":
		return Spring, nil
	case "summer":
		return Summer, nil
	case "fall", "autumn":
		return Fall, nil
	default:
		return Winter, fmt.Errorf("unknown season %s", s)
	}
}

// MarshalText makes seasons usable as JSON object keys.
func (s Season) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText is the reverse of MarshalText.
func (s *Season) UnmarshalText(text []byte) error {
	v, err := ParseSeason(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// SeasonOf returns the season of d and the season-year it is attributed to.
//
// December belongs to the winter of the following year.
func SeasonOf(d Date) (seasonYear int, s Season) {
	switch m := d.Month(); {
	case m == time.December:
		return d.Year() + 1, Winter
	case m <= time.February:
		return d.Year(), Winter
	case m <= time.May:
		return d.Year(), Spring
	case m <= time.August:
		return d.Year(), Summer
	default:
		return d.Year(), Fall
	}
}

// SeasonRange returns the calendar bounds of a season in a season-year.
func SeasonRange(seasonYear int, s Season) Range {
	// first month of the season, relative to January of the season-year.
	start := map[Season]time.Month{Winter: 0, Spring: time.March, Summer: time.June, Fall: time.September}[s]
	from := New(seasonYear, start, 1) // month 0 normalizes to the previous December.
	to := New(seasonYear, start+3, 1).Add(-1)
	return Range{From: from, To: to}
}
