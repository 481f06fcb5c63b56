package date

import "fmt"

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange parses both boundaries of an inclusive range.
func NewRange(from, to string) (Range, error) {
	f, err := Parse(from)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range start: %w", err)
	}
	t, err := Parse(to)
	if err != nil {
		return Range{}, fmt.Errorf("invalid range end: %w", err)
	}
	return Range{From: f, To: t}, nil
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// IsEmpty reports whether no date can be contained in the range.
func (r Range) IsEmpty() bool { return r.From.After(r.To) }

// Overlaps reports whether r and x share at least one day.
func (r Range) Overlaps(x Range) bool {
	if r.IsEmpty() || x.IsEmpty() {
		return false
	}
	return !r.To.Before(x.From) && !x.To.Before(r.From)
}

// Within reports whether r is entirely included in x.
func (r Range) Within(x Range) bool { return x.Contains(r.From) && x.Contains(r.To) }

// Days returns the number of days in the range, boundaries included.
func (r Range) Days() int {
	if r.IsEmpty() {
		return 0
	}
	return int(r.To.time().Sub(r.From.time())/Day) + 1
}

// String returns "from..to".
func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
