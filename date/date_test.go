package date

import (
	"encoding/json"
	"slices"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewNormalizes(t *testing.T) {
	if got, want := New(2024, 13, 1), New(2025, time.January, 1); got != want {
		t.Errorf("New(2024, 13, 1) = %v want %v", got, want)
	}
	if got, want := New(2024, time.March, 0), New(2024, time.February, 29); got != want {
		t.Errorf("New(2024, 3, 0) = %v want %v", got, want)
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2022-01-10", want: New(2022, time.January, 10)},
		{in: "2025-7-1", want: New(2025, time.July, 1)},
		{in: " 2023-01-03 ", want: New(2023, time.January, 3)},
		{in: "2023-01-03 00:00:00", want: New(2023, time.January, 3)},
		{in: "2023-01-03T16:00:00Z", want: New(2023, time.January, 3)},
		{in: "2023-01-03T16:00:00-05:00", want: New(2023, time.January, 3)},
		{in: "03/01/2023", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v want %v", tc.in, got, tc.want)
		}
	}
}

func TestDateJSON(t *testing.T) {
	d := New(2022, time.December, 5)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(b) != `"2022-12-05"` {
		t.Errorf("json.Marshal() = %s want %q", b, "2022-12-05")
	}
	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if back != d {
		t.Errorf("json.Unmarshal() = %v want %v", back, d)
	}
}

func TestIterate(t *testing.T) {
	a := NewHistory([]Date{New(2024, 1, 1), New(2024, 1, 3)}, []float64{1, 3})
	b := NewHistory([]Date{New(2024, 1, 2), New(2024, 1, 3), New(2024, 1, 4)}, []float64{2, 3, 4})

	var got []Date
	for on := range Iterate(a, b) {
		got = append(got, on)
	}
	want := []Date{New(2024, 1, 1), New(2024, 1, 2), New(2024, 1, 3), New(2024, 1, 4)}
	if !slices.Equal(got, want) {
		t.Errorf("Iterate() = %v want %v", got, want)
	}
}

func TestRange(t *testing.T) {
	r, err := NewRange("2022-01-10", "2022-01-20")
	if err != nil {
		t.Fatalf("NewRange() error = %v", err)
	}
	if !r.Contains(New(2022, 1, 10)) || !r.Contains(New(2022, 1, 20)) {
		t.Errorf("%v.Contains() must include its boundaries", r)
	}
	if r.Contains(New(2022, 1, 21)) {
		t.Errorf("%v.Contains(2022-01-21) = true want false", r)
	}
	if got := r.Days(); got != 11 {
		t.Errorf("%v.Days() = %d want 11", r, got)
	}
	reversed := Range{From: r.To, To: r.From}
	if !reversed.IsEmpty() || reversed.Days() != 0 {
		t.Errorf("%v must be empty", reversed)
	}
	if _, err := NewRange("2022-01-10", "tomorrow"); err == nil {
		t.Errorf("NewRange(_, %q) must fail", "tomorrow")
	}
}
