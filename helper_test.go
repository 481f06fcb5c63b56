package hw01

import (
	"math"
	"testing"

	"github.com/etnz/hw01/date"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// approx compares floats and Numbers within 1e-9, NaN being equal to NaN.
var approx = cmp.Options{
	cmpopts.EquateApprox(0, 1e-9),
	cmpopts.EquateNaNs(),
	cmpopts.EquateEmpty(),
	cmp.Comparer(func(a, b Number) bool {
		if a.IsNA() || b.IsNA() {
			return a.IsNA() && b.IsNA()
		}
		return math.Abs(float64(a-b)) <= 1e-9
	}),
}

var nan = math.NaN()

// history is a helper to build a daily History starting on 2023-01-02.
func history(values ...float64) *date.History[float64] {
	days := make([]date.Date, len(values))
	for i := range values {
		days[i] = date.New(2023, 1, 2).Add(i)
	}
	return date.NewHistory(days, values)
}

// mustRead reads a CSV test file or fails the test.
func mustRead(t *testing.T, read func(string, ReadOptions) (*Table, error), path string) *Table {
	t.Helper()
	table, err := read(path, ReadOptions{})
	if err != nil {
		t.Fatalf("reading %q: %v", path, err)
	}
	return table
}
