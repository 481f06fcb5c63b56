package hw01

import (
	"encoding/json"
	"math"

	"github.com/shopspring/decimal"
)

// NotAvailable is the text rendering of a missing Number.
const NotAvailable = "N/A"

// Number is a statistic value. Any non-finite value means the statistic is
// not available.
type Number float64

// NA returns a missing Number.
func NA() Number { return Number(math.NaN()) }

// IsNA reports whether n is missing (NaN or infinite).
func (n Number) IsNA() bool { return math.IsNaN(float64(n)) || math.IsInf(float64(n), 0) }

// Float returns n as a float64, NaN if missing.
func (n Number) Float() float64 {
	if n.IsNA() {
		return math.NaN()
	}
	return float64(n)
}

// Round returns n rounded half away from zero to places decimals.
func (n Number) Round(places int) Number {
	if n.IsNA() {
		return NA()
	}
	return Number(decimal.NewFromFloat(float64(n)).Round(int32(places)).InexactFloat64())
}

// Fixed formats n with exactly places decimals, or NotAvailable.
func (n Number) Fixed(places int) string {
	if n.IsNA() {
		return NotAvailable
	}
	return decimal.NewFromFloat(float64(n)).StringFixed(int32(places))
}

// String formats n with 4 decimals.
func (n Number) String() string { return n.Fixed(4) }

// MarshalJSON encodes a missing Number as null.
func (n Number) MarshalJSON() ([]byte, error) {
	if n.IsNA() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(n))
}

// UnmarshalJSON decodes null as a missing Number.
func (n *Number) UnmarshalJSON(b []byte) error {
	var f *float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	if f == nil {
		*n = NA()
		return nil
	}
	*n = Number(*f)
	return nil
}

var _ json.Marshaler = Number(0)
var _ json.Unmarshaler = (*Number)(nil)

// numbers converts a float slice into Numbers.
func numbers(values []float64) []Number {
	res := make([]Number, len(values))
	for i, v := range values {
		res[i] = Number(v)
	}
	return res
}
