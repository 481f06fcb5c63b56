package date

import (
	"iter"
	"slices"
	"sort"
)

// Value lists the types a History can hold.
type Value interface {
	float32 | float64 | string
}

// History stores a chronological series of values, each associated with a specific date.
// It ensures that dates are unique and the series is always sorted.
type History[T Value] struct {
	days   []Date
	values []T
}

// NewHistory builds a History from parallel slices of days and values, in any order.
//
// When a day appears several times, the last value wins.
func NewHistory[T Value](days []Date, values []T) *History[T] {
	n := min(len(days), len(values))
	h := &History[T]{days: slices.Clone(days[:n]), values: slices.Clone(values[:n])}
	// stable, so that among equal days the file order is kept and the last one can be picked.
	sort.Stable(chronological[T]{h})
	w := 0
	for i := range h.days {
		if w > 0 && h.days[w-1] == h.days[i] {
			h.values[w-1] = h.values[i]
			continue
		}
		h.days[w], h.values[w] = h.days[i], h.values[i]
		w++
	}
	h.days, h.values = h.days[:w], h.values[:w]
	return h
}

// Latest returns the latest date and value in the history.
// If the history is empty, it returns zero value.
func (h *History[T]) Latest() (day Date, value T) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, *new(T) // return zero value of T
	}
	return h.days[last], h.values[last]
}

// First returns the earliest date and value in the history.
// If the history is empty, it returns zero value.
func (h *History[T]) First() (day Date, value T) {
	if len(h.days) == 0 {
		return Date{}, *new(T)
	}
	return h.days[0], h.values[0]
}

// Span returns the range from the first to the last day of the history.
func (h *History[T]) Span() Range {
	first, _ := h.First()
	last, _ := h.Latest()
	return Range{From: first, To: last}
}

// Len returns the number of items in the history.
func (h *History[T]) Len() int { return len(h.days) }

// At returns the i-th point in chronological order.
func (h *History[T]) At(i int) (Date, T) { return h.days[i], h.values[i] }

// Days returns a copy of the days, in chronological order.
func (h *History[T]) Days() []Date { return slices.Clone(h.days) }

// Slice returns a copy of the values, in chronological order.
func (h *History[T]) Slice() []T { return slices.Clone(h.values) }

// chronological is a private implementation to make this history chronologically sorted.
type chronological[T Value] struct{ *History[T] }

func (s chronological[T]) Less(i, j int) bool { return s.days[i].Before(s.days[j]) }

func (s chronological[T]) Swap(i, j int) {
	s.days[i], s.days[j] = s.days[j], s.days[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

// Values returns an iterator over all date/value pairs in the history, in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// Get returns the value at 'day' and true or zero value and false.
func (h *History[T]) Get(day Date) (T, bool) {
	if i, found := h.search(day); found {
		return h.values[i], true
	}
	var value T
	return value, false
}

// search returns the position of day, or where it would be inserted.
func (h *History[T]) search(day Date) (int, bool) {
	return slices.BinarySearchFunc(h.days, day, Date.Compare)
}

// Between returns a new History with the points within r (boundaries included).
func (h *History[T]) Between(r Range) *History[T] {
	from, _ := h.search(r.From)
	to, found := h.search(r.To)
	if found {
		to++
	}
	if to < from {
		to = from
	}
	return &History[T]{days: slices.Clone(h.days[from:to]), values: slices.Clone(h.values[from:to])}
}

// Map returns a new History with f applied to every value.
func (h *History[T]) Map(f func(T) T) *History[T] {
	res := &History[T]{days: slices.Clone(h.days), values: make([]T, len(h.values))}
	for i, v := range h.values {
		res.values[i] = f(v)
	}
	return res
}
