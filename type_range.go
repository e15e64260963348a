package portfolio

import "fmt"

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains returns true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days returns the number of calendar days covered by the range, inclusive.
func (r Range) Days() int {
	days := 0
	for d := r.From; !d.After(r.To); d = d.Add(1) {
		days++
	}
	return days
}

func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
