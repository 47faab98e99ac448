package datemath

import "time"

// DateRange is a half-open time interval [From, To).
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.To)
}

// absoluteFormats are the explicit date layouts accepted by ParseDate,
// tried in order.
var absoluteFormats = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	"1/2/2006",
	"2/1/2006",
	"1/2/2006 15:04",
}
