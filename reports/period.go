package reports

import (
	"errors"
	"time"

	"github.com/jinzhu/now"
)

var ErrInvalidPeriod = errors.New("invalid report period")

const dateLayout = "2006-01-02"

// Period is an inclusive time range.
type Period struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.From) && !t.After(p.To)
}

// ParsePeriod resolves a named period (today, week, month) or explicit from/to dates
// (YYYY-MM-DD, both inclusive) against at in loc. Weeks start on Monday.
// An empty request means today.
func ParsePeriod(name, from, to string, at time.Time, loc *time.Location) (Period, error) {
	cfg := &now.Config{WeekStartDay: time.Monday, TimeLocation: loc, TimeFormats: []string{dateLayout}}
	n := cfg.With(at.In(loc))

	if from != "" || to != "" {
		if from == "" || to == "" {
			return Period{}, ErrInvalidPeriod
		}
		start, err := cfg.Parse(from)
		if err != nil {
			return Period{}, ErrInvalidPeriod
		}
		end, err := cfg.Parse(to)
		if err != nil {
			return Period{}, ErrInvalidPeriod
		}
		p := Period{From: cfg.With(start).BeginningOfDay(), To: cfg.With(end).EndOfDay()}
		if p.To.Before(p.From) {
			return Period{}, ErrInvalidPeriod
		}
		return p, nil
	}

	switch name {
	case "", "today":
		return Period{From: n.BeginningOfDay(), To: n.EndOfDay()}, nil
	case "week":
		return Period{From: n.BeginningOfWeek(), To: n.EndOfWeek()}, nil
	case "month":
		return Period{From: n.BeginningOfMonth(), To: n.EndOfMonth()}, nil
	}
	return Period{}, ErrInvalidPeriod
}
