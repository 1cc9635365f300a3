package cmd

import (
	"fmt"
	"regexp"
	"time"
)

// ParsedDate is a date string parsed at year, month, or day granularity.
type ParsedDate struct {
	Date  time.Time
	Year  bool
	Month bool
	Day   bool
}

// End returns the exclusive end of the period the date names: the start
// of the next year, month, or day.
func (d ParsedDate) End() time.Time {
	switch {
	case d.Year:
		return d.Date.AddDate(1, 0, 0)
	case d.Month:
		return d.Date.AddDate(0, 1, 0)
	default:
		return d.Date.AddDate(0, 0, 1)
	}
}

func parseSingleDatestring(ds string) (date ParsedDate, err error) {
	matched, err := regexp.Match(`^\d{4}$`, []byte(ds))
	if err != nil {
		err = fmt.Errorf("Parsing datestring as year: %w", err)
		return
	}
	if matched {
		date.Date, err = time.Parse("2006", ds)
		if err != nil {
			err = fmt.Errorf("Parsing datestring as year: %w", err)
			return
		}
		date.Year = true
		return
	}

	matched, err = regexp.Match(`^\d{4}-\d{2}$`, []byte(ds))
	if err != nil {
		err = fmt.Errorf("Parsing datestring as month: %w", err)
		return
	}
	if matched {
		date.Date, err = time.Parse("2006-01", ds)
		if err != nil {
			err = fmt.Errorf("Parsing datestring as month: %w", err)
			return
		}
		date.Month = true
		return
	}

	matched, err = regexp.Match(`^\d{4}-\d{2}-\d{2}$`, []byte(ds))
	if err != nil {
		err = fmt.Errorf("Parsing datestring as day: %w", err)
		return
	}
	if matched {
		date.Date, err = time.Parse("2006-01-02", ds)
		if err != nil {
			err = fmt.Errorf("Parsing datestring as day: %w", err)
			return
		}
		date.Day = true
		return
	}

	err = fmt.Errorf("Invalid format: %q", ds)
	return
}

// parsePeriodFlags turns the --from/--to flags into [start, end) bounds.
// Zero times mean unbounded. --to is inclusive of the period it names:
// --to 2020 keeps everything through the end of 2020.
func parsePeriodFlags(from, to string) (start time.Time, end time.Time, err error) {
	if from != "" {
		parsed, perr := parseSingleDatestring(from)
		if perr != nil {
			err = fmt.Errorf("invalid --from: %w", perr)
			return
		}
		start = parsed.Date
	}
	if to != "" {
		parsed, perr := parseSingleDatestring(to)
		if perr != nil {
			err = fmt.Errorf("invalid --to: %w", perr)
			return
		}
		end = parsed.End()
	}
	return
}
