// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jalali

import (
	"fmt"
	"iter"
	"strings"
)

// DateRange represents an inclusive range of Dates. It is stored as
// from<<32|to so the ordering of DateRange values follows the ordering
// of their start dates. The zero value is not a valid range.
type DateRange uint64

// NewDateRange returns the DateRange from start to end inclusive. It
// returns an error wrapping ErrInvalidRange if start is after end.
func NewDateRange(start, end Date) (DateRange, error) {
	if start > end {
		return 0, fmt.Errorf("start %s is after end %s: %w", start, end, ErrInvalidRange)
	}
	return DateRange(start)<<32 | DateRange(end), nil
}

// From returns the start date of the range.
func (dr DateRange) From() Date {
	return Date(dr >> 32 & 0xffffffff)
}

// To returns the end date of the range.
func (dr DateRange) To() Date {
	return Date(dr & 0xffffffff)
}

// Contains returns true if d falls within the range, inclusive of
// both bounds.
func (dr DateRange) Contains(d Date) bool {
	return d >= dr.From() && d <= dr.To()
}

// Days returns the number of days in the range, counting both bounds.
func (dr DateRange) Days() int {
	return dr.From().DaysUntil(dr.To()) + 1
}

// Dates returns an iterator that yields each date in the range in
// chronological order. The iterator is restartable: each range over it
// starts again at the first date.
func (dr DateRange) Dates() iter.Seq[Date] {
	to := dr.To()
	return func(yield func(Date) bool) {
		// Tomorrow saturates at the last supported date, so end the
		// iteration on reaching to rather than testing d <= to.
		for d := dr.From(); ; d = d.Tomorrow() {
			if !yield(d) || d == to {
				return
			}
		}
	}
}

func (dr DateRange) String() string {
	return dr.From().String() + ":" + dr.To().String()
}

// Parse parses a range in the format "YYYY-MM-DD:YYYY-MM-DD" as
// produced by String.
func (dr *DateRange) Parse(val string) error {
	parts := strings.Split(val, ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid format, %q expected '<from>:<to>': %w", val, ErrInvalidRange)
	}
	var from, to Date
	if err := from.Parse(parts[0]); err != nil {
		return fmt.Errorf("invalid from: %s: %w", parts[0], err)
	}
	if err := to.Parse(parts[1]); err != nil {
		return fmt.Errorf("invalid to: %s: %w", parts[1], err)
	}
	ndr, err := NewDateRange(from, to)
	if err != nil {
		return err
	}
	*dr = ndr
	return nil
}

// Step is the increment between successive dates of a sequence.
type Step struct {
	Years  int
	Months int
	Days   int
}

// effectiveDays approximates the step as a day count, used only to
// verify that the step advances forwards.
func (s Step) effectiveDays() int {
	return s.Days + s.Months*30 + s.Years*365
}

func (s Step) String() string {
	return fmt.Sprintf("%dy%dm%dd", s.Years, s.Months, s.Days)
}

// apply adds the step to d: years first, then months, then days, with
// the day-clamping of AddMonths and AddYears.
func (s Step) apply(d Date) (Date, error) {
	d, err := d.AddYears(s.Years)
	if err != nil {
		return 0, err
	}
	d, err = d.AddMonths(s.Months)
	if err != nil {
		return 0, err
	}
	return d.AddDays(s.Days)
}

// DatesUntil returns an iterator that yields each date from d up to,
// but not including, end. An end on or before d yields nothing. The
// iterator is restartable: each range over it starts again at d.
func (d Date) DatesUntil(end Date) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for td := d; td < end; td = td.Tomorrow() {
			if !yield(td) {
				return
			}
		}
	}
}

// DatesUntilStep returns an iterator that yields dates starting at d,
// each obtained by adding step to its predecessor, up to but not
// including end. It returns an error wrapping ErrInvalidStep if the
// step does not advance forwards, judged on its approximate day count.
// The iterator is restartable and iteration stops short of end if the
// step would leave the supported year range or fails to advance the
// date.
func (d Date) DatesUntilStep(end Date, step Step) (iter.Seq[Date], error) {
	if step.effectiveDays() <= 0 {
		return nil, fmt.Errorf("step %s does not advance: %w", step, ErrInvalidStep)
	}
	return func(yield func(Date) bool) {
		for td := d; td < end; {
			if !yield(td) {
				return
			}
			// A mixed step can pass the day-count check yet fail to
			// advance when month clamping absorbs its day component.
			next, err := step.apply(td)
			if err != nil || next <= td {
				return
			}
			td = next
		}
	}, nil
}
