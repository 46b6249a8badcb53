// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package jalali provides support for working with dates in the Jalali
// (Persian solar) calendar: validated date values, calendar arithmetic,
// conversion to and from the proleptic Gregorian calendar via Julian Day
// Numbers, and range/sequence iteration.
//
// The calendar has 12 months: months 1-6 have 31 days, months 7-11 have
// 30 days and month 12 (Esfand) has 29 days, or 30 in a leap year. Leap
// years follow the 33-year cycle approximation anchored on the break
// years of the Birashk arrangement rather than a fixed-period rule.
//
// All types are immutable values and all functions are pure, so
// everything in this package is safe for unsynchronized concurrent use.
package jalali

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// MinYear and MaxYear bound the supported year range. The break
	// table used for leap year calculations covers this range.
	MinYear = 1
	MaxYear = 3178
)

var (
	// ErrInvalidDate is returned when a year, month, day triple does
	// not denote a valid date in the supported range.
	ErrInvalidDate = errors.New("invalid jalali date")
	// ErrInvalidRange is returned when a range's start date is after
	// its end date.
	ErrInvalidRange = errors.New("invalid date range")
	// ErrInvalidStep is returned when a sequence step does not advance
	// forwards.
	ErrInvalidStep = errors.New("invalid step")
)

// Date represents a date in the Jalali calendar. It is stored as
// year<<16|month<<8|day and hence the ordering of Date values is
// identical to the chronological ordering of the dates they represent.
// Date values created by New are always valid; the zero value is not
// a valid date.
type Date uint32

func newDate8(year uint16, month Month, day uint8) Date {
	return Date(year)<<16 | Date(month)<<8 | Date(day)
}

// New returns the Date for the given year, month and day. It returns
// an error wrapping ErrInvalidDate if the triple does not denote a
// valid date, ie. if the year or month is out of range or the day
// exceeds the length of the month for that year.
func New(year int, month Month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return 0, fmt.Errorf("year %d not in %d..%d: %w", year, MinYear, MaxYear, ErrInvalidDate)
	}
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("month %d not in 1..12: %w", int(month), ErrInvalidDate)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return 0, fmt.Errorf("day %d not in 1..%d for %s %d: %w", day, DaysInMonth(year, month), month, year, ErrInvalidDate)
	}
	return newDate8(uint16(year), month, uint8(day)), nil
}

// MustNew is like New but panics on an invalid date. It is intended
// for constant tables and tests.
func MustNew(year int, month Month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// Valid returns true if the given year, month and day denote a valid
// date in the supported range.
func Valid(year int, month Month, day int) bool {
	_, err := New(year, month, day)
	return err == nil
}

// Year returns the year, in the range MinYear..MaxYear.
func (d Date) Year() int {
	return int(d >> 16 & 0xffff)
}

// Month returns the month, in the range 1..12.
func (d Date) Month() Month {
	return Month(d >> 8 & 0xff)
}

// Day returns the day of the month, in the range 1..31.
func (d Date) Day() int {
	return int(d & 0xff)
}

// YearDay returns the day of the year, in the range 1..365, or 1..366
// in a leap year.
func (d Date) YearDay() int {
	if m := d.Month(); m <= 7 {
		return int(m-1)*31 + d.Day()
	}
	return 186 + int(d.Month()-7)*30 + d.Day()
}

// FromYearDay returns the Date for the given day of the year, the
// inverse of YearDay. It returns an error wrapping ErrInvalidDate if
// yday exceeds the length of the year.
func FromYearDay(year, yday int) (Date, error) {
	if yday < 1 || yday > DaysInYear(year) {
		return 0, fmt.Errorf("day of year %d not in 1..%d for year %d: %w", yday, DaysInYear(year), year, ErrInvalidDate)
	}
	if yday <= 186 {
		return New(year, Month(1+(yday-1)/31), (yday-1)%31+1)
	}
	yday -= 187
	return New(year, Month(7+yday/30), yday%30+1)
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return time.Weekday((d.JDN() + 1) % 7)
}

// IsLeapYear returns true if the date falls in a leap year, ie. a
// year whose Esfand has 30 days.
func (d Date) IsLeapYear() bool {
	return IsLeap(d.Year())
}

// String returns the date in the canonical "YYYY-MM-DD" form, eg.
// "1400-01-01". This is the only textual form the package produces.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year(), int(d.Month()), d.Day())
}

// Parse parses a date in the canonical "YYYY-MM-DD" form produced by
// String. All other formats are presentation concerns and are not
// accepted.
func (d *Date) Parse(val string) error {
	parts := strings.Split(val, "-")
	if len(parts) != 3 {
		return fmt.Errorf("invalid date %q, expected format 'YYYY-MM-DD': %w", val, ErrInvalidDate)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("invalid year %q: %w", parts[0], ErrInvalidDate)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("invalid month %q: %w", parts[1], ErrInvalidDate)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return fmt.Errorf("invalid day %q: %w", parts[2], ErrInvalidDate)
	}
	nd, err := New(year, Month(month), day)
	if err != nil {
		return err
	}
	*d = nd
	return nil
}

// Before returns true if d is chronologically before a.
func (d Date) Before(a Date) bool {
	return d < a
}

// After returns true if d is chronologically after a.
func (d Date) After(a Date) bool {
	return d > a
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal
// to, or after a.
func (d Date) Compare(a Date) int {
	switch {
	case d < a:
		return -1
	case d > a:
		return 1
	}
	return 0
}
