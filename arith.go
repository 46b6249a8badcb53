// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jalali

import "fmt"

// AddDays returns the date n days after d, or before for negative n.
// The only possible failure is leaving the supported year range, which
// is reported as an error wrapping ErrInvalidDate.
func (d Date) AddDays(n int) (Date, error) {
	if n == 0 {
		return d, nil
	}
	return FromJDN(d.JDN() + n)
}

// AddWeeks returns the date n*7 days after d, or before for negative n.
func (d Date) AddWeeks(n int) (Date, error) {
	return d.AddDays(n * 7)
}

// AddMonths returns the date n months after d, or before for negative
// n. If the day of the month exceeds the length of the target month it
// is clamped to the last day of that month rather than rolling into
// the following month: Farvardin 31 plus 6 months is Mehr 30, not
// Aban 1.
func (d Date) AddMonths(n int) (Date, error) {
	if n == 0 {
		return d, nil
	}
	total := d.Year()*12 + int(d.Month()) - 1 + n
	year, month := total/12, total%12+1
	if month <= 0 {
		month += 12
		year--
	}
	if year < MinYear || year > MaxYear {
		return 0, fmt.Errorf("%s plus %d months: year %d not in %d..%d: %w", d, n, year, MinYear, MaxYear, ErrInvalidDate)
	}
	return newDate8(uint16(year), Month(month), uint8(min(d.Day(), DaysInMonth(year, Month(month))))), nil
}

// AddYears returns the date n years after d, or before for negative n.
// Esfand 30 is clamped to Esfand 29 when the target year is not a leap
// year.
func (d Date) AddYears(n int) (Date, error) {
	if n == 0 {
		return d, nil
	}
	year := d.Year() + n
	if year < MinYear || year > MaxYear {
		return 0, fmt.Errorf("%s plus %d years: year %d not in %d..%d: %w", d, n, year, MinYear, MaxYear, ErrInvalidDate)
	}
	return newDate8(uint16(year), d.Month(), uint8(min(d.Day(), DaysInMonth(year, d.Month())))), nil
}

// DaysUntil returns the number of days from d to a, negative if a is
// before d.
func (d Date) DaysUntil(a Date) int {
	return a.JDN() - d.JDN()
}

// WeeksUntil returns the number of whole weeks from d to a, ie.
// DaysUntil divided by 7 truncated towards zero. No week alignment is
// applied.
func (d Date) WeeksUntil(a Date) int {
	return d.DaysUntil(a) / 7
}

// MonthsUntil returns the number of completed months from d to a,
// negative if a is before d. A month counts only once the day of the
// month has been reached, so Farvardin 21 to Ordibehesht 20 is zero
// months.
func (d Date) MonthsUntil(a Date) int {
	n := (a.Year()*12 + int(a.Month())) - (d.Year()*12 + int(d.Month()))
	switch {
	case n > 0 && a.Day() < d.Day():
		n--
	case n < 0 && a.Day() > d.Day():
		n++
	}
	return n
}

// YearsUntil returns the number of completed years from d to a,
// negative if a is before d.
func (d Date) YearsUntil(a Date) int {
	return d.MonthsUntil(a) / 12
}

// FirstOfMonth returns the first day of d's month.
func (d Date) FirstOfMonth() Date {
	return newDate8(uint16(d.Year()), d.Month(), 1)
}

// LastOfMonth returns the last day of d's month.
func (d Date) LastOfMonth() Date {
	return newDate8(uint16(d.Year()), d.Month(), uint8(DaysInMonth(d.Year(), d.Month())))
}

// FirstOfYear returns 1 Farvardin of d's year.
func (d Date) FirstOfYear() Date {
	return newDate8(uint16(d.Year()), Farvardin, 1)
}

// LastOfYear returns the last day of Esfand of d's year.
func (d Date) LastOfYear() Date {
	return newDate8(uint16(d.Year()), Esfand, uint8(DaysInMonth(d.Year(), Esfand)))
}

// Tomorrow returns the date of the next day. The last supported date
// is returned unchanged.
func (d Date) Tomorrow() Date {
	if d.Day() < DaysInMonth(d.Year(), d.Month()) {
		return d + 1
	}
	if d.Month() < 12 {
		return newDate8(uint16(d.Year()), d.Month()+1, 1)
	}
	if d.Year() == MaxYear {
		return d
	}
	return newDate8(uint16(d.Year()+1), Farvardin, 1)
}

// Yesterday returns the date of the previous day. The first supported
// date is returned unchanged.
func (d Date) Yesterday() Date {
	if d.Day() > 1 {
		return d - 1
	}
	if d.Month() > 1 {
		m := d.Month() - 1
		return newDate8(uint16(d.Year()), m, uint8(DaysInMonth(d.Year(), m)))
	}
	if d.Year() == MinYear {
		return d
	}
	return newDate8(uint16(d.Year()-1), Esfand, uint8(DaysInMonth(d.Year()-1, Esfand)))
}
