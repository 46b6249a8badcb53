// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jalali

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Month is a month of the Jalali calendar as an int, 1 for Farvardin
// through 12 for Esfand.
type Month int

const (
	Farvardin Month = iota + 1
	Ordibehesht
	Khordad
	Tir
	Mordad
	Shahrivar
	Mehr
	Aban
	Azar
	Dey
	Bahman
	Esfand
)

var (
	months = []string{"farvardin", "ordibehesht", "khordad", "tir", "mordad", "shahrivar", "mehr", "aban", "azar", "dey", "bahman", "esfand"}

	monthNames = []string{"Farvardin", "Ordibehesht", "Khordad", "Tir", "Mordad", "Shahrivar", "Mehr", "Aban", "Azar", "Dey", "Bahman", "Esfand"}

	monthNamesFa = []string{"فروردین", "اردیبهشت", "خرداد", "تیر", "مرداد", "شهریور", "مهر", "آبان", "آذر", "دی", "بهمن", "اسفند"}

	weekdayNamesFa = []string{"یکشنبه", "دوشنبه", "سه‌شنبه", "چهارشنبه", "پنجشنبه", "جمعه", "شنبه"}
)

func (m Month) String() string {
	if m < 1 || m > 12 {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return monthNames[m-1]
}

// Persian returns the Persian name of the month.
func (m Month) Persian() string {
	if m < 1 || m > 12 {
		return ""
	}
	return monthNamesFa[m-1]
}

// WeekdayPersian returns the Persian name of the given weekday.
func WeekdayPersian(w time.Weekday) string {
	return weekdayNamesFa[w]
}

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the
// range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("invalid month: %d", n)
	}
	return Month(n), nil
}

// ParseMonth parses a month name of the form "Far" to "Esf" or any
// other longer prefixes of "Farvardin" to "Esfand" in either lower or
// upper case.
func ParseMonth(val string) (Month, error) {
	lc := strings.ToLower(val)
	if len(lc) < 3 {
		return 0, fmt.Errorf("invalid month: %s", val)
	}
	for i := range months {
		if strings.HasPrefix(months[i], lc) {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("invalid month: %s", val)
}

// Parse parses a month in either numeric or month name format.
func (m *Month) Parse(val string) error {
	if n, err := ParseNumericMonth(val); err == nil {
		*m = n
		return nil
	}
	n, err := ParseMonth(val)
	if err != nil {
		return err
	}
	*m = n
	return nil
}

// DaysInMonth returns the number of days in the given month for the
// given year. Months 1-6 have 31 days, months 7-11 have 30 days and
// month 12 has 29 days, or 30 if the year is a leap year.
func DaysInMonth(year int, month Month) int {
	switch {
	case month <= 6:
		return 31
	case month <= 11:
		return 30
	}
	if IsLeap(year) {
		return 30
	}
	return 29
}

// DaysInYear returns the number of days in the given year: 365, or
// 366 for a leap year.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}
