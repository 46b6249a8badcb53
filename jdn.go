// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jalali

import "fmt"

// gregorianToJDN returns the Julian Day Number for the given proleptic
// Gregorian date. The triple is not validated; callers guarantee a
// valid Gregorian date.
func gregorianToJDN(year int, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// jdnToGregorian returns the proleptic Gregorian date for the given
// Julian Day Number, the exact inverse of gregorianToJDN.
func jdnToGregorian(jdn int) (year int, month, day int) {
	l := jdn + 68569
	n := 4 * l / 146097
	l -= (146097*n + 3) / 4
	i := 4000 * (l + 1) / 1461001
	l += 31 - 1461*i/4
	j := 80 * l / 2447
	day = l - 2447*j/80
	l = j / 11
	month = j + 2 - 12*l
	year = 100*(n-49) + i + l
	return
}

// anchorJDN returns the Julian Day Number of 1 Farvardin of the given
// Jalali year, ie. the day of March located by the leap rule.
func anchorJDN(jy int) int {
	_, gy, march := leapRule(jy)
	return gregorianToJDN(gy, 3, march)
}

// JDN returns the Julian Day Number of the date.
func (d Date) JDN() int {
	var k int
	if m := int(d.Month()); m <= 7 {
		k = (m-1)*31 + d.Day() - 1
	} else {
		k = 186 + (m-7)*30 + d.Day() - 1
	}
	return anchorJDN(d.Year()) + k
}

// FromJDN returns the Date for the given Julian Day Number. It returns
// an error wrapping ErrInvalidDate if the day falls outside the
// supported year range.
func FromJDN(jdn int) (Date, error) {
	gy, _, _ := jdnToGregorian(jdn)
	jy := gy - 621
	// The closing months of a Jalali year spill into the next
	// Gregorian year, so the candidate may be one past MaxYear.
	if jy < MinYear || jy > MaxYear+1 {
		return 0, fmt.Errorf("julian day number %d outside supported years: %w", jdn, ErrInvalidDate)
	}
	if jy > MaxYear {
		jy = MaxYear
	}
	k := jdn - anchorJDN(jy)
	if k < 0 {
		// Before 1 Farvardin of jy, ie. the closing months of the
		// previous Jalali year.
		jy--
		if jy < MinYear {
			return 0, fmt.Errorf("julian day number %d outside supported years: %w", jdn, ErrInvalidDate)
		}
		k = jdn - anchorJDN(jy)
	}
	if k >= DaysInYear(jy) {
		return 0, fmt.Errorf("julian day number %d outside supported years: %w", jdn, ErrInvalidDate)
	}
	if k <= 185 {
		return newDate8(uint16(jy), Month(1+k/31), uint8(k%31+1)), nil
	}
	k -= 186
	return newDate8(uint16(jy), Month(7+k/30), uint8(k%30+1)), nil
}
