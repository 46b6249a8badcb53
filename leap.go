// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jalali

// breaks holds the years in which the phase of the 33-year leap cycle
// resets, per the Birashk arrangement. The values are empirical and
// must not be altered: the leap status of every year between two
// breaks is derived from its offset into the enclosing interval.
var breaks = []int{
	-61, 9, 38, 199, 426, 686, 756, 818, 1111, 1181,
	1210, 1635, 2060, 2097, 2192, 2262, 2324, 2394, 2456, 3178,
}

// leapRule determines, for the Jalali year jy, whether it is a leap
// year and where its first day (1 Farvardin) falls in the Gregorian
// calendar, returned as the Gregorian year gy = jy+621 and the day of
// March of that year. jy must be in breaks[0]..breaks[last]; callers
// guarantee this.
//
// The computation accumulates the number of leap days since the first
// break year on both calendars and takes their difference. Integer
// division truncates throughout, as the arrangement requires.
func leapRule(jy int) (leap bool, gy, march int) {
	jp := breaks[0]
	leapJ := -14
	var jump int
	for _, jm := range breaks[1:] {
		jump = jm - jp
		if jy < jm {
			break
		}
		leapJ += jump/33*8 + jump%33/4
		jp = jm
	}
	n := jy - jp

	leapJ += n/33*8 + (n%33+3)/4
	if jump%33 == 4 && jump-n == 4 {
		leapJ++
	}

	gy = jy + 621
	leapG := gy/4 - (gy/100+1)*3/4 - 150
	march = 20 + leapJ - leapG

	if jump-n < 6 {
		n = n - jump + (jump+4)/33*33
	}
	pos := ((n+1)%33 - 1) % 4
	if pos == -1 {
		pos = 4
	}
	return pos == 0, gy, march
}

// IsLeap returns true if the given Jalali year is a leap year.
func IsLeap(year int) bool {
	leap, _, _ := leapRule(year)
	return leap
}
