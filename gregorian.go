// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jalali

import (
	"time"

	"cloudeng.io/datetime"
)

// unixEpochJDN is the Julian Day Number of the Unix epoch day,
// 1970-01-01 Gregorian.
const unixEpochJDN = 2440588

// Gregorian returns the Gregorian calendar date on which d falls.
func (d Date) Gregorian() datetime.CalendarDate {
	gy, gm, gd := jdnToGregorian(d.JDN())
	return datetime.NewCalendarDate(gy, datetime.Month(gm), gd)
}

// FromGregorian returns the Date for the given Gregorian calendar
// date. It returns an error wrapping ErrInvalidDate if the date falls
// outside the supported year range.
func FromGregorian(cd datetime.CalendarDate) (Date, error) {
	return FromJDN(gregorianToJDN(cd.Year(), int(cd.Month()), cd.Day()))
}

// FromTime returns the Date on which t falls, in t's location. It
// returns an error wrapping ErrInvalidDate if the date falls outside
// the supported year range.
func FromTime(t time.Time) (Date, error) {
	return FromJDN(gregorianToJDN(t.Year(), int(t.Month()), t.Day()))
}

// Time returns the time at midnight on d in the given location. A nil
// location defaults to time.UTC.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	gy, gm, gd := jdnToGregorian(d.JDN())
	return time.Date(gy, time.Month(gm), gd, 0, 0, 0, 0, loc)
}

// EpochDay returns the number of days since the Unix epoch day,
// 1970-01-01 Gregorian, negative for dates before it.
func (d Date) EpochDay() int {
	return d.JDN() - unixEpochJDN
}

// FromEpochDay returns the Date for the given number of days since
// the Unix epoch day.
func FromEpochDay(days int) (Date, error) {
	return FromJDN(days + unixEpochJDN)
}

// Today returns today's date in the given location. A nil location
// defaults to time.Local.
func Today(loc *time.Location) Date {
	if loc == nil {
		loc = time.Local
	}
	d, err := FromTime(time.Now().In(loc))
	if err != nil {
		// time.Now is centuries inside the supported range.
		panic(err)
	}
	return d
}
