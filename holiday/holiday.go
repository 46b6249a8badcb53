// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package holiday provides public holiday and business day lookups for
// the Jalali calendar.
//
// The built-in table holds the official fixed-date holidays of the
// solar calendar, keyed by (month, day), and is compiled into the
// package by cmd/genholidays; no runtime parsing takes place.
// Observances that track the lunar calendar move against the solar
// calendar from year to year and are not part of the built-in table.
// Friday is the weekly holiday.
//
// Basic usage with the package-level functions:
//
//	d, _ := jalali.New(1403, jalali.Farvardin, 1)
//	holiday.IsHoliday(d)   // true
//	holiday.Name(d)        // "جشن نوروز", true
//
// For isolated custom holiday management, create a Calendar:
//
//	cal := holiday.New()
//	cal.Add(d, "جشن شرکت")
package holiday

//go:generate go run cloudeng.io/jalali/cmd/genholidays -config holidays.yaml -output table.go

import (
	"sync"
	"time"

	"cloudeng.io/algo/container/heap"
	"cloudeng.io/jalali"
)

// monthDay keys the built-in table: fixed holidays recur on the same
// month and day every year.
type monthDay struct {
	month jalali.Month
	day   int
}

// Holiday represents a single holiday occurrence.
type Holiday struct {
	Date jalali.Date
	Name string
}

// Calendar holds holiday data and supports custom holidays layered
// over the built-in table. Create one with New. All methods are safe
// for concurrent use.
type Calendar struct {
	mu      sync.RWMutex
	custom  map[jalali.Date]string
	removed map[jalali.Date]bool
}

// New creates a new Calendar backed by the built-in holiday table.
func New() *Calendar {
	return &Calendar{
		custom:  make(map[jalali.Date]string),
		removed: make(map[jalali.Date]bool),
	}
}

var defaultCal = New()

// lookup returns the holiday name for a date, checking custom
// holidays first, then the built-in table unless the date was removed.
func (c *Calendar) lookup(d jalali.Date) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if name, ok := c.custom[d]; ok {
		return name, true
	}
	if c.removed[d] {
		return "", false
	}
	name, ok := fixed[monthDay{d.Month(), d.Day()}]
	return name, ok
}

// Add registers a custom holiday for the given date. It shadows a
// built-in holiday on the same date.
func (c *Calendar) Add(d jalali.Date, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.custom[d] = name
	delete(c.removed, d)
}

// Remove suppresses any holiday, built-in or custom, on the given
// date.
func (c *Calendar) Remove(d jalali.Date) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.custom, d)
	c.removed[d] = true
}

// IsWeekend returns true if the date falls on the weekly holiday,
// Friday.
func IsWeekend(d jalali.Date) bool {
	return d.Weekday() == time.Friday
}

// IsHoliday reports whether the given date is a Friday or a holiday,
// built-in or custom.
func (c *Calendar) IsHoliday(d jalali.Date) bool {
	if IsWeekend(d) {
		return true
	}
	_, ok := c.lookup(d)
	return ok
}

// Name returns the name of the holiday on the given date, if any.
// Fridays carry no name unless a named holiday falls on them.
func (c *Calendar) Name(d jalali.Date) (string, bool) {
	return c.lookup(d)
}

// IsBusinessDay reports whether the given date is neither a Friday
// nor a holiday.
func (c *Calendar) IsBusinessDay(d jalali.Date) bool {
	return !c.IsHoliday(d)
}

// NextBusinessDay returns the first business day strictly after the
// given date. It returns an error wrapping jalali.ErrInvalidDate if
// the search leaves the supported year range.
func (c *Calendar) NextBusinessDay(d jalali.Date) (jalali.Date, error) {
	for {
		next, err := d.AddDays(1)
		if err != nil {
			return 0, err
		}
		if c.IsBusinessDay(next) {
			return next, nil
		}
		d = next
	}
}

// Between returns all holidays in the range [from, to] inclusive,
// sorted by date. Fridays are not reported; only named holidays are.
// If from is after to, Between returns nil.
func (c *Calendar) Between(from, to jalali.Date) []Holiday {
	if from > to {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	// Draw the built-in occurrences and the custom dates through a
	// min-heap keyed on the date so the merged listing comes out in
	// chronological order.
	h := heap.NewMin(heap.WithSliceCap[jalali.Date, string](len(c.custom) + len(fixed)))
	for year := from.Year(); year <= to.Year(); year++ {
		for md, name := range fixed {
			d, err := jalali.New(year, md.month, md.day)
			if err != nil {
				// An entry the year does not contain.
				continue
			}
			if d < from || d > to {
				continue
			}
			if c.removed[d] {
				continue
			}
			if _, ok := c.custom[d]; ok {
				continue
			}
			h.Push(d, name)
		}
	}
	for d, name := range c.custom {
		if d >= from && d <= to {
			h.Push(d, name)
		}
	}
	if h.Len() == 0 {
		return nil
	}
	holidays := make([]Holiday, 0, h.Len())
	for h.Len() > 0 {
		d, name := h.Pop()
		holidays = append(holidays, Holiday{Date: d, Name: name})
	}
	return holidays
}

// InYear returns all holidays in the given year, sorted by date.
func (c *Calendar) InYear(year int) []Holiday {
	from, err := jalali.New(year, jalali.Farvardin, 1)
	if err != nil {
		return nil
	}
	return c.Between(from, from.LastOfYear())
}

// IsHoliday reports whether the given date is a Friday or a built-in
// holiday, using the default Calendar.
func IsHoliday(d jalali.Date) bool {
	return defaultCal.IsHoliday(d)
}

// Name returns the name of the built-in holiday on the given date, if
// any, using the default Calendar.
func Name(d jalali.Date) (string, bool) {
	return defaultCal.Name(d)
}

// IsBusinessDay reports whether the given date is a business day,
// using the default Calendar.
func IsBusinessDay(d jalali.Date) bool {
	return defaultCal.IsBusinessDay(d)
}

// InYear returns all built-in holidays in the given year, sorted by
// date.
func InYear(year int) []Holiday {
	return defaultCal.InYear(year)
}

// Between returns all built-in holidays in the range [from, to]
// inclusive, sorted by date.
func Between(from, to jalali.Date) []Holiday {
	return defaultCal.Between(from, to)
}
