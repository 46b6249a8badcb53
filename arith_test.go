// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package jalali_test

import (
	"errors"
	"testing"

	"cloudeng.io/jalali"
)

func addDays(t *testing.T, d jalali.Date, n int) jalali.Date {
	t.Helper()
	r, err := d.AddDays(n)
	if err != nil {
		t.Fatalf("%v plus %v days: %v", d, n, err)
	}
	return r
}

func TestAddDays(t *testing.T) {
	nd := jalali.MustNew
	for _, tc := range []struct {
		date jalali.Date
		n    int
		want jalali.Date
	}{
		{nd(1400, 1, 1), 0, nd(1400, 1, 1)},
		{nd(1400, 1, 1), 1, nd(1400, 1, 2)},
		{nd(1400, 1, 31), 1, nd(1400, 2, 1)},
		{nd(1400, 12, 29), 1, nd(1401, 1, 1)},
		{nd(1399, 12, 29), 1, nd(1399, 12, 30)},
		{nd(1399, 12, 30), 1, nd(1400, 1, 1)},
		{nd(1400, 1, 1), -1, nd(1399, 12, 30)},
		{nd(1400, 1, 1), 365, nd(1401, 1, 1)},
		{nd(1399, 1, 1), 366, nd(1400, 1, 1)},
	} {
		if got := addDays(t, tc.date, tc.n); got != tc.want {
			t.Errorf("%v plus %v days: got %v, want %v", tc.date, tc.n, got, tc.want)
		}
	}
}

func TestAddDaysInverse(t *testing.T) {
	nd := jalali.MustNew
	for _, d := range []jalali.Date{
		nd(1400, 1, 1), nd(1399, 12, 30), nd(1234, 6, 31), nd(800, 7, 15),
	} {
		for n := 0; n <= 100000; n += 997 {
			fwd := addDays(t, d, n)
			if got := addDays(t, fwd, -n); got != d {
				t.Errorf("%v plus/minus %v days: got %v, want %v", d, n, got, d)
			}
			if got, want := d.DaysUntil(fwd), n; got != want {
				t.Errorf("%v: got %v, want %v", d, got, want)
			}
			if got, want := fwd.DaysUntil(d), -n; got != want {
				t.Errorf("%v: got %v, want %v", fwd, got, want)
			}
		}
	}
}

func TestAddWeeks(t *testing.T) {
	nd := jalali.MustNew
	d, err := nd(1400, 1, 1).AddWeeks(2)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d, nd(1400, 1, 15); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	d, err = d.AddWeeks(-2)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d, nd(1400, 1, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAddMonths(t *testing.T) {
	nd := jalali.MustNew
	for _, tc := range []struct {
		date jalali.Date
		n    int
		want jalali.Date
	}{
		{nd(1400, 1, 1), 1, nd(1400, 2, 1)},
		{nd(1400, 1, 1), 12, nd(1401, 1, 1)},
		{nd(1400, 12, 1), 1, nd(1401, 1, 1)},
		{nd(1400, 1, 1), -1, nd(1399, 12, 1)},
		// The day is clamped to the target month's length, never
		// rolled into the next month.
		{nd(1400, 1, 31), 6, nd(1400, 7, 30)},
		{nd(1400, 6, 31), 1, nd(1400, 7, 30)},
		{nd(1400, 1, 31), 11, nd(1400, 12, 29)},
		{nd(1399, 1, 31), 11, nd(1399, 12, 30)},
		{nd(1399, 12, 30), 12, nd(1400, 12, 29)},
		{nd(1400, 7, 30), -1, nd(1400, 6, 30)},
	} {
		got, err := tc.date.AddMonths(tc.n)
		if err != nil {
			t.Errorf("%v plus %v months: %v", tc.date, tc.n, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%v plus %v months: got %v, want %v", tc.date, tc.n, got, tc.want)
		}
	}

	if _, err := jalali.MustNew(3178, 1, 1).AddMonths(12); !errors.Is(err, jalali.ErrInvalidDate) {
		t.Errorf("got %v, want ErrInvalidDate", err)
	}
	if _, err := jalali.MustNew(1, 1, 1).AddMonths(-1); !errors.Is(err, jalali.ErrInvalidDate) {
		t.Errorf("got %v, want ErrInvalidDate", err)
	}
}

func TestAddMonthsClampPolicy(t *testing.T) {
	// Farvardin 31 plus 6 months lands on Mehr 30 in every year.
	for y := jalali.MinYear; y <= jalali.MaxYear; y += 13 {
		d, err := jalali.MustNew(y, 1, 31).AddMonths(6)
		if err != nil {
			t.Fatalf("%v: %v", y, err)
		}
		if got, want := d, jalali.MustNew(y, 7, 30); got != want {
			t.Errorf("%v: got %v, want %v", y, got, want)
		}
	}
}

func TestAddYears(t *testing.T) {
	nd := jalali.MustNew
	for _, tc := range []struct {
		date jalali.Date
		n    int
		want jalali.Date
	}{
		{nd(1400, 1, 1), 1, nd(1401, 1, 1)},
		{nd(1400, 1, 1), -1, nd(1399, 1, 1)},
		{nd(1399, 12, 30), 1, nd(1400, 12, 29)},
		{nd(1399, 12, 30), 4, nd(1403, 12, 30)},
		{nd(1403, 12, 30), -4, nd(1399, 12, 30)},
	} {
		got, err := tc.date.AddYears(tc.n)
		if err != nil {
			t.Errorf("%v plus %v years: %v", tc.date, tc.n, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%v plus %v years: got %v, want %v", tc.date, tc.n, got, tc.want)
		}
	}

	if _, err := jalali.MustNew(3178, 1, 1).AddYears(1); !errors.Is(err, jalali.ErrInvalidDate) {
		t.Errorf("got %v, want ErrInvalidDate", err)
	}
}

func TestSpans(t *testing.T) {
	nd := jalali.MustNew
	for _, tc := range []struct {
		a, b   jalali.Date
		months int
		years  int
	}{
		{nd(1400, 1, 1), nd(1400, 6, 1), 5, 0},
		{nd(1400, 1, 21), nd(1400, 2, 20), 0, 0},
		{nd(1400, 1, 21), nd(1400, 2, 21), 1, 0},
		{nd(1400, 2, 21), nd(1400, 1, 21), -1, 0},
		{nd(1400, 2, 20), nd(1400, 1, 21), 0, 0},
		{nd(1400, 1, 1), nd(1401, 1, 1), 12, 1},
		{nd(1400, 6, 15), nd(1401, 6, 14), 11, 0},
		{nd(1401, 6, 14), nd(1400, 6, 15), -11, 0},
		{nd(1400, 1, 1), nd(1410, 1, 1), 120, 10},
	} {
		if got, want := tc.a.MonthsUntil(tc.b), tc.months; got != want {
			t.Errorf("%v to %v: months: got %v, want %v", tc.a, tc.b, got, want)
		}
		if got, want := tc.a.YearsUntil(tc.b), tc.years; got != want {
			t.Errorf("%v to %v: years: got %v, want %v", tc.a, tc.b, got, want)
		}
	}

	if got, want := nd(1400, 1, 1).DaysUntil(nd(1400, 1, 11)), 10; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// Weeks truncate towards zero, with no week alignment.
	if got, want := nd(1400, 1, 1).WeeksUntil(nd(1400, 1, 14)), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := nd(1400, 1, 1).WeeksUntil(nd(1400, 1, 15)), 2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := nd(1400, 1, 15).WeeksUntil(nd(1400, 1, 1)), -2; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAdjusters(t *testing.T) {
	nd := jalali.MustNew
	d := nd(1400, 7, 15)
	if got, want := d.FirstOfMonth(), nd(1400, 7, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.LastOfMonth(), nd(1400, 7, 30); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.FirstOfYear(), nd(1400, 1, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := d.LastOfYear(), nd(1400, 12, 29); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := nd(1399, 5, 5).LastOfYear(), nd(1399, 12, 30); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTomorrowYesterdayBounds(t *testing.T) {
	first := jalali.MustNew(jalali.MinYear, 1, 1)
	if got, want := first.Yesterday(), first; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	last := jalali.MustNew(jalali.MaxYear, 12, jalali.DaysInMonth(jalali.MaxYear, 12))
	if got, want := last.Tomorrow(), last; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
