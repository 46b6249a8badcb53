// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command jalali provides conversions and calendrical information for
// the Jalali (Persian solar) calendar.
package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/errors"
	"cloudeng.io/jalali"
	"cloudeng.io/jalali/digits"
	"cloudeng.io/jalali/holiday"
)

const commands = `name: jalali
summary: conversions and calendrical information for the Jalali (Persian solar) calendar
commands:
  - name: to-gregorian
    summary: convert Jalali dates to their Gregorian equivalents
    arguments:
      - <yyyy-mm-dd>
      - ...
  - name: from-gregorian
    summary: convert Gregorian dates to their Jalali equivalents
    arguments:
      - <yyyy-mm-dd>
      - ...
  - name: today
    summary: display today's Jalali date
  - name: info
    summary: display calendrical information for Jalali dates
    arguments:
      - <yyyy-mm-dd>
      - ...
  - name: holidays
    summary: list the public holidays in a Jalali year
    arguments:
      - "[year]"
  - name: seq
    summary: print the Jalali dates from one date to another, inclusive
    arguments:
      - <from>
      - <to>
`

type globalFlagValues struct {
	Digits string `subcmd:"digits,latin,'digit script used for output, one of latin, persian or arabic'"`
}

type todayFlagValues struct {
	Location string `subcmd:"location,Local,time zone location used to determine the current day"`
}

type seqFlagValues struct {
	Days   int `subcmd:"days,0,number of days to advance on each step"`
	Months int `subcmd:"months,0,number of months to advance on each step"`
	Years  int `subcmd:"years,0,number of years to advance on each step"`
}

var (
	globalFlags globalFlagValues
	cmdSet      *subcmd.CommandSetYAML = subcmd.MustFromYAML(commands)
)

func init() {
	cmdSet.Set("to-gregorian").MustRunner(toGregorian, &struct{}{})
	cmdSet.Set("from-gregorian").MustRunner(fromGregorian, &struct{}{})
	cmdSet.Set("today").MustRunner(today, &todayFlagValues{})
	cmdSet.Set("info").MustRunner(info, &struct{}{})
	cmdSet.Set("holidays").MustRunner(holidays, &struct{}{})
	cmdSet.Set("seq").MustRunner(seq, &seqFlagValues{})
	globals := subcmd.GlobalFlagSet()
	globals.MustRegisterFlagStruct(&globalFlags, nil, nil)
	cmdSet.WithGlobalFlags(globals)
}

func main() {
	subcmd.Dispatch(context.Background(), cmdSet)
}

// render converts the digits in out to the script requested via the
// --digits flag.
func render(out string) (string, error) {
	var script digits.Script
	if err := script.Parse(globalFlags.Digits); err != nil {
		return "", err
	}
	return digits.Convert(out, script), nil
}

func printRendered(format string, args ...any) error {
	out, err := render(fmt.Sprintf(format, args...))
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func toGregorian(_ context.Context, _ any, args []string) error {
	errs := &errors.M{}
	for _, arg := range args {
		var d jalali.Date
		if err := d.Parse(arg); err != nil {
			errs.Append(err)
			continue
		}
		cd := d.Gregorian()
		errs.Append(printRendered("%v %04d-%02d-%02d\n", d, cd.Year(), int(cd.Month()), cd.Day()))
	}
	return errs.Err()
}

func fromGregorian(_ context.Context, _ any, args []string) error {
	errs := &errors.M{}
	for _, arg := range args {
		t, err := time.Parse("2006-01-02", arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		d, err := jalali.FromTime(t)
		if err != nil {
			errs.Append(err)
			continue
		}
		errs.Append(printRendered("%v %v\n", arg, d))
	}
	return errs.Err()
}

func today(_ context.Context, values any, _ []string) error {
	fv := values.(*todayFlagValues)
	loc, err := time.LoadLocation(fv.Location)
	if err != nil {
		return err
	}
	d := jalali.Today(loc)
	return printRendered("%v %v %v %v\n", d, d.Month(), d.Month().Persian(), jalali.WeekdayPersian(d.Weekday()))
}

func info(_ context.Context, _ any, args []string) error {
	errs := &errors.M{}
	for _, arg := range args {
		var d jalali.Date
		if err := d.Parse(arg); err != nil {
			errs.Append(err)
			continue
		}
		cd := d.Gregorian()
		errs.Append(printRendered("%v: %v %v, day %v of %v, gregorian %04d-%02d-%02d, leap year %v\n",
			d, d.Weekday(), d.Month(), d.YearDay(), jalali.DaysInYear(d.Year()),
			cd.Year(), int(cd.Month()), cd.Day(), d.IsLeapYear()))
		if name, ok := holiday.Name(d); ok {
			errs.Append(printRendered("%v: holiday: %v\n", d, name))
		}
	}
	return errs.Err()
}

func holidays(_ context.Context, _ any, args []string) error {
	year := jalali.Today(time.Local).Year()
	if len(args) == 1 {
		y, err := strconv.Atoi(args[0])
		if err != nil || !jalali.Valid(y, jalali.Farvardin, 1) {
			return fmt.Errorf("invalid year: %v", args[0])
		}
		year = y
	}
	errs := &errors.M{}
	for _, h := range holiday.InYear(year) {
		errs.Append(printRendered("%v %v %v\n", h.Date, jalali.WeekdayPersian(h.Date.Weekday()), h.Name))
	}
	return errs.Err()
}

func seq(_ context.Context, values any, args []string) error {
	fv := values.(*seqFlagValues)
	var from, to jalali.Date
	if err := from.Parse(args[0]); err != nil {
		return err
	}
	if err := to.Parse(args[1]); err != nil {
		return err
	}
	errs := &errors.M{}
	if fv.Days == 0 && fv.Months == 0 && fv.Years == 0 {
		dr, err := jalali.NewDateRange(from, to)
		if err != nil {
			return err
		}
		for d := range dr.Dates() {
			errs.Append(printRendered("%v\n", d))
		}
		return errs.Err()
	}
	step := jalali.Step{Years: fv.Years, Months: fv.Months, Days: fv.Days}
	dates, err := from.DatesUntilStep(to.Tomorrow(), step)
	if err != nil {
		return err
	}
	for d := range dates {
		errs.Append(printRendered("%v\n", d))
	}
	return errs.Err()
}
