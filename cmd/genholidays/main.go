// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command genholidays generates the built-in holiday table used by
// package holiday from a YAML description of the fixed-date holidays.
//
// Usage:
//
//	go run cloudeng.io/jalali/cmd/genholidays -config holidays.yaml -output table.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"cloudeng.io/jalali"
)

type holidayDef struct {
	Month int    `yaml:"month"`
	Day   int    `yaml:"day"`
	Name  string `yaml:"name"`
}

type configDef struct {
	Holidays []holidayDef `yaml:"holidays"`
}

func main() {
	config := flag.String("config", "holidays.yaml", "yaml file describing the fixed-date holidays")
	output := flag.String("output", "table.go", "output file path")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("genholidays: ")

	defs, err := parseConfig(*config)
	if err != nil {
		log.Fatalf("failed to parse %v: %v", *config, err)
	}

	src, err := generate(defs)
	if err != nil {
		log.Fatalf("failed to generate source: %v", err)
	}

	if err := os.WriteFile(*output, src, 0600); err != nil {
		log.Fatalf("failed to write output: %v", err)
	}

	log.Printf("wrote %v holidays to %v", len(defs), *output)
}

func parseConfig(filename string) ([]holidayDef, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return parseDefs(data)
}

func parseDefs(data []byte) ([]holidayDef, error) {
	var cfg configDef
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, err
	}
	if len(cfg.Holidays) == 0 {
		return nil, fmt.Errorf("no holidays defined")
	}
	seen := map[int]bool{}
	for _, def := range cfg.Holidays {
		if err := validateDef(def); err != nil {
			return nil, err
		}
		key := def.Month*100 + def.Day
		if seen[key] {
			return nil, fmt.Errorf("duplicate holiday: month %v, day %v", def.Month, def.Day)
		}
		seen[key] = true
	}
	return cfg.Holidays, nil
}

func validateDef(def holidayDef) error {
	if def.Name == "" {
		return fmt.Errorf("missing name for month %v, day %v", def.Month, def.Day)
	}
	m := jalali.Month(def.Month)
	if m < jalali.Farvardin || m > jalali.Esfand {
		return fmt.Errorf("%v: invalid month: %v", def.Name, def.Month)
	}
	// Day 30 of Esfand only exists in leap years, so the table is
	// restricted to days every year has.
	max := jalali.DaysInMonth(jalali.MinYear, m)
	if m == jalali.Esfand {
		max = 29
	}
	if def.Day < 1 || def.Day > max {
		return fmt.Errorf("%v: invalid day %v for month %v", def.Name, def.Day, m)
	}
	return nil
}

func generate(defs []holidayDef) ([]byte, error) {
	sorted := make([]holidayDef, len(defs))
	copy(sorted, defs)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Month != sorted[j].Month {
			return sorted[i].Month < sorted[j].Month
		}
		return sorted[i].Day < sorted[j].Day
	})

	out := &bytes.Buffer{}
	out.WriteString(`// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Code generated by cmd/genholidays from holidays.yaml; DO NOT EDIT.

package holiday

// fixed holds the official fixed-date public holidays of the solar
// calendar, keyed by (month, day).
var fixed = map[monthDay]string{
`)
	for _, def := range sorted {
		fmt.Fprintf(out, "\t{%d, %d}: %q,\n", def.Month, def.Day, def.Name)
	}
	out.WriteString("}\n")

	return format.Source(out.Bytes())
}
