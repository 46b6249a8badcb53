// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package digits converts between the Latin, Persian and Arabic-Indic
// digit scripts and formats numbers for Persian presentation. It is
// purely string manipulation with no calendar knowledge.
package digits

import "strings"

// Script identifies a digit script.
type Script int

const (
	// Latin is the ASCII digit script, '0'..'9'.
	Latin Script = iota
	// Persian is the extended Arabic-Indic script, '۰'..'۹'
	// (U+06F0..U+06F9).
	Persian
	// Arabic is the Arabic-Indic script, '٠'..'٩' (U+0660..U+0669).
	Arabic
)

const (
	latinZero   = '0'
	persianZero = '۰'
	arabicZero  = '٠'
)

func (s Script) String() string {
	switch s {
	case Latin:
		return "latin"
	case Persian:
		return "persian"
	case Arabic:
		return "arabic"
	}
	return "unknown"
}

// Parse sets the script from its name as returned by String.
func (s *Script) Parse(val string) error {
	switch strings.ToLower(val) {
	case "latin":
		*s = Latin
	case "persian":
		*s = Persian
	case "arabic":
		*s = Arabic
	default:
		return &UnknownScriptError{Name: val}
	}
	return nil
}

// UnknownScriptError is returned by Script.Parse for an unrecognized
// script name.
type UnknownScriptError struct {
	Name string
}

func (e *UnknownScriptError) Error() string {
	return "unknown digit script: " + e.Name
}

func zero(s Script) rune {
	switch s {
	case Persian:
		return persianZero
	case Arabic:
		return arabicZero
	}
	return latinZero
}

// digitValue returns the numeric value of r in any of the three
// scripts, or -1.
func digitValue(r rune) int {
	switch {
	case r >= latinZero && r <= latinZero+9:
		return int(r - latinZero)
	case r >= persianZero && r <= persianZero+9:
		return int(r - persianZero)
	case r >= arabicZero && r <= arabicZero+9:
		return int(r - arabicZero)
	}
	return -1
}

// Convert rewrites every digit in val, in any of the three scripts,
// into the target script. Non-digit runes are left untouched.
func Convert(val string, target Script) string {
	z := zero(target)
	var out strings.Builder
	out.Grow(len(val))
	for _, r := range val {
		if v := digitValue(r); v >= 0 {
			out.WriteRune(z + rune(v))
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}

// ToPersian rewrites every digit in val into the Persian script.
func ToPersian(val string) string {
	return Convert(val, Persian)
}

// ToArabic rewrites every digit in val into the Arabic-Indic script.
func ToArabic(val string) string {
	return Convert(val, Arabic)
}

// ToLatin rewrites every digit in val into the ASCII script.
func ToLatin(val string) string {
	return Convert(val, Latin)
}
