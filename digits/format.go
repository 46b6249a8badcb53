// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package digits

import (
	"strconv"
	"strings"
)

// ThousandsSeparator is the Persian thousands separator, U+066C.
const ThousandsSeparator = "٬"

// Comma returns n with the given separator inserted between groups of
// three digits, eg. Comma(1234567, ",") == "1,234,567".
func Comma(n int64, sep string) string {
	s := strconv.FormatInt(n, 10)
	neg := ""
	if s[0] == '-' {
		neg, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return neg + s
	}
	var out strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		out.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if out.Len() > 0 {
			out.WriteString(sep)
		}
		out.WriteString(s[i : i+3])
	}
	return neg + out.String()
}

var (
	ones = []string{"", "یک", "دو", "سه", "چهار", "پنج", "شش", "هفت", "هشت", "نه"}

	teens = []string{"ده", "یازده", "دوازده", "سیزده", "چهارده", "پانزده", "شانزده", "هفده", "هجده", "نوزده"}

	tens = []string{"", "", "بیست", "سی", "چهل", "پنجاه", "شصت", "هفتاد", "هشتاد", "نود"}

	hundreds = []string{"", "صد", "دویست", "سیصد", "چهارصد", "پانصد", "ششصد", "هفتصد", "هشتصد", "نهصد"}

	scales = []string{"", "هزار", "میلیون", "میلیارد", "بیلیون", "بیلیارد", "تریلیون"}

	and = " و "
)

func wordsBelowThousand(n int) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, hundreds[n/100])
		n %= 100
	}
	switch {
	case n >= 20:
		parts = append(parts, tens[n/10])
		if n%10 > 0 {
			parts = append(parts, ones[n%10])
		}
	case n >= 10:
		parts = append(parts, teens[n-10])
	case n > 0:
		parts = append(parts, ones[n])
	}
	return strings.Join(parts, and)
}

// Words renders n in Persian words, eg. Words(21) == "بیست و یک".
func Words(n int64) string {
	if n == 0 {
		return "صفر"
	}
	prefix := ""
	if n < 0 {
		prefix = "منفی "
		n = -n
	}
	var groups []int
	for n > 0 {
		groups = append(groups, int(n%1000))
		n /= 1000
	}
	var parts []string
	for i := len(groups) - 1; i >= 0; i-- {
		g := groups[i]
		if g == 0 {
			continue
		}
		w := wordsBelowThousand(g)
		if i == 1 && g == 1 {
			// "هزار", not "یک هزار".
			w = ""
		}
		if i > 0 {
			if w != "" {
				w += " "
			}
			w += scales[i]
		}
		parts = append(parts, w)
	}
	return prefix + strings.Join(parts, and)
}
