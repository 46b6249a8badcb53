// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package validate implements the checksum-based validators commonly
// needed alongside Persian-facing formatting: the Iranian national ID
// check digit, IBAN verification, the Luhn card check and mobile
// operator prefix lookup. The validators are independent pure
// functions with no shared state.
package validate

import (
	"strings"

	"cloudeng.io/jalali/digits"
)

// NationalID reports whether id is a structurally valid Iranian
// national identity number: ten digits, not all identical, whose last
// digit matches the weighted mod-11 checksum of the first nine.
// Digits may be in any of the supported scripts.
func NationalID(id string) bool {
	id = digits.ToLatin(strings.TrimSpace(id))
	if len(id) != 10 {
		return false
	}
	sum, same := 0, true
	for i := 0; i < 9; i++ {
		c := id[i]
		if c < '0' || c > '9' {
			return false
		}
		if c != id[0] {
			same = false
		}
		sum += int(c-'0') * (10 - i)
	}
	check := id[9]
	if check < '0' || check > '9' {
		return false
	}
	if same && check == id[0] {
		return false
	}
	r := sum % 11
	if r < 2 {
		return int(check-'0') == r
	}
	return int(check-'0') == 11-r
}

// IBAN reports whether iban passes the ISO 7064 mod-97 check. For
// Iranian accounts the country code is IR and the length is 26; other
// countries are checked for the checksum only.
func IBAN(iban string) bool {
	iban = strings.ToUpper(strings.ReplaceAll(digits.ToLatin(iban), " ", ""))
	if len(iban) < 5 || len(iban) > 34 {
		return false
	}
	if iban[0] < 'A' || iban[0] > 'Z' || iban[1] < 'A' || iban[1] > 'Z' {
		return false
	}
	if strings.HasPrefix(iban, "IR") && len(iban) != 26 {
		return false
	}
	r := 0
	for _, c := range iban[4:] + iban[:4] {
		switch {
		case c >= '0' && c <= '9':
			r = (r*10 + int(c-'0')) % 97
		case c >= 'A' && c <= 'Z':
			v := int(c-'A') + 10
			r = (r*100 + v) % 97
		default:
			return false
		}
	}
	return r == 1
}

// Luhn reports whether the digit string passes the Luhn checksum used
// by payment card numbers. Digits may be in any of the supported
// scripts; separators are not accepted.
func Luhn(number string) bool {
	number = digits.ToLatin(number)
	if len(number) < 2 {
		return false
	}
	sum, double := 0, false
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}
		v := int(c - '0')
		if double {
			v *= 2
			if v > 9 {
				v -= 9
			}
		}
		sum += v
		double = !double
	}
	return sum%10 == 0
}
