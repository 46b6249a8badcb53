// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package validate

import (
	"strings"

	"cloudeng.io/jalali/digits"
)

// operators maps four digit mobile number prefixes to the operating
// carrier.
var operators = map[string]string{
	"0910": "MCI", "0911": "MCI", "0912": "MCI", "0913": "MCI", "0914": "MCI",
	"0915": "MCI", "0916": "MCI", "0917": "MCI", "0918": "MCI", "0919": "MCI",
	"0990": "MCI", "0991": "MCI", "0992": "MCI", "0993": "MCI", "0994": "MCI",
	"0900": "Irancell", "0901": "Irancell", "0902": "Irancell", "0903": "Irancell",
	"0904": "Irancell", "0905": "Irancell", "0930": "Irancell", "0933": "Irancell",
	"0935": "Irancell", "0936": "Irancell", "0937": "Irancell", "0938": "Irancell",
	"0939": "Irancell",
	"0920": "RighTel", "0921": "RighTel", "0922": "RighTel",
}

// normalizePhone converts digits to Latin and rewrites the +98 and
// 0098 international forms to the domestic leading zero form.
func normalizePhone(phone string) string {
	phone = strings.ReplaceAll(digits.ToLatin(strings.TrimSpace(phone)), " ", "")
	switch {
	case strings.HasPrefix(phone, "+98"):
		return "0" + phone[3:]
	case strings.HasPrefix(phone, "0098"):
		return "0" + phone[4:]
	}
	return phone
}

// MobileNumber reports whether phone is a well-formed Iranian mobile
// number: the domestic 09xxxxxxxxx form, or the +98 or 0098
// international equivalents, with a known operator prefix.
func MobileNumber(phone string) bool {
	_, ok := MobileOperator(phone)
	return ok
}

// MobileOperator returns the carrier operating the given mobile
// number's prefix.
func MobileOperator(phone string) (string, bool) {
	phone = normalizePhone(phone)
	if len(phone) != 11 {
		return "", false
	}
	for _, c := range phone {
		if c < '0' || c > '9' {
			return "", false
		}
	}
	op, ok := operators[phone[:4]]
	return op, ok
}
