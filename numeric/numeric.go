// Package numeric converts the locale-ambiguous numeric and date strings
// found in shipment manifests to canonical forms.
//
// Manifests arrive from different exporters: some write "3.948,80"
// (European separators), some "7,025.40" (US separators). Normalize accepts
// either. Dates appear as day/month/year with "/", "-" or "." delimiters
// and 2- or 4-digit years; ToISO emits YYYY-MM-DD.
package numeric

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	dateRE     = regexp.MustCompile(`(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4})`)
	dateSepRE  = regexp.MustCompile(`[/\-.]`)
	nonNumRE   = regexp.MustCompile(`[^0-9.]`)
	intRE      = regexp.MustCompile(`^\d{1,6}$`)
	numberRE   = regexp.MustCompile(`^[\d.,]+$`)
	nonDigitRE = regexp.MustCompile(`\D`)
)

// Normalize converts a numeric string in either separator convention to a
// float: "3.948,80" -> 3948.80, "7,025.40" -> 7025.40, "7025" -> 7025.0.
//
// When both "." and "," are present, "." is treated as the thousands
// separator and "," as the decimal mark; a lone "," is the decimal mark.
// Residual non-digit, non-"." characters are stripped. Unparseable input
// degrades to 0 rather than failing: a malformed quantity should never
// abort row extraction, only cause the item validity check to reject it.
func Normalize(s string) float64 {
	t := strings.TrimSpace(s)
	switch {
	case strings.Contains(t, ".") && strings.Contains(t, ","):
		t = strings.ReplaceAll(t, ".", "")
		t = strings.ReplaceAll(t, ",", ".")
	case strings.Contains(t, ","):
		t = strings.ReplaceAll(t, ",", ".")
	}
	t = nonNumRE.ReplaceAllString(t, "")
	if t == "" {
		return 0
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0
	}
	return f
}

// ToISO locates a delimited day/month/year triple anywhere in s and returns
// it as YYYY-MM-DD. A 2-digit year is expanded by prefixing "20". The
// second return value is false when no date-shaped span is present.
func ToISO(s string) (string, bool) {
	m := dateRE.FindString(s)
	if m == "" {
		return "", false
	}
	parts := dateSepRE.Split(m, -1)
	if len(parts) != 3 {
		return "", false
	}
	day, month, year := parts[0], parts[1], parts[2]
	if len(year) == 2 {
		year = "20" + year
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return "", false
	}
	mo, err := strconv.Atoi(month)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%s-%02d-%02d", year, mo, d), true
}

// IsInteger reports whether tok is a pure 1-6 digit integer, the shape of a
// roll-count token.
func IsInteger(tok string) bool {
	return intRE.MatchString(tok)
}

// LooksNumeric reports whether tok consists only of digits and separator
// characters, the shape of a meters token.
func LooksNumeric(tok string) bool {
	return numberRE.MatchString(tok)
}

// ParseRolls extracts an integer roll count from tok, ignoring any
// non-digit characters. Tokens without digits yield 0.
func ParseRolls(tok string) int {
	digits := nonDigitRE.ReplaceAllString(tok, "")
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}
