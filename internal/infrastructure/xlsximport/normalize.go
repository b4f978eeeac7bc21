// Package xlsximport reads uploaded workbooks and turns messy,
// inconsistently-labelled spreadsheet rows into typed BOM candidates.
package xlsximport

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	invisibleChars = regexp.MustCompile("[\\x{FEFF}\\x{00A0}]")
	whitespaceRuns = regexp.MustCompile(`\s+`)
	nonTokenChars  = regexp.MustCompile(`[^a-z0-9_]`)
	leadingInteger = regexp.MustCompile(`^[+-]?[0-9]+`)
	thousandsSep   = regexp.MustCompile(`[, ]+`)
)

// NormalizeHeader maps an arbitrary header cell to a canonical lowercase
// snake_case token. Byte-order marks and no-break spaces are stripped
// first so copy-pasted headers normalize the same as typed ones. Blank
// input yields the empty string.
func NormalizeHeader(v string) string {
	v = invisibleChars.ReplaceAllString(v, "")
	v = strings.ToLower(strings.TrimSpace(v))
	v = whitespaceRuns.ReplaceAllString(v, "_")
	return nonTokenChars.ReplaceAllString(v, "")
}

// NormalizeText canonicalizes a stored text value: decompose, drop
// combining diacritical marks, uppercase, trim. Case and accent variants
// of the same part number collapse to one representation.
func NormalizeText(v string) string {
	decomposed := norm.NFD.String(v)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(strings.ToUpper(b.String()))
}

// ToInt parses an integer cell value, tolerating thousands separators
// and trailing junk. Returns nil for blank or unparseable input.
func ToInt(v string) *int {
	cleaned := strings.TrimSpace(thousandsSep.ReplaceAllString(v, ""))
	if cleaned == "" {
		return nil
	}
	match := leadingInteger.FindString(cleaned)
	if match == "" {
		return nil
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return nil
	}
	return &n
}

// ToFloat parses a numeric cell value, tolerating thousands separators.
// Returns nil for blank or unparseable input.
func ToFloat(v string) *float64 {
	cleaned := strings.TrimSpace(thousandsSep.ReplaceAllString(v, ""))
	if cleaned == "" {
		return nil
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &f
}
