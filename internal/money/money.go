// Package money converts between the three price encodings that reach the
// system: hand-authored display strings ("₸24", "24,50"), decimal admin
// input treated as major units, and integer minor units from the stores.
// All arithmetic on totals happens in integer minor units.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Symbol prefixes every formatted amount. Single-currency system.
const Symbol = "₸"

// Placeholder is rendered for an absent price so "no price" stays
// distinguishable from a legitimately free item.
const Placeholder = "—"

// Price is the tagged variant consumed by Format. Exactly one of the three
// concrete types below is ever passed.
type Price interface {
	isPrice()
}

// DisplayString is a human-authored price string, e.g. "₸24" or "$24.50".
type DisplayString string

// MajorUnits is a decimal amount already in major units.
type MajorUnits float64

// MinorUnits is an integer amount in the smallest denomination.
type MinorUnits int64

func (DisplayString) isPrice() {}
func (MajorUnits) isPrice()    {}
func (MinorUnits) isPrice()    {}

// ToMinorUnits parses a display string into integer minor units. Everything
// except digits and a decimal separator is stripped; both "." and "," act as
// the fractional separator. Empty or unparsable input yields 0, never an
// error.
func ToMinorUnits(display string) int64 {
	return int64(math.Round(parseMajor(display) * 100))
}

// Format renders a Price as a display string. A whole amount drops the
// fractional part ("₸12"), anything else renders two decimals ("₸12.50").
// A nil price formats as the placeholder.
func Format(p Price) string {
	if p == nil {
		return Placeholder
	}
	switch v := p.(type) {
	case DisplayString:
		return formatMajor(parseMajor(string(v)))
	case MajorUnits:
		return formatMajor(float64(v))
	case MinorUnits:
		return FormatMinor(int64(v))
	default:
		return Placeholder
	}
}

// FormatMinor renders integer minor units directly. Negative amounts carry
// a single leading sign; the fractional part is always unsigned.
func FormatMinor(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	if minor%100 == 0 {
		return fmt.Sprintf("%s%s%d", Symbol, sign, minor/100)
	}
	return fmt.Sprintf("%s%s%d.%02d", Symbol, sign, minor/100, minor%100)
}

func parseMajor(display string) float64 {
	s := strings.ReplaceAll(strings.TrimSpace(display), ",", ".")
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0
	}
	val, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || val < 0 {
		return 0
	}
	return val
}

func formatMajor(major float64) string {
	minor := int64(math.Round(major * 100))
	return FormatMinor(minor)
}
