// Package format renders product fields for display. Nothing here feeds back
// into storage.
package format

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type Locale string

const (
	LocalePT Locale = "pt"
	LocaleEN Locale = "en"
)

// ParseLocale maps any pt* tag (pt, pt-BR, pt_PT) to LocalePT and everything
// else to LocaleEN.
func ParseLocale(tag string) Locale {
	t := strings.ToLower(strings.TrimSpace(tag))
	if t == "pt" || strings.HasPrefix(t, "pt-") || strings.HasPrefix(t, "pt_") {
		return LocalePT
	}
	return LocaleEN
}

// Tag returns the language tag used for number formatting and translations.
func (l Locale) Tag() language.Tag {
	if l == LocalePT {
		return language.BrazilianPortuguese
	}
	return language.AmericanEnglish
}

// Currency renders an amount in minor units: 350 is "R$ 3,50" for pt and
// "$3.50" otherwise.
func Currency(minorUnits int64, l Locale) string {
	p := message.NewPrinter(l.Tag())
	amount := number.Decimal(float64(minorUnits)/100, number.Scale(2))
	if l == LocalePT {
		return p.Sprintf("R$ %v", amount)
	}
	return p.Sprintf("$%v", amount)
}

// Date inserts separators into raw day-first digits (DDMMYYYY, the stored
// digit form) and orders the parts for l: DD/MM/YYYY for pt, MM/DD/YYYY for en.
// Short or non-digit input is sliced as is.
func Date(raw string, l Locale) string {
	parts := make([]string, 0, 3)
	for _, bounds := range [][2]int{{0, 2}, {2, 4}, {4, 8}} {
		if bounds[0] >= len(raw) {
			break
		}
		end := bounds[1]
		if end > len(raw) {
			end = len(raw)
		}
		parts = append(parts, raw[bounds[0]:end])
	}
	if l == LocaleEN && len(parts) >= 2 {
		parts[0], parts[1] = parts[1], parts[0]
	}
	return strings.Join(parts, "/")
}

// DisplayDate shows a stored DD/MM/YYYY date in the locale's order. Values not
// in that shape are returned unchanged.
func DisplayDate(stored string, l Locale) string {
	if len(stored) != 10 || stored[2] != '/' || stored[5] != '/' {
		return stored
	}
	return Date(stored[0:2]+stored[3:5]+stored[6:10], l)
}

// Digits drops everything but ASCII digits, undoing input masks such as
// "R$ 1.234,50" or "31/12/2025".
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MaskDate turns up to eight digits into DD/MM/YYYY, the shape the product form
// expects.
func MaskDate(s string) string {
	return Date(Digits(s), LocalePT)
}
