package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLocale(t *testing.T) {
	tests := map[string]Locale{
		"pt":    LocalePT,
		"pt-BR": LocalePT,
		"pt_PT": LocalePT,
		"PT-br": LocalePT,
		"en":    LocaleEN,
		"en-US": LocaleEN,
		"ptx":   LocaleEN,
		"":      LocaleEN,
		"es":    LocaleEN,
	}
	for tag, want := range tests {
		t.Run(tag, func(t *testing.T) {
			assert.Equal(t, want, ParseLocale(tag))
		})
	}
}

func TestCurrency(t *testing.T) {
	tests := []struct {
		name   string
		minor  int64
		locale Locale
		want   string
	}{
		{name: "pt cents", minor: 350, locale: LocalePT, want: "R$ 3,50"},
		{name: "pt zero", minor: 0, locale: LocalePT, want: "R$ 0,00"},
		{name: "pt grouping", minor: 123456, locale: LocalePT, want: "R$ 1.234,56"},
		{name: "en cents", minor: 350, locale: LocaleEN, want: "$3.50"},
		{name: "en grouping", minor: 123456, locale: LocaleEN, want: "$1,234.56"},
		{name: "en one cent", minor: 1, locale: LocaleEN, want: "$0.01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency(tt.minor, tt.locale))
		})
	}
}

func TestDate(t *testing.T) {
	assert.Equal(t, "31/12/2025", Date("31122025", LocalePT))
	assert.Equal(t, "12/31/2025", Date("31122025", LocaleEN))
	assert.Equal(t, "12/31", Date("3112", LocaleEN))
	assert.Equal(t, "3", Date("3", LocaleEN))
	assert.Equal(t, "31/12", Date("3112", LocalePT))
	assert.Equal(t, "3", Date("3", LocalePT))
	assert.Equal(t, "", Date("", LocalePT))
	assert.Equal(t, "ab/cd/efgh", Date("abcdefghij", LocalePT))
}

func TestDate_RoundTrip(t *testing.T) {
	for _, raw := range []string{"31122025", "01012000", "30022025", "99999999", "1", "123", "12345"} {
		t.Run(raw, func(t *testing.T) {
			assert.Equal(t, raw, strings.ReplaceAll(Date(raw, LocalePT), "/", ""))
		})
	}
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "31/12/2025", DisplayDate("31/12/2025", LocalePT))
	assert.Equal(t, "12/31/2025", DisplayDate("31/12/2025", LocaleEN))
	assert.Equal(t, "garbage", DisplayDate("garbage", LocaleEN))
	assert.Equal(t, "12312025", DisplayDate("12312025", LocaleEN))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "123450", Digits("R$ 1.234,50"))
	assert.Equal(t, "31122025", Digits("31/12/2025"))
	assert.Equal(t, "", Digits("abc"))
	assert.Equal(t, "12", Digits("1٣2"))
}

func TestMaskDate(t *testing.T) {
	assert.Equal(t, "31/12/2025", MaskDate("31122025"))
	assert.Equal(t, "31/12/2025", MaskDate("31-12-2025"))
}
