// Package i18n provides the English and Vietnamese string tables for the
// guest-facing API and locale negotiation from Accept-Language headers.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// Locale identifies a supported UI language.
type Locale string

// Supported locales.
const (
	LocaleEnglish    Locale = "en"
	LocaleVietnamese Locale = "vi"
)

// matcher prefers English, the frontend default.
var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Vietnamese,
})

// Negotiate resolves a locale from an explicit override (the lang query
// parameter) and an Accept-Language header, falling back to the default.
func Negotiate(override, acceptLanguage string, fallback Locale) Locale {
	if override == string(LocaleEnglish) || override == string(LocaleVietnamese) {
		return Locale(override)
	}

	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil {
			_, index, conf := matcher.Match(tags...)
			if conf > language.No {
				if index == 1 {
					return LocaleVietnamese
				}
				return LocaleEnglish
			}
		}
	}

	if fallback.Known() {
		return fallback
	}
	return LocaleEnglish
}

// Known reports whether the locale is supported.
func (l Locale) Known() bool {
	return l == LocaleEnglish || l == LocaleVietnamese
}

// translations holds the string tables, keyed by locale then message key.
var translations = map[Locale]map[string]string{
	LocaleEnglish: {
		"vip-table":    "VIP Table",
		"no-result":    "Sorry, we couldn't find your name. Please try again or check with the wedding hosts.",
		"no-tablemate": "No other guests at this table",
		"fuzzy-match":  "Showing closest match for",

		// Venue element labels
		"stage-label":      "Stage",
		"brideGroom-label": "Bride and Groom",
		"cakeGifts-label":  "Cake & Gifts",
		"bar-label":        "BAR",
		"vipTable-label":   "VIP Table",
		"danceFloor-label": "Dance Floor",
	},
	LocaleVietnamese: {
		"vip-table":    "Bàn VIP",
		"no-result":    "Xin lỗi, chúng tôi không thể tìm thấy tên của bạn. Vui lòng thử lại hoặc liên hệ với cô dâu chú rể.",
		"no-tablemate": "Không có khách nào khác ở bàn này",
		"fuzzy-match":  "Hiển thị kết quả gần nhất cho",

		// Venue element labels
		"stage-label":      "Sân Khấu",
		"brideGroom-label": "Cô Dâu và Chú Rể",
		"cakeGifts-label":  "Bánh & Quà Tặng",
		"bar-label":        "Quầy Bar",
		"vipTable-label":   "Bàn VIP",
		"danceFloor-label": "Sàn Nhảy",
	},
}

// T looks up a message by key. Unknown keys fall back to English, then to the
// key itself so missing strings are visible rather than blank.
func T(locale Locale, key string) string {
	if msg, ok := translations[locale][key]; ok {
		return msg
	}
	if msg, ok := translations[LocaleEnglish][key]; ok {
		return msg
	}
	return key
}

// SeatNumberText formats the localized seat number line.
func SeatNumberText(locale Locale, seat int) string {
	if locale == LocaleVietnamese {
		return fmt.Sprintf("Số ghế của bạn là: %d", seat)
	}
	return fmt.Sprintf("Seat number %d", seat)
}
