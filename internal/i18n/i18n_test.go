package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNegotiate(t *testing.T) {
	tests := []struct {
		name           string
		override       string
		acceptLanguage string
		fallback       Locale
		want           Locale
	}{
		{
			name:     "explicit override wins",
			override: "vi",
			want:     LocaleVietnamese,
		},
		{
			name:           "override beats header",
			override:       "en",
			acceptLanguage: "vi",
			want:           LocaleEnglish,
		},
		{
			name:           "vietnamese accept-language",
			acceptLanguage: "vi",
			want:           LocaleVietnamese,
		},
		{
			name:           "regional vietnamese",
			acceptLanguage: "vi-VN,vi;q=0.9,en;q=0.8",
			want:           LocaleVietnamese,
		},
		{
			name:           "english accept-language",
			acceptLanguage: "en-US,en;q=0.9",
			want:           LocaleEnglish,
		},
		{
			name:     "no signal falls back to default",
			fallback: LocaleVietnamese,
			want:     LocaleVietnamese,
		},
		{
			name: "no signal and no fallback defaults to english",
			want: LocaleEnglish,
		},
		{
			name:           "garbage header ignored",
			acceptLanguage: ";;;",
			fallback:       LocaleEnglish,
			want:           LocaleEnglish,
		},
		{
			name:     "unknown override ignored",
			override: "fr",
			fallback: LocaleVietnamese,
			want:     LocaleVietnamese,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Negotiate(tt.override, tt.acceptLanguage, tt.fallback)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestT(t *testing.T) {
	assert.Equal(t, "VIP Table", T(LocaleEnglish, "vip-table"))
	assert.Equal(t, "Bàn VIP", T(LocaleVietnamese, "vip-table"))

	// Unknown locale falls back to English.
	assert.Equal(t, "VIP Table", T(Locale("fr"), "vip-table"))

	// Unknown key falls back to the key itself.
	assert.Equal(t, "nope", T(LocaleEnglish, "nope"))
}

func TestSeatNumberText(t *testing.T) {
	assert.Equal(t, "Seat number 4", SeatNumberText(LocaleEnglish, 4))
	assert.Equal(t, "Số ghế của bạn là: 4", SeatNumberText(LocaleVietnamese, 4))
}
