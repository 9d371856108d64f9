package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNumberToWords(t *testing.T) {
	cases := map[int64]string{
		0:         "",
		7:         "Seven",
		19:        "Nineteen",
		40:        "Forty",
		85:        "Eighty Five",
		100:       "One Hundred",
		410:       "Four Hundred Ten",
		1000:      "One Thousand",
		12345:     "Twelve Thousand Three Hundred Forty Five",
		100000:    "One Lakh",
		1234567:   "Twelve Lakh Thirty Four Thousand Five Hundred Sixty Seven",
		10000000:  "One Crore",
		123456789: "Twelve Crore Thirty Four Lakh Fifty Six Thousand Seven Hundred Eighty Nine",
	}
	for n, want := range cases {
		assert.Equal(t, want, NumberToWords(n), "n=%d", n)
	}
}

func TestAmountInWords(t *testing.T) {
	assert.Equal(t, "Four Hundred Ten Rupees and Fifty Paise Only", AmountInWords(decimal.RequireFromString("410.50")))
	assert.Equal(t, "One Thousand Rupees Only", AmountInWords(decimal.NewFromInt(1000)))
	assert.Equal(t, "Five Paise Only", AmountInWords(decimal.RequireFromString("0.05")))
	assert.Equal(t, "Zero Rupees Only", AmountInWords(decimal.Zero))
}
