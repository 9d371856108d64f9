package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// Indian numbering: 1,23,45,678 reads as "One Crore Twenty Three Lakh ...".
var scales = []struct {
	value int64
	name  string
}{
	{10000000, "Crore"},
	{100000, "Lakh"},
	{1000, "Thousand"},
	{100, "Hundred"},
}

// NumberToWords spells a non-negative integer. Zero yields "".
func NumberToWords(n int64) string {
	if n < 20 {
		if n < 0 {
			return ""
		}
		return ones[n]
	}
	if n < 100 {
		return strings.TrimSpace(tens[n/10] + " " + ones[n%10])
	}
	for _, s := range scales {
		if n < s.value {
			continue
		}
		head := NumberToWords(n/s.value) + " " + s.name
		if rest := n % s.value; rest > 0 {
			return head + " " + NumberToWords(rest)
		}
		return head
	}
	return ""
}

// AmountInWords renders a rupee amount for receipts, e.g. "Four Hundred Ten Rupees and Fifty Paise Only".
func AmountInWords(amount decimal.Decimal) string {
	amount = amount.Abs().Round(2)
	rupees := amount.IntPart()
	paise := amount.Sub(decimal.NewFromInt(rupees)).Mul(decimal.NewFromInt(100)).IntPart()

	var parts []string
	if rupees > 0 {
		parts = append(parts, NumberToWords(rupees)+" Rupees")
	}
	if paise > 0 {
		parts = append(parts, NumberToWords(paise)+" Paise")
	}
	if len(parts) == 0 {
		return "Zero Rupees Only"
	}
	return strings.Join(parts, " and ") + " Only"
}
