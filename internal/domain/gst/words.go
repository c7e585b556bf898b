package gst

import (
	"strings"

	"github.com/shopspring/decimal"
)

var ones = [...]string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tens = [...]string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

func underThousand(n int64) string {
	switch {
	case n == 0:
		return ""
	case n < 20:
		return ones[n]
	case n < 100:
		s := tens[n/10]
		if n%10 != 0 {
			s += " " + ones[n%10]
		}
		return s
	default:
		s := ones[n/100] + " Hundred"
		if n%100 != 0 {
			s += " and " + underThousand(n%100)
		}
		return s
	}
}

// AmountInWords renders a non-negative monetary amount in the Indian
// numbering system (crore/lakh) with a paise clause, e.g.
//
//	944     -> "Nine Hundred and Forty Four"
//	100000  -> "One Lakh"
//	12.50   -> "Twelve and Fifty Paise"
//	0       -> "Zero"
//
// Paise are round(fractional part * 100). Negative amounts are out of
// contract. Amounts above 999,99,99,999 rupees spill into a "Billion" group.
func AmountInWords(amount decimal.Decimal) string {
	if amount.IsZero() {
		return "Zero"
	}

	rupees := amount.IntPart()
	paise := amount.Sub(decimal.NewFromInt(rupees)).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	var sb strings.Builder
	remaining := rupees

	if remaining > 999_999_999 {
		sb.WriteString(underThousand(remaining / 1_000_000_000))
		sb.WriteString(" Billion ")
		remaining %= 1_000_000_000
	}
	if remaining > 9_999_999 {
		sb.WriteString(underThousand(remaining / 10_000_000))
		sb.WriteString(" Crore ")
		remaining %= 10_000_000
	}
	if remaining > 99_999 {
		sb.WriteString(underThousand(remaining / 100_000))
		sb.WriteString(" Lakh ")
		remaining %= 100_000
	}
	if remaining > 999 {
		sb.WriteString(underThousand(remaining / 1_000))
		sb.WriteString(" Thousand ")
		remaining %= 1_000
	}
	sb.WriteString(underThousand(remaining))

	if paise > 0 {
		sb.WriteString(" and ")
		sb.WriteString(underThousand(paise))
		sb.WriteString(" Paise")
	}

	return strings.TrimSpace(sb.String())
}
