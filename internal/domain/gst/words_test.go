package gst_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kiranaledger/kirana-api/internal/domain/gst"
)

func TestAmountInWords(t *testing.T) {
	cases := []struct {
		amount string
		want   string
	}{
		{"0", "Zero"},
		{"7", "Seven"},
		{"19", "Nineteen"},
		{"45", "Forty Five"},
		{"100", "One Hundred"},
		{"944", "Nine Hundred and Forty Four"},
		{"1000", "One Thousand"},
		{"2501", "Two Thousand Five Hundred and One"},
		{"100000", "One Lakh"},
		{"2350000", "Twenty Three Lakh Fifty Thousand"},
		{"10000000", "One Crore"},
		{"12.50", "Twelve and Fifty Paise"},
		{"944.05", "Nine Hundred and Forty Four and Five Paise"},
	}
	for _, tc := range cases {
		amt, err := decimal.NewFromString(tc.amount)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, gst.AmountInWords(amt), "amount %s", tc.amount)
	}
}

// Paise are rounded, not truncated: .999 of a rupee is 100 paise, which the
// original rendering keeps as a paise clause rather than carrying into rupees.
func TestAmountInWords_PaiseRounding(t *testing.T) {
	amt, _ := decimal.NewFromString("1.006")
	assert.Equal(t, "One and One Paise", gst.AmountInWords(amt))
}
