package helper

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var idrPrinter = message.NewPrinter(language.Indonesian)

// FormatIDR memformat harga ke rupiah: 150000 → "Rp 150.000".
func FormatIDR(v float64) string {
	if v < 0 {
		v = 0
	}
	return idrPrinter.Sprintf("Rp %v", number.Decimal(v, number.MaxFractionDigits(0)))
}
