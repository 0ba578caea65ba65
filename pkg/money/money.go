// Package money formatea importes en naira para comprobantes y exportaciones.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Símbolo y código ISO de la moneda de la tienda.
const (
	Symbol = "₦"
	Code   = "NGN"
)

var printer = message.NewPrinter(language.English)

// Format devuelve "₦64,500" o "₦1,250.50" si hay fracción.
func Format(d decimal.Decimal) string {
	return Symbol + Plain(d)
}

// FormatCode devuelve "NGN 64,500". Para fuentes PDF estándar, que no incluyen "₦".
func FormatCode(d decimal.Decimal) string {
	return Code + " " + Plain(d)
}

// Plain igual que Format pero sin símbolo.
func Plain(d decimal.Decimal) string {
	if d.IsInteger() {
		return printer.Sprintf("%d", d.IntPart())
	}
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("%.2f", f)
}
