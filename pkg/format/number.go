// Package format formatea cifras para las tarjetas y anotaciones del dashboard
// (separador de miles en inglés, como el reporte fuente).
package format

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func printer() *message.Printer {
	return message.NewPrinter(language.English)
}

// Int entero con separador de miles: 1924490 → "1,924,490".
func Int(n int64) string {
	return printer().Sprintf("%d", n)
}

// Float número con separador de miles y prec decimales: (160374.2, 0) → "160,374".
func Float(v float64, prec int) string {
	return printer().Sprintf("%."+strconv.Itoa(prec)+"f", v)
}

// Percent porcentaje con un decimal: 96.41 → "96.4%".
func Percent(v float64) string {
	return printer().Sprintf("%.1f%%", v)
}

// Billions valor en miles de millones con dos decimales: 27244450000 → "27.24B".
func Billions(v float64) string {
	return printer().Sprintf("%.2fB", v/1e9)
}

// Money antepone el código de moneda: ("KES", "2.27B") → "KES 2.27B".
func Money(currency, amount string) string {
	if currency == "" {
		return amount
	}
	return currency + " " + amount
}
