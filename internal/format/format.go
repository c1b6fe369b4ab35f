package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Store locale and currency. The storefront sells in one market only.
var (
	storeLocale = language.MustParse("es-AR")
	printer     = message.NewPrinter(storeLocale)
)

// currencyGap separates the symbol from the amount, as es-AR renders "$ 74.990".
const currencyGap = "\u00a0"

// Pesos formats a whole-peso amount in es-AR style with no fraction digits.
// Example: Pesos(74990) => "$ 74.990" (non-breaking space).
func Pesos(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + "$" + currencyGap + printer.Sprintf("%d", amount)
}

// Locale returns the BCP 47 tag used for Content-Language and html lang.
func Locale() string { return storeLocale.String() }
