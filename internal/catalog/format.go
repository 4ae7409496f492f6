package catalog

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var pricePrinter = message.NewPrinter(language.AmericanEnglish)

// FormatPrice renders a whole-dollar price for display, e.g. "$1,299".
func FormatPrice(price int) string {
	return pricePrinter.Sprintf("$%d", price)
}
