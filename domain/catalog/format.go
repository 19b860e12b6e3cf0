package catalog

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NotAvailableLabel is shown wherever a tuition value cannot be
// displayed. A tuition of exactly 0 gets the same label as a missing one;
// the source data does not distinguish the two.
const NotAvailableLabel = "No disponible"

// CurrencyFormatter renders tuition values as zero-decimal grouped
// currency strings for a fixed locale.
type CurrencyFormatter struct {
	printer *message.Printer
}

// NewCurrencyFormatter builds a formatter for a BCP 47 locale tag such as
// "es-CO". An unparseable tag falls back to es-CO, the locale of the
// source catalog.
func NewCurrencyFormatter(locale string) *CurrencyFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse("es-CO")
	}
	return &CurrencyFormatter{printer: message.NewPrinter(tag)}
}

// FormatCurrency renders a tuition value. Missing and zero both yield
// NotAvailableLabel; anything else is grouped with no fractional digits.
func (f *CurrencyFormatter) FormatCurrency(v *float64) string {
	if v == nil || *v == 0 {
		return NotAvailableLabel
	}
	return f.printer.Sprintf("$ %v", number.Decimal(*v,
		number.MaxFractionDigits(0),
		number.MinFractionDigits(0)))
}
