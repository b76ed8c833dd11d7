// Package currency provides display metadata and conversion helpers for the
// currencies a receipt may be denominated in.
//
// The package is a static lookup table plus pure functions. It shares nothing
// with the split engine beyond the notion of a monetary amount: the engine
// computes in exact decimal, and callers use this package only when turning a
// computed amount into something a person can read.
package currency

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultCode is the currency assumed when none is given or the given code is
// unknown.
const DefaultCode = "USD"

// Info describes how to display amounts in one currency.
type Info struct {
	// Name is the English currency name (e.g., "US Dollar").
	Name string `json:"name"`

	// Symbol is the display symbol (e.g., "$").
	Symbol string `json:"symbol"`

	// Locale is the BCP 47 tag used for digit grouping and decimal
	// separators (e.g., "de-DE" renders 1.234,56).
	Locale string `json:"locale"`

	// MinorUnits is the number of decimal places of the smallest
	// denomination (2 for cents, 0 for yen).
	MinorUnits int `json:"minor_units"`
}

// currencies is the static registry of supported codes.
var currencies = map[string]Info{
	"USD": {Name: "US Dollar", Symbol: "$", Locale: "en-US", MinorUnits: 2},
	"EUR": {Name: "Euro", Symbol: "€", Locale: "de-DE", MinorUnits: 2},
	"GBP": {Name: "British Pound", Symbol: "£", Locale: "en-GB", MinorUnits: 2},
	"JPY": {Name: "Japanese Yen", Symbol: "¥", Locale: "ja-JP", MinorUnits: 0},
	"CAD": {Name: "Canadian Dollar", Symbol: "C$", Locale: "en-CA", MinorUnits: 2},
	"AUD": {Name: "Australian Dollar", Symbol: "A$", Locale: "en-AU", MinorUnits: 2},
	"CHF": {Name: "Swiss Franc", Symbol: "CHF ", Locale: "de-CH", MinorUnits: 2},
	"CNY": {Name: "Chinese Yuan", Symbol: "¥", Locale: "zh-CN", MinorUnits: 2},
	"INR": {Name: "Indian Rupee", Symbol: "₹", Locale: "en-IN", MinorUnits: 2},
	"KRW": {Name: "South Korean Won", Symbol: "₩", Locale: "ko-KR", MinorUnits: 0},
	"MXN": {Name: "Mexican Peso", Symbol: "MX$", Locale: "es-MX", MinorUnits: 2},
	"BRL": {Name: "Brazilian Real", Symbol: "R$", Locale: "pt-BR", MinorUnits: 2},
	"SEK": {Name: "Swedish Krona", Symbol: "kr ", Locale: "sv-SE", MinorUnits: 2},
	"NOK": {Name: "Norwegian Krone", Symbol: "kr ", Locale: "nb-NO", MinorUnits: 2},
	"DKK": {Name: "Danish Krone", Symbol: "kr ", Locale: "da-DK", MinorUnits: 2},
	"PLN": {Name: "Polish Złoty", Symbol: "zł ", Locale: "pl-PL", MinorUnits: 2},
	"SGD": {Name: "Singapore Dollar", Symbol: "S$", Locale: "en-SG", MinorUnits: 2},
	"HKD": {Name: "Hong Kong Dollar", Symbol: "HK$", Locale: "zh-HK", MinorUnits: 2},
	"NZD": {Name: "New Zealand Dollar", Symbol: "NZ$", Locale: "en-NZ", MinorUnits: 2},
	"THB": {Name: "Thai Baht", Symbol: "฿", Locale: "th-TH", MinorUnits: 2},
}

// Lookup returns the display info for an ISO 4217 code. Unknown or empty
// codes fall back to the default currency rather than erroring.
func Lookup(code string) Info {
	if info, ok := currencies[code]; ok {
		return info
	}
	return currencies[DefaultCode]
}

// Codes returns all supported currency codes in unspecified order.
func Codes() []string {
	codes := make([]string, 0, len(currencies))
	for code := range currencies {
		codes = append(codes, code)
	}
	return codes
}

// Format renders an amount for display in the given currency: locale-aware
// digit grouping, fixed to the currency's minor-unit decimal places, prefixed
// with the currency symbol. Non-finite amounts render as zero.
func Format(amount float64, code string) string {
	info := Lookup(code)
	if !isFinite(amount) {
		amount = 0
	}
	printer := message.NewPrinter(language.Make(info.Locale))
	return printer.Sprintf("%s%v", info.Symbol, number.Decimal(amount, number.Scale(info.MinorUnits)))
}

// ToMinorUnits converts a major-unit amount to the currency's smallest
// denomination, rounding to the nearest unit. Non-finite input yields 0.
func ToMinorUnits(amount float64, code string) int64 {
	if !isFinite(amount) {
		return 0
	}
	factor := math.Pow10(Lookup(code).MinorUnits)
	return int64(math.Round(amount * factor))
}

// FromMinorUnits converts a minor-unit amount back to major units.
// Non-finite input yields 0.
func FromMinorUnits(minorAmount float64, code string) float64 {
	if !isFinite(minorAmount) {
		return 0
	}
	return minorAmount / math.Pow10(Lookup(code).MinorUnits)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
