// Package currency converts base-currency (USD) amounts into display
// currencies using a static rate table. Rates are configuration, not live
// data; refreshing them means redeploying.
package currency

import (
	"fmt"
)

// BaseCode is the currency product prices are stored in.
const BaseCode = "USD"

// Config describes one supported display currency.
type Config struct {
	Symbol string
	Name   string
	Rate   float64 // multiplier from the base currency
}

var currencies = map[string]Config{
	"INR": {Symbol: "₹", Name: "Indian Rupee", Rate: 83.12},
	"USD": {Symbol: "$", Name: "US Dollar", Rate: 1},
	"EUR": {Symbol: "€", Name: "Euro", Rate: 0.92},
	"GBP": {Symbol: "£", Name: "British Pound", Rate: 0.79},
	"JPY": {Symbol: "¥", Name: "Japanese Yen", Rate: 149.50},
	"AUD": {Symbol: "A$", Name: "Australian Dollar", Rate: 1.53},
	"CAD": {Symbol: "C$", Name: "Canadian Dollar", Rate: 1.36},
}

// ErrUnknownCode reports an unsupported currency code. Callers must handle
// it; there is no silent fallback to the base currency.
type ErrUnknownCode struct {
	Code string
}

func (e *ErrUnknownCode) Error() string {
	return fmt.Sprintf("unknown currency code %q", e.Code)
}

// IsSupported reports whether code has a configured rate.
func IsSupported(code string) bool {
	_, ok := currencies[code]
	return ok
}

// Rate returns the exchange rate from the base currency.
func Rate(code string) (float64, error) {
	c, ok := currencies[code]
	if !ok {
		return 0, &ErrUnknownCode{Code: code}
	}
	return c.Rate, nil
}

// Convert multiplies a base-currency amount by the rate for code.
func Convert(amount float64, code string) (float64, error) {
	rate, err := Rate(code)
	if err != nil {
		return 0, err
	}
	return amount * rate, nil
}

// FormatPrice renders a base-currency amount as a display string, e.g.
// "$125.00" or "₹10390.00".
func FormatPrice(amount float64, code string) (string, error) {
	c, ok := currencies[code]
	if !ok {
		return "", &ErrUnknownCode{Code: code}
	}
	return fmt.Sprintf("%s%.2f", c.Symbol, amount*c.Rate), nil
}

// Codes lists the supported currency codes.
func Codes() []string {
	out := make([]string, 0, len(currencies))
	for code := range currencies {
		out = append(out, code)
	}
	return out
}

// Lookup returns the configuration for code.
func Lookup(code string) (Config, bool) {
	c, ok := currencies[code]
	return c, ok
}
