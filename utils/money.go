package utils

import "fmt"

// FormatPrice renders an amount for display, rounded to cents. Stored
// prices stay unrounded; this is the only place rounding happens.
func FormatPrice(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}
