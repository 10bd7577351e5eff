package utils

import "fmt"

// FormatPrice renders a price with the two decimal places menu prices
// are displayed with. 9.5 -> "9.50".
func FormatPrice(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
