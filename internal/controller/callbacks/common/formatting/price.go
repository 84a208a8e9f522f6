package formatting

import "fmt"

// FormatPrice форматирует почасовую ставку; 0 означает «не указана»
func FormatPrice(pricePerHour float64) string {
	if pricePerHour <= 0 {
		return "цена не указана"
	}
	if pricePerHour == float64(int64(pricePerHour)) {
		return fmt.Sprintf("%.0f $/ч", pricePerHour)
	}
	return fmt.Sprintf("%.2f $/ч", pricePerHour)
}
