package matching

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseBudget разбирает бюджет вида "<min>-<max>".
// Из каждой части выбрасываются все нецифровые символы, поэтому "$25 - $50" тоже валиден.
func ParseBudget(budget string) (min, max int, ok bool) {
	parts := strings.Split(budget, "-")
	if len(parts) < 2 {
		return 0, 0, false
	}

	min, ok = parseBudgetPart(parts[0])
	if !ok {
		return 0, 0, false
	}
	max, ok = parseBudgetPart(parts[1])
	if !ok {
		return 0, 0, false
	}
	return min, max, true
}

func parseBudgetPart(s string) (int, bool) {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
	if digits == "" {
		return 0, false
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}
