package model

import "fmt"

// SearchCriteria критерии поиска студента.
// Пустое поле означает «без предпочтений» и оценивается нейтрально.
type SearchCriteria struct {
	Subject      string    `json:"subject,omitempty" toml:"subject"`
	Budget       string    `json:"budget,omitempty" toml:"budget"` // "min-max", пусто = без ограничений
	Language     string    `json:"language,omitempty" toml:"language"`
	Availability []Weekday `json:"availability,omitempty" toml:"availability"` // дни, когда удобно заниматься

	// Жёсткие фильтры страницы поиска, в скоринге не участвуют
	Level        string  `json:"level,omitempty" toml:"level"`
	MinPrice     float64 `json:"min_price,omitempty" toml:"min_price"`
	MaxPrice     float64 `json:"max_price,omitempty" toml:"max_price"` // 0 = без верхней границы
	MinRating    float64 `json:"min_rating,omitempty" toml:"min_rating"`
	VerifiedOnly bool    `json:"verified_only,omitempty" toml:"verified_only"`
}

// BudgetFromRange собирает строку бюджета из значений слайдера цены
func BudgetFromRange(min, max int) string {
	if max <= 0 {
		return ""
	}
	if min < 0 {
		min = 0
	}
	return fmt.Sprintf("%d-%d", min, max)
}
