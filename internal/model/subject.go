package model

// Subject предмет, который ведёт репетитор
type Subject struct {
	ID            int64    `json:"id" toml:"-"`
	TutorID       int64    `json:"tutor_id" toml:"-"`
	Name          string   `json:"name" toml:"name"`
	Level         string   `json:"level,omitempty" toml:"level"`                   // Elementary, High School, University...
	PriceOverride *float64 `json:"price_override,omitempty" toml:"price_override"` // nil = используется ставка репетитора
}

// EffectivePrice возвращает цену часа по этому предмету
func (s *Subject) EffectivePrice(tutorPrice float64) float64 {
	if s.PriceOverride != nil && *s.PriceOverride > 0 {
		return *s.PriceOverride
	}
	return tutorPrice
}
