package model

import "strings"

// Tutor снимок репетитора, собранный из хранилища для поиска и ранжирования.
// Движок подбора только читает эти данные.
type Tutor struct {
	ID           int64              `json:"id" toml:"id"`
	TelegramID   int64              `json:"telegram_id,omitempty" toml:"telegram_id"`
	Name         string             `json:"name" toml:"name"`
	Bio          string             `json:"bio,omitempty" toml:"bio"`
	PricePerHour float64            `json:"price_per_hour" toml:"price_per_hour"` // 0 = цена не указана
	RatingAvg    float64            `json:"rating_avg" toml:"rating_avg"`         // 0..5
	RatingCount  int                `json:"rating_count" toml:"rating_count"`
	Languages    []string           `json:"languages" toml:"languages"` // коды языков: en, ar, fr...
	Verified     bool               `json:"verified" toml:"verified"`
	Subjects     []Subject          `json:"subjects" toml:"subjects"`
	Availability []AvailabilitySlot `json:"availability" toml:"availability"`
}

// SpeaksLanguage проверяет, указан ли язык в профиле
func (t *Tutor) SpeaksLanguage(code string) bool {
	for _, lang := range t.Languages {
		if lang == code {
			return true
		}
	}
	return false
}

// HasSubjectLike проверяет, есть ли предмет, название которого содержит подстроку (без учёта регистра)
func (t *Tutor) HasSubjectLike(query string) bool {
	query = strings.ToLower(query)
	for _, s := range t.Subjects {
		if strings.Contains(strings.ToLower(s.Name), query) {
			return true
		}
	}
	return false
}

// HasSubjectAtLevel проверяет, ведёт ли репетитор хоть один предмет указанного уровня
func (t *Tutor) HasSubjectAtLevel(level string) bool {
	for _, s := range t.Subjects {
		if strings.EqualFold(s.Level, level) {
			return true
		}
	}
	return false
}

// ProfileUpdate изменения профиля репетитора; nil-поля не меняются
type ProfileUpdate struct {
	Bio          *string
	PricePerHour *float64
	Languages    []string // nil = не менять
}

// IsEmpty нет ни одного изменения
func (u ProfileUpdate) IsEmpty() bool {
	return u.Bio == nil && u.PricePerHour == nil && u.Languages == nil
}
