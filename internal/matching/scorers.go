package matching

import (
	"math"
	"strings"

	"github.com/v7s7/DaresniCheckUpdated/internal/availability"
	"github.com/v7s7/DaresniCheckUpdated/internal/model"
)

// Нейтральные и частичные оценки факторов
const (
	neutralScore = 0.5

	subjectExactScore   = 1.0
	subjectPartialScore = 0.7

	availabilityOverlapScore = 1.0
	availabilityMissScore    = 0.2

	priceInBudgetScore = 1.0
	priceCheaperScore  = 0.8
	priceTolerance     = 0.2 // доля потолка бюджета, на которой оценка падает до нуля

	languageMatchScore = 1.0
	languageMissScore  = 0.3

	maxRating = 5.0
)

// SubjectScore совпадение предметов: 1 точное (без учёта регистра), 0.7 вхождение подстроки
// в любую сторону, иначе 0. Пустой запрос или отсутствие предметов дают 0, а не нейтральную оценку.
func SubjectScore(subjects []model.Subject, target string) float64 {
	if target == "" || len(subjects) == 0 {
		return 0
	}

	for _, s := range subjects {
		if strings.EqualFold(s.Name, target) {
			return subjectExactScore
		}
	}

	lowerTarget := strings.ToLower(target)
	for _, s := range subjects {
		name := strings.ToLower(s.Name)
		if strings.Contains(name, lowerTarget) || strings.Contains(lowerTarget, name) {
			return subjectPartialScore
		}
	}
	return 0
}

// AvailabilityScore грубая проверка по дням недели, без сравнения минут
func AvailabilityScore(slots []model.AvailabilitySlot, days []model.Weekday) float64 {
	m := availability.NewModel(slots)
	if len(days) == 0 || m.IsEmpty() {
		return neutralScore
	}

	if m.HasAnyWeekday(days) {
		return availabilityOverlapScore
	}
	return availabilityMissScore
}

// RatingScore нормализует средний рейтинг в [0,1]
func RatingScore(ratingAvg float64) float64 {
	if ratingAvg <= 0 || math.IsNaN(ratingAvg) {
		return 0
	}
	return math.Min(ratingAvg/maxRating, 1)
}

// PriceScore соответствие цены бюджету. Дешевле минимума — 0.8, дороже максимума —
// линейное падение до нуля на отрезке в 20% от максимума.
func PriceScore(pricePerHour float64, budget string) float64 {
	if budget == "" || pricePerHour <= 0 {
		return neutralScore
	}

	minBudget, maxBudget, ok := ParseBudget(budget)
	if !ok {
		return neutralScore
	}

	lo, hi := float64(minBudget), float64(maxBudget)
	switch {
	case pricePerHour >= lo && pricePerHour <= hi:
		return priceInBudgetScore
	case pricePerHour < lo:
		return priceCheaperScore
	}

	tolerance := hi * priceTolerance
	if tolerance <= 0 {
		return 0
	}
	return math.Max(0, 1-(pricePerHour-hi)/tolerance)
}

// LanguageScore совпадение языка преподавания
func LanguageScore(tutorLanguages []string, target string) float64 {
	if target == "" || len(tutorLanguages) == 0 {
		return neutralScore
	}
	for _, lang := range tutorLanguages {
		if lang == target {
			return languageMatchScore
		}
	}
	return languageMissScore
}

// VerificationScore 1 для проверенного репетитора
func VerificationScore(verified bool) float64 {
	if verified {
		return 1
	}
	return 0
}

// scoreFactor считает один фактор для пары «репетитор — критерии»
func scoreFactor(f Factor, t *model.Tutor, c model.SearchCriteria) float64 {
	switch f {
	case FactorSubject:
		return SubjectScore(t.Subjects, c.Subject)
	case FactorAvailability:
		return AvailabilityScore(t.Availability, c.Availability)
	case FactorRating:
		return RatingScore(t.RatingAvg)
	case FactorPrice:
		return PriceScore(t.PricePerHour, c.Budget)
	case FactorLanguage:
		return LanguageScore(t.Languages, c.Language)
	case FactorVerified:
		return VerificationScore(t.Verified)
	default:
		return 0
	}
}

// ScoreAll считает все факторы
func ScoreAll(t *model.Tutor, c model.SearchCriteria) Scores {
	var s Scores
	for f := Factor(0); f < factorCount; f++ {
		s[f] = scoreFactor(f, t, c)
	}
	return s
}
