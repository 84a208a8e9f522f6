package matching

import (
	"errors"
	"fmt"
	"math"
)

const weightSumTolerance = 1e-9

var ErrInvalidWeights = errors.New("invalid matching weights")

// Weights вклад каждого фактора в итоговую оценку. Сумма весов должна быть равна 1.
type Weights struct {
	Subject      float64 `json:"subject" toml:"subject"`
	Availability float64 `json:"availability" toml:"availability"`
	Rating       float64 `json:"rating" toml:"rating"`
	Price        float64 `json:"price" toml:"price"`
	Language     float64 `json:"language" toml:"language"`
	Verified     float64 `json:"verified" toml:"verified"`
}

// DefaultWeights стандартное распределение весов
func DefaultWeights() Weights {
	return Weights{
		Subject:      0.30,
		Availability: 0.25,
		Rating:       0.20,
		Price:        0.15,
		Language:     0.07,
		Verified:     0.03,
	}
}

// Of вес фактора
func (w Weights) Of(f Factor) float64 {
	switch f {
	case FactorSubject:
		return w.Subject
	case FactorAvailability:
		return w.Availability
	case FactorRating:
		return w.Rating
	case FactorPrice:
		return w.Price
	case FactorLanguage:
		return w.Language
	case FactorVerified:
		return w.Verified
	default:
		return 0
	}
}

// Sum сумма всех весов
func (w Weights) Sum() float64 {
	var sum float64
	for _, f := range AllFactors() {
		sum += w.Of(f)
	}
	return sum
}

// Validate проверяет, что веса неотрицательны и в сумме дают 1
func (w Weights) Validate() error {
	for _, f := range AllFactors() {
		if v := w.Of(f); v < 0 || math.IsNaN(v) {
			return fmt.Errorf("%w: %s weight is %v", ErrInvalidWeights, f, v)
		}
	}
	if sum := w.Sum(); math.Abs(sum-1) > weightSumTolerance {
		return fmt.Errorf("%w: weights sum to %.4f, must sum to 1.0", ErrInvalidWeights, sum)
	}
	return nil
}

// Aggregate взвешенная сумма оценок, округлённая до трёх знаков
func (w Weights) Aggregate(scores Scores) float64 {
	var total float64
	for _, f := range AllFactors() {
		total += scores.Get(f) * w.Of(f)
	}
	return clamp01(roundScore(total))
}

// roundScore округляет до 3 знаков, половина — вверх
func roundScore(v float64) float64 {
	return math.Floor(v*1000+0.5) / 1000
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
