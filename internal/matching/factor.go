// Package matching считает релевантность репетитора для критериев поиска студента,
// ранжирует кандидатов и объясняет, почему каждый из них подошёл.
package matching

import (
	"encoding/json"
	"fmt"
)

// Factor один из шести фиксированных факторов подбора
type Factor int

const (
	FactorSubject Factor = iota
	FactorAvailability
	FactorRating
	FactorPrice
	FactorLanguage
	FactorVerified

	factorCount
)

var factorNames = [factorCount]string{
	"subject",
	"availability",
	"rating",
	"price",
	"language",
	"verified",
}

// AllFactors возвращает факторы в каноническом порядке
func AllFactors() []Factor {
	out := make([]Factor, 0, factorCount)
	for f := Factor(0); f < factorCount; f++ {
		out = append(out, f)
	}
	return out
}

func (f Factor) String() string {
	if f < 0 || f >= factorCount {
		return fmt.Sprintf("Factor(%d)", int(f))
	}
	return factorNames[f]
}

// Scores оценки по каждому фактору, все в диапазоне [0,1].
// Массив копируется по значению, поэтому результат нельзя изменить снаружи.
type Scores [factorCount]float64

// Get оценка фактора
func (s Scores) Get(f Factor) float64 {
	if f < 0 || f >= factorCount {
		return 0
	}
	return s[f]
}

// Map разбивка «название фактора → оценка»
func (s Scores) Map() map[string]float64 {
	out := make(map[string]float64, factorCount)
	for f := Factor(0); f < factorCount; f++ {
		out[f.String()] = s[f]
	}
	return out
}

func (s Scores) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Map())
}

func (s *Scores) UnmarshalJSON(data []byte) error {
	var m map[string]float64
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*s = Scores{}
	for f := Factor(0); f < factorCount; f++ {
		s[f] = m[f.String()]
	}
	return nil
}
