package matching

import "github.com/v7s7/DaresniCheckUpdated/internal/model"

// MatchResult результат оценки одного репетитора.
// Создаётся заново на каждую оценку и после этого не меняется.
type MatchResult struct {
	Score     float64  `json:"score"`
	Reasons   []string `json:"reasons"`
	Breakdown Scores   `json:"breakdown"`
}

// Engine считает факторы, агрегирует их и подбирает причины
type Engine struct {
	weights Weights
}

// NewEngine создаёт движок с проверенными весами
func NewEngine(weights Weights) (*Engine, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Engine{weights: weights}, nil
}

// DefaultEngine движок со стандартными весами
func DefaultEngine() *Engine {
	engine, err := NewEngine(DefaultWeights())
	if err != nil {
		panic("default matching weights are invalid: " + err.Error())
	}
	return engine
}

// Weights веса движка
func (e *Engine) Weights() Weights {
	return e.weights
}

// Evaluate оценивает репетитора. Не возвращает ошибок: отсутствующие критерии дают нейтральные оценки.
func (e *Engine) Evaluate(t *model.Tutor, c model.SearchCriteria) MatchResult {
	scores := ScoreAll(t, c)
	return MatchResult{
		Score:     e.weights.Aggregate(scores),
		Reasons:   GenerateReasons(scores),
		Breakdown: scores,
	}
}
