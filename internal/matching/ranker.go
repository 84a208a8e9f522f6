package matching

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/v7s7/DaresniCheckUpdated/internal/model"
)

// Ranked репетитор вместе с результатом оценки
type Ranked struct {
	Tutor *model.Tutor `json:"tutor"`
	Match MatchResult  `json:"match"`
}

// Ranker применяет Engine к списку кандидатов
type Ranker struct {
	engine  *Engine
	workers int
}

// NewRanker создаёт ранжировщик. workers <= 1 — последовательная оценка.
func NewRanker(engine *Engine, workers int) *Ranker {
	if engine == nil {
		engine = DefaultEngine()
	}
	return &Ranker{engine: engine, workers: workers}
}

// Rank оценивает кандидатов и сортирует по убыванию оценки.
// Равные оценки сохраняют исходный порядок независимо от параллельности.
func (r *Ranker) Rank(tutors []*model.Tutor, c model.SearchCriteria) []Ranked {
	out := make([]Ranked, len(tutors))

	if r.workers <= 1 || len(tutors) < 2 {
		for i, t := range tutors {
			out[i] = Ranked{Tutor: t, Match: r.engine.Evaluate(t, c)}
		}
	} else {
		var g errgroup.Group
		g.SetLimit(r.workers)
		for i, t := range tutors {
			i, t := i, t
			g.Go(func() error {
				out[i] = Ranked{Tutor: t, Match: r.engine.Evaluate(t, c)}
				return nil
			})
		}
		// Оценка не возвращает ошибок
		_ = g.Wait()
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Match.Score > out[j].Match.Score
	})
	return out
}

// Top первые n результатов
func Top(ranked []Ranked, n int) []Ranked {
	if n < 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}
