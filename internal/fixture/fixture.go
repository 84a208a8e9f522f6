// Package fixture читает наборы репетиторов из TOML для офлайн-проверки ранжирования.
package fixture

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/v7s7/DaresniCheckUpdated/internal/model"
)

var ErrInvalidFixture = errors.New("invalid fixture")

// File содержимое файла фикстуры
type File struct {
	Criteria model.SearchCriteria `toml:"criteria"`
	Tutors   []*model.Tutor       `toml:"tutors"`
}

// Load читает и проверяет файл фикстуры
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}

	return Parse(data)
}

// Parse разбирает TOML и проверяет данные
func Parse(data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return &f, nil
}

// Validate проверяет уникальность ID, границы рейтинга и слотов
func (f *File) Validate() error {
	seen := make(map[int64]bool, len(f.Tutors))
	for i, t := range f.Tutors {
		if t == nil {
			return fmt.Errorf("%w: tutor #%d is empty", ErrInvalidFixture, i)
		}
		if t.ID <= 0 {
			return fmt.Errorf("%w: tutor #%d has no id", ErrInvalidFixture, i)
		}
		if seen[t.ID] {
			return fmt.Errorf("%w: duplicate tutor id %d", ErrInvalidFixture, t.ID)
		}
		seen[t.ID] = true

		if t.RatingAvg < 0 || t.RatingAvg > 5 {
			return fmt.Errorf("%w: tutor %d rating %.2f out of 0..5", ErrInvalidFixture, t.ID, t.RatingAvg)
		}
		if t.PricePerHour < 0 {
			return fmt.Errorf("%w: tutor %d has negative price", ErrInvalidFixture, t.ID)
		}

		for j, slot := range t.Availability {
			if !slot.IsValid() {
				return fmt.Errorf("%w: tutor %d slot %s is out of range", ErrInvalidFixture, t.ID, slot)
			}
			for _, other := range t.Availability[:j] {
				if slot.Overlaps(other) {
					return fmt.Errorf("%w: tutor %d slots %s and %s overlap", ErrInvalidFixture, t.ID, other, slot)
				}
			}
		}
	}

	return nil
}

// Tutor ищет репетитора по ID
func (f *File) Tutor(id int64) (*model.Tutor, bool) {
	for _, t := range f.Tutors {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}
