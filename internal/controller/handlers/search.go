package handlers

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/v7s7/DaresniCheckUpdated/internal/controller/callbacks/common"
	"github.com/v7s7/DaresniCheckUpdated/internal/controller/state"
	"github.com/v7s7/DaresniCheckUpdated/internal/model"
)

var ErrBadArgs = errors.New("bad command arguments")

// commandArgs текст после команды ("/search@bot a; b" -> "a; b")
func commandArgs(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return text
	}
	if i := strings.IndexAny(text, " \n"); i >= 0 {
		return strings.TrimSpace(text[i+1:])
	}
	return ""
}

// ParseSearchArgs разбирает аргументы /search.
// Позиционные части через ";": предмет; бюджет min-max; язык; дни.
// Части вида key=value и "verified" задают жёсткие фильтры.
func ParseSearchArgs(args string) (model.SearchCriteria, error) {
	var criteria model.SearchCriteria
	if strings.TrimSpace(args) == "" {
		return criteria, nil
	}

	position := 0
	for _, raw := range strings.Split(args, ";") {
		part := strings.TrimSpace(raw)

		if key, value, ok := strings.Cut(part, "="); ok {
			if err := applyFilter(&criteria, strings.ToLower(strings.TrimSpace(key)), strings.TrimSpace(value)); err != nil {
				return model.SearchCriteria{}, err
			}
			continue
		}
		if strings.EqualFold(part, "verified") {
			criteria.VerifiedOnly = true
			continue
		}

		switch position {
		case 0:
			criteria.Subject = part
		case 1:
			criteria.Budget = part
		case 2:
			criteria.Language = strings.ToLower(part)
		case 3:
			days, err := model.ParseWeekdays(part)
			if err != nil {
				return model.SearchCriteria{}, fmt.Errorf("%w: %v", ErrBadArgs, err)
			}
			criteria.Availability = days
		default:
			return model.SearchCriteria{}, fmt.Errorf("%w: unexpected part %q", ErrBadArgs, part)
		}
		position++
	}

	return criteria, nil
}

func applyFilter(c *model.SearchCriteria, key, value string) error {
	switch key {
	case "rating":
		rating, err := strconv.ParseFloat(value, 64)
		if err != nil || rating < 0 || rating > 5 {
			return fmt.Errorf("%w: rating must be between 0 and 5, got %q", ErrBadArgs, value)
		}
		c.MinRating = rating
	case "level":
		c.Level = value
	case "price":
		minPrice, maxPrice, ok := strings.Cut(value, "-")
		if !ok {
			return fmt.Errorf("%w: price must look like min-max, got %q", ErrBadArgs, value)
		}
		lo, errLo := strconv.ParseFloat(strings.TrimSpace(minPrice), 64)
		hi, errHi := strconv.ParseFloat(strings.TrimSpace(maxPrice), 64)
		if errLo != nil || errHi != nil || lo < 0 || hi < 0 || (hi > 0 && hi < lo) {
			return fmt.Errorf("%w: bad price range %q", ErrBadArgs, value)
		}
		c.MinPrice, c.MaxPrice = lo, hi
		// Как слайдер цены: без явного бюджета диапазон становится бюджетом
		if c.Budget == "" {
			c.Budget = model.BudgetFromRange(int(lo), int(hi))
		}
	case "verified":
		verified, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: verified must be true or false, got %q", ErrBadArgs, value)
		}
		c.VerifiedOnly = verified
	default:
		return fmt.Errorf("%w: unknown filter %q", ErrBadArgs, key)
	}
	return nil
}

// HandleSearch обрабатывает команду /search
func (h *Handlers) HandleSearch(ctx context.Context, b *bot.Bot, update *models.Update) {
	if _, ok := h.requireUser(ctx, b, update); !ok {
		return
	}

	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID

	criteria, err := ParseSearchArgs(commandArgs(update.Message.Text))
	if err != nil {
		h.sendMessage(ctx, b, chatID, fmt.Sprintf(
			"❌ Не удалось разобрать запрос: %s\n\n"+
				"Формат: <code>/search предмет; мин-макс; язык; дни</code>",
			html.EscapeString(err.Error()),
		), nil)
		return
	}

	ranked, err := h.searchService.Search(ctx, criteria)
	if err != nil {
		h.logger.Error("Search failed", zap.Int64("telegram_id", telegramID), zap.Error(err))
		h.sendError(ctx, b, chatID, "❌ Поиск временно недоступен. Попробуйте позже.")
		return
	}

	// Критерии нужны для листания страниц
	h.stateManager.SetData(telegramID, state.DataSearchCriteria, criteria)

	text, kb := common.BuildSearchResultsScreen(ranked, 0)
	h.sendMessage(ctx, b, chatID, text, kb)
}
