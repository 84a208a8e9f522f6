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
	"github.com/v7s7/DaresniCheckUpdated/internal/controller/callbacks/common/formatting"
	"github.com/v7s7/DaresniCheckUpdated/internal/model"
	"github.com/v7s7/DaresniCheckUpdated/internal/service"
)

const profileUsage = "Изменить профиль:\n" +
	"<code>/profile price=25; languages=en,ar; bio=Готовлю к экзаменам</code>"

// ParseProfileArgs разбирает "price=25; languages=en,ar; bio=текст"
func ParseProfileArgs(args string) (model.ProfileUpdate, error) {
	var upd model.ProfileUpdate

	for _, raw := range strings.Split(args, ";") {
		part := strings.TrimSpace(raw)
		if part == "" {
			continue
		}

		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return model.ProfileUpdate{}, fmt.Errorf("%w: expected key=value, got %q", ErrBadArgs, part)
		}
		value = strings.TrimSpace(value)

		switch strings.ToLower(strings.TrimSpace(key)) {
		case "price":
			price, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return model.ProfileUpdate{}, fmt.Errorf("%w: bad price %q", ErrBadArgs, value)
			}
			upd.PricePerHour = &price
		case "languages", "lang":
			upd.Languages = strings.FieldsFunc(value, func(r rune) bool {
				return r == ',' || r == ' '
			})
			if upd.Languages == nil {
				upd.Languages = []string{}
			}
		case "bio":
			bio := value
			upd.Bio = &bio
		default:
			return model.ProfileUpdate{}, fmt.Errorf("%w: unknown field %q", ErrBadArgs, key)
		}
	}

	return upd, nil
}

// ParseSubjectArgs разбирает "предмет; уровень; цена", уровень и цена необязательны
func ParseSubjectArgs(args string) (name, level string, price *float64, err error) {
	parts := strings.Split(args, ";")
	if len(parts) > 3 {
		return "", "", nil, fmt.Errorf("%w: too many parts", ErrBadArgs)
	}

	name = strings.TrimSpace(parts[0])
	if name == "" {
		return "", "", nil, fmt.Errorf("%w: subject name is required", ErrBadArgs)
	}
	if len(parts) > 1 {
		level = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		if v := strings.TrimSpace(parts[2]); v != "" {
			p, perr := strconv.ParseFloat(v, 64)
			if perr != nil {
				return "", "", nil, fmt.Errorf("%w: bad price %q", ErrBadArgs, v)
			}
			price = &p
		}
	}

	return name, level, price, nil
}

// replyProfileError сообщение для ошибок сервиса профиля
func (h *Handlers) replyProfileError(ctx context.Context, b *bot.Bot, chatID int64, err error, operation string) {
	switch {
	case errors.Is(err, service.ErrInvalidProfile):
		h.sendMessage(ctx, b, chatID, "❌ "+html.EscapeString(err.Error()), nil)
	case errors.Is(err, service.ErrNotATutor):
		h.sendError(ctx, b, chatID, common.ErrorMessage(err))
	default:
		h.logger.Error("Profile operation failed", zap.String("operation", operation), zap.Error(err))
		h.sendError(ctx, b, chatID, "❌ Произошла ошибка. Попробуйте позже.")
	}
}

// HandleProfile обрабатывает команду /profile - показ или изменение профиля
func (h *Handlers) HandleProfile(ctx context.Context, b *bot.Bot, update *models.Update) {
	if _, ok := h.requireTutor(ctx, b, update); !ok {
		return
	}

	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID

	if args := commandArgs(update.Message.Text); args != "" {
		upd, err := ParseProfileArgs(args)
		if err != nil {
			h.sendMessage(ctx, b, chatID, "❌ "+html.EscapeString(err.Error())+"\n\n"+profileUsage, nil)
			return
		}
		if err := h.profileService.UpdateProfile(ctx, telegramID, upd); err != nil {
			h.replyProfileError(ctx, b, chatID, err, "update_profile")
			return
		}
	}

	tutor, err := h.profileService.Profile(ctx, telegramID)
	if err != nil {
		h.replyProfileError(ctx, b, chatID, err, "profile")
		return
	}

	h.sendMessage(ctx, b, chatID, formatting.FormatProfile(tutor)+"\n\n"+profileUsage, nil)
}

// HandleAddSubject обрабатывает команду /addsubject предмет; уровень; цена
func (h *Handlers) HandleAddSubject(ctx context.Context, b *bot.Bot, update *models.Update) {
	if _, ok := h.requireTutor(ctx, b, update); !ok {
		return
	}

	chatID := update.Message.Chat.ID

	name, level, price, err := ParseSubjectArgs(commandArgs(update.Message.Text))
	if err != nil {
		h.sendMessage(ctx, b, chatID,
			"Использование: <code>/addsubject предмет; уровень; цена</code>\n"+
				"Например: <code>/addsubject Math; University; 30</code>", nil)
		return
	}

	subject, err := h.profileService.AddSubject(ctx, update.Message.From.ID, name, level, price)
	if err != nil {
		h.replyProfileError(ctx, b, chatID, err, "add_subject")
		return
	}

	h.sendMessage(ctx, b, chatID,
		fmt.Sprintf("✅ Предмет <b>%s</b> добавлен.\n\nВсе предметы: /mysubjects", html.EscapeString(subject.Name)), nil)
}

// HandleMySubjects обрабатывает команду /mysubjects
func (h *Handlers) HandleMySubjects(ctx context.Context, b *bot.Bot, update *models.Update) {
	if _, ok := h.requireTutor(ctx, b, update); !ok {
		return
	}

	tutor, err := h.profileService.Profile(ctx, update.Message.From.ID)
	if err != nil {
		h.replyProfileError(ctx, b, update.Message.Chat.ID, err, "my_subjects")
		return
	}

	text, kb := common.BuildSubjectsScreen(tutor.Subjects, tutor.PricePerHour)
	h.sendMessage(ctx, b, update.Message.Chat.ID, text, kb)
}
