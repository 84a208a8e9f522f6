package handlers

import (
	"context"
	"fmt"
	"html"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/v7s7/DaresniCheckUpdated/internal/controller/state"
)

const helpText = "📚 <b>Справка по командам</b>\n\n" +
	"Для студентов:\n" +
	"/search <i>предмет; мин-макс; язык; дни</i> - подобрать репетитора\n" +
	"   например: <code>/search math; 10-30; en; пн,ср</code>\n" +
	"   доп. фильтры: <code>rating=4</code>, <code>level=University</code>, <code>verified</code>\n" +
	"/week <i>ID</i> - свободное время репетитора\n\n" +
	"Для репетиторов:\n" +
	"/becometutor - Стать репетитором\n" +
	"/availability - Редактировать свободное время\n" +
	"/profile - Профиль: цена, языки, описание\n" +
	"/addsubject <i>предмет; уровень; цена</i> - Добавить предмет\n" +
	"/mysubjects - Мои предметы\n\n" +
	"/cancel - Отменить текущую операцию\n" +
	"/help - Показать эту справку"

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	user := update.Message.From

	registeredUser, err := h.userService.RegisterUser(
		ctx,
		user.ID,
		user.Username,
		user.FirstName,
		user.LastName,
		user.LanguageCode,
	)
	if err != nil {
		h.logger.Error("Failed to register user", zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Произошла ошибка при регистрации. Попробуйте позже.")
		return
	}

	welcomeText := fmt.Sprintf(
		"👋 Привет, %s!\n\n"+
			"Daresni помогает найти репетитора: бот оценивает каждого по предмету, времени, "+
			"рейтингу, цене, языку и проверке профиля и объясняет, почему он подходит.\n\n",
		html.EscapeString(registeredUser.DisplayName()),
	)

	h.sendMessage(ctx, b, update.Message.Chat.ID, welcomeText+helpText, nil)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, helpText, nil)
}

// HandleCancel обрабатывает команду /cancel - отмена текущего диалога
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID
	currentState := h.stateManager.GetState(telegramID)

	if currentState == state.StateNone {
		h.sendMessage(ctx, b, update.Message.Chat.ID, "❌ Нет активных операций для отмены.", nil)
		return
	}

	// Несохранённые изменения редактора пропадают вместе с состоянием
	h.stateManager.ClearState(telegramID)

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		"✅ Операция отменена.\n\nИспользуйте /help для просмотра доступных команд.", nil)
}

// HandleBecomeTutor обрабатывает команду /becometutor
func (h *Handlers) HandleBecomeTutor(ctx context.Context, b *bot.Bot, update *models.Update) {
	if _, ok := h.requireUser(ctx, b, update); !ok {
		return
	}

	user, err := h.userService.BecomeTutor(ctx, update.Message.From.ID)
	if err != nil {
		h.logger.Error("Failed to make user a tutor",
			zap.Int64("telegram_id", update.Message.From.ID),
			zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Не удалось оформить профиль репетитора. Попробуйте позже.")
		return
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, fmt.Sprintf(
		"🎓 Готово, %s! Теперь вы репетитор.\n\n"+
			"Заполните профиль: /profile, добавьте предметы: /addsubject\n"+
			"Отметьте свободное время: /availability",
		html.EscapeString(user.DisplayName()),
	), nil)
}
