package handlers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/v7s7/DaresniCheckUpdated/internal/controller/callbacks/common"
	"github.com/v7s7/DaresniCheckUpdated/internal/controller/state"
	"github.com/v7s7/DaresniCheckUpdated/internal/model"
	"github.com/v7s7/DaresniCheckUpdated/internal/repository"
	"github.com/v7s7/DaresniCheckUpdated/internal/service"
)

// HandleAvailability обрабатывает команду /availability - открывает редактор свободного времени
func (h *Handlers) HandleAvailability(ctx context.Context, b *bot.Bot, update *models.Update) {
	if _, ok := h.requireTutor(ctx, b, update); !ok {
		return
	}

	chatID := update.Message.Chat.ID
	telegramID := update.Message.From.ID

	editor, err := h.availabilityService.Open(ctx, telegramID)
	if err != nil {
		if errors.Is(err, service.ErrNotATutor) {
			h.sendError(ctx, b, chatID, common.ErrorMessage(err))
			return
		}
		h.logger.Error("Failed to open availability editor", zap.Int64("telegram_id", telegramID), zap.Error(err))
		h.sendError(ctx, b, chatID, "❌ Не удалось загрузить расписание. Попробуйте позже.")
		return
	}

	h.stateManager.StartEditing(telegramID, editor)
	h.stateManager.SetData(telegramID, state.DataAvailabilityDay, model.Monday)

	text, kb := common.BuildEditorScreen(editor, model.Monday)
	h.sendMessage(ctx, b, chatID, text, kb)
}

// HandleWeek обрабатывает команду /week <ID> - неделя репетитора с картинкой
func (h *Handlers) HandleWeek(ctx context.Context, b *bot.Bot, update *models.Update) {
	if _, ok := h.requireUser(ctx, b, update); !ok {
		return
	}

	chatID := update.Message.Chat.ID

	tutorID, err := strconv.ParseInt(commandArgs(update.Message.Text), 10, 64)
	if err != nil || tutorID <= 0 {
		h.sendMessage(ctx, b, chatID, "Использование: <code>/week ID</code>\nID репетитора есть в выдаче /search.", nil)
		return
	}

	tutor, err := h.searchService.GetTutor(ctx, tutorID)
	if err != nil {
		if errors.Is(err, repository.ErrTutorNotFound) {
			h.sendError(ctx, b, chatID, common.ErrorMessage(err))
			return
		}
		h.logger.Error("Failed to get tutor", zap.Int64("tutor_id", tutorID), zap.Error(err))
		h.sendError(ctx, b, chatID, "❌ Не удалось загрузить репетитора. Попробуйте позже.")
		return
	}

	sel := &common.WeekSelection{TutorID: tutor.ID, Day: model.Monday}
	h.stateManager.SetData(update.Message.From.ID, state.DataWeekSelection, sel)

	img, err := h.availabilityService.WeekImage(ctx, tutor.ID, nil)
	if err != nil {
		h.logger.Error("Failed to render week image", zap.Int64("tutor_id", tutorID), zap.Error(err))
	} else {
		_, err = b.SendPhoto(ctx, &bot.SendPhotoParams{
			ChatID: chatID,
			Photo: &models.InputFileUpload{
				Filename: fmt.Sprintf("week_%d.png", tutor.ID),
				Data:     bytes.NewReader(img),
			},
		})
		if err != nil {
			h.logger.Error("Failed to send week image", zap.Int64("tutor_id", tutorID), zap.Error(err))
		}
	}

	text, kb := common.BuildWeekViewScreen(tutor, sel)
	h.sendMessage(ctx, b, chatID, text, kb)
}
