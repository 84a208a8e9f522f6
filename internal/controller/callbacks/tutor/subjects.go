package tutor

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/v7s7/DaresniCheckUpdated/internal/controller/callbacks/callbacktypes"
	"github.com/v7s7/DaresniCheckUpdated/internal/controller/callbacks/common"
)

// HandleSubjectDelete удаляет предмет и перерисовывает список
func HandleSubjectDelete(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithUser(ctx, b, callback, h, func(hc *common.HandlerContext) {
		subjectID, err := common.ParseIDFromCallback(callback.Data)
		if err != nil {
			common.HandleError(hc, err, "subject_delete")
			return
		}

		if err := h.ProfileService.RemoveSubject(ctx, hc.TelegramID, subjectID); err != nil {
			common.HandleError(hc, err, "subject_delete")
			return
		}

		profile, err := h.ProfileService.Profile(ctx, hc.TelegramID)
		if err != nil {
			common.HandleError(hc, err, "subject_delete")
			return
		}

		text, kb := common.BuildSubjectsScreen(profile.Subjects, profile.PricePerHour)
		if err := hc.EditMessage(text, kb); err != nil {
			h.Logger.Error("Failed to refresh subjects list",
				zap.Int64("telegram_id", hc.TelegramID),
				zap.Error(err))
		}
		hc.Answer("🗑 Предмет удалён")
	})
}
