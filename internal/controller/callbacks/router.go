package callbacks

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/v7s7/DaresniCheckUpdated/internal/controller/callbacks/callbacktypes"
	"github.com/v7s7/DaresniCheckUpdated/internal/controller/callbacks/common"
	"github.com/v7s7/DaresniCheckUpdated/internal/controller/callbacks/student"
	"github.com/v7s7/DaresniCheckUpdated/internal/controller/callbacks/tutor"
)

// Route распределяет callback query по соответствующим обработчикам
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	data := callback.Data

	switch {
	case data == common.Noop:
		common.AnswerCallback(ctx, b, callback.ID, "")

	// ===== Tutor: availability editor =====
	case strings.HasPrefix(data, common.EditorDay):
		tutor.HandleEditorDay(ctx, b, callback, h)
	case strings.HasPrefix(data, common.EditorCell):
		tutor.HandleEditorCell(ctx, b, callback, h)
	case data == common.EditorClear:
		tutor.HandleEditorClear(ctx, b, callback, h)
	case data == common.EditorSave:
		tutor.HandleEditorSave(ctx, b, callback, h)
	case data == common.EditorDiscard:
		tutor.HandleEditorDiscard(ctx, b, callback, h)

	// ===== Tutor: profile =====
	case strings.HasPrefix(data, common.SubjectDelete):
		tutor.HandleSubjectDelete(ctx, b, callback, h)

	// ===== Student: search results =====
	case strings.HasPrefix(data, common.SearchPage):
		student.HandleSearchPage(ctx, b, callback, h)
	case strings.HasPrefix(data, common.WhyTutor):
		student.HandleWhyTutor(ctx, b, callback, h)

	// ===== Student: tutor week view =====
	case strings.HasPrefix(data, common.ViewWeek):
		student.HandleViewWeek(ctx, b, callback, h)
	case strings.HasPrefix(data, common.WeekDay):
		student.HandleWeekDay(ctx, b, callback, h)
	case strings.HasPrefix(data, common.WeekSelect):
		student.HandleWeekSelect(ctx, b, callback, h)
	case strings.HasPrefix(data, common.WeekImage):
		student.HandleWeekImage(ctx, b, callback, h)
	case strings.HasPrefix(data, common.WeekReset):
		student.HandleWeekReset(ctx, b, callback, h)

	default:
		h.Logger.Warn("Unknown callback data",
			zap.String("data", data),
			zap.Int64("user_id", callback.From.ID))
		common.AnswerCallback(ctx, b, callback.ID, "❓ Неизвестная команда")
	}
}
