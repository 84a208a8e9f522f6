package tutor

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/v7s7/DaresniCheckUpdated/internal/availability"
	"github.com/v7s7/DaresniCheckUpdated/internal/controller/callbacks/callbacktypes"
	"github.com/v7s7/DaresniCheckUpdated/internal/controller/callbacks/common"
	"github.com/v7s7/DaresniCheckUpdated/internal/controller/callbacks/common/formatting"
	"github.com/v7s7/DaresniCheckUpdated/internal/model"
)

// currentDay выбранный в редакторе день, по умолчанию понедельник
func currentDay(hc *common.HandlerContext) model.Weekday {
	if value, ok := hc.GetData(callbacktypes.DataAvailabilityDay); ok {
		if day, ok := value.(model.Weekday); ok && day.IsValid() {
			return day
		}
	}
	return model.Monday
}

func showEditor(hc *common.HandlerContext, editor *availability.Editor, day model.Weekday) {
	text, kb := common.BuildEditorScreen(editor, day)
	if err := hc.EditMessage(text, kb); err != nil {
		hc.Handler.Logger.Error("Failed to render availability editor",
			zap.Int64("telegram_id", hc.TelegramID),
			zap.Error(err))
	}
}

// HandleEditorDay переключает день редактора
func HandleEditorDay(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithEditor(ctx, b, callback, h, func(hc *common.HandlerContext, editor *availability.Editor) {
		day, err := common.ParseDay(callback.Data, common.EditorDay)
		if err != nil {
			common.HandleError(hc, err, "editor_day")
			return
		}

		hc.SetData(callbacktypes.DataAvailabilityDay, day)
		showEditor(hc, editor, day)
		hc.Answer("")
	})
}

// HandleEditorCell переключает часовую ячейку
func HandleEditorCell(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithEditor(ctx, b, callback, h, func(hc *common.HandlerContext, editor *availability.Editor) {
		cell, err := common.ParseCell(callback.Data, common.EditorCell)
		if err != nil {
			common.HandleError(hc, err, "editor_cell")
			return
		}

		state, err := editor.Toggle(cell)
		if err != nil {
			common.HandleError(hc, err, "editor_cell")
			return
		}

		hc.SetData(callbacktypes.DataAvailabilityDay, cell.Weekday)
		showEditor(hc, editor, cell.Weekday)

		if state == availability.CellAvailable {
			hc.Answer("✅ " + formatting.GetWeekdayShort(cell.Weekday) + " " + cell.Label())
		} else {
			hc.Answer("▫️ " + formatting.GetWeekdayShort(cell.Weekday) + " " + cell.Label())
		}
	})
}

// HandleEditorClear «Очистить всё»
func HandleEditorClear(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithEditor(ctx, b, callback, h, func(hc *common.HandlerContext, editor *availability.Editor) {
		editor.Clear()
		showEditor(hc, editor, currentDay(hc))
		hc.Answer("🧹 Всё очищено, не забудьте сохранить")
	})
}

// HandleEditorSave сохраняет расписание целиком и закрывает редактор
func HandleEditorSave(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithEditor(ctx, b, callback, h, func(hc *common.HandlerContext, editor *availability.Editor) {
		if err := h.AvailabilityService.Commit(ctx, editor); err != nil {
			common.HandleError(hc, err, "editor_save")
			return
		}

		hc.ClearState()

		slots := editor.Slots()
		text := fmt.Sprintf("💾 <b>Расписание сохранено</b>: %d %s\n\n%s",
			len(slots), formatting.PluralizeSlots(len(slots)), formatting.FormatWeekSummary(slots))
		if err := hc.EditMessage(text, nil); err != nil {
			h.Logger.Error("Failed to edit message after save", zap.Error(err))
		}

		h.Logger.Info("Availability saved via bot",
			zap.Int64("telegram_id", hc.TelegramID),
			zap.Int64("tutor_id", editor.TutorID()),
			zap.Int("slots", len(slots)))
		hc.Answer("Сохранено")
	})
}

// HandleEditorDiscard закрывает редактор без сохранения
func HandleEditorDiscard(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	common.WithEditor(ctx, b, callback, h, func(hc *common.HandlerContext, editor *availability.Editor) {
		hc.ClearState()

		text := "✖️ Изменения отменены."
		if !editor.Dirty() {
			text = "Редактор закрыт, изменений не было."
		}
		if err := hc.EditMessage(text, nil); err != nil {
			h.Logger.Error("Failed to edit message after discard", zap.Error(err))
		}
		hc.Answer("")
	})
}
