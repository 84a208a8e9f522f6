package student

import (
	"context"
	"fmt"
	"html"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/v7s7/DaresniCheckUpdated/internal/availability"
	"github.com/v7s7/DaresniCheckUpdated/internal/controller/callbacks/callbacktypes"
	"github.com/v7s7/DaresniCheckUpdated/internal/controller/callbacks/common"
	"github.com/v7s7/DaresniCheckUpdated/internal/model"
)

// selectionFor выбор пользователя для репетитора; выбор другого репетитора сбрасывается
func selectionFor(hc *common.HandlerContext, tutorID int64) *common.WeekSelection {
	if value, ok := hc.GetData(callbacktypes.DataWeekSelection); ok {
		if sel, ok := value.(*common.WeekSelection); ok && sel.TutorID == tutorID {
			return sel
		}
	}
	sel := &common.WeekSelection{TutorID: tutorID, Day: model.Monday}
	hc.SetData(callbacktypes.DataWeekSelection, sel)
	return sel
}

func showWeek(hc *common.HandlerContext, tutorID int64, sel *common.WeekSelection, edit bool) {
	tutor, err := hc.Handler.SearchService.GetTutor(hc.Ctx, tutorID)
	if err != nil {
		common.HandleError(hc, err, "view_week")
		return
	}
	renderWeek(hc, tutor, sel, edit)
}

func renderWeek(hc *common.HandlerContext, tutor *model.Tutor, sel *common.WeekSelection, edit bool) {
	text, kb := common.BuildWeekViewScreen(tutor, sel)
	var err error
	if edit {
		err = hc.EditMessage(text, kb)
	} else {
		err = hc.SendMessage(text, kb)
	}
	if err != nil {
		hc.Handler.Logger.Error("Failed to show week view",
			zap.Int64("tutor_id", tutor.ID),
			zap.Error(err))
	}
	hc.Answer("")
}

// HandleViewWeek открывает неделю репетитора из выдачи поиска
func HandleViewWeek(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	tutorID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		common.HandleError(hc, err, "view_week")
		return
	}

	showWeek(hc, tutorID, selectionFor(hc, tutorID), false)
}

// HandleWeekDay переключает день в просмотре недели
func HandleWeekDay(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	tutorID, day, err := common.ParseTutorDay(callback.Data, common.WeekDay)
	if err != nil {
		common.HandleError(hc, err, "week_day")
		return
	}

	sel := selectionFor(hc, tutorID)
	sel.Day = day
	showWeek(hc, tutorID, sel, true)
}

// HandleWeekSelect отмечает удобный час; модель доступности репетитора не меняется
func HandleWeekSelect(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	tutorID, cell, err := common.ParseTutorCell(callback.Data, common.WeekSelect)
	if err != nil {
		common.HandleError(hc, err, "week_select")
		return
	}

	// Клавиатура могла устареть после сохранения нового расписания
	tutor, err := h.SearchService.GetTutor(ctx, tutorID)
	if err != nil {
		common.HandleError(hc, err, "week_select")
		return
	}

	sel := selectionFor(hc, tutorID)
	sel.Day = cell.Weekday
	if _, err := sel.Select(availability.NewModel(tutor.Availability), cell); err != nil {
		common.HandleError(hc, err, "week_select")
		return
	}
	renderWeek(hc, tutor, sel, true)
}

// HandleWeekReset сбрасывает выбранные часы
func HandleWeekReset(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	tutorID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		common.HandleError(hc, err, "week_reset")
		return
	}

	sel := selectionFor(hc, tutorID)
	sel.Cells = nil
	showWeek(hc, tutorID, sel, true)
}

// HandleWeekImage отправляет картинку недели с подсветкой выбранных часов
func HandleWeekImage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	tutorID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		common.HandleError(hc, err, "week_image")
		return
	}

	sel := selectionFor(hc, tutorID)
	image, err := h.AvailabilityService.WeekImage(ctx, tutorID, sel.Selection())
	if err != nil {
		common.HandleError(hc, err, "week_image")
		return
	}

	tutor, err := h.SearchService.GetTutor(ctx, tutorID)
	if err != nil {
		common.HandleError(hc, err, "week_image")
		return
	}

	caption := fmt.Sprintf("🗓 <b>%s</b>\nВыбрано часов: %d", html.EscapeString(tutor.Name), len(sel.Cells))
	if err := hc.SendPhoto(image, caption); err != nil {
		h.Logger.Error("Failed to send week image",
			zap.Int64("tutor_id", tutorID),
			zap.Error(err))
	}
	hc.Answer("")
}
