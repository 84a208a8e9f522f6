package student

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/v7s7/DaresniCheckUpdated/internal/controller/callbacks/callbacktypes"
	"github.com/v7s7/DaresniCheckUpdated/internal/controller/callbacks/common"
	"github.com/v7s7/DaresniCheckUpdated/internal/controller/callbacks/common/formatting"
	"github.com/v7s7/DaresniCheckUpdated/internal/controller/callbacks/common/keyboard"
	"github.com/v7s7/DaresniCheckUpdated/internal/model"
)

func lastCriteria(hc *common.HandlerContext) model.SearchCriteria {
	if value, ok := hc.GetData(callbacktypes.DataSearchCriteria); ok {
		if criteria, ok := value.(model.SearchCriteria); ok {
			return criteria
		}
	}
	return model.SearchCriteria{}
}

// HandleSearchPage листает выдачу последнего поиска
func HandleSearchPage(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	page, err := strconv.Atoi(strings.TrimPrefix(callback.Data, common.SearchPage))
	if err != nil {
		common.HandleError(hc, common.ErrInvalidFormat, "search_page")
		return
	}

	ranked, err := h.SearchService.Search(ctx, lastCriteria(hc))
	if err != nil {
		common.HandleError(hc, err, "search_page")
		return
	}

	text, kb := common.BuildSearchResultsScreen(ranked, page)
	if err := hc.EditMessage(text, kb); err != nil {
		h.Logger.Error("Failed to show search page", zap.Int("page", page), zap.Error(err))
	}
	hc.Answer("")
}

// HandleWhyTutor показывает разбор оценки репетитора по факторам
func HandleWhyTutor(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	hc := common.NewHandlerContext(ctx, b, callback, h)

	tutorID, err := common.ParseIDFromCallback(callback.Data)
	if err != nil {
		common.HandleError(hc, err, "why_tutor")
		return
	}

	ranked, err := h.SearchService.Evaluate(ctx, tutorID, lastCriteria(hc))
	if err != nil {
		common.HandleError(hc, err, "why_tutor")
		return
	}

	text := formatting.FormatBreakdown(*ranked, h.SearchService.Weights())
	kb := keyboard.NewBuilder().
		Row(keyboard.Button("🗓 Неделя", common.WeekDayData(tutorID, model.Monday))).
		Build()

	if err := hc.SendMessage(text, kb); err != nil {
		h.Logger.Error("Failed to send breakdown", zap.Int64("tutor_id", tutorID), zap.Error(err))
	}
	hc.Answer("")
}
