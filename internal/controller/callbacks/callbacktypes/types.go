package callbacktypes

import (
	"github.com/v7s7/DaresniCheckUpdated/internal/availability"
	"github.com/v7s7/DaresniCheckUpdated/internal/service"
	"go.uber.org/zap"
)

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

// Значения совпадают с константами пакета state
const (
	StateNone                UserState = ""
	StateEditingAvailability UserState = "editing_availability"

	DataAvailabilityEditor = "availability_editor"
	DataAvailabilityDay    = "availability_day"
	DataWeekSelection      = "week_selection"
	DataSearchCriteria     = "search_criteria"
)

// StateManager интерфейс для управления состоянием пользователей
type StateManager interface {
	ClearState(telegramID int64)
	GetState(telegramID int64) UserState
	SetState(telegramID int64, state UserState)
	SetData(telegramID int64, key string, value interface{})
	GetData(telegramID int64, key string) (interface{}, bool)
	Editor(telegramID int64) (*availability.Editor, bool)
}

// Handler содержит общие зависимости для всех callback handlers
type Handler struct {
	UserService         *service.UserService
	SearchService       *service.SearchService
	AvailabilityService *service.AvailabilityService
	ProfileService      *service.ProfileService
	StateManager        StateManager
	Logger              *zap.Logger
}
