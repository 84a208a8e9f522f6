package state

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

const (
	StateNone UserState = "" // Нет активного состояния

	// Открыт редактор недельной доступности
	StateEditingAvailability UserState = "editing_availability"
)

// Ключи временных данных
const (
	DataAvailabilityEditor = "availability_editor" // *availability.Editor
	DataAvailabilityDay    = "availability_day"    // model.Weekday, выбранный день редактора
	DataWeekSelection      = "week_selection"      // common.WeekSelection, выбор часов при просмотре недели
	DataSearchCriteria     = "search_criteria"     // model.SearchCriteria последнего поиска
)

// UserData хранит временные данные пользователя во время диалога
type UserData struct {
	State UserState
	Data  map[string]interface{} // Временные данные для текущего диалога
}
