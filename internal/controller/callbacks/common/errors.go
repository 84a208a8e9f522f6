package common

import (
	"errors"

	"github.com/v7s7/DaresniCheckUpdated/internal/availability"
	"github.com/v7s7/DaresniCheckUpdated/internal/repository"
	"github.com/v7s7/DaresniCheckUpdated/internal/service"
)

// Общие ошибки для обработчиков
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrNoMessage     = errors.New("no message in callback")
	ErrInvalidFormat = errors.New("invalid callback format")
)

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return "❌ Пользователь не найден. Используйте /start"
	case errors.Is(err, service.ErrNotATutor):
		return "❌ Эта функция доступна только репетиторам. Стать репетитором: /becometutor"
	case errors.Is(err, service.ErrNoEditSession):
		return "❌ Редактор закрыт. Откройте его заново: /availability"
	case errors.Is(err, service.ErrInvalidProfile):
		return "❌ Проверьте данные профиля"
	case errors.Is(err, repository.ErrSubjectNotFound):
		return "❌ Предмет не найден"
	case errors.Is(err, repository.ErrTutorNotFound):
		return "❌ Репетитор не найден"
	case errors.Is(err, availability.ErrCellOutOfGrid):
		return "❌ Это время вне сетки расписания"
	case errors.Is(err, availability.ErrSlotUnavailable):
		return "❌ В это время репетитор занят"
	case errors.Is(err, ErrNoMessage):
		return "❌ Ошибка обработки сообщения"
	case errors.Is(err, ErrInvalidFormat):
		return "❌ Неверный формат данных"
	default:
		return "❌ Произошла ошибка"
	}
}
