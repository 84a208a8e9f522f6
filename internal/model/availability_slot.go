package model

import "fmt"

// Weekday индекс дня недели: 0 = понедельник, 6 = воскресенье
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

const (
	DaysInWeek     = 7
	MinutesInDay   = 24 * 60
	MinutesPerHour = 60
)

var weekdayNames = [DaysInWeek]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// IsValid проверяет, что индекс попадает в неделю
func (d Weekday) IsValid() bool {
	return d >= Monday && d <= Sunday
}

func (d Weekday) String() string {
	if !d.IsValid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// AvailabilitySlot один интервал еженедельной доступности репетитора
type AvailabilitySlot struct {
	Weekday      Weekday `json:"weekday" toml:"weekday"`
	StartMinutes int     `json:"start_minutes" toml:"start_minutes"` // минуты от полуночи
	EndMinutes   int     `json:"end_minutes" toml:"end_minutes"`
}

// IsValid проверяет границы слота
func (s AvailabilitySlot) IsValid() bool {
	return s.Weekday.IsValid() &&
		s.StartMinutes >= 0 &&
		s.EndMinutes <= MinutesInDay &&
		s.EndMinutes > s.StartMinutes
}

// Covers проверяет, попадает ли минута дня в слот (конец не включается)
func (s AvailabilitySlot) Covers(weekday Weekday, minute int) bool {
	return s.Weekday == weekday && s.StartMinutes <= minute && minute < s.EndMinutes
}

// Overlaps проверяет пересечение двух слотов одного дня
func (s AvailabilitySlot) Overlaps(other AvailabilitySlot) bool {
	return s.Weekday == other.Weekday &&
		s.StartMinutes < other.EndMinutes &&
		other.StartMinutes < s.EndMinutes
}

func (s AvailabilitySlot) String() string {
	return fmt.Sprintf("%s %02d:%02d-%02d:%02d",
		s.Weekday,
		s.StartMinutes/MinutesPerHour, s.StartMinutes%MinutesPerHour,
		s.EndMinutes/MinutesPerHour, s.EndMinutes%MinutesPerHour)
}
