package get_available_slots

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	SalonID   uuid.UUID  // ID салона (тенант)
	ServiceID uuid.UUID  // ID услуги
	StaffID   *uuid.UUID // Фильтр по мастеру (опционально)
	StartDate time.Time  // Первый день периода (учитываются только год, месяц, день)
	EndDate   time.Time  // Последний день периода включительно, строго позже StartDate
}

// Response модель ответа со списком доступных слотов
type Response struct {
	SalonID         uuid.UUID
	ServiceID       uuid.UUID
	DurationMinutes int
	StepMinutes     int
	Timezone        string
	StartDate       time.Time
	EndDate         time.Time
	Slots           []Slot // Упорядочены: день, затем мастер, затем время
}

// Slot доступное время начала записи к конкретному мастеру
type Slot struct {
	Time  time.Time
	Staff StaffRef
}

// StaffRef краткие данные мастера в слоте
type StaffRef struct {
	ID       uuid.UUID
	FullName string
}
