package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	SalonID         string          `json:"salonId"`
	ServiceID       string          `json:"serviceId"`
	StartDate       string          `json:"startDate"`
	EndDate         string          `json:"endDate"`
	DurationMinutes int             `json:"durationMinutes"`
	StepMinutes     int             `json:"stepMinutes"`
	Timezone        string          `json:"timezone"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot свободное время начала записи у мастера
type AvailableSlot struct {
	Time  string    `json:"time"` // RFC3339, UTC
	Staff StaffInfo `json:"staff"`
}

// StaffInfo краткая информация о мастере
type StaffInfo struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailabilityResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Time: slot.Time.UTC().Format(time.RFC3339),
			Staff: StaffInfo{
				ID:       slot.Staff.ID.String(),
				FullName: slot.Staff.FullName,
			},
		}
	}

	return &AvailabilityResponse{
		SalonID:         resp.SalonID.String(),
		ServiceID:       resp.ServiceID.String(),
		StartDate:       resp.StartDate.Format(domain.DateFormat),
		EndDate:         resp.EndDate.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		StepMinutes:     resp.StepMinutes,
		Timezone:        resp.Timezone,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
func ToUseCaseRequest(salonID, serviceID uuid.UUID, staffID *uuid.UUID, startDateStr, endDateStr string) (*getAvailableSlots.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, startDateStr)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, endDateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		SalonID:   salonID,
		ServiceID: serviceID,
		StaffID:   staffID,
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}
