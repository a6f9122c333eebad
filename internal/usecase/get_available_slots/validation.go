package get_available_slots

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса до обращения к репозиториям
func validateRequest(req *Request, maxRangeDays int) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if req.SalonID == uuid.Nil {
		return fmt.Errorf("%w: salonID is required", ErrInvalidInput)
	}

	if req.ServiceID == uuid.Nil {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.StaffID != nil && *req.StaffID == uuid.Nil {
		return fmt.Errorf("%w: staffID must not be empty when provided", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidInput)
	}

	days := daysInRange(req.StartDate, req.EndDate)
	if days < 2 {
		return fmt.Errorf("%w: endDate must be after startDate", ErrInvalidInput)
	}

	if maxRangeDays > 0 && days > maxRangeDays {
		return fmt.Errorf("%w: date range must not exceed %d days", ErrInvalidInput, maxRangeDays)
	}

	return nil
}

// validateService проверяет, что по услуге можно считать слоты
func validateService(service *domain.Service) error {
	if !service.HasValidDuration() {
		return fmt.Errorf("%w: service duration must be positive, got %d", ErrInvalidInput, service.DurationMinutes)
	}
	return nil
}
