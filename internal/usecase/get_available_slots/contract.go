package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	// FindService получает услугу салона вместе с часовым поясом салона
	FindService(ctx context.Context, salonID, serviceID uuid.UUID) (*domain.Service, error)
}

// StaffRepository интерфейс репозитория мастеров
type StaffRepository interface {
	// FindEligibleStaff получает активных мастеров, оказывающих услугу (опционально только staffID)
	FindEligibleStaff(ctx context.Context, salonID, serviceID uuid.UUID, staffID *uuid.UUID) ([]*domain.Staff, error)
}

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	// FindActiveShifts получает активные смены всех переданных мастеров одним запросом
	FindActiveShifts(ctx context.Context, staffIDs []uuid.UUID) ([]*domain.Shift, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// FindActiveBookings получает активные бронирования мастеров, пересекающие период, одним запросом
	FindActiveBookings(ctx context.Context, filter domain.ActiveBookingsFilter) ([]*domain.Booking, error)
}

// MetricsRecorder интерфейс для метрик расчета доступности
type MetricsRecorder interface {
	ObserveSlotsReturned(n int)
	IncRejectedShifts(n int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type noopMetrics struct{}

func (noopMetrics) ObserveSlotsReturned(int) {}
func (noopMetrics) IncRejectedShifts(int)    {}
