package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	serviceStorage "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/service"
)

// Options параметры расчета, передаются из конфигурации
type Options struct {
	SlotStepMinutes  int    // шаг сетки слотов
	DefaultTimezone  string // пояс для салонов без указанного пояса
	MaxRangeDays     int    // максимальная длина периода в днях (0 = без ограничения)
	MinNoticeMinutes int    // минимальное время до начала слота от текущего момента (0 = не фильтровать)
}

// DefaultOptions значения по умолчанию
func DefaultOptions() Options {
	return Options{
		SlotStepMinutes:  domain.DefaultSlotStepMinutes,
		DefaultTimezone:  domain.DefaultTimezone,
		MaxRangeDays:     domain.DefaultMaxRangeDays,
		MinNoticeMinutes: domain.DefaultMinNoticeMinutes,
	}
}

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	serviceRepo  ServiceRepository
	staffRepo    StaffRepository
	shiftRepo    ShiftRepository
	bookingRepo  BookingRepository
	metrics      MetricsRecorder
	timeProvider TimeProvider
	options      Options
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil, если метрики выключены
func NewUseCase(
	serviceRepo ServiceRepository,
	staffRepo StaffRepository,
	shiftRepo ShiftRepository,
	bookingRepo BookingRepository,
	metrics MetricsRecorder,
	options Options,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if options.SlotStepMinutes <= 0 {
		options.SlotStepMinutes = domain.DefaultSlotStepMinutes
	}
	if options.DefaultTimezone == "" {
		options.DefaultTimezone = domain.DefaultTimezone
	}

	return &UseCase{
		serviceRepo:  serviceRepo,
		staffRepo:    staffRepo,
		shiftRepo:    shiftRepo,
		bookingRepo:  bookingRepo,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		options:      options,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных (до любых обращений к БД)
	if err := validateRequest(req, uc.options.MaxRangeDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: salon=%s, service=%s, staff=%s, range=%s..%s",
		req.SalonID, req.ServiceID, formatStaffFilter(req.StaffID),
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 2. Получаем услугу (в рамках салона)
	service, err := uc.serviceRepo.FindService(ctx, req.SalonID, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceStorage.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found in salon id=%s", req.ServiceID, req.SalonID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %w", ErrInternal, err)
	}

	// 3. Проверяем длительность и часовой пояс
	if err := validateService(service); err != nil {
		uc.logger.Warn("GetAvailableSlots: service id=%s is not bookable: %v", service.ID, err)
		return nil, err
	}

	loc, err := loadLocation(service.Timezone, uc.options.DefaultTimezone)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: salon id=%s has invalid timezone: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	days := localDays(req.StartDate, req.EndDate, loc)
	response := &Response{
		SalonID:         req.SalonID,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		StepMinutes:     uc.options.SlotStepMinutes,
		Timezone:        loc.String(),
		StartDate:       days[0],
		EndDate:         days[len(days)-1],
		Slots:           []Slot{},
	}

	// 4. Получаем мастеров, которые оказывают услугу
	staff, err := uc.staffRepo.FindEligibleStaff(ctx, req.SalonID, req.ServiceID, req.StaffID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get staff for service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %w", ErrInternal, err)
	}
	if len(staff) == 0 {
		uc.logger.Info("GetAvailableSlots: no eligible staff for service id=%s", req.ServiceID)
		uc.metrics.ObserveSlotsReturned(0)
		return response, nil
	}

	staffIDs := make([]uuid.UUID, len(staff))
	for i, s := range staff {
		staffIDs[i] = s.ID
	}

	// 5. Смены и бронирования читаем параллельно, по одному запросу на весь период и всех мастеров
	// Ошибка любого чтения отменяет второе и весь расчет
	var (
		shifts   []*domain.Shift
		bookings []*domain.Booking
	)
	filter := domain.ActiveBookingsFilter{
		StaffIDs: staffIDs,
		From:     days[0],
		To:       nextDay(days[len(days)-1], loc),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		shifts, err = uc.shiftRepo.FindActiveShifts(gctx, staffIDs)
		if err != nil {
			return fmt.Errorf("failed to get shifts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		bookings, err = uc.bookingRepo.FindActiveBookings(gctx, filter)
		if err != nil {
			return fmt.Errorf("failed to get bookings: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		uc.logger.Error("GetAvailableSlots: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	// 6. Строим таблицу смен и индекс бронирований
	resolver, rejected := newShiftResolver(shifts)
	if len(rejected) > 0 {
		for _, s := range rejected {
			uc.logger.Warn("GetAvailableSlots: shift id=%s of staff id=%s ignored: day=%d, %s-%s is not a same-day shift",
				s.ID, s.StaffID, s.DayOfWeek, s.StartLocal, s.EndLocal)
		}
		uc.metrics.IncRejectedShifts(len(rejected))
	}
	index := indexByStaffAndDay(bookings, loc)

	// 7. Считаем слоты
	var notBefore time.Time
	if uc.options.MinNoticeMinutes > 0 {
		notBefore = uc.timeProvider.Now().Add(time.Duration(uc.options.MinNoticeMinutes) * time.Minute)
	}

	response.Slots = computeSlots(engineInput{
		Days:      days,
		Location:  loc,
		Staff:     staff,
		Shifts:    resolver,
		Bookings:  index,
		Duration:  time.Duration(service.DurationMinutes) * time.Minute,
		Step:      time.Duration(uc.options.SlotStepMinutes) * time.Minute,
		NotBefore: notBefore,
	})
	uc.metrics.ObserveSlotsReturned(len(response.Slots))

	uc.logger.Info("GetAvailableSlots: generated %d slots for service=%s, staff_count=%d, shifts=%d, bookings=%d, days=%d",
		len(response.Slots), req.ServiceID, len(staff), len(shifts), len(bookings), len(days))

	return response, nil
}

func formatStaffFilter(staffID *uuid.UUID) string {
	if staffID == nil {
		return "any"
	}
	return staffID.String()
}
