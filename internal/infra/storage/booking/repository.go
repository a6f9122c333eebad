package booking

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindActiveBookings получает бронирования мастеров, пересекающие [filter.From, filter.To)
// Бронирования в статусах из domain.InactiveStatuses не возвращаются
func (r *Repository) FindActiveBookings(ctx context.Context, filter domain.ActiveBookingsFilter) ([]*domain.Booking, error) {
	if len(filter.StaffIDs) == 0 {
		return nil, nil
	}

	ctx = dbmetrics.WithOperation(ctx, "booking.FindActiveBookings")

	query, args, err := buildFindActiveBookingsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveBookings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveBookings - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(
			&b.ID,
			&b.SalonID,
			&b.StaffID,
			&b.ServiceID,
			&b.StartAt,
			&b.EndAt,
			&b.Status,
		); err != nil {
			return nil, fmt.Errorf("%w: FindActiveBookings - scan booking: %w", ErrScanRow, err)
		}
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FindActiveBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

func buildFindActiveBookingsQuery(filter domain.ActiveBookingsFilter) (string, []interface{}, error) {
	inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		inactiveStatusStrings[i] = string(s)
	}

	// Пересечение полуоткрытых интервалов: start_at < To AND end_at > From
	return psqlbuilder.Select(
		"id",
		"salon_id",
		"staff_id",
		"service_id",
		"start_at",
		"end_at",
		"status",
	).
		From("bookings").
		Where(psqlbuilder.AnyUUID("staff_id", filter.StaffIDs)).
		Where(squirrel.Lt{"start_at": filter.To}).
		Where(squirrel.Gt{"end_at": filter.From}).
		Where(squirrel.NotEq{"status": inactiveStatusStrings}).
		OrderBy("staff_id ASC", "start_at ASC").
		ToSql()
}
