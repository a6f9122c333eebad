package shift

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения смен мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория смен
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindActiveShifts получает активные смены всех переданных мастеров одним запросом
func (r *Repository) FindActiveShifts(ctx context.Context, staffIDs []uuid.UUID) ([]*domain.Shift, error) {
	if len(staffIDs) == 0 {
		return nil, nil
	}

	ctx = dbmetrics.WithOperation(ctx, "shift.FindActiveShifts")

	query, args, err := buildFindActiveShiftsQuery(staffIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveShifts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveShifts - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	var shifts []*domain.Shift
	for rows.Next() {
		var s domain.Shift
		if err := rows.Scan(&s.ID, &s.StaffID, &s.DayOfWeek, &s.StartLocal, &s.EndLocal, &s.IsActive); err != nil {
			return nil, fmt.Errorf("%w: FindActiveShifts - scan shift: %w", ErrScanRow, err)
		}
		shifts = append(shifts, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FindActiveShifts - rows error: %w", ErrScanRow, err)
	}

	return shifts, nil
}

// Порядок по created_at нужен, чтобы при дублях на один день недели побеждала одна и та же смена
func buildFindActiveShiftsQuery(staffIDs []uuid.UUID) (string, []interface{}, error) {
	return psqlbuilder.Select(
		"id",
		"staff_id",
		"day_of_week",
		"start_time",
		"end_time",
		"is_active",
	).
		From("shifts").
		Where(psqlbuilder.AnyUUID("staff_id", staffIDs)).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("staff_id ASC", "day_of_week ASC", "created_at ASC", "id ASC").
		ToSql()
}
