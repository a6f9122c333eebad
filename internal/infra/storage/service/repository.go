package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindService получает активную услугу салона вместе с часовым поясом салона
// Услуга другого салона считается ненайденной
func (r *Repository) FindService(ctx context.Context, salonID, serviceID uuid.UUID) (*domain.Service, error) {
	ctx = dbmetrics.WithOperation(ctx, "service.FindService")

	query, args, err := buildFindServiceQuery(salonID, serviceID)
	if err != nil {
		return nil, fmt.Errorf("%w: FindService - build select query: %v", ErrBuildQuery, err)
	}

	var service domain.Service
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&service.ID,
		&service.SalonID,
		&service.Name,
		&service.DurationMinutes,
		&service.Timezone,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id=%s, salon_id=%s", ErrServiceNotFound, serviceID, salonID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindService - scan service: %w", ErrScanRow, err)
	}

	return &service, nil
}

func buildFindServiceQuery(salonID, serviceID uuid.UUID) (string, []interface{}, error) {
	return psqlbuilder.Select(
		"s.id",
		"s.salon_id",
		"s.name",
		"s.duration_minutes",
		"sl.timezone",
	).
		From("services s").
		Join("salons sl ON sl.id = s.salon_id").
		Where(squirrel.Eq{"s.id": serviceID}).
		Where(squirrel.Eq{"s.salon_id": salonID}).
		Where(squirrel.Eq{"s.is_active": true}).
		ToSql()
}
