package staff

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения мастеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория мастеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindEligibleStaff получает активных мастеров салона, которые оказывают услугу
// Если staffID задан, результат ограничивается этим мастером
// Порядок стабильный: по имени, затем по id
func (r *Repository) FindEligibleStaff(ctx context.Context, salonID, serviceID uuid.UUID, staffID *uuid.UUID) ([]*domain.Staff, error) {
	ctx = dbmetrics.WithOperation(ctx, "staff.FindEligibleStaff")

	query, args, err := buildFindEligibleStaffQuery(salonID, serviceID, staffID)
	if err != nil {
		return nil, fmt.Errorf("%w: FindEligibleStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindEligibleStaff - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	var staff []*domain.Staff
	for rows.Next() {
		var s domain.Staff
		if err := rows.Scan(&s.ID, &s.SalonID, &s.FullName, &s.IsActive); err != nil {
			return nil, fmt.Errorf("%w: FindEligibleStaff - scan staff: %w", ErrScanRow, err)
		}
		staff = append(staff, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FindEligibleStaff - rows error: %w", ErrScanRow, err)
	}

	return staff, nil
}

func buildFindEligibleStaffQuery(salonID, serviceID uuid.UUID, staffID *uuid.UUID) (string, []interface{}, error) {
	selectBuilder := psqlbuilder.Select(
		"st.id",
		"st.salon_id",
		"st.full_name",
		"st.is_active",
	).
		From("staff st").
		Join("staff_services ss ON ss.staff_id = st.id").
		Where(squirrel.Eq{"st.salon_id": salonID}).
		Where(squirrel.Eq{"ss.service_id": serviceID}).
		Where(squirrel.Eq{"st.is_active": true})

	if staffID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"st.id": *staffID})
	}

	return selectBuilder.OrderBy("st.full_name ASC", "st.id ASC").ToSql()
}
