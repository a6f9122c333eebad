package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

const (
	msgInvalidSalonID   = "некорректный ID салона"
	msgInvalidServiceID = "некорректный ID услуги"
	msgInvalidStaffID   = "некорректный ID мастера"
	msgMissingDate      = "startDate и endDate обязательны"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRequest   = "некорректные параметры запроса"
	msgServiceNotFound  = "услуга не найдена"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/services/{serviceId}/availability
// Query params: startDate, endDate (required, YYYY-MM-DD), staffId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	salonID, err := uuid.Parse(vars["salonId"])
	if err != nil {
		h.logger.Warn("GET /salons/{id}/services/{id}/availability - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	serviceID, err := uuid.Parse(vars["serviceId"])
	if err != nil {
		h.logger.Warn("GET /salons/{id}/services/{id}/availability - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	query := r.URL.Query()

	var staffID *uuid.UUID
	if staffIDStr := query.Get("staffId"); staffIDStr != "" {
		id, err := uuid.Parse(staffIDStr)
		if err != nil {
			h.logger.Warn("GET /salons/{id}/services/{id}/availability - Invalid staff ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStaffID)
			return
		}
		staffID = ptr.Ptr(id)
	}

	startDateStr, endDateStr := query.Get("startDate"), query.Get("endDate")
	if startDateStr == "" || endDateStr == "" {
		h.logger.Warn("GET /salons/{id}/services/{id}/availability - Missing date range")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(salonID, serviceID, staffID, startDateStr, endDateStr)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/services/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/services/{id}/availability - Invalid request: salon_id=%s, service_id=%s, error=%v",
				salonID, serviceID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /salons/{id}/services/{id}/availability - Service not found: salon_id=%s, service_id=%s",
				salonID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("GET /salons/{id}/services/{id}/availability - Failed to get slots: salon_id=%s, service_id=%s, error=%v",
				salonID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /salons/{id}/services/{id}/availability - Slots retrieved successfully: salon_id=%s, service_id=%s, slots_count=%d",
		salonID, serviceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
