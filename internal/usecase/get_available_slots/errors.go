package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных (ValidationError)
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrServiceNotFound возвращается, когда услуга не найдена или принадлежит другому салону
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrInvalidTimezone возвращается, когда у салона указан неизвестный IANA часовой пояс
	ErrInvalidTimezone = errors.New("get_available_slots: invalid timezone")

	// ErrInternal возвращается при ошибках репозиториев (InfrastructureError)
	// Исходная ошибка сохраняется в цепочке и доступна через errors.Is / errors.As
	ErrInternal = errors.New("get_available_slots: internal error")
)
