package v1

import (
	"errors"
	"net/http"

	"github.com/ipetrova/family_tracking_system/internal/models"
)

// statusFromError сопоставляет типизированную ошибку ядра со статус-кодом HTTP
func statusFromError(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidFamily),
		errors.Is(err, models.ErrInvalidMember),
		errors.Is(err, models.ErrInvalidCoordinate),
		errors.Is(err, models.ErrInvalidRadius):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrInviteNotFound),
		errors.Is(err, models.ErrAlertNotFound),
		errors.Is(err, models.ErrNoLocation):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInviteExpired),
		errors.Is(err, models.ErrInviteAlreadyUsed),
		errors.Is(err, models.ErrDuplicateMember):
		return http.StatusConflict
	case errors.Is(err, models.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage возвращает безопасное для клиента описание ошибки
func errorMessage(err error) string {
	for _, kind := range []error{
		models.ErrInvalidFamily,
		models.ErrInvalidMember,
		models.ErrInvalidCoordinate,
		models.ErrInvalidRadius,
		models.ErrInviteNotFound,
		models.ErrInviteExpired,
		models.ErrInviteAlreadyUsed,
		models.ErrDuplicateMember,
		models.ErrAlertNotFound,
		models.ErrNoLocation,
		models.ErrStorageUnavailable,
	} {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	return "internal server error"
}
