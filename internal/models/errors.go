package models

import "errors"

// Типизированные ошибки ядра. Слои выше оборачивают их через fmt.Errorf("%w"),
// HTTP-адаптер сопоставляет их со статус-кодами через errors.Is.
var (
	ErrInvalidFamily      = errors.New("family not found")
	ErrInvalidMember      = errors.New("member not found")
	ErrInvalidCoordinate  = errors.New("coordinate out of range")
	ErrInvalidRadius      = errors.New("safe radius must be positive")
	ErrInviteNotFound     = errors.New("invite not found")
	ErrInviteExpired      = errors.New("invite expired")
	ErrInviteAlreadyUsed  = errors.New("invite already used")
	ErrDuplicateMember    = errors.New("member already belongs to the family")
	ErrAlertNotFound      = errors.New("alert not found")
	ErrNoLocation         = errors.New("no locations recorded")
	ErrStorageUnavailable = errors.New("storage unavailable")
)
