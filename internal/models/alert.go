package models

import (
	"time"

	"github.com/google/uuid"
)

// Типы оповещений
const (
	AlertTypeGeofence = "geofence"
)

// Alert - оповещение о выходе участника за пределы безопасной зоны.
// Запись неизменяема, кроме множества подтвердивших участников, которое только растет.
type Alert struct {
	ID             uuid.UUID `json:"id"`
	FamilyID       uuid.UUID `json:"family_id"`
	Type           string    `json:"type"`
	Message        string    `json:"message"`
	RelatedUID     string    `json:"related_uid"`
	AcknowledgedBy []string  `json:"acknowledged_by"`
	CreatedAt      time.Time `json:"created_at"`
}

// IsAcknowledgedBy сообщает, подтвердил ли участник это оповещение
func (a *Alert) IsAcknowledgedBy(memberID string) bool {
	for _, id := range a.AcknowledgedBy {
		if id == memberID {
			return true
		}
	}
	return false
}
