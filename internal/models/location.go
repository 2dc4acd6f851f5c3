package models

import (
	"time"

	"github.com/google/uuid"
)

// LocationPing - запись о местоположении отслеживаемого участника.
// Пинги только добавляются, ядро никогда их не изменяет и не удаляет.
type LocationPing struct {
	ID                  int64     `json:"id"`
	FamilyID            uuid.UUID `json:"family_id"`
	UID                 string    `json:"uid"`
	Latitude            float64   `json:"latitude"`
	Longitude           float64   `json:"longitude"`
	AccuracyMeters      float64   `json:"accuracy_meters,omitempty"`
	DeviceInfo          string    `json:"device_info,omitempty"`
	IsOutsideSafeRadius bool      `json:"is_outside_safe_radius"`
	CreatedAt           time.Time `json:"created_at"`
}
