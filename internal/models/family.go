package models

import (
	"time"

	"github.com/google/uuid"
)

// Роли участников семьи
const (
	RoleAdmin    = "admin"
	RoleFamiliar = "familiar"
)

// Family - корневой агрегат: безопасная зона и участники одной семьи
type Family struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	HomeLatitude     float64   `json:"home_latitude"`
	HomeLongitude    float64   `json:"home_longitude"`
	SafeRadiusMeters float64   `json:"safe_radius_meters"`
	OwnerID          string    `json:"owner_id"`
	CreatedAt        time.Time `json:"created_at"`
}

// Member - участник семьи (отслеживаемый человек или родственник)
type Member struct {
	FamilyID            uuid.UUID `json:"family_id"`
	ID                  string    `json:"id"` // внешний идентификатор (subject из системы аутентификации)
	Role                string    `json:"role"`
	DisplayName         string    `json:"display_name"`
	Email               string    `json:"email,omitempty"`
	NotificationTargets []string  `json:"notification_targets"`
	CreatedAt           time.Time `json:"created_at"`
}
