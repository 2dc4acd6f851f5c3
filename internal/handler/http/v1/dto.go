package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateFamilyRequest DTO для создания семьи
// @Description DTO для создания семьи с безопасной зоной и владельцем
type CreateFamilyRequest struct {
	Name             string  `json:"name" validate:"required,min=2,max=255"`
	HomeLatitude     float64 `json:"home_latitude" validate:"min=-90,max=90"`
	HomeLongitude    float64 `json:"home_longitude" validate:"min=-180,max=180"`
	SafeRadiusMeters float64 `json:"safe_radius_meters" validate:"required,gt=0"`
	OwnerID          string  `json:"owner_id" validate:"required"`
	OwnerDisplayName string  `json:"owner_display_name" validate:"required"`
	OwnerEmail       string  `json:"owner_email,omitempty" validate:"omitempty,email"`
}

// FamilyResponse DTO для ответа с информацией о семье
// @Description DTO для ответа с информацией о семье
type FamilyResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	HomeLatitude     float64   `json:"home_latitude"`
	HomeLongitude    float64   `json:"home_longitude"`
	SafeRadiusMeters float64   `json:"safe_radius_meters"`
	OwnerID          string    `json:"owner_id"`
	CreatedAt        time.Time `json:"created_at"`
}

// CreateInviteRequest DTO для выпуска кода приглашения
// @Description DTO для выпуска кода приглашения
type CreateInviteRequest struct {
	Role      string `json:"role" validate:"required,oneof=admin familiar"`
	CreatedBy string `json:"created_by" validate:"required"`
}

// InviteResponse DTO для ответа с кодом приглашения
// @Description DTO для ответа с кодом приглашения
type InviteResponse struct {
	Code      string    `json:"code"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

// JoinFamilyRequest DTO для вступления в семью по коду
// @Description DTO для вступления в семью по коду приглашения
type JoinFamilyRequest struct {
	Code        string `json:"code" validate:"required,len=8"`
	MemberID    string `json:"member_id" validate:"required"`
	DisplayName string `json:"display_name" validate:"required"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
}

// MemberResponse DTO для ответа с информацией об участнике
// @Description DTO для ответа с информацией об участнике семьи
type MemberResponse struct {
	FamilyID    uuid.UUID `json:"family_id"`
	ID          string    `json:"id"`
	Role        string    `json:"role"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecordLocationRequest DTO для приема пинга местоположения
// @Description DTO для приема пинга местоположения отслеживаемого участника
type RecordLocationRequest struct {
	FamilyID       string  `json:"family_id" validate:"required,uuid"`
	UID            string  `json:"uid" validate:"required"`
	Latitude       float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude      float64 `json:"longitude" validate:"min=-180,max=180"`
	AccuracyMeters float64 `json:"accuracy_meters,omitempty" validate:"omitempty,gte=0"`
	DeviceInfo     string  `json:"device_info,omitempty"`
}

// LocationResponse DTO для ответа с пингом местоположения
// @Description DTO для ответа с пингом местоположения
type LocationResponse struct {
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

// RecordLocationResponse DTO для ответа на прием пинга: сохраненный пинг и
// оповещение, если выход за зону привел к созданию нового оповещения
type RecordLocationResponse struct {
	Location *LocationResponse `json:"location"`
	Alert    *AlertResponse    `json:"alert,omitempty"`
}

// AlertResponse DTO для ответа с оповещением
// @Description DTO для ответа с оповещением о выходе за безопасную зону
type AlertResponse struct {
	ID             uuid.UUID `json:"id"`
	FamilyID       uuid.UUID `json:"family_id"`
	Type           string    `json:"type"`
	Message        string    `json:"message"`
	RelatedUID     string    `json:"related_uid"`
	AcknowledgedBy []string  `json:"acknowledged_by"`
	CreatedAt      time.Time `json:"created_at"`
}

// AcknowledgeAlertRequest DTO для подтверждения оповещения
// @Description DTO для подтверждения оповещения участником
type AcknowledgeAlertRequest struct {
	MemberID string `json:"member_id" validate:"required"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой пингов семьи
type StatsResponse struct {
	ActiveMemberCount int `json:"active_member_count"`
}
