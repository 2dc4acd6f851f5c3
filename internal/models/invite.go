package models

import (
	"time"

	"github.com/google/uuid"
)

// Invite - одноразовый код приглашения в семью с ограниченным сроком действия
type Invite struct {
	ID        uuid.UUID `json:"id"`
	FamilyID  uuid.UUID `json:"family_id"`
	Code      string    `json:"code"`
	Role      string    `json:"role"`
	CreatedBy string    `json:"created_by"`
	IsUsed    bool      `json:"is_used"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired сообщает, истек ли срок действия приглашения на момент now
func (i *Invite) IsExpired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}
