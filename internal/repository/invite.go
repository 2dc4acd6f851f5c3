package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ipetrova/family_tracking_system/internal/models"
	"github.com/ipetrova/family_tracking_system/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type InviteRepository struct {
	db *pgxpool.Pool
}

func NewInviteRepository(db *pgxpool.Pool) service.InviteRepository {
	return &InviteRepository{
		db: db,
	}
}

// Create сохраняет новое приглашение
func (r *InviteRepository) Create(ctx context.Context, invite *models.Invite) error {
	query := `
		INSERT INTO invites (family_id, code, role, created_by, expires_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, is_used, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		invite.FamilyID,
		invite.Code,
		invite.Role,
		invite.CreatedBy,
		invite.ExpiresAt,
	).Scan(&invite.ID, &invite.IsUsed, &invite.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgFKViolation {
			return fmt.Errorf("%w: id %s", models.ErrInvalidFamily, invite.FamilyID)
		}
		return fmt.Errorf("failed to create invite: %w: %w", models.ErrStorageUnavailable, err)
	}
	return nil
}

// ActiveCodeExists проверяет занятость кода среди активных приглашений
func (r *InviteRepository) ActiveCodeExists(ctx context.Context, code string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM invites
			WHERE code = $1 AND is_used = FALSE AND expires_at > NOW()
		);
	`
	var exists bool
	if err := r.db.QueryRow(ctx, query, code).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check invite code: %w: %w", models.ErrStorageUnavailable, err)
	}
	return exists, nil
}

// Redeem атомарно гасит приглашение по коду
func (r *InviteRepository) Redeem(ctx context.Context, code string) (*models.Invite, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w: %w", models.ErrStorageUnavailable, err)
	}
	defer tx.Rollback(ctx)

	invite, err := redeemInTx(ctx, tx, code)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit redemption: %w: %w", models.ErrStorageUnavailable, err)
	}
	return invite, nil
}

// RedeemWithMember гасит приглашение и создает участника одной транзакцией
func (r *InviteRepository) RedeemWithMember(ctx context.Context, code string, member *models.Member) (*models.Invite, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w: %w", models.ErrStorageUnavailable, err)
	}
	defer tx.Rollback(ctx)

	invite, err := redeemInTx(ctx, tx, code)
	if err != nil {
		return nil, err
	}

	// Роль и семья участника определяются приглашением
	member.FamilyID = invite.FamilyID
	member.Role = invite.Role

	memberQuery := `
		INSERT INTO members (family_id, id, role, display_name, email, notification_targets)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at;
	`
	err = tx.QueryRow(ctx, memberQuery,
		member.FamilyID,
		member.ID,
		member.Role,
		member.DisplayName,
		member.Email,
		member.NotificationTargets,
	).Scan(&member.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, fmt.Errorf("%w: id %s", models.ErrDuplicateMember, member.ID)
		}
		return nil, fmt.Errorf("failed to create member for invite: %w: %w", models.ErrStorageUnavailable, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit redemption: %w: %w", models.ErrStorageUnavailable, err)
	}
	return invite, nil
}

// redeemInTx выполняет compare-and-set по флагу is_used: из конкурентных
// погашений одного кода ровно одно обновляет строку, остальные диагностируются
// повторным чтением
func redeemInTx(ctx context.Context, tx pgx.Tx, code string) (*models.Invite, error) {
	invite := &models.Invite{}
	query := `
		UPDATE invites SET is_used = TRUE
		WHERE code = $1 AND is_used = FALSE AND expires_at > NOW()
		RETURNING id, family_id, code, role, created_by, is_used, created_at, expires_at;
	`
	err := tx.QueryRow(ctx, query, code).Scan(
		&invite.ID,
		&invite.FamilyID,
		&invite.Code,
		&invite.Role,
		&invite.CreatedBy,
		&invite.IsUsed,
		&invite.CreatedAt,
		&invite.ExpiresAt,
	)
	if err == nil {
		return invite, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to redeem invite: %w: %w", models.ErrStorageUnavailable, err)
	}

	// CAS не сработал: выясняем причину по текущему состоянию приглашения
	diagQuery := `
		SELECT is_used, expires_at FROM invites
		WHERE code = $1
		ORDER BY created_at DESC LIMIT 1;
	`
	var isUsed bool
	var expiresAt time.Time
	err = tx.QueryRow(ctx, diagQuery, code).Scan(&isUsed, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: code %s", models.ErrInviteNotFound, code)
		}
		return nil, fmt.Errorf("failed to inspect invite: %w: %w", models.ErrStorageUnavailable, err)
	}
	if !time.Now().Before(expiresAt) {
		return nil, fmt.Errorf("%w: code %s", models.ErrInviteExpired, code)
	}
	return nil, fmt.Errorf("%w: code %s", models.ErrInviteAlreadyUsed, code)
}
