package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/ipetrova/family_tracking_system/internal/models"
	"github.com/ipetrova/family_tracking_system/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Коды ошибок PostgreSQL
const (
	pgUniqueViolation = "23505"
	pgFKViolation     = "23503"
)

type FamilyRepository struct {
	db *pgxpool.Pool
}

func NewFamilyRepository(db *pgxpool.Pool) service.FamilyRepository {
	return &FamilyRepository{
		db: db,
	}
}

// CreateWithOwner создает семью и ее владельца-администратора одной транзакцией.
// Если вставка участника не удалась, семья не фиксируется.
func (r *FamilyRepository) CreateWithOwner(ctx context.Context, family *models.Family, owner *models.Member) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w: %w", models.ErrStorageUnavailable, err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO families (name, home_lat, home_lon, safe_radius_meters, owner_id)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;
	`
	err = tx.QueryRow(ctx, query,
		family.Name,
		family.HomeLatitude,
		family.HomeLongitude,
		family.SafeRadiusMeters,
		family.OwnerID,
	).Scan(&family.ID, &family.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create family: %w: %w", models.ErrStorageUnavailable, err)
	}

	owner.FamilyID = family.ID
	memberQuery := `
		INSERT INTO members (family_id, id, role, display_name, email, notification_targets)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at;
	`
	err = tx.QueryRow(ctx, memberQuery,
		owner.FamilyID,
		owner.ID,
		owner.Role,
		owner.DisplayName,
		owner.Email,
		owner.NotificationTargets,
	).Scan(&owner.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create owner member: %w: %w", models.ErrStorageUnavailable, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit family creation: %w: %w", models.ErrStorageUnavailable, err)
	}
	return nil
}

// GetByID возвращает семью по ее UUID
func (r *FamilyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Family, error) {
	family := &models.Family{}
	query := `
		SELECT id, name, home_lat, home_lon, safe_radius_meters, owner_id, created_at
		FROM families
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&family.ID,
		&family.Name,
		&family.HomeLatitude,
		&family.HomeLongitude,
		&family.SafeRadiusMeters,
		&family.OwnerID,
		&family.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %s", models.ErrInvalidFamily, id)
		}
		return nil, fmt.Errorf("failed to get family by id: %w: %w", models.ErrStorageUnavailable, err)
	}
	return family, nil
}

// GetMember возвращает участника семьи по идентификатору
func (r *FamilyRepository) GetMember(ctx context.Context, familyID uuid.UUID, memberID string) (*models.Member, error) {
	member := &models.Member{}
	query := `
		SELECT family_id, id, role, display_name, email, notification_targets, created_at
		FROM members
		WHERE family_id = $1 AND id = $2;
	`
	err := r.db.QueryRow(ctx, query, familyID, memberID).Scan(
		&member.FamilyID,
		&member.ID,
		&member.Role,
		&member.DisplayName,
		&member.Email,
		&member.NotificationTargets,
		&member.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %s", models.ErrInvalidMember, memberID)
		}
		return nil, fmt.Errorf("failed to get member: %w: %w", models.ErrStorageUnavailable, err)
	}
	return member, nil
}

// CreateMember добавляет участника в семью
func (r *FamilyRepository) CreateMember(ctx context.Context, member *models.Member) error {
	query := `
		INSERT INTO members (family_id, id, role, display_name, email, notification_targets)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_at;
	`
	err := r.db.QueryRow(ctx, query,
		member.FamilyID,
		member.ID,
		member.Role,
		member.DisplayName,
		member.Email,
		member.NotificationTargets,
	).Scan(&member.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return fmt.Errorf("%w: id %s", models.ErrDuplicateMember, member.ID)
			case pgFKViolation:
				return fmt.Errorf("%w: id %s", models.ErrInvalidFamily, member.FamilyID)
			}
		}
		return fmt.Errorf("failed to create member: %w: %w", models.ErrStorageUnavailable, err)
	}
	return nil
}
