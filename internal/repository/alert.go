package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ipetrova/family_tracking_system/internal/models"
	"github.com/ipetrova/family_tracking_system/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AlertRepository struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) service.AlertRepository {
	return &AlertRepository{
		db: db,
	}
}

// List возвращает оповещения семьи от новых к старым, опционально начиная с since
func (r *AlertRepository) List(ctx context.Context, familyID uuid.UUID, since *time.Time) ([]*models.Alert, error) {
	query := `
		SELECT id, family_id, type, message, related_uid, acknowledged_by, created_at
		FROM alerts
		WHERE family_id = $1 AND ($2::timestamptz IS NULL OR created_at >= $2)
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, familyID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w: %w", models.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		alert := &models.Alert{}
		err := rows.Scan(
			&alert.ID,
			&alert.FamilyID,
			&alert.Type,
			&alert.Message,
			&alert.RelatedUID,
			&alert.AcknowledgedBy,
			&alert.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w: %w", models.ErrStorageUnavailable, err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error alert list iteration: %w: %w", models.ErrStorageUnavailable, err)
	}
	return alerts, nil
}

// Acknowledge добавляет участника в acknowledged_by. Повторный вызов с тем же
// участником строку не меняет и возвращает текущее состояние оповещения.
func (r *AlertRepository) Acknowledge(ctx context.Context, alertID uuid.UUID, memberID string) (*models.Alert, error) {
	alert := &models.Alert{}
	query := `
		UPDATE alerts SET acknowledged_by = array_append(acknowledged_by, $2)
		WHERE id = $1 AND NOT ($2 = ANY(acknowledged_by))
		RETURNING id, family_id, type, message, related_uid, acknowledged_by, created_at;
	`
	err := r.db.QueryRow(ctx, query, alertID, memberID).Scan(
		&alert.ID,
		&alert.FamilyID,
		&alert.Type,
		&alert.Message,
		&alert.RelatedUID,
		&alert.AcknowledgedBy,
		&alert.CreatedAt,
	)
	if err == nil {
		return alert, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to acknowledge alert: %w: %w", models.ErrStorageUnavailable, err)
	}

	// Участник уже подтвердил оповещение либо оповещения не существует
	getQuery := `
		SELECT id, family_id, type, message, related_uid, acknowledged_by, created_at
		FROM alerts
		WHERE id = $1;
	`
	err = r.db.QueryRow(ctx, getQuery, alertID).Scan(
		&alert.ID,
		&alert.FamilyID,
		&alert.Type,
		&alert.Message,
		&alert.RelatedUID,
		&alert.AcknowledgedBy,
		&alert.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %s", models.ErrAlertNotFound, alertID)
		}
		return nil, fmt.Errorf("failed to get alert: %w: %w", models.ErrStorageUnavailable, err)
	}
	return alert, nil
}
