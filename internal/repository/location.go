package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ipetrova/family_tracking_system/internal/models"
	"github.com/ipetrova/family_tracking_system/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type LocationRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewLocationRepository(db *pgxpool.Pool, redisClient *redis.Client) service.LocationRepository {
	return &LocationRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// SavePing сохраняет пинг и условно создает оповещение одной транзакцией.
// Advisory-блокировка сериализует решения по паре (family, uid), не затрагивая
// другие пары и другие семьи.
func (r *LocationRepository) SavePing(ctx context.Context, ping *models.LocationPing, alert *models.Alert, cooldown time.Duration) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w: %w", models.ErrStorageUnavailable, err)
	}
	defer tx.Rollback(ctx)

	lockQuery := `SELECT pg_advisory_xact_lock(hashtextextended($1 || ':' || $2, 0));`
	if _, err := tx.Exec(ctx, lockQuery, ping.FamilyID.String(), ping.UID); err != nil {
		return false, fmt.Errorf("failed to acquire ping lock: %w: %w", models.ErrStorageUnavailable, err)
	}

	pingQuery := `
		INSERT INTO location_pings (family_id, uid, latitude, longitude, accuracy_meters, device_info, is_outside_safe_radius)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at;
	`
	err = tx.QueryRow(ctx, pingQuery,
		ping.FamilyID,
		ping.UID,
		ping.Latitude,
		ping.Longitude,
		ping.AccuracyMeters,
		ping.DeviceInfo,
		ping.IsOutsideSafeRadius,
	).Scan(&ping.ID, &ping.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("failed to save location ping: %w: %w", models.ErrStorageUnavailable, err)
	}

	alertCreated := false
	if alert != nil {
		alertQuery := `
			INSERT INTO alerts (family_id, type, message, related_uid)
			SELECT $1, $2, $3, $4
			WHERE NOT EXISTS (
				SELECT 1 FROM alerts a
				WHERE a.family_id = $1
				  AND a.type = $2
				  AND a.related_uid = $4
				  AND cardinality(a.acknowledged_by) = 0
				  AND a.created_at > NOW() - make_interval(secs => $5)
				  AND a.created_at > COALESCE((
					SELECT MAX(l.created_at) FROM location_pings l
					WHERE l.family_id = $1 AND l.uid = $4 AND l.is_outside_safe_radius = FALSE
				  ), '-infinity'::timestamptz)
			)
			RETURNING id, created_at;
		`
		err := tx.QueryRow(ctx, alertQuery,
			alert.FamilyID,
			alert.Type,
			alert.Message,
			alert.RelatedUID,
			cooldown.Seconds(),
		).Scan(&alert.ID, &alert.CreatedAt)
		if err != nil {
			if !errors.Is(err, pgx.ErrNoRows) {
				return false, fmt.Errorf("failed to create alert: %w: %w", models.ErrStorageUnavailable, err)
			}
			// Действующее неподтвержденное оповещение уже есть - дубликат не создаем
		} else {
			alertCreated = true
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit location ping: %w: %w", models.ErrStorageUnavailable, err)
	}
	return alertCreated, nil
}

// GetLastPing возвращает последний пинг участника
func (r *LocationRepository) GetLastPing(ctx context.Context, familyID uuid.UUID, uid string) (*models.LocationPing, error) {
	ping := &models.LocationPing{}
	query := `
		SELECT id, family_id, uid, latitude, longitude, accuracy_meters, device_info, is_outside_safe_radius, created_at
		FROM location_pings
		WHERE family_id = $1 AND uid = $2
		ORDER BY created_at DESC
		LIMIT 1;
	`
	err := r.db.QueryRow(ctx, query, familyID, uid).Scan(
		&ping.ID,
		&ping.FamilyID,
		&ping.UID,
		&ping.Latitude,
		&ping.Longitude,
		&ping.AccuracyMeters,
		&ping.DeviceInfo,
		&ping.IsOutsideSafeRadius,
		&ping.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: uid %s", models.ErrNoLocation, uid)
		}
		return nil, fmt.Errorf("failed to get last ping: %w: %w", models.ErrStorageUnavailable, err)
	}
	return ping, nil
}

// GetPingStats возвращает количество уникальных участников, приславших пинг за окно времени
func (r *LocationRepository) GetPingStats(ctx context.Context, familyID uuid.UUID, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT uid)
		FROM location_pings
		WHERE family_id = $1 AND created_at >= NOW() - ($2 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, familyID, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get ping stats: %w: %w", models.ErrStorageUnavailable, err)
	}
	return count, nil
}

// GetLastPingFromCache пытается получить последний пинг из Redis
func (r *LocationRepository) GetLastPingFromCache(ctx context.Context, familyID uuid.UUID, uid string) (*models.LocationPing, error) {
	key := fmt.Sprintf("last_location:%s:%s", familyID.String(), uid)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last ping from cache: %w", err)
	}

	ping := &models.LocationPing{}
	if err := json.Unmarshal(val, ping); err != nil {
		return nil, fmt.Errorf("failed to unmarshal last ping from cache: %w", err)
	}
	return ping, nil
}

// SetLastPingCache сохраняет последний пинг участника в Redis
func (r *LocationRepository) SetLastPingCache(ctx context.Context, ping *models.LocationPing) error {
	key := fmt.Sprintf("last_location:%s:%s", ping.FamilyID.String(), ping.UID)
	val, err := json.Marshal(ping)
	if err != nil {
		return fmt.Errorf("failed to marshal last ping for cache: %w", err)
	}
	// Устанавливаем срок жизни кэша, например, 5 минут
	if err := r.redisClient.Set(ctx, key, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set last ping in cache: %w", err)
	}
	return nil
}
