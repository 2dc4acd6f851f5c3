package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ipetrova/family_tracking_system/internal/config"
	"github.com/ipetrova/family_tracking_system/internal/geo"
	"github.com/ipetrova/family_tracking_system/internal/models"
	"github.com/ipetrova/family_tracking_system/internal/notifier"
	"github.com/sirupsen/logrus"
)

// LocationRepository определяет контракт для работы с хранилищем пингов местоположения
type LocationRepository interface {
	// SavePing сохраняет пинг и, если alert != nil, условно создает оповещение
	// в той же транзакции. Решение о создании сериализуется по паре (family, uid):
	// оповещение создается только если нет неподтвержденного geofence-оповещения
	// для этой пары, которое новее последнего пинга внутри зоны и моложе cooldown.
	// Возвращает true, если оповещение было создано.
	SavePing(ctx context.Context, ping *models.LocationPing, alert *models.Alert, cooldown time.Duration) (bool, error)
	GetLastPing(ctx context.Context, familyID uuid.UUID, uid string) (*models.LocationPing, error)
	GetPingStats(ctx context.Context, familyID uuid.UUID, minutes int) (int, error)
	GetLastPingFromCache(ctx context.Context, familyID uuid.UUID, uid string) (*models.LocationPing, error)
	SetLastPingCache(ctx context.Context, ping *models.LocationPing) error
}

// LocationService определяет контракт для приема пингов и geofence-логики
type LocationService interface {
	RecordLocation(ctx context.Context, familyID uuid.UUID, uid string, lat, lon, accuracyMeters float64, deviceInfo string) (*models.LocationPing, *models.Alert, error)
	GetLastLocation(ctx context.Context, familyID uuid.UUID, uid string) (*models.LocationPing, error)
	GetStats(ctx context.Context, familyID uuid.UUID) (int, error)
}

type locationService struct {
	repo       LocationRepository
	familyRepo FamilyRepository
	logger     *logrus.Logger
	cfg        *config.Config
	publisher  notifier.AlertPublisher
}

func NewLocationService(repo LocationRepository, familyRepo FamilyRepository, logger *logrus.Logger, cfg *config.Config, publisher notifier.AlertPublisher) LocationService {
	return &locationService{
		repo:       repo,
		familyRepo: familyRepo,
		logger:     logger,
		cfg:        cfg,
		publisher:  publisher,
	}
}

// RecordLocation сохраняет пинг, вычисляет факт выхода за безопасную зону и
// при выходе создает оповещение с учетом дедупликации
func (s *locationService) RecordLocation(ctx context.Context, familyID uuid.UUID, uid string, lat, lon, accuracyMeters float64, deviceInfo string) (*models.LocationPing, *models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "location",
		"method":    "RecordLocation",
		"family_id": familyID,
		"uid":       uid,
	})
	log.Info("Recording location ping")

	// Валидация до любой записи
	if err := geo.ValidateCoordinates(lat, lon); err != nil {
		log.WithError(err).Warn("Rejected ping with invalid coordinates")
		return nil, nil, fmt.Errorf("service: %w", err)
	}

	family, err := s.familyRepo.GetByID(ctx, familyID)
	if err != nil {
		log.WithError(err).Warn("Target family not found")
		return nil, nil, fmt.Errorf("service: could not record location: %w", err)
	}
	if _, err := s.familyRepo.GetMember(ctx, familyID, uid); err != nil {
		log.WithError(err).Warn("Tracked member not found in family")
		return nil, nil, fmt.Errorf("service: could not record location: %w", err)
	}

	outside := geo.IsOutsideSafeZone(lat, lon, family.HomeLatitude, family.HomeLongitude, family.SafeRadiusMeters)

	ping := &models.LocationPing{
		FamilyID:            familyID,
		UID:                 uid,
		Latitude:            lat,
		Longitude:           lon,
		AccuracyMeters:      accuracyMeters,
		DeviceInfo:          deviceInfo,
		IsOutsideSafeRadius: outside,
	}

	var alert *models.Alert
	if outside {
		alert = &models.Alert{
			FamilyID:       familyID,
			Type:           models.AlertTypeGeofence,
			Message:        fmt.Sprintf("Member outside the safe area - %s", time.Now().UTC().Format("15:04")),
			RelatedUID:     uid,
			AcknowledgedBy: []string{},
		}
	}

	created, err := s.repo.SavePing(ctx, ping, alert, s.cfg.AlertCooldown)
	if err != nil {
		log.WithError(err).Error("Failed to save ping in repository")
		return nil, nil, fmt.Errorf("service: could not record location: %w", err)
	}
	if !created {
		alert = nil
	}

	// Обновляем кеш последнего местоположения; промах кеша не критичен
	if err := s.repo.SetLastPingCache(ctx, ping); err != nil {
		log.WithError(err).Warn("Failed to update last location cache")
	}

	if alert != nil {
		log.WithField("alert_id", alert.ID).Info("Geofence alert created")
		event := notifier.AlertEvent{
			Alert:     alert,
			Latitude:  lat,
			Longitude: lon,
			Timestamp: time.Now().UTC(),
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			// Доставка уведомлений не входит в транзакцию пинга
			log.WithError(err).Error("Failed to publish alert event")
		}
	}

	log.WithField("is_outside", outside).Info("Location ping recorded")
	return ping, alert, nil
}

// GetLastLocation возвращает последний известный пинг участника
func (s *locationService) GetLastLocation(ctx context.Context, familyID uuid.UUID, uid string) (*models.LocationPing, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "location",
		"method":    "GetLastLocation",
		"family_id": familyID,
		"uid":       uid,
	})

	cached, err := s.repo.GetLastPingFromCache(ctx, familyID, uid)
	if err != nil {
		log.WithError(err).Warn("Failed to read last location cache")
	}
	if cached != nil {
		log.Debug("Last location served from cache")
		return cached, nil
	}

	ping, err := s.repo.GetLastPing(ctx, familyID, uid)
	if err != nil {
		log.WithError(err).Warn("Failed to get last ping from repository")
		return nil, fmt.Errorf("service: could not get last location: %w", err)
	}

	if err := s.repo.SetLastPingCache(ctx, ping); err != nil {
		log.WithError(err).Warn("Failed to update last location cache")
	}
	return ping, nil
}

// GetStats возвращает количество отслеживаемых участников семьи,
// приславших пинг за настроенное окно времени
func (s *locationService) GetStats(ctx context.Context, familyID uuid.UUID) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "location",
		"method":    "GetStats",
		"family_id": familyID,
	})

	count, err := s.repo.GetPingStats(ctx, familyID, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to get ping stats from repository")
		return 0, fmt.Errorf("service: could not get stats: %w", err)
	}
	return count, nil
}
