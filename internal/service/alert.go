package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ipetrova/family_tracking_system/internal/models"
	"github.com/sirupsen/logrus"
)

// AlertRepository определяет контракт для работы с хранилищем оповещений
type AlertRepository interface {
	List(ctx context.Context, familyID uuid.UUID, since *time.Time) ([]*models.Alert, error)
	// Acknowledge идемпотентно добавляет участника в acknowledged_by
	Acknowledge(ctx context.Context, alertID uuid.UUID, memberID string) (*models.Alert, error)
}

// AlertService определяет контракт для бизнес-логики оповещений
type AlertService interface {
	ListAlerts(ctx context.Context, familyID uuid.UUID, since *time.Time) ([]*models.Alert, error)
	Acknowledge(ctx context.Context, alertID uuid.UUID, memberID string) (*models.Alert, error)
}

type alertService struct {
	repo   AlertRepository
	logger *logrus.Logger
}

func NewAlertService(repo AlertRepository, logger *logrus.Logger) AlertService {
	return &alertService{
		repo:   repo,
		logger: logger,
	}
}

// ListAlerts возвращает оповещения семьи от новых к старым
func (s *alertService) ListAlerts(ctx context.Context, familyID uuid.UUID, since *time.Time) ([]*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "alert",
		"method":    "ListAlerts",
		"family_id": familyID,
	})

	alerts, err := s.repo.List(ctx, familyID, since)
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from repository")
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}

	log.WithField("count", len(alerts)).Info("Alerts listed successfully")
	return alerts, nil
}

// Acknowledge подтверждает оповещение от имени участника.
// Повторное подтверждение тем же участником - no-op.
func (s *alertService) Acknowledge(ctx context.Context, alertID uuid.UUID, memberID string) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "alert",
		"method":    "Acknowledge",
		"alert_id":  alertID,
		"member_id": memberID,
	})
	log.Info("Attempting to acknowledge alert")

	alert, err := s.repo.Acknowledge(ctx, alertID, memberID)
	if err != nil {
		log.WithError(err).Warn("Failed to acknowledge alert")
		return nil, fmt.Errorf("service: could not acknowledge alert: %w", err)
	}

	log.Info("Alert acknowledged successfully")
	return alert, nil
}
