package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ipetrova/family_tracking_system/internal/config"
	"github.com/ipetrova/family_tracking_system/internal/models"
	"github.com/sirupsen/logrus"
)

// InviteRepository определяет контракт для работы с хранилищем приглашений
type InviteRepository interface {
	Create(ctx context.Context, invite *models.Invite) error
	// ActiveCodeExists проверяет, занят ли код среди непогашенных и неистекших приглашений
	ActiveCodeExists(ctx context.Context, code string) (bool, error)
	// Redeem атомарно помечает приглашение использованным (compare-and-set по is_used).
	// Из двух конкурентных погашений одного кода ровно одно получает приглашение,
	// остальные - ErrInviteAlreadyUsed.
	Redeem(ctx context.Context, code string) (*models.Invite, error)
	// RedeemWithMember выполняет Redeem и создание участника одной транзакцией
	RedeemWithMember(ctx context.Context, code string, member *models.Member) (*models.Invite, error)
}

// InviteService определяет контракт для бизнес-логики приглашений
type InviteService interface {
	CreateInvite(ctx context.Context, familyID uuid.UUID, role, createdBy string) (*models.Invite, error)
	RedeemInvite(ctx context.Context, code string) (*models.Invite, error)
}

type inviteService struct {
	repo       InviteRepository
	familyRepo FamilyRepository
	logger     *logrus.Logger
	cfg        *config.Config
}

func NewInviteService(repo InviteRepository, familyRepo FamilyRepository, logger *logrus.Logger, cfg *config.Config) InviteService {
	return &inviteService{
		repo:       repo,
		familyRepo: familyRepo,
		logger:     logger,
		cfg:        cfg,
	}
}

// CreateInvite выпускает приглашение с уникальным среди активных приглашений кодом
func (s *inviteService) CreateInvite(ctx context.Context, familyID uuid.UUID, role, createdBy string) (*models.Invite, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "invite",
		"method":    "CreateInvite",
		"family_id": familyID,
	})
	log.Info("Attempting to create an invite")

	if _, err := s.familyRepo.GetByID(ctx, familyID); err != nil {
		log.WithError(err).Warn("Target family not found")
		return nil, fmt.Errorf("service: could not create invite: %w", err)
	}

	code, err := s.generateCode(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to generate a unique invite code")
		return nil, fmt.Errorf("service: could not create invite: %w", err)
	}

	now := time.Now().UTC()
	invite := &models.Invite{
		FamilyID:  familyID,
		Code:      code,
		Role:      role,
		CreatedBy: createdBy,
		ExpiresAt: now.Add(s.cfg.InviteTTL),
	}
	if err := s.repo.Create(ctx, invite); err != nil {
		log.WithError(err).Error("Failed to create invite in repository")
		return nil, fmt.Errorf("service: could not create invite: %w", err)
	}

	log.WithField("expires_at", invite.ExpiresAt).Info("Invite created successfully")
	return invite, nil
}

// RedeemInvite гасит приглашение по коду
func (s *inviteService) RedeemInvite(ctx context.Context, code string) (*models.Invite, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "invite",
		"method":  "RedeemInvite",
	})
	log.Info("Attempting to redeem an invite")

	invite, err := s.repo.Redeem(ctx, code)
	if err != nil {
		log.WithError(err).Warn("Failed to redeem invite")
		return nil, fmt.Errorf("service: could not redeem invite: %w", err)
	}

	log.WithField("family_id", invite.FamilyID).Info("Invite redeemed successfully")
	return invite, nil
}

// generateCode формирует код приглашения и перегенерирует его при коллизии
// с кодом другого активного приглашения
func (s *inviteService) generateCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < s.cfg.InviteMaxAttempts; attempt++ {
		raw := strings.ReplaceAll(uuid.New().String(), "-", "")
		code := strings.ToUpper(raw[:s.cfg.InviteCodeLength])

		exists, err := s.repo.ActiveCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("exhausted %d attempts to generate a unique code", s.cfg.InviteMaxAttempts)
}
