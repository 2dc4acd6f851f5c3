package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ipetrova/family_tracking_system/internal/geo"
	"github.com/ipetrova/family_tracking_system/internal/models"
	"github.com/sirupsen/logrus"
)

// FamilyRepository определяет контракт для работы с хранилищем семей и участников
type FamilyRepository interface {
	// CreateWithOwner создает семью и ее первого участника-администратора одной транзакцией
	CreateWithOwner(ctx context.Context, family *models.Family, owner *models.Member) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Family, error)
	GetMember(ctx context.Context, familyID uuid.UUID, memberID string) (*models.Member, error)
	CreateMember(ctx context.Context, member *models.Member) error
}

// FamilyService определяет контракт для бизнес-логики управления семьями
type FamilyService interface {
	CreateFamily(ctx context.Context, name string, homeLat, homeLon, safeRadiusMeters float64, ownerID, ownerDisplayName, ownerEmail string) (*models.Family, error)
	GetFamily(ctx context.Context, id uuid.UUID) (*models.Family, error)
	AddMember(ctx context.Context, familyID uuid.UUID, invite *models.Invite, memberID, displayName, email string) (*models.Member, error)
	JoinFamily(ctx context.Context, code, memberID, displayName, email string) (*models.Member, error)
}

type familyService struct {
	repo       FamilyRepository
	inviteRepo InviteRepository
	logger     *logrus.Logger
}

func NewFamilyService(repo FamilyRepository, inviteRepo InviteRepository, logger *logrus.Logger) FamilyService {
	return &familyService{
		repo:       repo,
		inviteRepo: inviteRepo,
		logger:     logger,
	}
}

// CreateFamily создает семью и ее владельца-администратора как единое целое
func (s *familyService) CreateFamily(ctx context.Context, name string, homeLat, homeLon, safeRadiusMeters float64, ownerID, ownerDisplayName, ownerEmail string) (*models.Family, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "family",
		"method":  "CreateFamily",
		"name":    name,
	})
	log.Info("Attempting to create a new family")

	// Валидация до любой записи
	if safeRadiusMeters <= 0 {
		log.Warn("Rejected family with non-positive safe radius")
		return nil, fmt.Errorf("service: %w: %f", models.ErrInvalidRadius, safeRadiusMeters)
	}
	if err := geo.ValidateCoordinates(homeLat, homeLon); err != nil {
		log.WithError(err).Warn("Rejected family with invalid home coordinates")
		return nil, fmt.Errorf("service: %w", err)
	}

	family := &models.Family{
		Name:             name,
		HomeLatitude:     homeLat,
		HomeLongitude:    homeLon,
		SafeRadiusMeters: safeRadiusMeters,
		OwnerID:          ownerID,
	}
	owner := &models.Member{
		ID:                  ownerID,
		Role:                models.RoleAdmin,
		DisplayName:         ownerDisplayName,
		Email:               ownerEmail,
		NotificationTargets: []string{},
	}

	if err := s.repo.CreateWithOwner(ctx, family, owner); err != nil {
		log.WithError(err).Error("Failed to create family in repository")
		return nil, fmt.Errorf("service: could not create family: %w", err)
	}

	log.WithField("family_id", family.ID).Info("Family created successfully")
	return family, nil
}

// GetFamily возвращает семью по ID
func (s *familyService) GetFamily(ctx context.Context, id uuid.UUID) (*models.Family, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "family",
		"method":    "GetFamily",
		"family_id": id,
	})

	family, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get family from repository")
		return nil, fmt.Errorf("service: could not get family: %w", err)
	}
	return family, nil
}

// AddMember добавляет участника по погашенному приглашению
func (s *familyService) AddMember(ctx context.Context, familyID uuid.UUID, invite *models.Invite, memberID, displayName, email string) (*models.Member, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "family",
		"method":    "AddMember",
		"family_id": familyID,
		"member_id": memberID,
	})
	log.Info("Attempting to add a member")

	if invite == nil || invite.FamilyID != familyID {
		log.Warn("Invite does not match the target family")
		return nil, fmt.Errorf("service: %w", models.ErrInviteNotFound)
	}

	if _, err := s.repo.GetByID(ctx, familyID); err != nil {
		log.WithError(err).Warn("Target family not found")
		return nil, fmt.Errorf("service: could not add member: %w", err)
	}

	member := &models.Member{
		FamilyID:            familyID,
		ID:                  memberID,
		Role:                invite.Role,
		DisplayName:         displayName,
		Email:               email,
		NotificationTargets: []string{},
	}
	if err := s.repo.CreateMember(ctx, member); err != nil {
		log.WithError(err).Error("Failed to create member in repository")
		return nil, fmt.Errorf("service: could not add member: %w", err)
	}

	log.Info("Member added successfully")
	return member, nil
}

// JoinFamily гасит код приглашения и создает участника одной транзакцией,
// чтобы прерванный вызов не оставил использованное приглашение без участника
func (s *familyService) JoinFamily(ctx context.Context, code, memberID, displayName, email string) (*models.Member, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "family",
		"method":    "JoinFamily",
		"member_id": memberID,
	})
	log.Info("Attempting to join a family by invite code")

	member := &models.Member{
		ID:                  memberID,
		DisplayName:         displayName,
		Email:               email,
		NotificationTargets: []string{},
	}
	invite, err := s.inviteRepo.RedeemWithMember(ctx, code, member)
	if err != nil {
		log.WithError(err).Warn("Failed to join family")
		return nil, fmt.Errorf("service: could not join family: %w", err)
	}

	log.WithField("family_id", invite.FamilyID).Info("Member joined family successfully")
	return member, nil
}
