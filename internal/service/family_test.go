package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/ipetrova/family_tracking_system/internal/models"
	"github.com/ipetrova/family_tracking_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestFamilyService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestFamilyService(t *testing.T) (*familyService, *mocks.MockFamilyRepository, *mocks.MockInviteRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockFamilyRepository(ctrl)
	inviteRepoMock := mocks.NewMockInviteRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewFamilyService(repoMock, inviteRepoMock, logger)
	return service.(*familyService), repoMock, inviteRepoMock
}

func TestCreateFamily_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestFamilyService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		CreateWithOwner(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, family *models.Family, owner *models.Member) error {
			// Симулируем, что БД присвоила ID
			family.ID = uuid.New()
			owner.FamilyID = family.ID
			return nil
		}).Times(1)

	// Действие
	family, err := service.CreateFamily(ctx, "Семья Ивановых", 55.75, 37.61, 300, "owner-1", "Мария", "maria@example.com")

	// Проверки
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, family.ID)
	assert.Equal(t, "Семья Ивановых", family.Name)
	assert.Equal(t, "owner-1", family.OwnerID)
	assert.Equal(t, 300.0, family.SafeRadiusMeters)
}

func TestCreateFamily_InvalidRadius(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestFamilyService(t)
	ctx := context.Background()

	// Ожидания: репозиторий не вызывается
	repoMock.EXPECT().CreateWithOwner(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	family, err := service.CreateFamily(ctx, "Семья", 55.75, 37.61, 0, "owner-1", "Мария", "maria@example.com")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, family)
	assert.ErrorIs(t, err, models.ErrInvalidRadius)
}

func TestCreateFamily_InvalidCoordinates(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestFamilyService(t)
	ctx := context.Background()

	// Ожидания: репозиторий не вызывается
	repoMock.EXPECT().CreateWithOwner(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	family, err := service.CreateFamily(ctx, "Семья", 91.0, 37.61, 300, "owner-1", "Мария", "maria@example.com")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, family)
	assert.ErrorIs(t, err, models.ErrInvalidCoordinate)
}

func TestCreateFamily_RepoError(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestFamilyService(t)
	ctx := context.Background()
	repoError := fmt.Errorf("соединение потеряно")

	// Ожидания
	repoMock.EXPECT().
		CreateWithOwner(ctx, gomock.Any(), gomock.Any()).
		Return(repoError).
		Times(1)

	// Действие
	family, err := service.CreateFamily(ctx, "Семья", 55.75, 37.61, 300, "owner-1", "Мария", "maria@example.com")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, family)
	assert.ErrorContains(t, err, "could not create family")
}

func TestGetFamily_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestFamilyService(t)
	ctx := context.Background()
	familyID := uuid.New()
	expectedFamily := &models.Family{
		ID:   familyID,
		Name: "Семья Петровых",
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, familyID).Return(expectedFamily, nil).Times(1)

	// Действие
	family, err := service.GetFamily(ctx, familyID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expectedFamily, family)
}

func TestGetFamily_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestFamilyService(t)
	ctx := context.Background()
	familyID := uuid.New()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, familyID).Return(nil, models.ErrInvalidFamily).Times(1)

	// Действие
	family, err := service.GetFamily(ctx, familyID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, family)
	assert.ErrorIs(t, err, models.ErrInvalidFamily)
}

func TestAddMember_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestFamilyService(t)
	ctx := context.Background()
	familyID := uuid.New()
	invite := &models.Invite{
		FamilyID: familyID,
		Role:     models.RoleFamiliar,
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, familyID).Return(&models.Family{ID: familyID}, nil).Times(1)
	repoMock.EXPECT().
		CreateMember(ctx, gomock.Any()).
		Do(func(ctx context.Context, member *models.Member) {
			assert.Equal(t, familyID, member.FamilyID)
			assert.Equal(t, models.RoleFamiliar, member.Role)
		}).Return(nil).Times(1)

	// Действие
	member, err := service.AddMember(ctx, familyID, invite, "member-1", "Иван", "ivan@example.com")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "member-1", member.ID)
	assert.Equal(t, models.RoleFamiliar, member.Role)
}

func TestAddMember_InviteForAnotherFamily(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestFamilyService(t)
	ctx := context.Background()
	invite := &models.Invite{
		FamilyID: uuid.New(),
		Role:     models.RoleFamiliar,
	}

	// Ожидания: до репозитория дело не доходит
	repoMock.EXPECT().CreateMember(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	member, err := service.AddMember(ctx, uuid.New(), invite, "member-1", "Иван", "ivan@example.com")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, member)
	assert.ErrorIs(t, err, models.ErrInviteNotFound)
}

func TestAddMember_Duplicate(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestFamilyService(t)
	ctx := context.Background()
	familyID := uuid.New()
	invite := &models.Invite{
		FamilyID: familyID,
		Role:     models.RoleFamiliar,
	}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, familyID).Return(&models.Family{ID: familyID}, nil).Times(1)
	repoMock.EXPECT().CreateMember(ctx, gomock.Any()).Return(models.ErrDuplicateMember).Times(1)

	// Действие
	member, err := service.AddMember(ctx, familyID, invite, "member-1", "Иван", "ivan@example.com")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, member)
	assert.ErrorIs(t, err, models.ErrDuplicateMember)
}

func TestJoinFamily_Success(t *testing.T) {
	// Подготовка
	service, _, inviteRepoMock := newTestFamilyService(t)
	ctx := context.Background()
	familyID := uuid.New()

	// Ожидания
	inviteRepoMock.EXPECT().
		RedeemWithMember(ctx, "AB12CD34", gomock.Any()).
		DoAndReturn(func(ctx context.Context, code string, member *models.Member) (*models.Invite, error) {
			member.FamilyID = familyID
			member.Role = models.RoleFamiliar
			return &models.Invite{FamilyID: familyID, Code: code, Role: models.RoleFamiliar, IsUsed: true}, nil
		}).Times(1)

	// Действие
	member, err := service.JoinFamily(ctx, "AB12CD34", "member-1", "Иван", "ivan@example.com")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, familyID, member.FamilyID)
	assert.Equal(t, models.RoleFamiliar, member.Role)
}

func TestJoinFamily_InviteAlreadyUsed(t *testing.T) {
	// Подготовка
	service, _, inviteRepoMock := newTestFamilyService(t)
	ctx := context.Background()

	// Ожидания
	inviteRepoMock.EXPECT().
		RedeemWithMember(ctx, "AB12CD34", gomock.Any()).
		Return(nil, models.ErrInviteAlreadyUsed).
		Times(1)

	// Действие
	member, err := service.JoinFamily(ctx, "AB12CD34", "member-1", "Иван", "ivan@example.com")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, member)
	assert.ErrorIs(t, err, models.ErrInviteAlreadyUsed)
}
