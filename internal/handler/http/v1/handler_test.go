package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ipetrova/family_tracking_system/internal/config"
	"github.com/ipetrova/family_tracking_system/internal/models"
	"github.com/ipetrova/family_tracking_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	family   *mocks.MockFamilyService
	invite   *mocks.MockInviteService
	location *mocks.MockLocationService
	alert    *mocks.MockAlertService
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, serviceMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	sm := serviceMocks{
		family:   mocks.NewMockFamilyService(ctrl),
		invite:   mocks.NewMockInviteService(ctrl),
		location: mocks.NewMockLocationService(ctrl),
		alert:    mocks.NewMockAlertService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys:                []string{"test-api-key"},
		StatsTimeWindowMinutes: 60,
	}

	handler := NewHandler(sm.family, sm.invite, sm.location, sm.alert, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, sm, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

var authHeader = map[string]string{"X-API-Key": "test-api-key"}

func TestCreateFamilyHandler_Success(t *testing.T) {
	_, sm, router := newTestHandler(t)
	familyID := uuid.New()
	reqBody := CreateFamilyRequest{
		Name:             "Smith Family",
		HomeLatitude:     55.7558,
		HomeLongitude:    37.6173,
		SafeRadiusMeters: 300,
		OwnerID:          "owner-1",
		OwnerDisplayName: "Maria",
		OwnerEmail:       "maria@example.com",
	}
	expectedFamily := &models.Family{
		ID:               familyID,
		Name:             reqBody.Name,
		HomeLatitude:     reqBody.HomeLatitude,
		HomeLongitude:    reqBody.HomeLongitude,
		SafeRadiusMeters: reqBody.SafeRadiusMeters,
		OwnerID:          reqBody.OwnerID,
		CreatedAt:        time.Now().UTC(),
	}

	sm.family.EXPECT().
		CreateFamily(gomock.Any(), reqBody.Name, reqBody.HomeLatitude, reqBody.HomeLongitude, reqBody.SafeRadiusMeters, reqBody.OwnerID, reqBody.OwnerDisplayName, reqBody.OwnerEmail).
		Return(expectedFamily, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/families", bytes.NewBuffer(bodyBytes), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp FamilyResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, familyID, resp.ID)
	assert.Equal(t, reqBody.Name, resp.Name)
}

func TestCreateFamilyHandler_InvalidJSON(t *testing.T) {
	_, sm, router := newTestHandler(t)

	// Сервис не должен вызываться
	sm.family.EXPECT().CreateFamily(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/families", bytes.NewBufferString(`{"name": "test"`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateFamilyHandler_ValidationError(t *testing.T) {
	_, sm, router := newTestHandler(t)
	reqBody := CreateFamilyRequest{ // Отсутствует Name
		HomeLatitude:     55.7558,
		HomeLongitude:    37.6173,
		SafeRadiusMeters: 300,
		OwnerID:          "owner-1",
		OwnerDisplayName: "Maria",
	}

	sm.family.EXPECT().CreateFamily(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/families", bytes.NewBuffer(bodyBytes), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Name' failed on the 'required' tag")
}

func TestCreateFamilyHandler_InvalidRadiusFromService(t *testing.T) {
	_, sm, router := newTestHandler(t)
	reqBody := CreateFamilyRequest{
		Name:             "Smith Family",
		HomeLatitude:     55.7558,
		HomeLongitude:    37.6173,
		SafeRadiusMeters: 300,
		OwnerID:          "owner-1",
		OwnerDisplayName: "Maria",
	}

	sm.family.EXPECT().
		CreateFamily(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: %w", models.ErrInvalidRadius)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/families", bytes.NewBuffer(bodyBytes), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), models.ErrInvalidRadius.Error())
}

func TestGetFamilyHandler_Success(t *testing.T) {
	_, sm, router := newTestHandler(t)
	familyID := uuid.New()
	expectedFamily := &models.Family{
		ID:               familyID,
		Name:             "Smith Family",
		SafeRadiusMeters: 300,
	}

	sm.family.EXPECT().GetFamily(gomock.Any(), familyID).Return(expectedFamily, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/families/%s", familyID.String()), nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp FamilyResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, familyID, resp.ID)
}

func TestGetFamilyHandler_InvalidID(t *testing.T) {
	_, sm, router := newTestHandler(t)

	sm.family.EXPECT().GetFamily(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/families/invalid-uuid", nil, authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid family ID")
}

func TestGetFamilyHandler_NotFound(t *testing.T) {
	_, sm, router := newTestHandler(t)
	familyID := uuid.New()

	sm.family.EXPECT().
		GetFamily(gomock.Any(), familyID).
		Return(nil, fmt.Errorf("service: %w", models.ErrInvalidFamily)).
		Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/families/%s", familyID.String()), nil, authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), models.ErrInvalidFamily.Error())
}

func TestCreateInviteHandler_Success(t *testing.T) {
	_, sm, router := newTestHandler(t)
	familyID := uuid.New()
	reqBody := CreateInviteRequest{
		Role:      models.RoleFamiliar,
		CreatedBy: "owner-1",
	}
	expectedInvite := &models.Invite{
		ID:        uuid.New(),
		FamilyID:  familyID,
		Code:      "AB12CD34",
		Role:      models.RoleFamiliar,
		ExpiresAt: time.Now().UTC().Add(24 * time.Hour),
	}

	sm.invite.EXPECT().
		CreateInvite(gomock.Any(), familyID, reqBody.Role, reqBody.CreatedBy).
		Return(expectedInvite, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/families/%s/invites", familyID.String()), bytes.NewBuffer(bodyBytes), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp InviteResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "AB12CD34", resp.Code)
	assert.Equal(t, models.RoleFamiliar, resp.Role)
}

func TestCreateInviteHandler_InvalidRole(t *testing.T) {
	_, sm, router := newTestHandler(t)
	familyID := uuid.New()
	reqBody := CreateInviteRequest{
		Role:      "stranger",
		CreatedBy: "owner-1",
	}

	sm.invite.EXPECT().CreateInvite(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/families/%s/invites", familyID.String()), bytes.NewBuffer(bodyBytes), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Role' failed on the 'oneof' tag")
}

func TestJoinFamilyHandler_Success(t *testing.T) {
	_, sm, router := newTestHandler(t)
	familyID := uuid.New()
	reqBody := JoinFamilyRequest{
		Code:        "AB12CD34",
		MemberID:    "member-1",
		DisplayName: "Ivan",
		Email:       "ivan@example.com",
	}
	expectedMember := &models.Member{
		FamilyID:    familyID,
		ID:          reqBody.MemberID,
		Role:        models.RoleFamiliar,
		DisplayName: reqBody.DisplayName,
		Email:       reqBody.Email,
	}

	sm.family.EXPECT().
		JoinFamily(gomock.Any(), reqBody.Code, reqBody.MemberID, reqBody.DisplayName, reqBody.Email).
		Return(expectedMember, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/families/join", bytes.NewBuffer(bodyBytes), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp MemberResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, familyID, resp.FamilyID)
	assert.Equal(t, models.RoleFamiliar, resp.Role)
}

func TestJoinFamilyHandler_InviteNotFound(t *testing.T) {
	_, sm, router := newTestHandler(t)
	reqBody := JoinFamilyRequest{
		Code:        "NOPE0000",
		MemberID:    "member-1",
		DisplayName: "Ivan",
	}

	sm.family.EXPECT().
		JoinFamily(gomock.Any(), reqBody.Code, reqBody.MemberID, reqBody.DisplayName, "").
		Return(nil, fmt.Errorf("service: %w", models.ErrInviteNotFound)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/families/join", bytes.NewBuffer(bodyBytes), authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), models.ErrInviteNotFound.Error())
}

func TestJoinFamilyHandler_InviteExpired(t *testing.T) {
	_, sm, router := newTestHandler(t)
	reqBody := JoinFamilyRequest{
		Code:        "AB12CD34",
		MemberID:    "member-1",
		DisplayName: "Ivan",
	}

	sm.family.EXPECT().
		JoinFamily(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: %w", models.ErrInviteExpired)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/families/join", bytes.NewBuffer(bodyBytes), authHeader)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), models.ErrInviteExpired.Error())
}

func TestJoinFamilyHandler_InviteAlreadyUsed(t *testing.T) {
	_, sm, router := newTestHandler(t)
	reqBody := JoinFamilyRequest{
		Code:        "AB12CD34",
		MemberID:    "member-1",
		DisplayName: "Ivan",
	}

	sm.family.EXPECT().
		JoinFamily(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: %w", models.ErrInviteAlreadyUsed)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/families/join", bytes.NewBuffer(bodyBytes), authHeader)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), models.ErrInviteAlreadyUsed.Error())
}

func TestJoinFamilyHandler_DuplicateMember(t *testing.T) {
	_, sm, router := newTestHandler(t)
	reqBody := JoinFamilyRequest{
		Code:        "AB12CD34",
		MemberID:    "member-1",
		DisplayName: "Ivan",
	}

	sm.family.EXPECT().
		JoinFamily(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: %w", models.ErrDuplicateMember)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/families/join", bytes.NewBuffer(bodyBytes), authHeader)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), models.ErrDuplicateMember.Error())
}

func TestRecordLocationHandler_Success_WithAlert(t *testing.T) {
	_, sm, router := newTestHandler(t)
	familyID := uuid.New()
	reqBody := RecordLocationRequest{
		FamilyID:       familyID.String(),
		UID:            "member-1",
		Latitude:       55.80,
		Longitude:      37.62,
		AccuracyMeters: 10,
		DeviceInfo:     "pixel-8",
	}
	expectedPing := &models.LocationPing{
		ID:                  1,
		FamilyID:            familyID,
		UID:                 reqBody.UID,
		Latitude:            reqBody.Latitude,
		Longitude:           reqBody.Longitude,
		IsOutsideSafeRadius: true,
	}
	expectedAlert := &models.Alert{
		ID:             uuid.New(),
		FamilyID:       familyID,
		Type:           models.AlertTypeGeofence,
		RelatedUID:     reqBody.UID,
		AcknowledgedBy: []string{},
	}

	sm.location.EXPECT().
		RecordLocation(gomock.Any(), familyID, reqBody.UID, reqBody.Latitude, reqBody.Longitude, reqBody.AccuracyMeters, reqBody.DeviceInfo).
		Return(expectedPing, expectedAlert, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/location", bytes.NewBuffer(bodyBytes), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp RecordLocationResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.NotNil(t, resp.Location)
	require.NotNil(t, resp.Alert)
	assert.True(t, resp.Location.IsOutsideSafeRadius)
	assert.Equal(t, models.AlertTypeGeofence, resp.Alert.Type)
}

func TestRecordLocationHandler_Success_NoAlert(t *testing.T) {
	_, sm, router := newTestHandler(t)
	familyID := uuid.New()
	reqBody := RecordLocationRequest{
		FamilyID:  familyID.String(),
		UID:       "member-1",
		Latitude:  55.7558,
		Longitude: 37.6173,
	}
	expectedPing := &models.LocationPing{
		ID:       2,
		FamilyID: familyID,
		UID:      reqBody.UID,
	}

	sm.location.EXPECT().
		RecordLocation(gomock.Any(), familyID, reqBody.UID, reqBody.Latitude, reqBody.Longitude, 0.0, gomock.Any()).
		Return(expectedPing, nil, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/location", bytes.NewBuffer(bodyBytes), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp RecordLocationResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.NotNil(t, resp.Location)
	assert.Nil(t, resp.Alert)
}

func TestRecordLocationHandler_OutOfRangeCoordinates(t *testing.T) {
	_, sm, router := newTestHandler(t)
	reqBody := RecordLocationRequest{
		FamilyID:  uuid.New().String(),
		UID:       "member-1",
		Latitude:  95.0,
		Longitude: 37.62,
	}

	sm.location.EXPECT().RecordLocation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/location", bytes.NewBuffer(bodyBytes), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Latitude' failed on the 'max' tag")
}

func TestRecordLocationHandler_StorageUnavailable(t *testing.T) {
	_, sm, router := newTestHandler(t)
	familyID := uuid.New()
	reqBody := RecordLocationRequest{
		FamilyID:  familyID.String(),
		UID:       "member-1",
		Latitude:  55.7558,
		Longitude: 37.6173,
	}

	sm.location.EXPECT().
		RecordLocation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil, fmt.Errorf("service: %w", models.ErrStorageUnavailable)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/location", bytes.NewBuffer(bodyBytes), authHeader)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), models.ErrStorageUnavailable.Error())
}

func TestGetLastLocationHandler_Success(t *testing.T) {
	_, sm, router := newTestHandler(t)
	familyID := uuid.New()
	expectedPing := &models.LocationPing{
		ID:       3,
		FamilyID: familyID,
		UID:      "member-1",
		Latitude: 55.75,
	}

	sm.location.EXPECT().GetLastLocation(gomock.Any(), familyID, "member-1").Return(expectedPing, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/location/last?familyId=%s&uid=member-1", familyID.String()), nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp LocationResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "member-1", resp.UID)
}

func TestGetLastLocationHandler_MissingUID(t *testing.T) {
	_, sm, router := newTestHandler(t)
	familyID := uuid.New()

	sm.location.EXPECT().GetLastLocation(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/location/last?familyId=%s", familyID.String()), nil, authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "uid is required")
}

func TestGetLastLocationHandler_NoLocation(t *testing.T) {
	_, sm, router := newTestHandler(t)
	familyID := uuid.New()

	sm.location.EXPECT().
		GetLastLocation(gomock.Any(), familyID, "member-1").
		Return(nil, fmt.Errorf("service: %w", models.ErrNoLocation)).
		Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/location/last?familyId=%s&uid=member-1", familyID.String()), nil, authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), models.ErrNoLocation.Error())
}

func TestListAlertsHandler_Success(t *testing.T) {
	_, sm, router := newTestHandler(t)
	familyID := uuid.New()
	expectedAlerts := []*models.Alert{
		{ID: uuid.New(), FamilyID: familyID, Type: models.AlertTypeGeofence, AcknowledgedBy: []string{}},
		{ID: uuid.New(), FamilyID: familyID, Type: models.AlertTypeGeofence, AcknowledgedBy: []string{"member-2"}},
	}

	sm.alert.EXPECT().ListAlerts(gomock.Any(), familyID, gomock.Nil()).Return(expectedAlerts, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/families/%s/alerts", familyID.String()), nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []AlertResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
}

func TestListAlertsHandler_WithSince(t *testing.T) {
	_, sm, router := newTestHandler(t)
	familyID := uuid.New()
	since := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	sm.alert.EXPECT().
		ListAlerts(gomock.Any(), familyID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, got *time.Time) ([]*models.Alert, error) {
			require.NotNil(t, got)
			assert.True(t, got.Equal(since))
			return []*models.Alert{}, nil
		}).Times(1)

	url := fmt.Sprintf("/api/v1/families/%s/alerts?since=%s", familyID.String(), since.Format(time.RFC3339))
	w := makeRequest(router, "GET", url, nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListAlertsHandler_InvalidSince(t *testing.T) {
	_, sm, router := newTestHandler(t)
	familyID := uuid.New()

	sm.alert.EXPECT().ListAlerts(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/families/%s/alerts?since=yesterday", familyID.String()), nil, authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid since parameter")
}

func TestAcknowledgeAlertHandler_Success(t *testing.T) {
	_, sm, router := newTestHandler(t)
	alertID := uuid.New()
	reqBody := AcknowledgeAlertRequest{MemberID: "member-1"}
	acknowledged := &models.Alert{
		ID:             alertID,
		Type:           models.AlertTypeGeofence,
		AcknowledgedBy: []string{"member-1"},
	}

	sm.alert.EXPECT().Acknowledge(gomock.Any(), alertID, "member-1").Return(acknowledged, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/alerts/%s/ack", alertID.String()), bytes.NewBuffer(bodyBytes), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp AlertResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Contains(t, resp.AcknowledgedBy, "member-1")
}

func TestAcknowledgeAlertHandler_NotFound(t *testing.T) {
	_, sm, router := newTestHandler(t)
	alertID := uuid.New()
	reqBody := AcknowledgeAlertRequest{MemberID: "member-1"}

	sm.alert.EXPECT().
		Acknowledge(gomock.Any(), alertID, "member-1").
		Return(nil, fmt.Errorf("service: %w", models.ErrAlertNotFound)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/alerts/%s/ack", alertID.String()), bytes.NewBuffer(bodyBytes), authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), models.ErrAlertNotFound.Error())
}

func TestGetStatsHandler_Success(t *testing.T) {
	_, sm, router := newTestHandler(t)
	familyID := uuid.New()
	expectedCount := 3

	sm.location.EXPECT().GetStats(gomock.Any(), familyID).Return(expectedCount, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/families/%s/stats", familyID.String()), nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, expectedCount, resp.ActiveMemberCount)
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	// Health-check доступен без API ключа
	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestProtectedRoute_RequiresAPIKey(t *testing.T) {
	_, sm, router := newTestHandler(t)

	sm.family.EXPECT().GetFamily(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/families/%s", uuid.New().String()), nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	// Создаем Gin-роутер и добавляем middleware
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil) // Нет API ключа
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}
