package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/ipetrova/family_tracking_system/internal/config"
	"github.com/ipetrova/family_tracking_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	familyService   service.FamilyService
	inviteService   service.InviteService
	locationService service.LocationService
	alertService    service.AlertService
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(familyService service.FamilyService, inviteService service.InviteService, locationService service.LocationService, alertService service.AlertService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		familyService:   familyService,
		inviteService:   inviteService,
		locationService: locationService,
		alertService:    alertService,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// @Summary Create a new family
// @Description Create a family with a safe zone and its admin owner. Requires API key.
// @Tags Families
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param family body CreateFamilyRequest true "Family creation request"
// @Success 201 {object} FamilyResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /families [post]
func (h *Handler) createFamily(c *gin.Context) {
	var input CreateFamilyRequest
	log := h.logger.WithField("method", "createFamily")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	family, err := h.familyService.CreateFamily(c.Request.Context(), input.Name, input.HomeLatitude, input.HomeLongitude, input.SafeRadiusMeters, input.OwnerID, input.OwnerDisplayName, input.OwnerEmail)
	if err != nil {
		log.WithError(err).Error("Failed to create family in service")
		c.JSON(statusFromError(err), gin.H{"error": errorMessage(err)})
		return
	}
	c.JSON(http.StatusCreated, ModelToFamilyResponse(family))
}

// @Summary Get family by ID
// @Description Get a single family by its ID. Requires API key.
// @Tags Families
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Family ID"
// @Success 200 {object} FamilyResponse
// @Failure 400 {object} map[string]string "Invalid family ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /families/{id} [get]
func (h *Handler) getFamily(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid family ID"})
		return
	}
	log := h.logger.WithField("method", "getFamily").WithField("id", id)

	family, err := h.familyService.GetFamily(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get family from service")
		c.JSON(statusFromError(err), gin.H{"error": errorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, ModelToFamilyResponse(family))
}

// @Summary Create an invite code
// @Description Issue a single-use invite code for a family. Requires API key.
// @Tags Invites
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Family ID"
// @Param invite body CreateInviteRequest true "Invite creation request"
// @Success 201 {object} InviteResponse
// @Failure 400 {object} map[string]string "Invalid request body or family ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /families/{id}/invites [post]
func (h *Handler) createInvite(c *gin.Context) {
	familyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid family ID"})
		return
	}
	log := h.logger.WithField("method", "createInvite").WithField("family_id", familyID)

	var input CreateInviteRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invite, err := h.inviteService.CreateInvite(c.Request.Context(), familyID, input.Role, input.CreatedBy)
	if err != nil {
		log.WithError(err).Error("Failed to create invite in service")
		c.JSON(statusFromError(err), gin.H{"error": errorMessage(err)})
		return
	}
	c.JSON(http.StatusCreated, ModelToInviteResponse(invite))
}

// @Summary Join a family with an invite code
// @Description Redeem an invite code and add the caller as a family member. Requires API key.
// @Tags Invites
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param join body JoinFamilyRequest true "Join request"
// @Success 201 {object} MemberResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Invite not found"
// @Failure 409 {object} map[string]string "Invite expired, already used, or member already in the family"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /families/join [post]
func (h *Handler) joinFamily(c *gin.Context) {
	var input JoinFamilyRequest
	log := h.logger.WithField("method", "joinFamily")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.familyService.JoinFamily(c.Request.Context(), input.Code, input.MemberID, input.DisplayName, input.Email)
	if err != nil {
		log.WithError(err).Warn("Failed to join family in service")
		c.JSON(statusFromError(err), gin.H{"error": errorMessage(err)})
		return
	}
	c.JSON(http.StatusCreated, ModelToMemberResponse(member))
}

// @Summary Record a location ping
// @Description Record a tracked member location, evaluate the safe zone and create a geofence alert on breach. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param location body RecordLocationRequest true "Location ping request"
// @Success 201 {object} RecordLocationResponse
// @Failure 400 {object} map[string]string "Invalid request body, family, member or coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /location [post]
func (h *Handler) recordLocation(c *gin.Context) {
	var input RecordLocationRequest
	log := h.logger.WithField("method", "recordLocation")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	familyID, err := uuid.Parse(input.FamilyID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid family ID"})
		return
	}

	deviceInfo := input.DeviceInfo
	if deviceInfo == "" {
		deviceInfo = c.Request.UserAgent()
	}

	ping, alert, err := h.locationService.RecordLocation(c.Request.Context(), familyID, input.UID, input.Latitude, input.Longitude, input.AccuracyMeters, deviceInfo)
	if err != nil {
		log.WithError(err).Error("Failed to record location in service")
		c.JSON(statusFromError(err), gin.H{"error": errorMessage(err)})
		return
	}

	resp := RecordLocationResponse{Location: ModelToLocationResponse(ping)}
	if alert != nil {
		resp.Alert = ModelToAlertResponse(alert)
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary Get last known location
// @Description Get the latest recorded location ping of a tracked member. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param familyId query string true "Family ID"
// @Param uid query string true "Tracked member ID"
// @Success 200 {object} LocationResponse
// @Failure 400 {object} map[string]string "Missing or invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No locations recorded"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /location/last [get]
func (h *Handler) getLastLocation(c *gin.Context) {
	log := h.logger.WithField("method", "getLastLocation")

	familyID, err := uuid.Parse(c.Query("familyId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid family ID"})
		return
	}
	uid := c.Query("uid")
	if uid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "uid is required"})
		return
	}

	ping, err := h.locationService.GetLastLocation(c.Request.Context(), familyID, uid)
	if err != nil {
		log.WithError(err).Warn("Failed to get last location from service")
		c.JSON(statusFromError(err), gin.H{"error": errorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, ModelToLocationResponse(ping))
}

// @Summary List family alerts
// @Description Get family alerts ordered from newest to oldest, optionally since a timestamp. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Family ID"
// @Param since query string false "RFC3339 lower bound for created_at"
// @Success 200 {array} AlertResponse
// @Failure 400 {object} map[string]string "Invalid family ID or since parameter"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /families/{id}/alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	familyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid family ID"})
		return
	}
	log := h.logger.WithField("method", "listAlerts").WithField("family_id", familyID)

	var since *time.Time
	if raw := c.Query("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid since parameter"})
			return
		}
		since = &parsed
	}

	alerts, err := h.alertService.ListAlerts(c.Request.Context(), familyID, since)
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from service")
		c.JSON(statusFromError(err), gin.H{"error": errorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, ModelsToAlertResponses(alerts))
}

// @Summary Acknowledge an alert
// @Description Add a member to the alert acknowledgement set. Repeated calls are a no-op. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Param ack body AcknowledgeAlertRequest true "Acknowledgement request"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid alert ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /alerts/{id}/ack [post]
func (h *Handler) acknowledgeAlert(c *gin.Context) {
	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "acknowledgeAlert").WithField("alert_id", alertID)

	var input AcknowledgeAlertRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	alert, err := h.alertService.Acknowledge(c.Request.Context(), alertID, input.MemberID)
	if err != nil {
		log.WithError(err).Warn("Failed to acknowledge alert in service")
		c.JSON(statusFromError(err), gin.H{"error": errorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary Get family ping statistics
// @Description Get the count of tracked members that reported a location within the configured window. Requires API key.
// @Tags Families
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Family ID"
// @Success 200 {object} StatsResponse
// @Failure 400 {object} map[string]string "Invalid family ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Storage unavailable"
// @Router /families/{id}/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	familyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid family ID"})
		return
	}
	log := h.logger.WithField("method", "getStats").WithField("family_id", familyID)

	count, err := h.locationService.GetStats(c.Request.Context(), familyID)
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(statusFromError(err), gin.H{"error": errorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, StatsResponse{ActiveMemberCount: count})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
