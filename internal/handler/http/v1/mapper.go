package v1

import "github.com/ipetrova/family_tracking_system/internal/models"

// ModelToFamilyResponse преобразует доменную модель семьи в DTO для ответа
func ModelToFamilyResponse(model *models.Family) *FamilyResponse {
	return &FamilyResponse{
		ID:               model.ID,
		Name:             model.Name,
		HomeLatitude:     model.HomeLatitude,
		HomeLongitude:    model.HomeLongitude,
		SafeRadiusMeters: model.SafeRadiusMeters,
		OwnerID:          model.OwnerID,
		CreatedAt:        model.CreatedAt,
	}
}

// ModelToInviteResponse преобразует доменную модель приглашения в DTO для ответа.
// Внутренние поля приглашения наружу не отдаются.
func ModelToInviteResponse(model *models.Invite) *InviteResponse {
	return &InviteResponse{
		Code:      model.Code,
		Role:      model.Role,
		ExpiresAt: model.ExpiresAt,
	}
}

// ModelToMemberResponse преобразует доменную модель участника в DTO для ответа
func ModelToMemberResponse(model *models.Member) *MemberResponse {
	return &MemberResponse{
		FamilyID:    model.FamilyID,
		ID:          model.ID,
		Role:        model.Role,
		DisplayName: model.DisplayName,
		Email:       model.Email,
		CreatedAt:   model.CreatedAt,
	}
}

// ModelToLocationResponse преобразует доменную модель пинга в DTO для ответа
func ModelToLocationResponse(model *models.LocationPing) *LocationResponse {
	return &LocationResponse{
		ID:                  model.ID,
		FamilyID:            model.FamilyID,
		UID:                 model.UID,
		Latitude:            model.Latitude,
		Longitude:           model.Longitude,
		AccuracyMeters:      model.AccuracyMeters,
		DeviceInfo:          model.DeviceInfo,
		IsOutsideSafeRadius: model.IsOutsideSafeRadius,
		CreatedAt:           model.CreatedAt,
	}
}

// ModelToAlertResponse преобразует доменную модель оповещения в DTO для ответа
func ModelToAlertResponse(model *models.Alert) *AlertResponse {
	return &AlertResponse{
		ID:             model.ID,
		FamilyID:       model.FamilyID,
		Type:           model.Type,
		Message:        model.Message,
		RelatedUID:     model.RelatedUID,
		AcknowledgedBy: model.AcknowledgedBy,
		CreatedAt:      model.CreatedAt,
	}
}

// ModelsToAlertResponses преобразует слайс моделей в слайс DTO
func ModelsToAlertResponses(models []*models.Alert) []*AlertResponse {
	responses := make([]*AlertResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAlertResponse(model)
	}
	return responses
}
