package v1

import "github.com/shenikar/fleet_incident_tracker/internal/models"

// CreateRequestToIncident преобразует DTO создания в доменную модель.
// Пустые severity/status заполняются значениями по умолчанию в сервисе.
func CreateRequestToIncident(req CreateIncidentRequest) *models.Incident {
	incident := &models.Incident{
		CarID:           req.CarID,
		ReportedByID:    req.ReportedByID,
		AssignedToID:    req.AssignedToID,
		CarReadingID:    req.CarReadingID,
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		Severity:        models.Severity(req.Severity),
		Status:          models.Status(req.Status),
		Type:            models.IncidentType(req.Type),
		OccurredAt:      req.OccurredAt,
		ResolvedAt:      req.ResolvedAt,
		Images:          req.Images,
		Documents:       req.Documents,
		EstimatedCost:   req.EstimatedCost,
		ActualCost:      req.ActualCost,
		ResolutionNotes: req.ResolutionNotes,
	}
	if req.ReportedAt != nil {
		incident.ReportedAt = *req.ReportedAt
	}
	return incident
}

// UpdateRequestToPatch преобразует DTO обновления в патч
func UpdateRequestToPatch(req UpdateIncidentRequest) *models.IncidentPatch {
	return &models.IncidentPatch{
		CarID:           req.CarID,
		ReportedByID:    req.ReportedByID,
		AssignedToID:    req.AssignedToID,
		CarReadingID:    req.CarReadingID,
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		Severity:        convertPtr[models.Severity](req.Severity),
		Status:          convertPtr[models.Status](req.Status),
		Type:            convertPtr[models.IncidentType](req.Type),
		OccurredAt:      req.OccurredAt,
		ReportedAt:      req.ReportedAt,
		ResolvedAt:      req.ResolvedAt,
		Images:          req.Images,
		Documents:       req.Documents,
		EstimatedCost:   req.EstimatedCost,
		ActualCost:      req.ActualCost,
		ResolutionNotes: req.ResolutionNotes,
	}
}

// AddUpdateRequestToSubmission преобразует DTO ручной записи в модель
func AddUpdateRequestToSubmission(req AddUpdateRequest) *models.UpdateSubmission {
	return &models.UpdateSubmission{
		UserID:          req.UserID,
		UpdateType:      models.UpdateType(req.UpdateType),
		Message:         req.Message,
		Status:          convertPtr[models.Status](req.Status),
		AssignedToID:    req.AssignedToID,
		EstimatedCost:   req.EstimatedCost,
		ActualCost:      req.ActualCost,
		ResolutionNotes: req.ResolutionNotes,
		ResolvedAt:      req.ResolvedAt,
	}
}

// PageToListResponse преобразует страницу выборки в DTO ответа
func PageToListResponse(page *models.IncidentPage) *IncidentListResponse {
	items := page.Items
	if items == nil {
		items = []*models.Incident{}
	}
	return &IncidentListResponse{
		Items:      items,
		Page:       page.Page,
		Limit:      page.Limit,
		Total:      page.Total,
		TotalPages: page.TotalPages,
	}
}

func convertPtr[T ~string](s *string) *T {
	if s == nil {
		return nil
	}
	v := T(*s)
	return &v
}
