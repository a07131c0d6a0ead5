package service

import (
	"fmt"
	"time"

	"github.com/shenikar/fleet_incident_tracker/internal/models"
)

// DiffIncident сравнивает текущее состояние инцидента с патчем и возвращает события журнала.
// Условия проверяются независимо, за одно обновление может сработать несколько событий.
func DiffIncident(existing *models.Incident, patch *models.IncidentPatch) []models.AuditEvent {
	if existing == nil || patch == nil {
		return nil
	}

	var events []models.AuditEvent

	if patch.Status != nil && *patch.Status != existing.Status {
		events = append(events, models.AuditEvent{
			Type:    models.UpdateStatusChange,
			Message: fmt.Sprintf("Status: %s -> %s", existing.Status, *patch.Status),
		})
	}

	if patch.AssignedToID != nil && changed(patch.AssignedToID, existing.AssignedToID) {
		events = append(events, models.AuditEvent{
			Type:    models.UpdateAssignment,
			Message: fmt.Sprintf("Assigned to: %d", *patch.AssignedToID),
		})
	}

	// Одно событие, даже если изменились обе суммы
	if changed(patch.EstimatedCost, existing.EstimatedCost) || changed(patch.ActualCost, existing.ActualCost) {
		events = append(events, models.AuditEvent{
			Type:    models.UpdateCostUpdate,
			Message: "Cost updated",
		})
	}

	if changed(patch.ResolutionNotes, existing.ResolutionNotes) || timeChanged(patch.ResolvedAt, existing.ResolvedAt) {
		events = append(events, models.AuditEvent{
			Type:    models.UpdateResolution,
			Message: "Resolution updated",
		})
	}

	return events
}

// CreationEvents возвращает события журнала для нового инцидента
func CreationEvents(incident *models.Incident) []models.AuditEvent {
	events := []models.AuditEvent{{
		Type:    models.UpdateComment,
		Message: "Incident created",
	}}
	if incident.AssignedToID != nil {
		events = append(events, models.AuditEvent{
			Type:    models.UpdateAssignment,
			Message: fmt.Sprintf("Assigned to user %d", *incident.AssignedToID),
		})
	}
	return events
}

// ResolveActor определяет автора записей журнала: явно переданный пользователь,
// иначе исполнитель после применения патча, иначе автор инцидента.
func ResolveActor(explicit *int64, existing *models.Incident, patch *models.IncidentPatch) int64 {
	if explicit != nil && *explicit > 0 {
		return *explicit
	}

	assignee := existing.AssignedToID
	if patch != nil && patch.AssignedToID != nil {
		assignee = patch.AssignedToID
	}
	if assignee != nil && *assignee > 0 {
		return *assignee
	}

	if patch != nil && patch.ReportedByID != nil {
		return *patch.ReportedByID
	}
	return existing.ReportedByID
}

// SubmissionPatch возвращает изменения полей инцидента, сопутствующие ручной записи журнала.
// Для COMMENT инцидент не меняется.
func SubmissionPatch(sub *models.UpdateSubmission) *models.IncidentPatch {
	patch := &models.IncidentPatch{}

	switch sub.UpdateType {
	case models.UpdateStatusChange:
		patch.Status = sub.Status
	case models.UpdateAssignment:
		patch.AssignedToID = sub.AssignedToID
	case models.UpdateCostUpdate:
		patch.EstimatedCost = sub.EstimatedCost
		patch.ActualCost = sub.ActualCost
	case models.UpdateResolution:
		patch.ResolutionNotes = sub.ResolutionNotes
		patch.ResolvedAt = sub.ResolvedAt
	case models.UpdateComment:
	}

	return patch
}

// toUpdates превращает события в строки журнала от имени пользователя
func toUpdates(incidentID, userID int64, events []models.AuditEvent) []*models.IncidentUpdate {
	updates := make([]*models.IncidentUpdate, 0, len(events))
	for _, e := range events {
		updates = append(updates, &models.IncidentUpdate{
			IncidentID: incidentID,
			UserID:     userID,
			UpdateType: e.Type,
			Message:    e.Message,
		})
	}
	return updates
}

func changed[T comparable](next, current *T) bool {
	if next == nil {
		return false
	}
	return current == nil || *next != *current
}

func timeChanged(next, current *time.Time) bool {
	if next == nil {
		return false
	}
	return current == nil || !next.Equal(*current)
}
