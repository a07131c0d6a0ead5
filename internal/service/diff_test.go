package service

import (
	"testing"
	"time"

	"github.com/shenikar/fleet_incident_tracker/internal/models"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func baseIncident() *models.Incident {
	return &models.Incident{
		ID:           1,
		CarID:        3,
		ReportedByID: 10,
		Title:        "Minor bumper scratch",
		Description:  "Scratch while parking",
		Severity:     models.SeverityLow,
		Status:       models.StatusPending,
		Type:         models.TypeAccident,
		Images:       []string{"https://cdn.example.com/a.jpg"},
	}
}

func eventTypes(events []models.AuditEvent) []models.UpdateType {
	types := make([]models.UpdateType, 0, len(events))
	for _, e := range events {
		types = append(types, e.Type)
	}
	return types
}

func TestDiffIncident(t *testing.T) {
	resolvedAt := time.Date(2025, 5, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		existing func() *models.Incident
		patch    *models.IncidentPatch
		want     []models.UpdateType
	}{
		{
			name:     "empty patch",
			existing: baseIncident,
			patch:    &models.IncidentPatch{},
			want:     []models.UpdateType{},
		},
		{
			name:     "status change only",
			existing: baseIncident,
			patch:    &models.IncidentPatch{Status: ptr(models.StatusResolved)},
			want:     []models.UpdateType{models.UpdateStatusChange},
		},
		{
			name:     "same status emits nothing",
			existing: baseIncident,
			patch:    &models.IncidentPatch{Status: ptr(models.StatusPending)},
			want:     []models.UpdateType{},
		},
		{
			name:     "new assignee",
			existing: baseIncident,
			patch:    &models.IncidentPatch{AssignedToID: ptr(int64(7))},
			want:     []models.UpdateType{models.UpdateAssignment},
		},
		{
			name: "same assignee emits nothing",
			existing: func() *models.Incident {
				inc := baseIncident()
				inc.AssignedToID = ptr(int64(7))
				return inc
			},
			patch: &models.IncidentPatch{AssignedToID: ptr(int64(7))},
			want:  []models.UpdateType{},
		},
		{
			name:     "both costs changed emit one event",
			existing: baseIncident,
			patch:    &models.IncidentPatch{EstimatedCost: ptr(100.0), ActualCost: ptr(120.0)},
			want:     []models.UpdateType{models.UpdateCostUpdate},
		},
		{
			name: "unchanged estimate but changed actual cost",
			existing: func() *models.Incident {
				inc := baseIncident()
				inc.EstimatedCost = ptr(100.0)
				inc.ActualCost = ptr(90.0)
				return inc
			},
			patch: &models.IncidentPatch{EstimatedCost: ptr(100.0), ActualCost: ptr(95.0)},
			want:  []models.UpdateType{models.UpdateCostUpdate},
		},
		{
			name: "resolvedAt equal instant in another zone emits nothing",
			existing: func() *models.Incident {
				inc := baseIncident()
				inc.ResolvedAt = ptr(resolvedAt)
				return inc
			},
			patch: &models.IncidentPatch{ResolvedAt: ptr(resolvedAt.In(time.FixedZone("MSK", 3*3600)))},
			want:  []models.UpdateType{},
		},
		{
			name:     "notes and resolvedAt emit one resolution event",
			existing: baseIncident,
			patch:    &models.IncidentPatch{ResolutionNotes: ptr("Bumper replaced"), ResolvedAt: ptr(resolvedAt)},
			want:     []models.UpdateType{models.UpdateResolution},
		},
		{
			name:     "all rules fire independently",
			existing: baseIncident,
			patch: &models.IncidentPatch{
				Status:          ptr(models.StatusResolved),
				AssignedToID:    ptr(int64(8)),
				ActualCost:      ptr(50.0),
				ResolutionNotes: ptr("done"),
			},
			want: []models.UpdateType{
				models.UpdateStatusChange,
				models.UpdateAssignment,
				models.UpdateCostUpdate,
				models.UpdateResolution,
			},
		},
		{
			name:     "descriptive fields do not emit events",
			existing: baseIncident,
			patch:    &models.IncidentPatch{Title: ptr("Other title"), Severity: ptr(models.SeverityHigh)},
			want:     []models.UpdateType{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiffIncident(tt.existing(), tt.patch)
			assert.Equal(t, tt.want, eventTypes(got))
		})
	}
}

func TestDiffIncident_Messages(t *testing.T) {
	events := DiffIncident(baseIncident(), &models.IncidentPatch{
		Status:       ptr(models.StatusResolved),
		AssignedToID: ptr(int64(7)),
	})

	assert.Equal(t, []models.AuditEvent{
		{Type: models.UpdateStatusChange, Message: "Status: PENDING -> RESOLVED"},
		{Type: models.UpdateAssignment, Message: "Assigned to: 7"},
	}, events)
}

func TestCreationEvents(t *testing.T) {
	inc := baseIncident()
	assert.Equal(t, []models.AuditEvent{{Type: models.UpdateComment, Message: "Incident created"}}, CreationEvents(inc))

	inc.AssignedToID = ptr(int64(7))
	assert.Equal(t, []models.AuditEvent{
		{Type: models.UpdateComment, Message: "Incident created"},
		{Type: models.UpdateAssignment, Message: "Assigned to user 7"},
	}, CreationEvents(inc))
}

func TestResolveActor(t *testing.T) {
	existing := baseIncident()
	withAssignee := baseIncident()
	withAssignee.AssignedToID = ptr(int64(5))

	assert.Equal(t, int64(42), ResolveActor(ptr(int64(42)), withAssignee, &models.IncidentPatch{}))
	assert.Equal(t, int64(5), ResolveActor(nil, withAssignee, &models.IncidentPatch{}))
	// Исполнитель из патча важнее текущего
	assert.Equal(t, int64(9), ResolveActor(nil, withAssignee, &models.IncidentPatch{AssignedToID: ptr(int64(9))}))
	assert.Equal(t, int64(10), ResolveActor(nil, existing, &models.IncidentPatch{}))
	assert.Equal(t, int64(10), ResolveActor(ptr(int64(0)), existing, nil))
}

func TestSubmissionPatch(t *testing.T) {
	resolvedAt := time.Now().UTC()
	sub := &models.UpdateSubmission{
		Status:          ptr(models.StatusInProgress),
		AssignedToID:    ptr(int64(3)),
		EstimatedCost:   ptr(10.0),
		ActualCost:      ptr(12.0),
		ResolutionNotes: ptr("fixed"),
		ResolvedAt:      &resolvedAt,
	}

	sub.UpdateType = models.UpdateStatusChange
	assert.Equal(t, &models.IncidentPatch{Status: sub.Status}, SubmissionPatch(sub))

	sub.UpdateType = models.UpdateAssignment
	assert.Equal(t, &models.IncidentPatch{AssignedToID: sub.AssignedToID}, SubmissionPatch(sub))

	sub.UpdateType = models.UpdateCostUpdate
	assert.Equal(t, &models.IncidentPatch{EstimatedCost: sub.EstimatedCost, ActualCost: sub.ActualCost}, SubmissionPatch(sub))

	sub.UpdateType = models.UpdateResolution
	assert.Equal(t, &models.IncidentPatch{ResolutionNotes: sub.ResolutionNotes, ResolvedAt: sub.ResolvedAt}, SubmissionPatch(sub))

	sub.UpdateType = models.UpdateComment
	assert.True(t, SubmissionPatch(sub).IsEmpty())
}

func TestMergeAttachments(t *testing.T) {
	existing := []string{"a"}

	// Без загрузок патч передается как есть (пустой список не затирает текущие вложения в репозитории)
	assert.Nil(t, mergeAttachments(nil, existing, nil))
	assert.Equal(t, []string{"b"}, mergeAttachments([]string{"b"}, existing, nil))
	// Загрузки дописываются к текущим вложениям или к списку из патча
	assert.Equal(t, []string{"a", "u1"}, mergeAttachments(nil, existing, []string{"u1"}))
	assert.Equal(t, []string{"b", "u1"}, mergeAttachments([]string{"b"}, existing, []string{"u1"}))
}
