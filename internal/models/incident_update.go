package models

import "time"

// UpdateType - тип записи журнала изменений инцидента
type UpdateType string

const (
	UpdateStatusChange UpdateType = "STATUS_CHANGE"
	UpdateAssignment   UpdateType = "ASSIGNMENT"
	UpdateCostUpdate   UpdateType = "COST_UPDATE"
	UpdateResolution   UpdateType = "RESOLUTION"
	UpdateComment      UpdateType = "COMMENT"
)

func (t UpdateType) Valid() bool {
	switch t {
	case UpdateStatusChange, UpdateAssignment, UpdateCostUpdate, UpdateResolution, UpdateComment:
		return true
	}
	return false
}

// IncidentUpdate - неизменяемая запись журнала инцидента
type IncidentUpdate struct {
	ID         int64      `json:"id"`
	IncidentID int64      `json:"incidentId"`
	UserID     int64      `json:"userId"`
	UpdateType UpdateType `json:"updateType"`
	Message    string     `json:"message"`
	CreatedAt  time.Time  `json:"createdAt"`

	User *UserRef `json:"user,omitempty"`
}

// AuditEvent - событие, которое нужно записать в журнал при изменении инцидента
type AuditEvent struct {
	Type    UpdateType
	Message string
}

// UpdateSubmission - ручная запись в журнал с возможным изменением полей инцидента
type UpdateSubmission struct {
	UserID     int64
	UpdateType UpdateType
	Message    string

	Status          *Status
	AssignedToID    *int64
	EstimatedCost   *float64
	ActualCost      *float64
	ResolutionNotes *string
	ResolvedAt      *time.Time
}
