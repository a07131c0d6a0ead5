package models

import (
	"io"
	"slices"
	"time"
)

// Severity - срочность инцидента
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Status - состояние жизненного цикла инцидента
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusResolved   Status = "RESOLVED"
	StatusClosed     Status = "CLOSED"
	StatusCancelled  Status = "CANCELLED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved, StatusClosed, StatusCancelled:
		return true
	}
	return false
}

// IsOpen - открытым считается инцидент в статусе PENDING или IN_PROGRESS
func (s Status) IsOpen() bool {
	return slices.Contains(OpenStatuses(), s)
}

// OpenStatuses возвращает статусы открытых инцидентов
func OpenStatuses() []Status {
	return []Status{StatusPending, StatusInProgress}
}

// IncidentType - тип происшествия
type IncidentType string

const (
	TypeAccident         IncidentType = "ACCIDENT"
	TypeBreakdown        IncidentType = "BREAKDOWN"
	TypeTheft            IncidentType = "THEFT"
	TypeVandalism        IncidentType = "VANDALISM"
	TypeMaintenanceIssue IncidentType = "MAINTENANCE_ISSUE"
	TypeTrafficViolation IncidentType = "TRAFFIC_VIOLATION"
	TypeFuelIssue        IncidentType = "FUEL_ISSUE"
	TypeOther            IncidentType = "OTHER"
)

func (t IncidentType) Valid() bool {
	switch t {
	case TypeAccident, TypeBreakdown, TypeTheft, TypeVandalism,
		TypeMaintenanceIssue, TypeTrafficViolation, TypeFuelIssue, TypeOther:
		return true
	}
	return false
}

// Incident - происшествие с автомобилем автопарка
type Incident struct {
	ID           int64  `json:"id"`
	CarID        int64  `json:"carId"`
	ReportedByID int64  `json:"reportedById"`
	AssignedToID *int64 `json:"assignedToId"`
	CarReadingID *int64 `json:"carReadingId"`

	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    *string  `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`

	Severity Severity     `json:"severity"`
	Status   Status       `json:"status"`
	Type     IncidentType `json:"type"`

	OccurredAt time.Time  `json:"occurredAt"`
	ReportedAt time.Time  `json:"reportedAt"`
	ResolvedAt *time.Time `json:"resolvedAt"`

	Images    []string `json:"images"`
	Documents []string `json:"documents"`

	EstimatedCost   *float64 `json:"estimatedCost"`
	ActualCost      *float64 `json:"actualCost"`
	ResolutionNotes *string  `json:"resolutionNotes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Связанные записи, заполняются при чтении
	Car        *Car              `json:"car,omitempty"`
	ReportedBy *UserRef          `json:"reportedBy,omitempty"`
	AssignedTo *UserRef          `json:"assignedTo,omitempty"`
	CarReading *CarReading       `json:"carReading,omitempty"`
	Updates    []*IncidentUpdate `json:"updates,omitempty"`
}

// IncidentPatch - частичное обновление инцидента, nil означает "поле не передано"
type IncidentPatch struct {
	CarID        *int64
	ReportedByID *int64
	AssignedToID *int64
	CarReadingID *int64

	Title       *string
	Description *string
	Location    *string
	Latitude    *float64
	Longitude   *float64

	Severity *Severity
	Status   *Status
	Type     *IncidentType

	OccurredAt *time.Time
	ReportedAt *time.Time
	ResolvedAt *time.Time

	// Пустой слайс не затирает существующие вложения
	Images    []string
	Documents []string

	EstimatedCost   *float64
	ActualCost      *float64
	ResolutionNotes *string
}

// IsEmpty сообщает, что патч не меняет ни одного поля
func (p *IncidentPatch) IsEmpty() bool {
	if p == nil {
		return true
	}
	return p.CarID == nil && p.ReportedByID == nil && p.AssignedToID == nil && p.CarReadingID == nil &&
		p.Title == nil && p.Description == nil && p.Location == nil && p.Latitude == nil && p.Longitude == nil &&
		p.Severity == nil && p.Status == nil && p.Type == nil &&
		p.OccurredAt == nil && p.ReportedAt == nil && p.ResolvedAt == nil &&
		len(p.Images) == 0 && len(p.Documents) == 0 &&
		p.EstimatedCost == nil && p.ActualCost == nil && p.ResolutionNotes == nil
}

// UpdatePlanner по текущему состоянию инцидента строит патч и записи журнала.
// Вызывается внутри транзакции, пока строка инцидента заблокирована.
type UpdatePlanner func(current *Incident) (*IncidentPatch, []*IncidentUpdate)

// Upload - файл, пришедший в multipart-запросе и ожидающий загрузки
type Upload struct {
	Field    string // images или documents
	Filename string
	Size     int64
	Open     func() (io.ReadCloser, error)
}

const (
	AttachmentImages    = "images"
	AttachmentDocuments = "documents"
)
