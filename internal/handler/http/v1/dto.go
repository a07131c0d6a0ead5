package v1

import (
	"time"

	"github.com/shenikar/fleet_incident_tracker/internal/models"
)

// CreateIncidentRequest DTO для создания инцидента (JSON или multipart-форма)
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	CarID        int64  `json:"carId" form:"carId" validate:"required,gt=0"`
	ReportedByID int64  `json:"reportedById" form:"reportedById" validate:"required,gt=0"`
	AssignedToID *int64 `json:"assignedToId,omitempty" form:"assignedToId" validate:"omitempty,gt=0"`
	CarReadingID *int64 `json:"carReadingId,omitempty" form:"carReadingId" validate:"omitempty,gt=0"`

	Title       string `json:"title" form:"title" validate:"required,min=3"`
	Description string `json:"description" form:"description" validate:"required"`
	Severity    string `json:"severity,omitempty" form:"severity" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Status      string `json:"status,omitempty" form:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS RESOLVED CLOSED CANCELLED"`
	Type        string `json:"type" form:"type" validate:"required,oneof=ACCIDENT BREAKDOWN THEFT VANDALISM MAINTENANCE_ISSUE TRAFFIC_VIOLATION FUEL_ISSUE OTHER"`

	Location  *string  `json:"location,omitempty" form:"location"`
	Latitude  *float64 `json:"latitude,omitempty" form:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" form:"longitude" validate:"omitempty,longitude"`

	OccurredAt time.Time  `json:"occurredAt" form:"occurredAt" validate:"required"`
	ReportedAt *time.Time `json:"reportedAt,omitempty" form:"reportedAt"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty" form:"resolvedAt"`

	// В форме заполняются отдельно: текстовые значения и файлы делят одно имя поля
	Images    []string `json:"images,omitempty" form:"-" validate:"omitempty,dive,url"`
	Documents []string `json:"documents,omitempty" form:"-" validate:"omitempty,dive,url"`

	ResolutionNotes *string  `json:"resolutionNotes,omitempty" form:"resolutionNotes"`
	EstimatedCost   *float64 `json:"estimatedCost,omitempty" form:"estimatedCost" validate:"omitempty,gte=0"`
	ActualCost      *float64 `json:"actualCost,omitempty" form:"actualCost" validate:"omitempty,gte=0"`
}

// UpdateIncidentRequest DTO для частичного обновления инцидента, отсутствующие поля не меняются
// @Description DTO для обновления инцидента
type UpdateIncidentRequest struct {
	CarID        *int64 `json:"carId,omitempty" form:"carId" validate:"omitempty,gt=0"`
	ReportedByID *int64 `json:"reportedById,omitempty" form:"reportedById" validate:"omitempty,gt=0"`
	AssignedToID *int64 `json:"assignedToId,omitempty" form:"assignedToId" validate:"omitempty,gt=0"`
	CarReadingID *int64 `json:"carReadingId,omitempty" form:"carReadingId" validate:"omitempty,gt=0"`

	// Автор записей журнала; по умолчанию исполнитель, затем автор инцидента
	UserID *int64 `json:"userId,omitempty" form:"userId" validate:"omitempty,gt=0"`

	Title       *string `json:"title,omitempty" form:"title" validate:"omitempty,min=3"`
	Description *string `json:"description,omitempty" form:"description" validate:"omitempty,min=1"`
	Severity    *string `json:"severity,omitempty" form:"severity" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Status      *string `json:"status,omitempty" form:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS RESOLVED CLOSED CANCELLED"`
	Type        *string `json:"type,omitempty" form:"type" validate:"omitempty,oneof=ACCIDENT BREAKDOWN THEFT VANDALISM MAINTENANCE_ISSUE TRAFFIC_VIOLATION FUEL_ISSUE OTHER"`

	Location  *string  `json:"location,omitempty" form:"location"`
	Latitude  *float64 `json:"latitude,omitempty" form:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" form:"longitude" validate:"omitempty,longitude"`

	OccurredAt *time.Time `json:"occurredAt,omitempty" form:"occurredAt"`
	ReportedAt *time.Time `json:"reportedAt,omitempty" form:"reportedAt"`
	ResolvedAt *time.Time `json:"resolvedAt,omitempty" form:"resolvedAt"`

	Images    []string `json:"images,omitempty" form:"-" validate:"omitempty,dive,url"`
	Documents []string `json:"documents,omitempty" form:"-" validate:"omitempty,dive,url"`

	ResolutionNotes *string  `json:"resolutionNotes,omitempty" form:"resolutionNotes"`
	EstimatedCost   *float64 `json:"estimatedCost,omitempty" form:"estimatedCost" validate:"omitempty,gte=0"`
	ActualCost      *float64 `json:"actualCost,omitempty" form:"actualCost" validate:"omitempty,gte=0"`
}

// AddUpdateRequest DTO для ручной записи в журнал инцидента
// @Description DTO для ручной записи в журнал инцидента
type AddUpdateRequest struct {
	Message    string `json:"message" form:"message" validate:"required"`
	UpdateType string `json:"updateType" form:"updateType" validate:"required,oneof=STATUS_CHANGE ASSIGNMENT COST_UPDATE RESOLUTION COMMENT"`
	UserID     int64  `json:"userId" form:"userId" validate:"required,gt=0"`

	Status          *string    `json:"status,omitempty" form:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS RESOLVED CLOSED CANCELLED"`
	AssignedToID    *int64     `json:"assignedToId,omitempty" form:"assignedToId" validate:"omitempty,gt=0"`
	EstimatedCost   *float64   `json:"estimatedCost,omitempty" form:"estimatedCost" validate:"omitempty,gte=0"`
	ActualCost      *float64   `json:"actualCost,omitempty" form:"actualCost" validate:"omitempty,gte=0"`
	ResolutionNotes *string    `json:"resolutionNotes,omitempty" form:"resolutionNotes"`
	ResolvedAt      *time.Time `json:"resolvedAt,omitempty" form:"resolvedAt"`
}

// IncidentListResponse DTO для страницы инцидентов
// @Description DTO для страницы инцидентов
type IncidentListResponse struct {
	Items      []*models.Incident `json:"items"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	Total      int                `json:"total"`
	TotalPages int                `json:"totalPages"`
}

// ErrorResponse DTO для ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}
