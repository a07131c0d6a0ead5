package models

import "time"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Pagination - нормализованные параметры страницы
type Pagination struct {
	Page  int
	Limit int
	Skip  int
}

// IncidentFilter - условия выборки инцидентов, все заданные условия объединяются через AND
type IncidentFilter struct {
	Status       *Status
	Severity     *Severity
	CarID        *int64
	AssignedToID *int64
	StartDate    *time.Time
	EndDate      *time.Time
	Query        string
}

// IsEmpty - фильтр без условий пропускает все записи
func (f IncidentFilter) IsEmpty() bool {
	return f.Status == nil && f.Severity == nil && f.CarID == nil && f.AssignedToID == nil &&
		f.StartDate == nil && f.EndDate == nil && f.Query == ""
}

// IncidentPage - страница результатов выборки
type IncidentPage struct {
	Items      []*Incident
	Page       int
	Limit      int
	Total      int
	TotalPages int
}
