package models

import "time"

// IncidentStats - агрегированная статистика по инцидентам
type IncidentStats struct {
	Total             int              `json:"total"`
	ByStatus          map[Status]int   `json:"byStatus"`
	BySeverity        map[Severity]int `json:"bySeverity"`
	AvgResolutionTime float64          `json:"avgResolutionTime"`
	OpenIncidents     int              `json:"openIncidents"`
}

// ResolutionSpan - интервал от регистрации до решения инцидента
type ResolutionSpan struct {
	ReportedAt time.Time
	ResolvedAt time.Time
}

// StatsSource - сырые данные для расчета статистики, читаются одним снимком
type StatsSource struct {
	ByStatus   map[Status]int
	BySeverity map[Severity]int
	Spans      []ResolutionSpan
}
