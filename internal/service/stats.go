package service

import (
	"time"

	"github.com/shenikar/fleet_incident_tracker/internal/models"
)

// AggregateStats собирает итоговую статистику из сгруппированных счетчиков.
// В byStatus/bySeverity попадают только встретившиеся значения.
func AggregateStats(src *models.StatsSource) *models.IncidentStats {
	stats := &models.IncidentStats{
		ByStatus:   make(map[models.Status]int),
		BySeverity: make(map[models.Severity]int),
	}
	if src == nil {
		return stats
	}

	for status, count := range src.ByStatus {
		if count <= 0 {
			continue
		}
		stats.ByStatus[status] = count
		stats.Total += count
		if status.IsOpen() {
			stats.OpenIncidents += count
		}
	}

	for severity, count := range src.BySeverity {
		if count > 0 {
			stats.BySeverity[severity] = count
		}
	}

	stats.AvgResolutionTime = AverageResolutionHours(src.Spans)
	return stats
}

// AverageResolutionHours - среднее время решения в часах, 0 если решенных инцидентов нет
func AverageResolutionHours(spans []models.ResolutionSpan) float64 {
	if len(spans) == 0 {
		return 0
	}

	var sumMs int64
	for _, span := range spans {
		sumMs += span.ResolvedAt.Sub(span.ReportedAt).Milliseconds()
	}
	return float64(sumMs) / float64(len(spans)) / float64(time.Hour/time.Millisecond)
}
