package repository

import (
	"fmt"
	"strings"

	"github.com/shenikar/fleet_incident_tracker/internal/models"
)

// incidentColumns - колонки инцидента вместе со связанными записями (машина, автор, исполнитель, показания)
const incidentColumns = `
		i.id,
		i.car_id,
		i.reported_by_id,
		i.assigned_to_id,
		i.car_reading_id,
		i.title,
		i.description,
		i.location,
		i.latitude,
		i.longitude,
		i.severity,
		i.status,
		i.type,
		i.occurred_at,
		i.reported_at,
		i.resolved_at,
		i.images,
		i.documents,
		i.estimated_cost,
		i.actual_cost,
		i.resolution_notes,
		i.created_at,
		i.updated_at,
		c.plate_number,
		c.make,
		c.model,
		c.year,
		rb.name,
		rb.email,
		au.name,
		au.email,
		cr.car_id,
		cr.odometer,
		cr.fuel_level,
		cr.recorded_at`

const incidentJoins = `
		FROM incidents i
		JOIN cars c ON c.id = i.car_id
		JOIN users rb ON rb.id = i.reported_by_id
		LEFT JOIN users au ON au.id = i.assigned_to_id
		LEFT JOIN car_readings cr ON cr.id = i.car_reading_id`

// queryArgs накапливает позиционные параметры запроса ($1, $2, ...)
type queryArgs struct {
	values []any
}

func (a *queryArgs) add(v any) string {
	a.values = append(a.values, v)
	return fmt.Sprintf("$%d", len(a.values))
}

// buildIncidentWhere превращает фильтр в условие WHERE, все условия объединяются через AND
func buildIncidentWhere(filter models.IncidentFilter, args *queryArgs) string {
	if filter.IsEmpty() {
		return ""
	}

	var conds []string

	if filter.Status != nil {
		conds = append(conds, "i.status = "+args.add(string(*filter.Status)))
	}
	if filter.Severity != nil {
		conds = append(conds, "i.severity = "+args.add(string(*filter.Severity)))
	}
	if filter.CarID != nil {
		conds = append(conds, "i.car_id = "+args.add(*filter.CarID))
	}
	if filter.AssignedToID != nil {
		conds = append(conds, "i.assigned_to_id = "+args.add(*filter.AssignedToID))
	}
	if filter.StartDate != nil {
		conds = append(conds, "i.occurred_at >= "+args.add(*filter.StartDate))
	}
	if filter.EndDate != nil {
		conds = append(conds, "i.occurred_at <= "+args.add(*filter.EndDate))
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		p := args.add("%" + escapeLike(filter.Query) + "%")
		conds = append(conds, fmt.Sprintf("(i.title ILIKE %s OR i.description ILIKE %s OR i.location ILIKE %s)", p, p, p))
	}

	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}

// escapeLike экранирует спецсимволы шаблона LIKE (экранирующий символ по умолчанию - обратный слеш)
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// buildPatchSet собирает SET для частичного обновления; updated_at обновляется всегда.
// Пустые списки вложений не затирают сохраненные.
func buildPatchSet(patch *models.IncidentPatch, args *queryArgs) string {
	sets := make([]string, 0, 8)
	set := func(column string, value any) {
		sets = append(sets, column+" = "+args.add(value))
	}

	if patch != nil {
		if patch.CarID != nil {
			set("car_id", *patch.CarID)
		}
		if patch.ReportedByID != nil {
			set("reported_by_id", *patch.ReportedByID)
		}
		if patch.AssignedToID != nil {
			set("assigned_to_id", *patch.AssignedToID)
		}
		if patch.CarReadingID != nil {
			set("car_reading_id", *patch.CarReadingID)
		}
		if patch.Title != nil {
			set("title", *patch.Title)
		}
		if patch.Description != nil {
			set("description", *patch.Description)
		}
		if patch.Location != nil {
			set("location", *patch.Location)
		}
		if patch.Latitude != nil {
			set("latitude", *patch.Latitude)
		}
		if patch.Longitude != nil {
			set("longitude", *patch.Longitude)
		}
		if patch.Severity != nil {
			set("severity", string(*patch.Severity))
		}
		if patch.Status != nil {
			set("status", string(*patch.Status))
		}
		if patch.Type != nil {
			set("type", string(*patch.Type))
		}
		if patch.OccurredAt != nil {
			set("occurred_at", *patch.OccurredAt)
		}
		if patch.ReportedAt != nil {
			set("reported_at", *patch.ReportedAt)
		}
		if patch.ResolvedAt != nil {
			set("resolved_at", *patch.ResolvedAt)
		}
		if len(patch.Images) > 0 {
			set("images", patch.Images)
		}
		if len(patch.Documents) > 0 {
			set("documents", patch.Documents)
		}
		if patch.EstimatedCost != nil {
			set("estimated_cost", *patch.EstimatedCost)
		}
		if patch.ActualCost != nil {
			set("actual_cost", *patch.ActualCost)
		}
		if patch.ResolutionNotes != nil {
			set("resolution_notes", *patch.ResolutionNotes)
		}
	}

	sets = append(sets, "updated_at = NOW()")
	return strings.Join(sets, ", ")
}
