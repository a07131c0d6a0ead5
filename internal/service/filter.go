package service

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shenikar/fleet_incident_tracker/internal/models"
)

const dateLayout = "2006-01-02"

// ParsePagination нормализует page/limit и считает смещение.
// Слишком большой номер страницы ограничивается, чтобы смещение не переполнялось.
func ParsePagination(params url.Values) models.Pagination {
	page := models.DefaultPage
	if v, err := strconv.Atoi(strings.TrimSpace(params.Get("page"))); err == nil {
		page = v
	}
	if page < 1 {
		page = 1
	}

	limit := models.DefaultLimit
	if v, err := strconv.Atoi(strings.TrimSpace(params.Get("limit"))); err == nil {
		limit = v
	}
	if limit < 1 {
		limit = 1
	}
	if limit > models.MaxLimit {
		limit = models.MaxLimit
	}

	// Смещение не выходит за пределы int32, дальние страницы просто пустые
	if maxPage := math.MaxInt32/limit + 1; page > maxPage {
		page = maxPage
	}

	return models.Pagination{
		Page:  page,
		Limit: limit,
		Skip:  (page - 1) * limit,
	}
}

// ParseIncidentFilter строит фильтр из параметров запроса.
// Неизвестные и пустые параметры игнорируются, некорректные значения известных - ошибка валидации.
func ParseIncidentFilter(params url.Values) (models.IncidentFilter, error) {
	var filter models.IncidentFilter

	if v := params.Get("status"); v != "" {
		status := models.Status(v)
		if !status.Valid() {
			return filter, fmt.Errorf("%w: unknown status %q", models.ErrValidation, v)
		}
		filter.Status = &status
	}

	if v := params.Get("severity"); v != "" {
		severity := models.Severity(v)
		if !severity.Valid() {
			return filter, fmt.Errorf("%w: unknown severity %q", models.ErrValidation, v)
		}
		filter.Severity = &severity
	}

	var err error
	if filter.CarID, err = parseIDParam(params, "carId"); err != nil {
		return filter, err
	}
	if filter.AssignedToID, err = parseIDParam(params, "assignedToId"); err != nil {
		return filter, err
	}

	if v := params.Get("startDate"); v != "" {
		start, _, err := parseDateParam(v)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid startDate: %v", models.ErrValidation, err)
		}
		filter.StartDate = &start
	}

	if v := params.Get("endDate"); v != "" {
		end, dateOnly, err := parseDateParam(v)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid endDate: %v", models.ErrValidation, err)
		}
		// Дата без времени включает весь день
		if dateOnly {
			end = end.Add(24*time.Hour - time.Nanosecond)
		}
		filter.EndDate = &end
	}

	if q := params.Get("query"); strings.TrimSpace(q) != "" {
		filter.Query = q
	}

	return filter, nil
}

func parseIDParam(params url.Values, key string) (*int64, error) {
	v := strings.TrimSpace(params.Get(key))
	if v == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid %s %q", models.ErrValidation, key, v)
	}
	return &id, nil
}

// parseDateParam принимает RFC 3339 или YYYY-MM-DD (UTC)
func parseDateParam(v string) (time.Time, bool, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, false, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}

// totalPages - количество страниц, ceil(total/limit)
func totalPages(total, limit int) int {
	if limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
