package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/fleet_incident_tracker/internal/models"
	"github.com/shenikar/fleet_incident_tracker/internal/service"
)

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// rowScanner - общий интерфейс pgx.Row и pgx.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// Create создает инцидент и начальные записи журнала в одной транзакции
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident, updates []*models.IncidentUpdate) error {
	query := `
		INSERT INTO incidents (
			car_id, reported_by_id, assigned_to_id, car_reading_id,
			title, description, location, latitude, longitude,
			severity, status, type,
			occurred_at, reported_at, resolved_at,
			images, documents,
			estimated_cost, actual_cost, resolution_notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id, created_at, updated_at;
	`
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, query,
			incident.CarID,
			incident.ReportedByID,
			incident.AssignedToID,
			incident.CarReadingID,
			incident.Title,
			incident.Description,
			incident.Location,
			incident.Latitude,
			incident.Longitude,
			string(incident.Severity),
			string(incident.Status),
			string(incident.Type),
			incident.OccurredAt,
			incident.ReportedAt,
			incident.ResolvedAt,
			nonNilStrings(incident.Images),
			nonNilStrings(incident.Documents),
			incident.EstimatedCost,
			incident.ActualCost,
			incident.ResolutionNotes,
		).Scan(&incident.ID, &incident.CreatedAt, &incident.UpdatedAt)
		if err != nil {
			return err
		}

		for _, u := range updates {
			u.IncidentID = incident.ID
		}
		return insertUpdates(ctx, tx, updates)
	})
	if err != nil {
		return wrapDBError("create incident", err)
	}
	return nil
}

// GetByID возвращает инцидент со связанными записями
func (r *IncidentRepository) GetByID(ctx context.Context, id int64) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + incidentJoins + `
		WHERE i.id = $1;
	`
	incident, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %d: %w", id, models.ErrNotFound)
		}
		return nil, wrapDBError("get incident by id", err)
	}
	return incident, nil
}

// ListUpdates возвращает журнал инцидента, новые записи первыми
func (r *IncidentRepository) ListUpdates(ctx context.Context, incidentID int64) ([]*models.IncidentUpdate, error) {
	query := `
		SELECT
			u.id,
			u.incident_id,
			u.user_id,
			u.update_type,
			u.message,
			u.created_at,
			us.name,
			us.email
		FROM incident_updates u
		JOIN users us ON us.id = u.user_id
		WHERE u.incident_id = $1
		ORDER BY u.created_at DESC, u.id DESC;
	`
	rows, err := r.db.Query(ctx, query, incidentID)
	if err != nil {
		return nil, wrapDBError("list incident updates", err)
	}
	defer rows.Close()

	updates := make([]*models.IncidentUpdate, 0)
	for rows.Next() {
		u := &models.IncidentUpdate{}
		var updateType string
		user := &models.UserRef{}
		if err := rows.Scan(&u.ID, &u.IncidentID, &u.UserID, &updateType, &u.Message, &u.CreatedAt, &user.Name, &user.Email); err != nil {
			return nil, wrapDBError("scan incident update row", err)
		}
		u.UpdateType = models.UpdateType(updateType)
		user.ID = u.UserID
		u.User = user
		updates = append(updates, u)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBError("iterate incident updates", err)
	}
	return updates, nil
}

// Update блокирует строку инцидента, строит по ней патч и записи журнала и применяет их в одной транзакции.
// Возвращает записанные записи журнала.
func (r *IncidentRepository) Update(ctx context.Context, id int64, plan models.UpdatePlanner) ([]*models.IncidentUpdate, error) {
	var written []*models.IncidentUpdate
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		current, err := lockIncident(ctx, tx, id)
		if err != nil {
			return err
		}

		patch, updates := plan(current)
		if err := applyPatch(ctx, tx, id, patch); err != nil {
			return err
		}
		if err := insertUpdates(ctx, tx, updates); err != nil {
			return err
		}
		written = updates
		return nil
	})
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		return nil, wrapDBError("update incident", err)
	}
	return written, nil
}

// AddUpdate меняет поля инцидента (если нужно) и добавляет одну запись журнала.
// Запись без изменений полей не трогает строку инцидента.
func (r *IncidentRepository) AddUpdate(ctx context.Context, id int64, patch *models.IncidentPatch, update *models.IncidentUpdate) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if patch.IsEmpty() {
			if _, err := lockIncident(ctx, tx, id); err != nil {
				return err
			}
		} else if err := applyPatch(ctx, tx, id, patch); err != nil {
			return err
		}
		update.IncidentID = id
		return insertUpdates(ctx, tx, []*models.IncidentUpdate{update})
	})
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return err
		}
		return wrapDBError("add incident update", err)
	}
	return nil
}

// List возвращает страницу инцидентов по фильтру и общее число подходящих записей
func (r *IncidentRepository) List(ctx context.Context, filter models.IncidentFilter, page models.Pagination) ([]*models.Incident, int, error) {
	args := &queryArgs{}
	where := buildIncidentWhere(filter, args)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM incidents i`+where, args.values...).Scan(&total); err != nil {
		return nil, 0, wrapDBError("count incidents", err)
	}

	query := `SELECT ` + incidentColumns + incidentJoins + where +
		` ORDER BY i.occurred_at DESC, i.id DESC LIMIT ` + args.add(page.Limit) + ` OFFSET ` + args.add(page.Skip)

	rows, err := r.db.Query(ctx, query, args.values...)
	if err != nil {
		return nil, 0, wrapDBError("list incidents", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0, page.Limit)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, 0, wrapDBError("scan incident row", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, wrapDBError("iterate incidents", err)
	}
	return incidents, total, nil
}

// CollectStats читает сгруппированные счетчики и интервалы решения одним снимком данных
func (r *IncidentRepository) CollectStats(ctx context.Context) (*models.StatsSource, error) {
	src := &models.StatsSource{
		ByStatus:   make(map[models.Status]int),
		BySeverity: make(map[models.Severity]int),
	}

	opts := pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}
	err := pgx.BeginTxFunc(ctx, r.db, opts, func(tx pgx.Tx) error {
		byStatus, err := groupCount(ctx, tx, `SELECT status, COUNT(*) FROM incidents GROUP BY status`)
		if err != nil {
			return err
		}
		for k, v := range byStatus {
			src.ByStatus[models.Status(k)] = v
		}

		bySeverity, err := groupCount(ctx, tx, `SELECT severity, COUNT(*) FROM incidents GROUP BY severity`)
		if err != nil {
			return err
		}
		for k, v := range bySeverity {
			src.BySeverity[models.Severity(k)] = v
		}

		rows, err := tx.Query(ctx, `SELECT reported_at, resolved_at FROM incidents WHERE resolved_at IS NOT NULL`)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var span models.ResolutionSpan
			if err := rows.Scan(&span.ReportedAt, &span.ResolvedAt); err != nil {
				return err
			}
			src.Spans = append(src.Spans, span)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, wrapDBError("collect incident stats", err)
	}
	return src, nil
}

func groupCount(ctx context.Context, tx pgx.Tx, query string) (map[string]int, error) {
	rows, err := tx.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return nil, err
		}
		counts[key] = count
	}
	return counts, rows.Err()
}

// lockIncident читает инцидент с блокировкой строки до конца транзакции
func lockIncident(ctx context.Context, tx pgx.Tx, id int64) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + incidentJoins + `
		WHERE i.id = $1
		FOR UPDATE OF i;
	`
	incident, err := scanIncident(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %d not found for update: %w", id, models.ErrNotFound)
		}
		return nil, err
	}
	return incident, nil
}

// applyPatch обновляет инцидент; отсутствие строки означает ErrNotFound
func applyPatch(ctx context.Context, tx pgx.Tx, id int64, patch *models.IncidentPatch) error {
	args := &queryArgs{}
	set := buildPatchSet(patch, args)
	query := `UPDATE incidents SET ` + set + ` WHERE id = ` + args.add(id)

	cmdTag, err := tx.Exec(ctx, query, args.values...)
	if err != nil {
		return err
	}
	// Если RowsAffected() == 0, инцидента с таким id не существует
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with id %d not found for update: %w", id, models.ErrNotFound)
	}
	return nil
}

func insertUpdates(ctx context.Context, tx pgx.Tx, updates []*models.IncidentUpdate) error {
	query := `
		INSERT INTO incident_updates (incident_id, user_id, update_type, message)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at;
	`
	for _, u := range updates {
		err := tx.QueryRow(ctx, query, u.IncidentID, u.UserID, string(u.UpdateType), u.Message).
			Scan(&u.ID, &u.CreatedAt)
		if err != nil {
			return err
		}
	}
	return nil
}

func scanIncident(row rowScanner) (*models.Incident, error) {
	incident := &models.Incident{}
	var (
		severity, status, incidentType string

		car      models.Car
		reporter models.UserRef

		assigneeName, assigneeEmail *string

		readingCarID      *int64
		readingOdometer   *float64
		readingFuelLevel  *float64
		readingRecordedAt *time.Time
	)

	err := row.Scan(
		&incident.ID,
		&incident.CarID,
		&incident.ReportedByID,
		&incident.AssignedToID,
		&incident.CarReadingID,
		&incident.Title,
		&incident.Description,
		&incident.Location,
		&incident.Latitude,
		&incident.Longitude,
		&severity,
		&status,
		&incidentType,
		&incident.OccurredAt,
		&incident.ReportedAt,
		&incident.ResolvedAt,
		&incident.Images,
		&incident.Documents,
		&incident.EstimatedCost,
		&incident.ActualCost,
		&incident.ResolutionNotes,
		&incident.CreatedAt,
		&incident.UpdatedAt,
		&car.PlateNumber,
		&car.Make,
		&car.Model,
		&car.Year,
		&reporter.Name,
		&reporter.Email,
		&assigneeName,
		&assigneeEmail,
		&readingCarID,
		&readingOdometer,
		&readingFuelLevel,
		&readingRecordedAt,
	)
	if err != nil {
		return nil, err
	}

	incident.Severity = models.Severity(severity)
	incident.Status = models.Status(status)
	incident.Type = models.IncidentType(incidentType)
	incident.Images = nonNilStrings(incident.Images)
	incident.Documents = nonNilStrings(incident.Documents)

	car.ID = incident.CarID
	incident.Car = &car
	reporter.ID = incident.ReportedByID
	incident.ReportedBy = &reporter

	if incident.AssignedToID != nil && assigneeName != nil {
		incident.AssignedTo = &models.UserRef{ID: *incident.AssignedToID, Name: *assigneeName}
		if assigneeEmail != nil {
			incident.AssignedTo.Email = *assigneeEmail
		}
	}
	if incident.CarReadingID != nil && readingCarID != nil {
		incident.CarReading = &models.CarReading{
			ID:        *incident.CarReadingID,
			CarID:     *readingCarID,
			Odometer:  readingOdometer,
			FuelLevel: readingFuelLevel,
		}
		if readingRecordedAt != nil {
			incident.CarReading.RecordedAt = *readingRecordedAt
		}
	}
	return incident, nil
}

// wrapDBError классифицирует ошибку хранилища: нарушения ограничений - ошибка валидации,
// остальное - недоступность хранилища. Исходная ошибка остается в цепочке.
func wrapDBError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Класс 23 - нарушение ограничений целостности (внешний ключ, CHECK, NOT NULL)
		if len(pgErr.Code) == 5 && pgErr.Code[:2] == "23" {
			return fmt.Errorf("failed to %s: %w: %s", op, models.ErrValidation, pgErr.Message)
		}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	return fmt.Errorf("failed to %s: %w: %w", op, models.ErrUpstream, err)
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
