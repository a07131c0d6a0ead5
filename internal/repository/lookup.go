package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/fleet_incident_tracker/internal/models"
	"github.com/shenikar/fleet_incident_tracker/internal/service"
)

type LookupRepository struct {
	db *pgxpool.Pool
}

func NewLookupRepository(db *pgxpool.Pool) service.LookupRepository {
	return &LookupRepository{db: db}
}

// ListUsers возвращает всех пользователей по имени
func (r *LookupRepository) ListUsers(ctx context.Context) ([]*models.UserRef, error) {
	query := `SELECT id, name, email, role FROM users ORDER BY name, id;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapDBError("list users", err)
	}
	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.UserRef, error) {
		u := &models.UserRef{}
		var role string
		if err := row.Scan(&u.ID, &u.Name, &u.Email, &role); err != nil {
			return nil, err
		}
		u.Role = models.UserRole(role)
		return u, nil
	})
	if err != nil {
		return nil, wrapDBError("scan users", err)
	}
	return users, nil
}

func (r *LookupRepository) ListCars(ctx context.Context) ([]*models.Car, error) {
	query := `SELECT id, plate_number, make, model, year FROM cars ORDER BY id;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, wrapDBError("list cars", err)
	}
	cars, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.Car, error) {
		c := &models.Car{}
		err := row.Scan(&c.ID, &c.PlateNumber, &c.Make, &c.Model, &c.Year)
		return c, err
	})
	if err != nil {
		return nil, wrapDBError("scan cars", err)
	}
	return cars, nil
}

// ListCarReadings возвращает показания, новые первыми; carID ограничивает выборку одной машиной
func (r *LookupRepository) ListCarReadings(ctx context.Context, carID *int64) ([]*models.CarReading, error) {
	query := `
		SELECT id, car_id, odometer, fuel_level, recorded_at
		FROM car_readings
		WHERE ($1::BIGINT IS NULL OR car_id = $1)
		ORDER BY recorded_at DESC, id DESC;
	`
	rows, err := r.db.Query(ctx, query, carID)
	if err != nil {
		return nil, wrapDBError("list car readings", err)
	}
	readings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.CarReading, error) {
		cr := &models.CarReading{}
		err := row.Scan(&cr.ID, &cr.CarID, &cr.Odometer, &cr.FuelLevel, &cr.RecordedAt)
		return cr, err
	})
	if err != nil {
		return nil, wrapDBError("scan car readings", err)
	}
	return readings, nil
}
