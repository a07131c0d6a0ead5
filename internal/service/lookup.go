package service

import (
	"context"
	"fmt"

	"github.com/shenikar/fleet_incident_tracker/internal/models"
	"github.com/sirupsen/logrus"
)

// LookupRepository - справочники для заполнения ссылок инцидента
type LookupRepository interface {
	ListUsers(ctx context.Context) ([]*models.UserRef, error)
	ListCars(ctx context.Context) ([]*models.Car, error)
	ListCarReadings(ctx context.Context, carID *int64) ([]*models.CarReading, error)
}

type LookupService interface {
	ListUsers(ctx context.Context) ([]*models.UserRef, error)
	ListCars(ctx context.Context) ([]*models.Car, error)
	ListCarReadings(ctx context.Context, carID *int64) ([]*models.CarReading, error)
}

type lookupService struct {
	repo   LookupRepository
	logger *logrus.Logger
}

func NewLookupService(repo LookupRepository, logger *logrus.Logger) LookupService {
	return &lookupService{
		repo:   repo,
		logger: logger,
	}
}

func (s *lookupService) ListUsers(ctx context.Context) ([]*models.UserRef, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("method", "ListUsers").Error("Failed to list users")
		return nil, fmt.Errorf("service: could not list users: %w", err)
	}
	return users, nil
}

func (s *lookupService) ListCars(ctx context.Context) ([]*models.Car, error) {
	cars, err := s.repo.ListCars(ctx)
	if err != nil {
		s.logger.WithError(err).WithField("method", "ListCars").Error("Failed to list cars")
		return nil, fmt.Errorf("service: could not list cars: %w", err)
	}
	return cars, nil
}

func (s *lookupService) ListCarReadings(ctx context.Context, carID *int64) ([]*models.CarReading, error) {
	readings, err := s.repo.ListCarReadings(ctx, carID)
	if err != nil {
		s.logger.WithError(err).WithField("method", "ListCarReadings").Error("Failed to list car readings")
		return nil, fmt.Errorf("service: could not list car readings: %w", err)
	}
	return readings, nil
}
