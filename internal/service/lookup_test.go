package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shenikar/fleet_incident_tracker/internal/models"
	"github.com/shenikar/fleet_incident_tracker/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLookupService(t *testing.T) (LookupService, *mocks.MockLookupRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockLookupRepository(ctrl)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewLookupService(repo, logger), repo
}

func TestLookupService_ListUsers(t *testing.T) {
	svc, repo := newTestLookupService(t)
	ctx := context.Background()
	users := []*models.UserRef{{ID: 1, Name: "Ivan", Email: "ivan@example.com", Role: models.RoleDriver}}

	repo.EXPECT().ListUsers(ctx).Return(users, nil)

	result, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, users, result)
}

func TestLookupService_ListCars_Error(t *testing.T) {
	svc, repo := newTestLookupService(t)
	ctx := context.Background()

	repo.EXPECT().ListCars(ctx).Return(nil, errors.New("connection refused"))

	_, err := svc.ListCars(ctx)
	assert.ErrorContains(t, err, "could not list cars")
}

func TestLookupService_ListCarReadings_ByCar(t *testing.T) {
	svc, repo := newTestLookupService(t)
	ctx := context.Background()
	carID := int64(3)
	readings := []*models.CarReading{{ID: 10, CarID: 3, Odometer: ptr(120500.0)}}

	repo.EXPECT().ListCarReadings(ctx, &carID).Return(readings, nil)

	result, err := svc.ListCarReadings(ctx, &carID)
	require.NoError(t, err)
	assert.Equal(t, readings, result)
}
