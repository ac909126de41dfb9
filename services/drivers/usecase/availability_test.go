package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/nyctaxi/dispatch/internal/pkg/clock"
	"github.com/nyctaxi/dispatch/internal/pkg/models"
	"github.com/nyctaxi/dispatch/services/drivers"
	"github.com/nyctaxi/dispatch/services/drivers/mocks"
)

func setupUC(t *testing.T, now time.Time) (*DriversUC, *mocks.MockDriversRepo, *mocks.MockPoolGW, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockDriversRepo(ctrl)
	mockPool := mocks.NewMockPoolGW(ctrl)
	uc := NewDriversUC(&models.Config{}, mockRepo, mockPool, &clock.Fixed{Time: now})
	return uc, mockRepo, mockPool, ctrl
}

func TestToggleAvailability_Online(t *testing.T) {
	now := time.Date(2025, 6, 1, 14, 45, 30, 0, time.UTC)
	uc, mockRepo, mockPool, ctrl := setupUC(t, now)
	defer ctrl.Finish()

	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	mockRepo.EXPECT().SetAvailability(gomock.Any(), "driver-1", true).
		Return(&models.DriverAvailability{DriverID: "driver-1", Status: true}, nil)
	mockRepo.EXPECT().BumpStatusCount(gomock.Any(), "driver-1", day, true).Return(nil)
	mockPool.EXPECT().AddDriver(gomock.Any(), "driver-1").Return(nil)
	mockRepo.EXPECT().GetDriverLocation(gomock.Any(), "driver-1").
		Return(&models.DriverLocation{DriverID: "driver-1", Latitude: 43.65, Longitude: -79.38}, nil)
	mockPool.EXPECT().IndexDriverLocation(gomock.Any(), "driver-1", 43.65, -79.38).Return(nil)

	availability, err := uc.ToggleAvailability(context.Background(), "driver-1", true)

	assert.NoError(t, err)
	assert.True(t, availability.Status)
}

func TestToggleAvailability_Offline(t *testing.T) {
	now := time.Date(2025, 6, 1, 23, 59, 59, 0, time.UTC)
	uc, mockRepo, mockPool, ctrl := setupUC(t, now)
	defer ctrl.Finish()

	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	mockRepo.EXPECT().SetAvailability(gomock.Any(), "driver-1", false).
		Return(&models.DriverAvailability{DriverID: "driver-1", Status: false}, nil)
	mockRepo.EXPECT().BumpStatusCount(gomock.Any(), "driver-1", day, false).Return(nil)
	mockPool.EXPECT().RemoveDriver(gomock.Any(), "driver-1").Return(nil)

	availability, err := uc.ToggleAvailability(context.Background(), "driver-1", false)

	assert.NoError(t, err)
	assert.False(t, availability.Status)
}

// Two online toggles on the same day both land on the same counter row
// and leave the driver online.
func TestToggleAvailability_TwiceSameDay(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	uc, mockRepo, mockPool, ctrl := setupUC(t, now)
	defer ctrl.Finish()

	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	mockRepo.EXPECT().SetAvailability(gomock.Any(), "driver-1", true).
		Return(&models.DriverAvailability{DriverID: "driver-1", Status: true}, nil).
		Times(2)
	mockRepo.EXPECT().BumpStatusCount(gomock.Any(), "driver-1", day, true).Return(nil).Times(2)
	mockPool.EXPECT().AddDriver(gomock.Any(), "driver-1").Return(nil).Times(2)
	mockRepo.EXPECT().GetDriverLocation(gomock.Any(), "driver-1").
		Return(&models.DriverLocation{Latitude: 43.65, Longitude: -79.38}, nil).
		Times(2)
	mockPool.EXPECT().IndexDriverLocation(gomock.Any(), "driver-1", 43.65, -79.38).Return(nil).Times(2)

	first, err := uc.ToggleAvailability(context.Background(), "driver-1", true)
	assert.NoError(t, err)
	second, err := uc.ToggleAvailability(context.Background(), "driver-1", true)
	assert.NoError(t, err)

	assert.True(t, first.Status)
	assert.True(t, second.Status)
}

// A driver who toggles online before their first location report must
// still land in the pool set, or the matcher would drop them from every
// search. Only the geo index write waits for a position.
func TestToggleAvailability_NoLocationStillJoinsPool(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	uc, mockRepo, mockPool, ctrl := setupUC(t, now)
	defer ctrl.Finish()

	mockRepo.EXPECT().SetAvailability(gomock.Any(), "driver-1", true).
		Return(&models.DriverAvailability{DriverID: "driver-1", Status: true}, nil)
	mockRepo.EXPECT().BumpStatusCount(gomock.Any(), "driver-1", gomock.Any(), true).Return(nil)
	mockPool.EXPECT().AddDriver(gomock.Any(), "driver-1").Return(nil)
	mockRepo.EXPECT().GetDriverLocation(gomock.Any(), "driver-1").
		Return(nil, drivers.ErrLocationNotFound)
	mockPool.EXPECT().IndexDriverLocation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := uc.ToggleAvailability(context.Background(), "driver-1", true)
	assert.NoError(t, err)
}

func TestToggleAvailability_PoolFailureSwallowed(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	uc, mockRepo, mockPool, ctrl := setupUC(t, now)
	defer ctrl.Finish()

	mockRepo.EXPECT().SetAvailability(gomock.Any(), "driver-1", false).
		Return(&models.DriverAvailability{DriverID: "driver-1", Status: false}, nil)
	mockRepo.EXPECT().BumpStatusCount(gomock.Any(), "driver-1", gomock.Any(), false).Return(nil)
	mockPool.EXPECT().RemoveDriver(gomock.Any(), "driver-1").Return(errors.New("redis down"))

	_, err := uc.ToggleAvailability(context.Background(), "driver-1", false)
	assert.NoError(t, err)
}

func TestDailyStatusCounts(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	uc, mockRepo, _, ctrl := setupUC(t, now)
	defer ctrl.Finish()

	counts := []models.DriverStatusCount{
		{DriverID: "driver-1", Date: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), OnlineCount: 2, OfflineCount: 1},
		{DriverID: "driver-1", Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), OnlineCount: 1, OfflineCount: 1},
	}
	mockRepo.EXPECT().ListStatusCounts(gomock.Any(), "driver-1").Return(counts, nil)

	got, err := uc.DailyStatusCounts(context.Background(), "driver-1")

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 2, got[0].OnlineCount)
}
