package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/nyctaxi/dispatch/internal/pkg/clock"
	"github.com/nyctaxi/dispatch/internal/pkg/models"
	"github.com/nyctaxi/dispatch/services/waittime"
	"github.com/nyctaxi/dispatch/services/waittime/mocks"
)

func int64Ptr(v int64) *int64 { return &v }

func setupUC(t *testing.T, now time.Time) (*WaitTimeUC, *mocks.MockWaitTimeRepo, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockWaitTimeRepo(ctrl)
	uc := NewWaitTimeUC(&models.Config{}, mockRepo, &clock.Fixed{Time: now})
	return uc, mockRepo, ctrl
}

func TestToggleTimer_Start(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	uc, mockRepo, ctrl := setupUC(t, now)
	defer ctrl.Finish()

	mockRepo.EXPECT().ReservationExists(gomock.Any(), int64(7)).Return(true, nil)
	mockRepo.EXPECT().StartTimer(gomock.Any(), int64(7), now).
		Return(&models.WaitingTime{ReservationID: 7, Status: true, StartTime: &now}, nil)

	timer, err := uc.ToggleTimer(context.Background(), 7, true)

	assert.NoError(t, err)
	assert.True(t, timer.Status)
	assert.Equal(t, now, *timer.StartTime)
}

func TestToggleTimer_Stop(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 7, 30, 0, time.UTC)
	uc, mockRepo, ctrl := setupUC(t, now)
	defer ctrl.Finish()

	mockRepo.EXPECT().ReservationExists(gomock.Any(), int64(7)).Return(true, nil)
	mockRepo.EXPECT().StopTimer(gomock.Any(), int64(7), now).
		Return(&models.WaitingTime{ReservationID: 7, Status: false, DurationMinutes: int64Ptr(7)}, nil)

	timer, err := uc.ToggleTimer(context.Background(), 7, false)

	assert.NoError(t, err)
	assert.False(t, timer.Status)
	assert.Equal(t, int64(7), timer.AccumulatedMinutes())
}

func TestToggleTimer_UnknownReservation(t *testing.T) {
	uc, mockRepo, ctrl := setupUC(t, time.Now())
	defer ctrl.Finish()

	mockRepo.EXPECT().ReservationExists(gomock.Any(), int64(404)).Return(false, nil)

	_, err := uc.ToggleTimer(context.Background(), 404, true)
	assert.ErrorIs(t, err, waittime.ErrReservationNotFound)
}

func TestToggleTimer_StopNotRunning(t *testing.T) {
	uc, mockRepo, ctrl := setupUC(t, time.Now())
	defer ctrl.Finish()

	mockRepo.EXPECT().ReservationExists(gomock.Any(), int64(7)).Return(true, nil)
	mockRepo.EXPECT().StopTimer(gomock.Any(), int64(7), gomock.Any()).
		Return(nil, waittime.ErrTimerNotRunning)

	_, err := uc.ToggleTimer(context.Background(), 7, false)
	assert.ErrorIs(t, err, waittime.ErrTimerNotRunning)
}
