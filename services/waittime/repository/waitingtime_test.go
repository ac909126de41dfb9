package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyctaxi/dispatch/services/waittime"
)

func setupWaitTimeRepoTest(t *testing.T) (*WaitTimeRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewWaitTimeRepo(sqlxDB)

	return repo, mock, func() { mockDB.Close() }
}

func timerColumns() []string {
	return []string{"reservation_id", "status", "start_time", "duration_minutes"}
}

func TestStartTimer_FreshAndRestart(t *testing.T) {
	repo, mock, cleanup := setupWaitTimeRepoTest(t)
	defer cleanup()

	startedAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO waiting_times").
		WithArgs(int64(7), startedAt).
		WillReturnRows(sqlmock.NewRows(timerColumns()).
			AddRow(int64(7), true, startedAt, nil))

	timer, err := repo.StartTimer(context.Background(), 7, startedAt)

	assert.NoError(t, err)
	assert.True(t, timer.Status)
	assert.Equal(t, startedAt, timer.StartTime.UTC())
	assert.Equal(t, int64(0), timer.AccumulatedMinutes())
	assert.NoError(t, mock.ExpectationsWereMet())

	// Restarting moves the start instant without touching the settled
	// duration
	restartedAt := startedAt.Add(5 * time.Minute)
	mock.ExpectQuery("INSERT INTO waiting_times").
		WithArgs(int64(7), restartedAt).
		WillReturnRows(sqlmock.NewRows(timerColumns()).
			AddRow(int64(7), true, restartedAt, int64(3)))

	timer, err = repo.StartTimer(context.Background(), 7, restartedAt)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), timer.AccumulatedMinutes())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStopTimer_FloorsPartialMinutes(t *testing.T) {
	repo, mock, cleanup := setupWaitTimeRepoTest(t)
	defer cleanup()

	startedAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	stoppedAt := startedAt.Add(7*time.Minute + 30*time.Second)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT reservation_id, status, start_time, duration_minutes").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(timerColumns()).
			AddRow(int64(7), true, startedAt, nil))
	mock.ExpectQuery("UPDATE waiting_times").
		WithArgs(int64(7), int64(7)).
		WillReturnRows(sqlmock.NewRows(timerColumns()).
			AddRow(int64(7), false, nil, int64(7)))
	mock.ExpectCommit()

	timer, err := repo.StopTimer(context.Background(), 7, stoppedAt)

	assert.NoError(t, err)
	assert.False(t, timer.Status)
	assert.Nil(t, timer.StartTime)
	assert.Equal(t, int64(7), timer.AccumulatedMinutes())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStopTimer_AccumulatesAcrossCycles(t *testing.T) {
	repo, mock, cleanup := setupWaitTimeRepoTest(t)
	defer cleanup()

	// 7 settled minutes already, a further 2-minute interval running
	startedAt := time.Date(2025, 6, 1, 10, 10, 0, 0, time.UTC)
	stoppedAt := startedAt.Add(2 * time.Minute)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT reservation_id, status, start_time, duration_minutes").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(timerColumns()).
			AddRow(int64(7), true, startedAt, int64(7)))
	mock.ExpectQuery("UPDATE waiting_times").
		WithArgs(int64(7), int64(9)).
		WillReturnRows(sqlmock.NewRows(timerColumns()).
			AddRow(int64(7), false, nil, int64(9)))
	mock.ExpectCommit()

	timer, err := repo.StopTimer(context.Background(), 7, stoppedAt)

	assert.NoError(t, err)
	assert.Equal(t, int64(9), timer.AccumulatedMinutes())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStopTimer_NotRunning(t *testing.T) {
	repo, mock, cleanup := setupWaitTimeRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT reservation_id, status, start_time, duration_minutes").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(timerColumns()).
			AddRow(int64(7), false, nil, int64(4)))
	mock.ExpectRollback()

	timer, err := repo.StopTimer(context.Background(), 7, time.Now())

	assert.Nil(t, timer)
	assert.ErrorIs(t, err, waittime.ErrTimerNotRunning)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStopTimer_NoRecord(t *testing.T) {
	repo, mock, cleanup := setupWaitTimeRepoTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT reservation_id, status, start_time, duration_minutes").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(timerColumns()))
	mock.ExpectRollback()

	_, err := repo.StopTimer(context.Background(), 404, time.Now())
	assert.ErrorIs(t, err, waittime.ErrTimerNotRunning)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTimer_NotFound(t *testing.T) {
	repo, mock, cleanup := setupWaitTimeRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT reservation_id, status, start_time, duration_minutes").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(timerColumns()))

	_, err := repo.GetTimer(context.Background(), 404)
	assert.ErrorIs(t, err, waittime.ErrTimerNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
