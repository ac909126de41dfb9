package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyctaxi/dispatch/internal/pkg/constants"
	"github.com/nyctaxi/dispatch/internal/pkg/database"
	"github.com/nyctaxi/dispatch/internal/pkg/models"
	"github.com/nyctaxi/dispatch/services/match"
)

func setupMatchRepoTest(t *testing.T) (*MatchRepo, sqlmock.Sqlmock, *miniredis.Miniredis, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	mr, err := miniredis.Run()
	require.NoError(t, err)

	redisClient := &database.RedisClient{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}

	repo := NewMatchRepo(sqlx.NewDb(mockDB, "sqlmock"), redisClient)

	return repo, mock, mr, func() {
		mockDB.Close()
		redisClient.Close()
		mr.Close()
	}
}

func TestGetReservation_NotFound(t *testing.T) {
	repo, mock, _, cleanup := setupMatchRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT id, pickup_lat, pickup_lng, vehicle_type_id, status").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "pickup_lat", "pickup_lng", "vehicle_type_id", "status"}))

	_, err := repo.GetReservation(context.Background(), 404)
	assert.ErrorIs(t, err, match.ErrReservationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindDriversInBox(t *testing.T) {
	repo, mock, _, cleanup := setupMatchRepoTest(t)
	defer cleanup()

	box := models.BoxAround(43.6532, -79.3832, 0.015)
	rows := sqlmock.NewRows([]string{"driver_id", "first_name", "last_name", "phone", "brand", "seats", "latitude", "longitude"}).
		AddRow("driver-1", "Dana", "Reyes", "4165550001", "Toyota", 4, 43.6601, -79.3900)

	mock.ExpectQuery("SELECT u.id AS driver_id").
		WithArgs(int64(2), box.MinLat, box.MaxLat, box.MinLng, box.MaxLng).
		WillReturnRows(rows)

	candidates, err := repo.FindDriversInBox(context.Background(), box, 2)

	assert.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "driver-1", candidates[0].DriverID)
	assert.Equal(t, "Toyota", candidates[0].Brand)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Ratings come straight off the feedback rows, not via the reservation's
// driver column, so they survive a driver being detached from their past
// reservations.
func TestGetFeedbackRatings(t *testing.T) {
	repo, mock, _, cleanup := setupMatchRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT rating(.|\n)*FROM feedback(.|\n)*WHERE driver_id = \\$1").
		WithArgs("driver-1").
		WillReturnRows(sqlmock.NewRows([]string{"rating"}).AddRow(5).AddRow(4).AddRow(4))

	ratings, err := repo.GetFeedbackRatings(context.Background(), "driver-1")

	assert.NoError(t, err)
	assert.Equal(t, []int{5, 4, 4}, ratings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilterOnline_DropsOfflineDrivers(t *testing.T) {
	repo, _, mr, cleanup := setupMatchRepoTest(t)
	defer cleanup()

	mr.SAdd(constants.KeyOnlineDrivers, "driver-1")

	candidates := []models.Candidate{
		{DriverID: "driver-1"},
		{DriverID: "driver-2"},
	}

	filtered, err := repo.FilterOnline(context.Background(), candidates)

	assert.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "driver-1", filtered[0].DriverID)
}

func TestFilterOnline_RedisDownKeepsDatabaseResult(t *testing.T) {
	repo, _, mr, cleanup := setupMatchRepoTest(t)
	defer cleanup()

	mr.Close()

	candidates := []models.Candidate{{DriverID: "driver-1"}, {DriverID: "driver-2"}}

	filtered, err := repo.FilterOnline(context.Background(), candidates)

	assert.NoError(t, err)
	assert.Len(t, filtered, 2)
}

func TestFilterOnline_Empty(t *testing.T) {
	repo, _, _, cleanup := setupMatchRepoTest(t)
	defer cleanup()

	filtered, err := repo.FilterOnline(context.Background(), nil)

	assert.NoError(t, err)
	assert.Empty(t, filtered)
}
