package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/nyctaxi/dispatch/internal/pkg/models"
	"github.com/nyctaxi/dispatch/services/dispatch"
	"github.com/nyctaxi/dispatch/services/dispatch/mocks"
)

func performRequest(t *testing.T, handler echo.HandlerFunc, method, path, body string, params map[string]string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for name, value := range params {
		c.SetParamNames(name)
		c.SetParamValues(value)
	}

	assert.NoError(t, handler(c))
	return rec
}

func TestCreateReservation_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	h := NewReservationHandler(mockUC)

	passengerID := "passenger-1"
	created := &models.Reservation{ID: 7, PassengerID: &passengerID, Status: models.StatusNotAssigned}
	mockUC.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).Return(created, nil)

	body := `{"passenger_id":"passenger-1","pickup_lat":43.65,"pickup_lng":-79.38,"vehicle_type_id":2,"charge_cents":2000,"pickup_at":"2025-06-01T14:30:00Z"}`
	rec := performRequest(t, h.CreateReservation, http.MethodPost, "/reservations", body, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			ReservationID int64 `json:"reservation_id"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, int64(7), resp.Data.ReservationID)
}

func TestCreateReservation_OperatorDetailsRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	h := NewReservationHandler(mockUC)

	mockUC.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).
		Return(nil, dispatch.ErrOperatorDetailsRequired)

	rec := performRequest(t, h.CreateReservation, http.MethodPost, "/reservations",
		`{"pickup_lat":43.65,"pickup_lng":-79.38,"vehicle_type_id":2}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetReservation_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	h := NewReservationHandler(mockUC)

	mockUC.EXPECT().GetReservation(gomock.Any(), int64(404)).
		Return(nil, dispatch.ErrReservationNotFound)

	rec := performRequest(t, h.GetReservation, http.MethodGet, "/reservations/404", "",
		map[string]string{"reservationID": "404"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetReservation_BadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewReservationHandler(mocks.NewMockDispatchUC(ctrl))

	rec := performRequest(t, h.GetReservation, http.MethodGet, "/reservations/abc", "",
		map[string]string{"reservationID": "abc"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAssignDriver_InvalidTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	h := NewReservationHandler(mockUC)

	mockUC.EXPECT().AssignDriver(gomock.Any(), int64(7), "driver-1").
		Return(nil, dispatch.ErrInvalidTransition)

	rec := performRequest(t, h.AssignDriver, http.MethodPost, "/reservations/7/assign",
		`{"driver_id":"driver-1"}`, map[string]string{"reservationID": "7"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAssignDriver_MissingDriverID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewReservationHandler(mocks.NewMockDispatchUC(ctrl))

	rec := performRequest(t, h.AssignDriver, http.MethodPost, "/reservations/7/assign",
		`{}`, map[string]string{"reservationID": "7"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListReservations_UnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewReservationHandler(mocks.NewMockDispatchUC(ctrl))

	rec := performRequest(t, h.ListReservations, http.MethodGet, "/reservations?status=CANCELLED", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordFeedback_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	h := NewReservationHandler(mockUC)

	fb := &models.Feedback{ID: 1, ReservationID: 7, Rating: 5, Comment: "smooth ride"}
	mockUC.EXPECT().RecordFeedback(gomock.Any(), int64(7), 5, "smooth ride").Return(fb, nil)

	rec := performRequest(t, h.RecordFeedback, http.MethodPost, "/reservations/7/feedback",
		`{"rating":5,"comment":"smooth ride"}`, map[string]string{"reservationID": "7"})

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRemoveDriverAccount_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	h := NewReservationHandler(mockUC)

	mockUC.EXPECT().RemoveDriverAccount(gomock.Any(), "driver-1").Return(nil)

	rec := performRequest(t, h.RemoveDriverAccount, http.MethodDelete, "/internal/drivers/driver-1", "",
		map[string]string{"driverID": "driver-1"})

	assert.Equal(t, http.StatusOK, rec.Code)
}
