package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nyctaxi/dispatch/internal/pkg/middleware"
	"github.com/nyctaxi/dispatch/internal/pkg/models"
	"github.com/nyctaxi/dispatch/internal/utils"
	"github.com/nyctaxi/dispatch/services/dispatch"
)

// ReservationHandler handles HTTP requests for reservation dispatch
type ReservationHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewReservationHandler creates a new reservation HTTP handler
func NewReservationHandler(dispatchUC dispatch.DispatchUC) *ReservationHandler {
	return &ReservationHandler{dispatchUC: dispatchUC}
}

// CreateReservationRequest is the request body for creating a reservation
type CreateReservationRequest struct {
	PassengerID   *string        `json:"passenger_id,omitempty"`
	FirstName     *string        `json:"first_name,omitempty"`
	LastName      *string        `json:"last_name,omitempty"`
	Phone         *string        `json:"phone,omitempty"`
	PickupLat     float64        `json:"pickup_lat"`
	PickupLng     float64        `json:"pickup_lng"`
	PickupAddress models.Address `json:"pickup_address"`
	DropAddress   models.Address `json:"drop_address"`
	VehicleTypeID int64          `json:"vehicle_type_id"`
	ChargeCents   int64          `json:"charge_cents"`
	PickupAt      time.Time      `json:"pickup_at"`
}

// AssignDriverRequest is the request body for assigning a driver
type AssignDriverRequest struct {
	DriverID string `json:"driver_id"`
}

// FeedbackRequest is the request body for recording feedback
type FeedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// CreateReservation handles POST /reservations
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	reservation := &models.Reservation{
		PassengerID:   req.PassengerID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Phone:         req.Phone,
		PickupLat:     req.PickupLat,
		PickupLng:     req.PickupLng,
		PickupAddress: req.PickupAddress,
		DropAddress:   req.DropAddress,
		VehicleTypeID: req.VehicleTypeID,
		ChargeCents:   req.ChargeCents,
		PickupAt:      req.PickupAt,
	}

	created, err := h.dispatchUC.CreateReservation(c.Request().Context(), reservation)
	if err != nil {
		return h.mapError(c, err)
	}

	middleware.SetReservationID(c, created.ID)
	return utils.SuccessResponse(c, http.StatusCreated, "Reservation created", created)
}

// GetReservation handles GET /reservations/:reservationID
func (h *ReservationHandler) GetReservation(c echo.Context) error {
	id, err := reservationID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid reservation ID")
	}

	reservation, err := h.dispatchUC.GetReservation(c.Request().Context(), id)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", reservation)
}

// ListReservations handles GET /reservations
func (h *ReservationHandler) ListReservations(c echo.Context) error {
	filter := models.ReservationFilter{
		PassengerID: c.QueryParam("passenger_id"),
		DriverID:    c.QueryParam("driver_id"),
		Status:      models.ReservationStatus(c.QueryParam("status")),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return utils.BadRequestResponse(c, "Unknown reservation status")
	}

	reservations, err := h.dispatchUC.ListReservations(c.Request().Context(), filter)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", reservations)
}

// AssignDriver handles POST /reservations/:reservationID/assign
func (h *ReservationHandler) AssignDriver(c echo.Context) error {
	id, err := reservationID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid reservation ID")
	}

	var req AssignDriverRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.DriverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	updated, err := h.dispatchUC.AssignDriver(c.Request().Context(), id, req.DriverID)
	if err != nil {
		return h.mapError(c, err)
	}

	middleware.SetDriverID(c, req.DriverID)
	return utils.SuccessResponse(c, http.StatusOK, "Driver assigned", updated)
}

// Accept handles POST /reservations/:reservationID/accept
func (h *ReservationHandler) Accept(c echo.Context) error {
	id, err := reservationID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid reservation ID")
	}

	updated, err := h.dispatchUC.Accept(c.Request().Context(), id)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Reservation accepted", updated)
}

// Reject handles POST /reservations/:reservationID/reject
func (h *ReservationHandler) Reject(c echo.Context) error {
	id, err := reservationID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid reservation ID")
	}

	updated, err := h.dispatchUC.Reject(c.Request().Context(), id)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Reservation rejected", updated)
}

// EndTrip handles POST /reservations/:reservationID/end
func (h *ReservationHandler) EndTrip(c echo.Context) error {
	id, err := reservationID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid reservation ID")
	}

	updated, err := h.dispatchUC.EndTrip(c.Request().Context(), id)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip ended", updated)
}

// RecordFeedback handles POST /reservations/:reservationID/feedback
func (h *ReservationHandler) RecordFeedback(c echo.Context) error {
	id, err := reservationID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid reservation ID")
	}

	var req FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	fb, err := h.dispatchUC.RecordFeedback(c.Request().Context(), id, req.Rating, req.Comment)
	if err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Feedback recorded", fb)
}

// RemoveDriverAccount handles DELETE /internal/drivers/:driverID
func (h *ReservationHandler) RemoveDriverAccount(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	if err := h.dispatchUC.RemoveDriverAccount(c.Request().Context(), driverID); err != nil {
		return h.mapError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver removed from dispatch", nil)
}

func reservationID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("reservationID"), 10, 64)
}

// mapError translates business errors into HTTP responses
func (h *ReservationHandler) mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, dispatch.ErrReservationNotFound),
		errors.Is(err, dispatch.ErrDriverNotFound),
		errors.Is(err, dispatch.ErrUserNotFound),
		errors.Is(err, dispatch.ErrVehicleTypeNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, dispatch.ErrInvalidTransition),
		errors.Is(err, dispatch.ErrOperatorDetailsRequired),
		errors.Is(err, dispatch.ErrFeedbackExists),
		errors.Is(err, dispatch.ErrFeedbackNotAllowed),
		errors.Is(err, dispatch.ErrInvalidRating):
		return utils.BadRequestResponse(c, err.Error())
	default:
		middleware.NoticeError(c, err)
		return utils.InternalServerErrorResponse(c, "")
	}
}
