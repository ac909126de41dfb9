package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/nyctaxi/dispatch/internal/pkg/models"
	"github.com/nyctaxi/dispatch/services/dispatch"
	"github.com/nyctaxi/dispatch/services/dispatch/mocks"
)

func strPtr(s string) *string { return &s }

func setupUC(t *testing.T) (*DispatchUC, *mocks.MockReservationRepo, *mocks.MockNotifyGW, *mocks.MockDriverPoolGW, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockReservationRepo(ctrl)
	mockNotify := mocks.NewMockNotifyGW(ctrl)
	mockPool := mocks.NewMockDriverPoolGW(ctrl)
	uc := NewDispatchUC(&models.Config{}, mockRepo, mockNotify, mockPool)
	return uc, mockRepo, mockNotify, mockPool, ctrl
}

func passengerReservation() *models.Reservation {
	return &models.Reservation{
		ID:            7,
		PassengerID:   strPtr("passenger-1"),
		PickupAddress: models.Address{StreetNo: "12", Route: "King St", City: "Toronto", Province: "ON", ZipCode: "M5H 1A1"},
		DropAddress:   models.Address{StreetNo: "300", Route: "Front St", City: "Toronto", Province: "ON", ZipCode: "M5V 2T6"},
		VehicleTypeID: 2,
		Status:        models.StatusNotAssigned,
		ChargeCents:   2000,
		PickupAt:      time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC),
	}
}

func TestCreateReservation_ByPassenger(t *testing.T) {
	uc, mockRepo, _, _, ctrl := setupUC(t)
	defer ctrl.Finish()

	reservation := passengerReservation()
	mockRepo.EXPECT().GetVehicleType(gomock.Any(), int64(2)).Return(&models.VehicleType{ID: 2, Type: "Sedan", RateCents: 2000}, nil)
	mockRepo.EXPECT().CreateReservation(gomock.Any(), reservation).Return(reservation, nil)

	created, err := uc.CreateReservation(context.Background(), reservation)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
}

func TestCreateReservation_OperatorMissingDetails(t *testing.T) {
	uc, _, _, _, ctrl := setupUC(t)
	defer ctrl.Finish()

	reservation := passengerReservation()
	reservation.PassengerID = nil
	reservation.FirstName = strPtr("Walk")
	// last name and phone missing

	_, err := uc.CreateReservation(context.Background(), reservation)
	assert.ErrorIs(t, err, dispatch.ErrOperatorDetailsRequired)
}

func TestCreateReservation_UnknownVehicleType(t *testing.T) {
	uc, mockRepo, _, _, ctrl := setupUC(t)
	defer ctrl.Finish()

	reservation := passengerReservation()
	mockRepo.EXPECT().GetVehicleType(gomock.Any(), int64(2)).Return(nil, dispatch.ErrVehicleTypeNotFound)

	_, err := uc.CreateReservation(context.Background(), reservation)
	assert.ErrorIs(t, err, dispatch.ErrVehicleTypeNotFound)
}

func TestAssignDriver_NotifiesDriver(t *testing.T) {
	uc, mockRepo, mockNotify, _, ctrl := setupUC(t)
	defer ctrl.Finish()

	assigned := passengerReservation()
	assigned.DriverID = strPtr("driver-1")
	assigned.Status = models.StatusAssigned

	driver := &models.DriverProfile{
		User: models.User{ID: "driver-1", FirstName: "Dana", LastName: "Reyes", Phone: "4165550001"},
	}

	mockRepo.EXPECT().GetDriverProfile(gomock.Any(), "driver-1").Return(driver, nil)
	mockRepo.EXPECT().AssignDriver(gomock.Any(), int64(7), "driver-1").Return(assigned, nil)
	mockRepo.EXPECT().GetUser(gomock.Any(), "passenger-1").Return(&models.User{FirstName: "Pat", LastName: "Lau", Phone: "4165550002"}, nil)
	mockNotify.EXPECT().
		PublishSMS(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.SMSEvent) error {
			assert.Equal(t, models.SMSDriverRequest, event.Kind)
			assert.Equal(t, "4165550001", event.To)
			assert.Equal(t, "Pat Lau", event.Name)
			assert.Equal(t, "4165550002", event.Phone)
			assert.NotEmpty(t, event.ID)
			return nil
		})

	updated, err := uc.AssignDriver(context.Background(), 7, "driver-1")

	assert.NoError(t, err)
	assert.Equal(t, models.StatusAssigned, updated.Status)
}

func TestAssignDriver_PublishFailureSwallowed(t *testing.T) {
	uc, mockRepo, mockNotify, _, ctrl := setupUC(t)
	defer ctrl.Finish()

	assigned := passengerReservation()
	assigned.DriverID = strPtr("driver-1")
	assigned.Status = models.StatusAssigned

	mockRepo.EXPECT().GetDriverProfile(gomock.Any(), "driver-1").
		Return(&models.DriverProfile{User: models.User{Phone: "4165550001"}}, nil)
	mockRepo.EXPECT().AssignDriver(gomock.Any(), int64(7), "driver-1").Return(assigned, nil)
	mockRepo.EXPECT().GetUser(gomock.Any(), "passenger-1").Return(&models.User{Phone: "4165550002"}, nil)
	mockNotify.EXPECT().PublishSMS(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

	_, err := uc.AssignDriver(context.Background(), 7, "driver-1")
	assert.NoError(t, err)
}

func TestAssignDriver_UnknownDriver(t *testing.T) {
	uc, mockRepo, _, _, ctrl := setupUC(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().GetDriverProfile(gomock.Any(), "ghost").Return(nil, dispatch.ErrDriverNotFound)

	_, err := uc.AssignDriver(context.Background(), 7, "ghost")
	assert.ErrorIs(t, err, dispatch.ErrDriverNotFound)
}

func TestAccept_NotifiesRequesterWithVehicle(t *testing.T) {
	uc, mockRepo, mockNotify, _, ctrl := setupUC(t)
	defer ctrl.Finish()

	accepted := passengerReservation()
	accepted.DriverID = strPtr("driver-1")
	accepted.Status = models.StatusAccepted

	driver := &models.DriverProfile{
		User:        models.User{FirstName: "Dana", LastName: "Reyes", Phone: "4165550001"},
		Vehicle:     models.DriverVehicle{Brand: "Toyota", Seats: 4},
		VehicleType: models.VehicleType{Type: "Sedan"},
	}

	mockRepo.EXPECT().MarkAccepted(gomock.Any(), int64(7)).Return(accepted, nil)
	mockRepo.EXPECT().GetDriverProfile(gomock.Any(), "driver-1").Return(driver, nil)
	mockRepo.EXPECT().GetUser(gomock.Any(), "passenger-1").Return(&models.User{Phone: "4165550002"}, nil)
	mockNotify.EXPECT().
		PublishSMS(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.SMSEvent) error {
			assert.Equal(t, models.SMSAccepted, event.Kind)
			assert.Equal(t, "4165550002", event.To)
			assert.Equal(t, "Dana Reyes", event.Name)
			assert.Equal(t, "Toyota", event.Brand)
			assert.Equal(t, "Sedan", event.VehicleType)
			assert.Equal(t, 4, event.Seats)
			return nil
		})

	updated, err := uc.Accept(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, updated.Status)
}

func TestReject_NamesDriverWithoutContact(t *testing.T) {
	uc, mockRepo, mockNotify, _, ctrl := setupUC(t)
	defer ctrl.Finish()

	prior := passengerReservation()
	prior.DriverID = strPtr("driver-1")
	prior.Status = models.StatusAssigned

	rejected := passengerReservation()
	rejected.Status = models.StatusRejected

	mockRepo.EXPECT().GetReservation(gomock.Any(), int64(7)).Return(prior, nil)
	mockRepo.EXPECT().GetUser(gomock.Any(), "driver-1").Return(&models.User{FirstName: "Dana", LastName: "Reyes", Phone: "4165550001"}, nil)
	mockRepo.EXPECT().MarkRejected(gomock.Any(), int64(7)).Return(rejected, nil)
	mockRepo.EXPECT().GetUser(gomock.Any(), "passenger-1").Return(&models.User{Phone: "4165550002"}, nil)
	mockNotify.EXPECT().
		PublishSMS(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.SMSEvent) error {
			assert.Equal(t, models.SMSRejected, event.Kind)
			assert.Equal(t, "Dana Reyes", event.Name)
			assert.Empty(t, event.DriverPhone)
			return nil
		})

	updated, err := uc.Reject(context.Background(), 7)

	assert.NoError(t, err)
	assert.Nil(t, updated.DriverID)
	assert.Equal(t, models.StatusRejected, updated.Status)
}

func TestEndTrip_NotifiesFinalCharge(t *testing.T) {
	uc, mockRepo, mockNotify, _, ctrl := setupUC(t)
	defer ctrl.Finish()

	ended := passengerReservation()
	ended.Status = models.StatusEnded
	ended.ChargeCents = 3000 // 20.00 base + 10.00 waiting surcharge

	mockRepo.EXPECT().EndTrip(gomock.Any(), int64(7)).Return(ended, nil)
	mockRepo.EXPECT().GetUser(gomock.Any(), "passenger-1").Return(&models.User{Phone: "4165550002"}, nil)
	mockNotify.EXPECT().
		PublishSMS(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.SMSEvent) error {
			assert.Equal(t, models.SMSTripEnded, event.Kind)
			assert.Equal(t, int64(3000), event.ChargeCents)
			return nil
		})

	updated, err := uc.EndTrip(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(3000), updated.ChargeCents)
}

func TestRecordFeedback_InvalidRating(t *testing.T) {
	uc, _, _, _, ctrl := setupUC(t)
	defer ctrl.Finish()

	for _, rating := range []int{6, 0, -1} {
		_, err := uc.RecordFeedback(context.Background(), 7, rating, "great")
		assert.ErrorIs(t, err, dispatch.ErrInvalidRating, "rating %d", rating)
	}
}

func TestRecordFeedback_Success(t *testing.T) {
	uc, mockRepo, _, _, ctrl := setupUC(t)
	defer ctrl.Finish()

	fb := &models.Feedback{ID: 1, ReservationID: 7, Rating: 5, Comment: "smooth ride"}
	mockRepo.EXPECT().CreateFeedback(gomock.Any(), int64(7), 5, "smooth ride").Return(fb, nil)

	created, err := uc.RecordFeedback(context.Background(), 7, 5, "smooth ride")

	assert.NoError(t, err)
	assert.Equal(t, 5, created.Rating)
}

func TestRemoveDriverAccount_PoolFailureSwallowed(t *testing.T) {
	uc, mockRepo, _, mockPool, ctrl := setupUC(t)
	defer ctrl.Finish()

	mockRepo.EXPECT().ClearDriverAssignments(gomock.Any(), "driver-1").Return(int64(2), nil)
	mockPool.EXPECT().RemoveDriver(gomock.Any(), "driver-1").Return(errors.New("redis down"))

	err := uc.RemoveDriverAccount(context.Background(), "driver-1")
	assert.NoError(t, err)
}
