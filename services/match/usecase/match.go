package usecase

import (
	"context"
	"math"

	"github.com/nyctaxi/dispatch/internal/pkg/logger"
	"github.com/nyctaxi/dispatch/internal/pkg/models"
	"github.com/nyctaxi/dispatch/internal/utils"
	"github.com/nyctaxi/dispatch/services/match"
)

// searchTier pairs the bounding-box half-width in degrees with the
// radius reported to the caller. One degree of latitude is ~111km, so
// 0.015 degrees approximates a 2km reach around the pickup point.
type searchTier struct {
	deltaDeg float64
	radiusM  int
}

var searchTiers = []searchTier{
	{deltaDeg: 0.015, radiusM: 2000},
	{deltaDeg: 0.030, radiusM: 4000},
	{deltaDeg: 0.045, radiusM: 6000},
}

// FindCandidates searches for available drivers around the reservation's
// pickup point, widening the bounding box tier by tier until at least
// one candidate turns up or the widest tier comes back empty
func (uc *MatchUC) FindCandidates(ctx context.Context, reservationID int64) (*models.MatchResult, error) {
	reservation, err := uc.repo.GetReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if !reservation.Status.Offerable() {
		return nil, match.ErrReservationNotOfferable
	}

	result := &models.MatchResult{Candidates: []models.Candidate{}}
	for _, tier := range searchTiers {
		result.RadiusM = tier.radiusM

		box := models.BoxAround(reservation.PickupLat, reservation.PickupLng, tier.deltaDeg)
		candidates, err := uc.repo.FindDriversInBox(ctx, box, reservation.VehicleTypeID)
		if err != nil {
			return nil, err
		}

		candidates, err = uc.repo.FilterOnline(ctx, candidates)
		if err != nil {
			return nil, err
		}
		if len(candidates) == 0 {
			continue
		}

		for i := range candidates {
			candidates[i].Geohash = utils.EncodeLocation(candidates[i].Latitude, candidates[i].Longitude, utils.CandidateGeohashPrecision)
			rating, err := uc.AverageRating(ctx, candidates[i].DriverID)
			if err != nil {
				// A missing rating should not sink the whole search
				logger.Warn("Failed to load driver rating",
					logger.String("driver_id", candidates[i].DriverID),
					logger.Err(err))
				rating = 0.0
			}
			candidates[i].Rating = rating
		}

		result.Candidates = candidates
		logger.Info("Driver candidates found",
			logger.Int64("reservation_id", reservationID),
			logger.Int("candidates", len(candidates)),
			logger.Int("radius_m", tier.radiusM))
		return result, nil
	}

	logger.Info("No driver candidates found",
		logger.Int64("reservation_id", reservationID),
		logger.Int("radius_m", result.RadiusM))
	return result, nil
}

// AverageRating returns the mean of all feedback ratings left for the
// driver, rounded to one decimal place. A driver with no feedback yet
// rates 0.0.
func (uc *MatchUC) AverageRating(ctx context.Context, driverID string) (float64, error) {
	ratings, err := uc.repo.GetFeedbackRatings(ctx, driverID)
	if err != nil {
		return 0, err
	}
	if len(ratings) == 0 {
		return 0.0, nil
	}

	sum := 0
	for _, r := range ratings {
		sum += r
	}
	avg := float64(sum) / float64(len(ratings))
	return math.Round(avg*10) / 10, nil
}
