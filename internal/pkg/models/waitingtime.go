package models

import "time"

// WaitingTime tracks billable waiting minutes for one reservation.
//
// While the timer is running StartTime is set and DurationMinutes holds
// only the minutes accumulated before the current interval. Stopping
// folds the elapsed whole minutes (floored) into DurationMinutes and
// clears StartTime.
type WaitingTime struct {
	ReservationID   int64      `json:"reservation_id" db:"reservation_id"`
	Status          bool       `json:"status" db:"status"`
	StartTime       *time.Time `json:"start_time,omitempty" db:"start_time"`
	DurationMinutes *int64     `json:"duration_minutes,omitempty" db:"duration_minutes"`
}

// AccumulatedMinutes returns the settled duration, treating an untouched
// timer as zero
func (w *WaitingTime) AccumulatedMinutes() int64 {
	if w.DurationMinutes == nil {
		return 0
	}
	return *w.DurationMinutes
}
