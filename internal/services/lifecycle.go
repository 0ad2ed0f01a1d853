package services

import (
	"time"

	"skyward-experiment/flightdeck/internal/apperrors"
	"skyward-experiment/flightdeck/internal/constants"
	gormModels "skyward-experiment/flightdeck/internal/models/gorm"
)

// maxScheduleShift is the largest departure-time change allowed on a flight
// that already has bookings.
const maxScheduleShift = 2 * time.Hour

// ValidateStatusTransition checks whether a flight may move to the given
// status. The transition table is deliberately permissive: any move is legal
// except leaving a terminal state, and delaying requires a reason. Airlines
// do revert "delayed" flights to "scheduled".
func ValidateStatusTransition(current, next constants.FlightStatus, reason string) error {
	if !constants.IsValidStatus(next) {
		return apperrors.NewValidationError(apperrors.FieldError{
			Field:   "status",
			Message: "Unknown flight status: " + string(next),
			Code:    constants.CodeInvalidStatus,
		})
	}

	if constants.IsTerminalStatus(current) {
		return apperrors.NewConflictError(
			"Flight status "+string(current)+" is terminal",
			constants.CodeTerminalStatus,
		)
	}

	if next == constants.StatusDelayed && reason == "" {
		return apperrors.NewValidationError(apperrors.FieldError{
			Field:   "reason",
			Message: constants.MsgDelayReasonRequired,
			Code:    constants.CodeDelayReasonRequired,
		})
	}

	return nil
}

// StatusUpdateAttrs builds the column updates for a status transition.
// Departing stamps the actual departure time, arriving the actual arrival
// time; nothing else is touched.
func StatusUpdateAttrs(next constants.FlightStatus, reason string, now time.Time) map[string]interface{} {
	attrs := map[string]interface{}{"status": next}

	if next == constants.StatusDelayed && reason != "" {
		attrs["delay_reason"] = reason
	}
	if next == constants.StatusDeparted {
		attrs["actual_departure_time"] = now
	}
	if next == constants.StatusArrived {
		attrs["actual_arrival_time"] = now
	}

	return attrs
}

// CheckScheduleChange enforces the reschedule guard: once a flight has
// bookings, its departure may shift by at most two hours. Flights without
// bookings may be rescheduled freely.
func CheckScheduleChange(flight *gormModels.Flight, newDeparture *time.Time, bookingCount int64) error {
	if bookingCount == 0 || newDeparture == nil {
		return nil
	}

	shift := newDeparture.Sub(flight.DepartureTime)
	if shift < 0 {
		shift = -shift
	}
	if shift > maxScheduleShift {
		return apperrors.NewConflictError(
			constants.MsgTimeChangeRestricted,
			constants.CodeTimeChangeRestricted,
		)
	}

	return nil
}
