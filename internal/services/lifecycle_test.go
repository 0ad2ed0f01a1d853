package services

import (
	"testing"
	"time"

	"skyward-experiment/flightdeck/internal/apperrors"
	"skyward-experiment/flightdeck/internal/constants"
	gormModels "skyward-experiment/flightdeck/internal/models/gorm"
)

func TestValidateStatusTransition_PermissiveByDefault(t *testing.T) {
	// Any move between non-terminal states is legal, including reverting
	// a delayed flight back to scheduled.
	cases := []struct {
		from, to constants.FlightStatus
	}{
		{constants.StatusScheduled, constants.StatusBoarding},
		{constants.StatusBoarding, constants.StatusScheduled},
		{constants.StatusDelayed, constants.StatusScheduled},
		{constants.StatusInFlight, constants.StatusCancelled},
		{constants.StatusDeparted, constants.StatusArrived},
	}

	for _, tc := range cases {
		if err := ValidateStatusTransition(tc.from, tc.to, ""); err != nil {
			t.Errorf("Transition %s -> %s should be allowed: %v", tc.from, tc.to, err)
		}
	}
}

func TestValidateStatusTransition_TerminalStatesAreFinal(t *testing.T) {
	for _, terminal := range []constants.FlightStatus{constants.StatusArrived, constants.StatusCancelled} {
		err := ValidateStatusTransition(terminal, constants.StatusScheduled, "")
		if err == nil {
			t.Fatalf("Expected leaving %s to fail", terminal)
		}
		appErr, ok := apperrors.AsAppError(err)
		if !ok || appErr.Code != constants.CodeTerminalStatus {
			t.Errorf("Expected %s conflict, got %v", constants.CodeTerminalStatus, err)
		}
	}
}

func TestValidateStatusTransition_DelayRequiresReason(t *testing.T) {
	err := ValidateStatusTransition(constants.StatusScheduled, constants.StatusDelayed, "")
	if !apperrors.HasDetailCode(err, constants.CodeDelayReasonRequired) {
		t.Errorf("Expected %s error, got %v", constants.CodeDelayReasonRequired, err)
	}

	if err := ValidateStatusTransition(constants.StatusScheduled, constants.StatusDelayed, "late inbound aircraft"); err != nil {
		t.Errorf("Delay with a reason should pass: %v", err)
	}
}

func TestValidateStatusTransition_UnknownStatus(t *testing.T) {
	err := ValidateStatusTransition(constants.StatusScheduled, "teleported", "")
	if !apperrors.HasDetailCode(err, constants.CodeInvalidStatus) {
		t.Errorf("Expected %s error, got %v", constants.CodeInvalidStatus, err)
	}
}

func TestStatusUpdateAttrs_StampsActualTimes(t *testing.T) {
	now := time.Date(2026, 6, 1, 14, 30, 0, 0, time.UTC)

	attrs := StatusUpdateAttrs(constants.StatusDeparted, "", now)
	if attrs["actual_departure_time"] != now {
		t.Errorf("Departed must stamp actual_departure_time, got %v", attrs["actual_departure_time"])
	}
	if _, present := attrs["actual_arrival_time"]; present {
		t.Error("Departed must leave actual_arrival_time untouched")
	}

	attrs = StatusUpdateAttrs(constants.StatusArrived, "", now)
	if attrs["actual_arrival_time"] != now {
		t.Errorf("Arrived must stamp actual_arrival_time, got %v", attrs["actual_arrival_time"])
	}
	if _, present := attrs["actual_departure_time"]; present {
		t.Error("Arrived must leave actual_departure_time untouched")
	}

	attrs = StatusUpdateAttrs(constants.StatusDelayed, "weather", now)
	if attrs["delay_reason"] != "weather" {
		t.Errorf("Delayed must persist the reason, got %v", attrs["delay_reason"])
	}
}

func TestCheckScheduleChange(t *testing.T) {
	departure := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	flight := &gormModels.Flight{DepartureTime: departure}

	threeHours := departure.Add(3 * time.Hour)
	oneHour := departure.Add(time.Hour)
	threeHoursEarlier := departure.Add(-3 * time.Hour)

	// No bookings: any shift is fine.
	if err := CheckScheduleChange(flight, &threeHours, 0); err != nil {
		t.Errorf("Unbooked flight should reschedule freely: %v", err)
	}

	// With bookings: more than two hours is rejected, in both directions.
	for _, shifted := range []*time.Time{&threeHours, &threeHoursEarlier} {
		err := CheckScheduleChange(flight, shifted, 1)
		if err == nil {
			t.Fatal("Expected a conflict for a 3 hour shift with bookings")
		}
		appErr, ok := apperrors.AsAppError(err)
		if !ok || appErr.Code != constants.CodeTimeChangeRestricted {
			t.Errorf("Expected %s, got %v", constants.CodeTimeChangeRestricted, err)
		}
	}

	// One hour stays within the allowance.
	if err := CheckScheduleChange(flight, &oneHour, 1); err != nil {
		t.Errorf("A 1 hour shift should pass: %v", err)
	}

	// Arrival-only updates never trip the guard.
	if err := CheckScheduleChange(flight, nil, 5); err != nil {
		t.Errorf("Nil departure change should pass: %v", err)
	}
}
