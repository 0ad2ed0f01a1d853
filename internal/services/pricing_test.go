package services

import (
	"fmt"
	"testing"
	"time"

	"skyward-experiment/flightdeck/internal/apperrors"
	"skyward-experiment/flightdeck/internal/constants"
)

func TestClassPricing(t *testing.T) {
	pricing := ClassPricing(199.99)

	if pricing[constants.SeatClassEconomy] != 199.99 {
		t.Errorf("Economy fare must equal base price exactly, got %v", pricing[constants.SeatClassEconomy])
	}
	if pricing[constants.SeatClassPremiumEconomy] != 259.99 {
		t.Errorf("Premium economy: expected 259.99, got %v", pricing[constants.SeatClassPremiumEconomy])
	}
	if pricing[constants.SeatClassBusiness] != 499.98 {
		t.Errorf("Business: expected 499.98, got %v", pricing[constants.SeatClassBusiness])
	}
	if pricing[constants.SeatClassFirst] != 799.96 {
		t.Errorf("First: expected 799.96, got %v", pricing[constants.SeatClassFirst])
	}
}

func TestClassPricing_RoundsToTwoDecimals(t *testing.T) {
	pricing := ClassPricing(100.333)

	if pricing[constants.SeatClassPremiumEconomy] != 130.43 {
		t.Errorf("Expected 130.43, got %v", pricing[constants.SeatClassPremiumEconomy])
	}
}

func TestSeatPrice(t *testing.T) {
	cases := []struct {
		class    constants.SeatClass
		seatType constants.SeatType
		want     float64
	}{
		{constants.SeatClassEconomy, constants.SeatTypeWindow, 0},
		{constants.SeatClassPremiumEconomy, constants.SeatTypeWindow, 36},
		{constants.SeatClassPremiumEconomy, constants.SeatTypeAisle, 33},
		{constants.SeatClassBusiness, constants.SeatTypeMiddle, 100},
		{constants.SeatClassFirst, constants.SeatTypeWindow, 240},
	}

	for _, tc := range cases {
		if got := SeatPrice(tc.class, tc.seatType); got != tc.want {
			t.Errorf("SeatPrice(%s, %s): expected %v, got %v", tc.class, tc.seatType, tc.want, got)
		}
	}
}

func TestDuration(t *testing.T) {
	departure := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	arrival := departure.Add(5*time.Hour + 25*time.Minute)

	minutes, err := Duration(departure, arrival)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if minutes != 325 {
		t.Errorf("Expected 325 minutes, got %d", minutes)
	}
}

func TestDuration_RejectsNonPositive(t *testing.T) {
	departure := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

	for _, arrival := range []time.Time{departure, departure.Add(-time.Hour)} {
		_, err := Duration(departure, arrival)
		if err == nil {
			t.Fatal("Expected an error for arrival <= departure")
		}
		appErr, ok := apperrors.AsAppError(err)
		if !ok || appErr.Code != constants.CodeValidationError {
			t.Errorf("Expected validation error, got %v", err)
		}
	}
}

func TestFormatDuration_RoundTrips(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "0h 0m"},
		{59, "0h 59m"},
		{60, "1h 0m"},
		{325, "5h 25m"},
		{1439, "23h 59m"},
	}

	for _, tc := range cases {
		if got := FormatDuration(tc.minutes); got != tc.want {
			t.Errorf("FormatDuration(%d): expected %q, got %q", tc.minutes, tc.want, got)
		}

		var h, m int
		if _, err := fmt.Sscanf(FormatDuration(tc.minutes), "%dh %dm", &h, &m); err != nil {
			t.Fatalf("Could not parse %q: %v", FormatDuration(tc.minutes), err)
		}
		if h != tc.minutes/60 || m != tc.minutes%60 {
			t.Errorf("Round trip of %d minutes gave %dh %dm", tc.minutes, h, m)
		}
	}
}
