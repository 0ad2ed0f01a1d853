package services

import (
	"fmt"
	"math"
	"time"

	"skyward-experiment/flightdeck/internal/apperrors"
	"skyward-experiment/flightdeck/internal/constants"
)

// classMultipliers scale a flight's base price into per-class fares.
var classMultipliers = map[constants.SeatClass]float64{
	constants.SeatClassEconomy:        1,
	constants.SeatClassPremiumEconomy: 1.3,
	constants.SeatClassBusiness:       2.5,
	constants.SeatClassFirst:          4,
}

// seatClassPrices are the per-seat surcharges by class; the economy
// surcharge is zero on purpose.
var seatClassPrices = map[constants.SeatClass]float64{
	constants.SeatClassEconomy:        0,
	constants.SeatClassPremiumEconomy: 30,
	constants.SeatClassBusiness:       100,
	constants.SeatClassFirst:          200,
}

// seatTypeMultipliers scale the class surcharge by physical position.
var seatTypeMultipliers = map[constants.SeatType]float64{
	constants.SeatTypeWindow: 1.2,
	constants.SeatTypeAisle:  1.1,
	constants.SeatTypeMiddle: 1,
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// ClassPricing derives the fare of every seat class from a flight's base
// price. The economy fare equals the base price exactly.
func ClassPricing(basePrice float64) map[constants.SeatClass]float64 {
	pricing := make(map[constants.SeatClass]float64, len(classMultipliers))
	for class, multiplier := range classMultipliers {
		pricing[class] = round2(basePrice * multiplier)
	}
	return pricing
}

// SeatPrice computes the surcharge of a single seat from its class and
// physical type.
func SeatPrice(class constants.SeatClass, seatType constants.SeatType) float64 {
	return round2(seatClassPrices[class] * seatTypeMultipliers[seatType])
}

// Duration returns the flight time in whole minutes. Timestamps may be
// supplied independently during display, so the ordering invariant is
// checked again here.
func Duration(departure, arrival time.Time) (int, error) {
	if !arrival.After(departure) {
		return 0, apperrors.NewValidationError(apperrors.FieldError{
			Field:   "arrivalTime",
			Message: constants.MsgInvalidTimeSequence,
			Code:    constants.CodeInvalidTimeSequence,
		})
	}
	return int(arrival.Sub(departure).Minutes()), nil
}

// FormatDuration renders minutes as "XhYm": hours floored, remainder minutes.
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
