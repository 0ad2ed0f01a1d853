package services

import (
	"github.com/google/uuid"

	"skyward-experiment/flightdeck/internal/constants"
	gormModels "skyward-experiment/flightdeck/internal/models/gorm"
)

var cabinColumns = []string{"A", "B", "C", "D", "E", "F"}

func seatsPerRowFor(class constants.SeatClass) int {
	if class == constants.SeatClassBusiness || class == constants.SeatClassFirst {
		return 4
	}
	return 6
}

// seatTypeFor derives the physical seat type from the column position
// within a row of the given width. Outermost columns are windows, the two
// columns straddling the midpoint are aisles, everything else is middle.
func seatTypeFor(colIndex, seatsPerRow int) constants.SeatType {
	switch {
	case colIndex == 0 || colIndex == seatsPerRow-1:
		return constants.SeatTypeWindow
	case colIndex == seatsPerRow/2-1 || colIndex == seatsPerRow/2:
		return constants.SeatTypeAisle
	default:
		return constants.SeatTypeMiddle
	}
}

// GenerateSeats synthesizes the full seat map of a new flight from the
// airplane's cabin configuration. An airplane without a configuration is
// all economy at full capacity.
//
// Classes are laid out in the fixed order of constants.SeatClassOrder and
// share one monotonically increasing row counter, so each class occupies a
// disjoint row range and an identical configuration always yields an
// identical seat set. A class stops emitting seats once its configured
// count is reached, even mid-row.
func GenerateSeats(flightID string, airplane *gormModels.Airplane) []gormModels.Seat {
	config := airplane.SeatConfiguration
	if len(config) == 0 {
		config = gormModels.SeatConfig{string(constants.SeatClassEconomy): airplane.Capacity}
	}

	var seats []gormModels.Seat
	currentRow := 1

	for _, class := range constants.SeatClassOrder {
		count := config[string(class)]
		if count <= 0 {
			continue
		}

		seatsPerRow := seatsPerRowFor(class)
		columns := cabinColumns[:seatsPerRow]
		rows := (count + seatsPerRow - 1) / seatsPerRow

		emitted := 0
		for row := 0; row < rows; row++ {
			for colIndex, column := range columns {
				if emitted >= count {
					break
				}
				seatType := seatTypeFor(colIndex, seatsPerRow)
				seat := gormModels.Seat{
					ID:          uuid.NewString(),
					FlightID:    flightID,
					Row:         currentRow,
					Column:      column,
					SeatClass:   class,
					SeatType:    seatType,
					IsAvailable: true,
					BasePrice:   SeatPrice(class, seatType),
				}
				seat.SeatNumber = seat.Label()
				seats = append(seats, seat)
				emitted++
			}
			currentRow++
		}
	}

	return seats
}
