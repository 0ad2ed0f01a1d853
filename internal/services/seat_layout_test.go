package services

import (
	"fmt"
	"testing"

	"skyward-experiment/flightdeck/internal/constants"
	gormModels "skyward-experiment/flightdeck/internal/models/gorm"
)

func testAirplane(config gormModels.SeatConfig, capacity int) *gormModels.Airplane {
	return &gormModels.Airplane{
		ID:                "airplane-1",
		Capacity:          capacity,
		SeatConfiguration: config,
	}
}

func countByClass(seats []gormModels.Seat) map[constants.SeatClass]int {
	counts := make(map[constants.SeatClass]int)
	for _, s := range seats {
		counts[s.SeatClass]++
	}
	return counts
}

func TestGenerateSeats_ExactCountsPerClass(t *testing.T) {
	airplane := testAirplane(gormModels.SeatConfig{
		"economy":         13,
		"premium-economy": 7,
		"business":        5,
		"first":           2,
	}, 27)

	seats := GenerateSeats("flight-1", airplane)

	if len(seats) != 27 {
		t.Fatalf("Expected 27 seats, got %d", len(seats))
	}

	counts := countByClass(seats)
	expected := map[constants.SeatClass]int{
		constants.SeatClassEconomy:        13,
		constants.SeatClassPremiumEconomy: 7,
		constants.SeatClassBusiness:       5,
		constants.SeatClassFirst:          2,
	}
	for class, want := range expected {
		if counts[class] != want {
			t.Errorf("Class %s: expected %d seats, got %d", class, want, counts[class])
		}
	}
}

func TestGenerateSeats_NoSeatNumberCollisions(t *testing.T) {
	airplane := testAirplane(gormModels.SeatConfig{
		"economy":  50,
		"business": 10,
	}, 60)

	seats := GenerateSeats("flight-1", airplane)

	seen := make(map[string]bool)
	for _, s := range seats {
		key := fmt.Sprintf("%d-%s", s.Row, s.Column)
		if seen[key] {
			t.Errorf("Duplicate seat position %s", key)
		}
		seen[key] = true

		if s.SeatNumber != s.Label() {
			t.Errorf("Seat number %s does not match label %s", s.SeatNumber, s.Label())
		}
	}
}

func TestGenerateSeats_ScenarioTwoClassCabin(t *testing.T) {
	// 12 economy seats at 6 across and 4 business at 4 across:
	// economy fills rows 1-2 completely, business takes row 3.
	airplane := testAirplane(gormModels.SeatConfig{
		"economy":  12,
		"business": 4,
	}, 16)

	seats := GenerateSeats("flight-1", airplane)

	if len(seats) != 16 {
		t.Fatalf("Expected 16 seats, got %d", len(seats))
	}

	for _, s := range seats {
		switch s.SeatClass {
		case constants.SeatClassEconomy:
			if s.Row != 1 && s.Row != 2 {
				t.Errorf("Economy seat %s in row %d, expected rows 1-2", s.SeatNumber, s.Row)
			}
		case constants.SeatClassBusiness:
			if s.Row != 3 {
				t.Errorf("Business seat %s in row %d, expected row 3", s.SeatNumber, s.Row)
			}
		}
	}
}

func TestGenerateSeats_StopsMidRow(t *testing.T) {
	airplane := testAirplane(gormModels.SeatConfig{"economy": 8}, 8)

	seats := GenerateSeats("flight-1", airplane)

	if len(seats) != 8 {
		t.Fatalf("Expected 8 seats, got %d", len(seats))
	}

	// Row 2 holds only the remaining two seats, columns A and B.
	var row2 []string
	for _, s := range seats {
		if s.Row == 2 {
			row2 = append(row2, s.Column)
		}
	}
	if len(row2) != 2 || row2[0] != "A" || row2[1] != "B" {
		t.Errorf("Expected row 2 to hold columns [A B], got %v", row2)
	}
}

func TestGenerateSeats_SeatTypeFromColumnPosition(t *testing.T) {
	// 6 across: A F window, C D aisle, B E middle.
	wide := map[string]constants.SeatType{
		"A": constants.SeatTypeWindow,
		"B": constants.SeatTypeMiddle,
		"C": constants.SeatTypeAisle,
		"D": constants.SeatTypeAisle,
		"E": constants.SeatTypeMiddle,
		"F": constants.SeatTypeWindow,
	}
	// 4 across: A D window, B C aisle, no middles.
	narrow := map[string]constants.SeatType{
		"A": constants.SeatTypeWindow,
		"B": constants.SeatTypeAisle,
		"C": constants.SeatTypeAisle,
		"D": constants.SeatTypeWindow,
	}

	airplane := testAirplane(gormModels.SeatConfig{
		"economy":  6,
		"business": 4,
	}, 10)

	for _, s := range GenerateSeats("flight-1", airplane) {
		var want constants.SeatType
		if s.SeatClass == constants.SeatClassEconomy {
			want = wide[s.Column]
		} else {
			want = narrow[s.Column]
		}
		if s.SeatType != want {
			t.Errorf("Seat %s (%s): expected type %s, got %s", s.SeatNumber, s.SeatClass, want, s.SeatType)
		}
	}
}

func TestGenerateSeats_DefaultsToAllEconomy(t *testing.T) {
	airplane := testAirplane(nil, 18)

	seats := GenerateSeats("flight-1", airplane)

	if len(seats) != 18 {
		t.Fatalf("Expected 18 seats, got %d", len(seats))
	}
	for _, s := range seats {
		if s.SeatClass != constants.SeatClassEconomy {
			t.Fatalf("Expected all economy, found %s", s.SeatClass)
		}
	}
}

func TestGenerateSeats_Deterministic(t *testing.T) {
	airplane := testAirplane(gormModels.SeatConfig{
		"economy":  30,
		"business": 8,
		"first":    4,
	}, 42)

	first := GenerateSeats("flight-1", airplane)
	second := GenerateSeats("flight-1", airplane)

	if len(first) != len(second) {
		t.Fatalf("Runs differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		a, b := first[i], second[i]
		if a.SeatNumber != b.SeatNumber || a.SeatClass != b.SeatClass ||
			a.SeatType != b.SeatType || a.BasePrice != b.BasePrice {
			t.Errorf("Seat %d differs between runs: %+v vs %+v", i, a, b)
		}
	}
}

func TestGenerateSeats_SeatPrices(t *testing.T) {
	airplane := testAirplane(gormModels.SeatConfig{"business": 4}, 4)

	expected := map[constants.SeatType]float64{
		constants.SeatTypeWindow: 120, // 100 x 1.2
		constants.SeatTypeAisle:  110, // 100 x 1.1
		constants.SeatTypeMiddle: 100,
	}
	for _, s := range GenerateSeats("flight-1", airplane) {
		if s.BasePrice != expected[s.SeatType] {
			t.Errorf("Business %s seat priced %.2f, expected %.2f", s.SeatType, s.BasePrice, expected[s.SeatType])
		}
	}
}
