package constants

type (
	SeatClass    string
	SeatType     string
	FlightStatus string
	APIStatus    string
	CachePrefix  string
	SortKey      string
)

const (
	SeatClassEconomy        SeatClass = "economy"
	SeatClassPremiumEconomy SeatClass = "premium-economy"
	SeatClassBusiness       SeatClass = "business"
	SeatClassFirst          SeatClass = "first"

	SeatTypeWindow SeatType = "window"
	SeatTypeAisle  SeatType = "aisle"
	SeatTypeMiddle SeatType = "middle"

	StatusScheduled FlightStatus = "scheduled"
	StatusBoarding  FlightStatus = "boarding"
	StatusDeparted  FlightStatus = "departed"
	StatusInFlight  FlightStatus = "in-flight"
	StatusArrived   FlightStatus = "arrived"
	StatusDelayed   FlightStatus = "delayed"
	StatusCancelled FlightStatus = "cancelled"

	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixSearch CachePrefix = "search"
	CachePrefixFlight CachePrefix = "flight"
	CachePrefixUser   CachePrefix = "user"

	SortByPrice     SortKey = "price"
	SortByDuration  SortKey = "duration"
	SortByDeparture SortKey = "departure"
	SortByArrival   SortKey = "arrival"
	SortByAirline   SortKey = "airline"
)

// SeatClassOrder is the fixed iteration order used when laying out a cabin.
// Row numbers are assigned while walking this list, so reordering it would
// renumber every seat on newly created flights.
var SeatClassOrder = []SeatClass{
	SeatClassEconomy,
	SeatClassPremiumEconomy,
	SeatClassBusiness,
	SeatClassFirst,
}

// SearchableStatuses are the only statuses a flight may be in to show up
// in customer search results.
var SearchableStatuses = []FlightStatus{StatusScheduled, StatusBoarding}

// IsValidStatus reports whether s is a known flight status.
func IsValidStatus(s FlightStatus) bool {
	switch s {
	case StatusScheduled, StatusBoarding, StatusDeparted, StatusInFlight,
		StatusArrived, StatusDelayed, StatusCancelled:
		return true
	}
	return false
}

// IsTerminalStatus reports whether a flight in status s may never transition again.
func IsTerminalStatus(s FlightStatus) bool {
	return s == StatusArrived || s == StatusCancelled
}

// IsValidSeatClass reports whether c is a known seat class.
func IsValidSeatClass(c SeatClass) bool {
	switch c {
	case SeatClassEconomy, SeatClassPremiumEconomy, SeatClassBusiness, SeatClassFirst:
		return true
	}
	return false
}
