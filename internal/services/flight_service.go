package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"skyward-experiment/flightdeck/internal/apperrors"
	"skyward-experiment/flightdeck/internal/common"
	"skyward-experiment/flightdeck/internal/constants"
	"skyward-experiment/flightdeck/internal/db/repositories"
	"skyward-experiment/flightdeck/internal/logging"
	"skyward-experiment/flightdeck/internal/metrics"
	"skyward-experiment/flightdeck/internal/models/dtos"
	gormModels "skyward-experiment/flightdeck/internal/models/gorm"

	"github.com/google/uuid"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// FlightService implements flight search, inventory reads and the admin
// mutations that drive the flight lifecycle.
type FlightService struct {
	flights   *repositories.FlightRepository
	seats     *repositories.SeatRepository
	airplanes *repositories.AirplaneRepository
	bookings  *repositories.BookingRepository
	cache     common.CacheInterface
	metrics   *metrics.MetricsRegistry

	// loc is the reference timezone for calendar-day and hour-of-day
	// search filters.
	loc *time.Location
}

func NewFlightService(
	flights *repositories.FlightRepository,
	seats *repositories.SeatRepository,
	airplanes *repositories.AirplaneRepository,
	bookings *repositories.BookingRepository,
	cache common.CacheInterface,
	metricsReg *metrics.MetricsRegistry,
	loc *time.Location,
) *FlightService {
	if loc == nil {
		loc = time.Local
	}
	return &FlightService{
		flights:   flights,
		seats:     seats,
		airplanes: airplanes,
		bookings:  bookings,
		cache:     cache,
		metrics:   metricsReg,
		loc:       loc,
	}
}

// normalizeQuery applies defaults and rejects malformed parameters before
// any storage access.
func (s *FlightService) normalizeQuery(q dtos.SearchQuery) (dtos.SearchQuery, error) {
	q.From = strings.ToUpper(strings.TrimSpace(q.From))
	q.To = strings.ToUpper(strings.TrimSpace(q.To))

	if q.From != "" && len(q.From) != 3 {
		return q, apperrors.NewValidationError(apperrors.FieldError{
			Field: "from", Message: "Airport code must be 3 letters", Code: constants.CodeValidationError,
		})
	}
	if q.To != "" && len(q.To) != 3 {
		return q, apperrors.NewValidationError(apperrors.FieldError{
			Field: "to", Message: "Airport code must be 3 letters", Code: constants.CodeValidationError,
		})
	}

	var depDate, retDate time.Time
	if q.DepartureDate != "" {
		var err error
		depDate, err = time.ParseInLocation("2006-01-02", q.DepartureDate, s.loc)
		if err != nil {
			return q, apperrors.NewValidationError(apperrors.FieldError{
				Field: "departureDate", Message: "Invalid date format, expected YYYY-MM-DD", Code: constants.CodeValidationError,
			})
		}
	}
	if q.ReturnDate != "" {
		var err error
		retDate, err = time.ParseInLocation("2006-01-02", q.ReturnDate, s.loc)
		if err != nil {
			return q, apperrors.NewValidationError(apperrors.FieldError{
				Field: "returnDate", Message: "Invalid date format, expected YYYY-MM-DD", Code: constants.CodeValidationError,
			})
		}
		if q.DepartureDate != "" && !retDate.After(depDate) {
			return q, apperrors.NewValidationError(apperrors.FieldError{
				Field: "returnDate", Message: "Return date must be after departure date", Code: constants.CodeValidationError,
			})
		}
	}

	if q.Passengers < 1 {
		q.Passengers = 1
	}
	if q.FlightClass == "" {
		q.FlightClass = constants.SeatClassEconomy
	}
	if !constants.IsValidSeatClass(q.FlightClass) {
		return q, apperrors.NewValidationError(apperrors.FieldError{
			Field: "flightClass", Message: "Unknown seat class: " + string(q.FlightClass), Code: constants.CodeValidationError,
		})
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultPageLimit
	}
	if q.Limit > maxPageLimit {
		q.Limit = maxPageLimit
	}
	if q.SortBy == "" {
		q.SortBy = constants.SortByPrice
	}
	if strings.EqualFold(q.SortOrder, "desc") {
		q.SortOrder = "desc"
	} else {
		q.SortOrder = "asc"
	}
	if q.DepartureTimeRange != nil {
		tr := q.DepartureTimeRange
		if tr.Start < 0 || tr.End > 23 || tr.Start > tr.End {
			return q, apperrors.NewValidationError(apperrors.FieldError{
				Field: "departureTimeRange", Message: "Hour range must satisfy 0 <= start <= end <= 23", Code: constants.CodeValidationError,
			})
		}
	}

	return q, nil
}

// orderClause maps a sort key to a concrete ORDER BY. Duration sorts by
// departure time, matching the price of not materializing duration as a
// column. Flight id is always appended as a tie-break so pagination is
// deterministic.
func orderClause(sortBy constants.SortKey, sortOrder string) string {
	dir := "ASC"
	if sortOrder == "desc" {
		dir = "DESC"
	}

	var col string
	switch sortBy {
	case constants.SortByPrice:
		col = "flights.base_price"
	case constants.SortByDuration, constants.SortByDeparture:
		col = "flights.departure_time"
	case constants.SortByArrival:
		col = "flights.arrival_time"
	case constants.SortByAirline:
		col = "airlines.name"
	default:
		col, dir = "flights.departure_time", "ASC"
	}

	return fmt.Sprintf("%s %s, flights.id ASC", col, dir)
}

// buildPlan turns a normalized query into the storage-level search plan.
func (s *FlightService) buildPlan(q dtos.SearchQuery) repositories.SearchPlan {
	plan := repositories.SearchPlan{
		Statuses:     constants.SearchableStatuses,
		MinSeats:     q.Passengers,
		FromIATA:     q.From,
		ToIATA:       q.To,
		AirlineCodes: q.PreferredAirlines,
		MinPrice:     q.MinPrice,
		MaxPrice:     q.MaxPrice,
		OrderClause:  orderClause(q.SortBy, q.SortOrder),
		Limit:        q.Limit,
		Offset:       (q.Page - 1) * q.Limit,
	}

	if q.DepartureDate != "" {
		day, _ := time.ParseInLocation("2006-01-02", q.DepartureDate, s.loc)
		start := day
		end := day.Add(24*time.Hour - time.Nanosecond)
		plan.DayStart, plan.DayEnd = &start, &end
	}

	// Hour window is anchored on today's date in the reference timezone,
	// matching the long-standing search behavior.
	if q.DepartureTimeRange != nil {
		now := time.Now().In(s.loc)
		start := time.Date(now.Year(), now.Month(), now.Day(), q.DepartureTimeRange.Start, 0, 0, 0, s.loc)
		end := time.Date(now.Year(), now.Month(), now.Day(), q.DepartureTimeRange.End, 59, 59, 0, s.loc)
		plan.WindowStart, plan.WindowEnd = &start, &end
	}

	return plan
}

func (s *FlightService) enrichFlight(flight gormModels.Flight) (dtos.EnrichedFlight, error) {
	duration, err := Duration(flight.DepartureTime, flight.ArrivalTime)
	if err != nil {
		return dtos.EnrichedFlight{}, err
	}

	percentage := 0
	if flight.TotalSeats > 0 {
		percentage = int(math.Round(float64(flight.AvailableSeats) / float64(flight.TotalSeats) * 100))
	}

	return dtos.EnrichedFlight{
		Flight:            flight,
		Duration:          duration,
		FormattedDuration: FormatDuration(duration),
		Pricing:           ClassPricing(flight.BasePrice),
		Availability: dtos.Availability{
			Total:      flight.TotalSeats,
			Available:  flight.AvailableSeats,
			Percentage: percentage,
		},
	}, nil
}

// SearchFlights resolves a search query into a ranked, paginated result
// set, read through the result cache. An empty result is not an error.
func (s *FlightService) SearchFlights(ctx context.Context, query dtos.SearchQuery) (*dtos.SearchResult, error) {
	q, err := s.normalizeQuery(query)
	if err != nil {
		return nil, err
	}

	key := common.SearchCacheKey(q)
	var cached dtos.SearchResult
	if s.cache.Get(key, &cached) {
		s.metrics.CacheHitsTotal.WithLabelValues(string(constants.CachePrefixSearch)).Inc()
		return &cached, nil
	}
	s.metrics.CacheMissesTotal.WithLabelValues(string(constants.CachePrefixSearch)).Inc()

	flights, total, err := s.flights.FindFlights(ctx, s.buildPlan(q))
	if err != nil {
		logging.Error("Flight search failed", "error", err.Error())
		return nil, apperrors.NewInternalError(err)
	}
	s.metrics.SearchesTotal.Inc()

	enriched := make([]dtos.EnrichedFlight, 0, len(flights))
	for _, flight := range flights {
		ef, err := s.enrichFlight(flight)
		if err != nil {
			return nil, err
		}
		enriched = append(enriched, ef)
	}

	result := &dtos.SearchResult{
		Flights: enriched,
		Pagination: dtos.Pagination{
			Page:  q.Page,
			Limit: q.Limit,
			Total: total,
			Pages: int(math.Ceil(float64(total) / float64(q.Limit))),
		},
		Filters: dtos.SearchFilters{
			From:          q.From,
			To:            q.To,
			DepartureDate: q.DepartureDate,
			Passengers:    q.Passengers,
			FlightClass:   q.FlightClass,
		},
	}

	s.cache.Set(key, result, common.SearchCacheTTLSeconds*time.Second)
	return result, nil
}

// GetFlightByID returns one enriched flight. With includeSeats the open
// seat map is fetched alongside the flight row and grouped by class.
func (s *FlightService) GetFlightByID(ctx context.Context, flightID string, includeSeats bool) (*dtos.EnrichedFlight, error) {
	key := common.FlightCacheKey(flightID)
	if !includeSeats {
		var cached dtos.EnrichedFlight
		if s.cache.Get(key, &cached) {
			s.metrics.CacheHitsTotal.WithLabelValues(string(constants.CachePrefixFlight)).Inc()
			return &cached, nil
		}
		s.metrics.CacheMissesTotal.WithLabelValues(string(constants.CachePrefixFlight)).Inc()
	}

	var (
		flight *gormModels.Flight
		seats  []gormModels.Seat
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		flight, err = s.flights.GetByID(gctx, flightID, false)
		return err
	})
	if includeSeats {
		g.Go(func() error {
			var err error
			seats, err = s.seats.FindAvailable(gctx, flightID, nil)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	if flight == nil {
		return nil, apperrors.NewNotFoundError(constants.MsgFlightNotFound)
	}

	enriched, err := s.enrichFlight(*flight)
	if err != nil {
		return nil, err
	}
	if includeSeats {
		enriched.SeatMap = groupSeatsByClass(seats)
	}

	if !includeSeats {
		s.cache.Set(key, enriched, common.FlightCacheTTLSeconds*time.Second)
	}
	return &enriched, nil
}

func groupSeatsByClass(seats []gormModels.Seat) dtos.SeatMap {
	seatMap := dtos.SeatMap{
		constants.SeatClassEconomy:        {},
		constants.SeatClassPremiumEconomy: {},
		constants.SeatClassBusiness:       {},
		constants.SeatClassFirst:          {},
	}
	for _, seat := range seats {
		seatMap[seat.SeatClass] = append(seatMap[seat.SeatClass], seat)
	}
	return seatMap
}

// GetAvailableSeats returns a flight's open seats grouped by class,
// optionally restricted to one class.
func (s *FlightService) GetAvailableSeats(ctx context.Context, flightID string, seatClass *constants.SeatClass) (dtos.SeatMap, error) {
	if seatClass != nil && !constants.IsValidSeatClass(*seatClass) {
		return nil, apperrors.NewValidationError(apperrors.FieldError{
			Field: "class", Message: "Unknown seat class: " + string(*seatClass), Code: constants.CodeValidationError,
		})
	}

	flight, err := s.flights.GetByID(ctx, flightID, false)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if flight == nil {
		return nil, apperrors.NewNotFoundError(constants.MsgFlightNotFound)
	}

	seats, err := s.seats.FindAvailable(ctx, flightID, seatClass)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	return groupSeatsByClass(seats), nil
}

// CreateFlight validates the request, generates the full seat map from the
// airplane's configuration and persists flight plus seats in a single
// transaction. Validation happens before anything is written.
func (s *FlightService) CreateFlight(ctx context.Context, req dtos.CreateFlightRequest) (*dtos.EnrichedFlight, error) {
	if req.DepartureAirportID == req.ArrivalAirportID {
		return nil, apperrors.NewConflictError(constants.MsgSameAirports, constants.CodeSameAirports)
	}
	if !req.ArrivalTime.After(req.DepartureTime) {
		return nil, apperrors.NewValidationError(apperrors.FieldError{
			Field:   "arrivalTime",
			Message: constants.MsgInvalidTimeSequence,
			Code:    constants.CodeInvalidTimeSequence,
		})
	}

	airplane, err := s.airplanes.GetByID(ctx, req.AirplaneID)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if airplane == nil {
		return nil, apperrors.NewValidationError(apperrors.FieldError{
			Field:   "airplaneId",
			Message: constants.MsgAirplaneNotFound,
			Code:    constants.CodeAirplaneNotFound,
		})
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	flight := &gormModels.Flight{
		ID:                 uuid.NewString(),
		FlightNumber:       req.FlightNumber,
		AirlineID:          req.AirlineID,
		AirplaneID:         req.AirplaneID,
		DepartureAirportID: req.DepartureAirportID,
		ArrivalAirportID:   req.ArrivalAirportID,
		DepartureTime:      req.DepartureTime,
		ArrivalTime:        req.ArrivalTime,
		Status:             constants.StatusScheduled,
		BasePrice:          req.BasePrice,
		Currency:           currency,
		TotalSeats:         airplane.Capacity,
		AvailableSeats:     airplane.Capacity,
		Gate:               req.Gate,
		Terminal:           req.Terminal,
		IsActive:           true,
	}

	seats := GenerateSeats(flight.ID, airplane)
	if err := s.flights.CreateWithSeats(ctx, flight, seats); err != nil {
		logging.Error("Flight creation failed", "flight_number", req.FlightNumber, "error", err.Error())
		return nil, apperrors.NewInternalError(err)
	}
	s.metrics.SeatsGeneratedTotal.Add(float64(len(seats)))

	logging.Info("Flight created",
		"flight_id", flight.ID,
		"flight_number", flight.FlightNumber,
		"seats", len(seats),
	)

	return s.GetFlightByID(ctx, flight.ID, false)
}

// UpdateFlight applies a partial update. Schedule changes on flights with
// existing bookings are limited to a two hour departure shift.
func (s *FlightService) UpdateFlight(ctx context.Context, flightID string, req dtos.UpdateFlightRequest) (*dtos.EnrichedFlight, error) {
	flight, err := s.flights.GetByID(ctx, flightID, false)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if flight == nil {
		return nil, apperrors.NewNotFoundError(constants.MsgFlightNotFound)
	}

	if req.DepartureTime != nil || req.ArrivalTime != nil {
		newDeparture := flight.DepartureTime
		if req.DepartureTime != nil {
			newDeparture = *req.DepartureTime
		}
		newArrival := flight.ArrivalTime
		if req.ArrivalTime != nil {
			newArrival = *req.ArrivalTime
		}
		if !newArrival.After(newDeparture) {
			return nil, apperrors.NewValidationError(apperrors.FieldError{
				Field:   "arrivalTime",
				Message: constants.MsgInvalidTimeSequence,
				Code:    constants.CodeInvalidTimeSequence,
			})
		}

		bookingCount, err := s.bookings.CountForFlight(ctx, flightID)
		if err != nil {
			return nil, apperrors.NewInternalError(err)
		}
		if err := CheckScheduleChange(flight, req.DepartureTime, bookingCount); err != nil {
			return nil, err
		}
	}

	attrs := map[string]interface{}{}
	if req.DepartureTime != nil {
		attrs["departure_time"] = *req.DepartureTime
	}
	if req.ArrivalTime != nil {
		attrs["arrival_time"] = *req.ArrivalTime
	}
	if req.BasePrice != nil {
		attrs["base_price"] = *req.BasePrice
	}
	if req.Gate != nil {
		attrs["gate"] = *req.Gate
	}
	if req.Terminal != nil {
		attrs["terminal"] = *req.Terminal
	}

	if len(attrs) > 0 {
		if err := s.flights.Update(ctx, flightID, attrs); err != nil {
			return nil, apperrors.NewInternalError(err)
		}
		s.cache.Delete(common.FlightCacheKey(flightID))
	}

	return s.GetFlightByID(ctx, flightID, false)
}

// UpdateFlightStatus moves a flight through its lifecycle, stamping actual
// departure and arrival times as it goes.
func (s *FlightService) UpdateFlightStatus(ctx context.Context, flightID string, status constants.FlightStatus, reason string) (*dtos.EnrichedFlight, error) {
	flight, err := s.flights.GetByID(ctx, flightID, false)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if flight == nil {
		return nil, apperrors.NewNotFoundError(constants.MsgFlightNotFound)
	}

	if err := ValidateStatusTransition(flight.Status, status, reason); err != nil {
		return nil, err
	}

	attrs := StatusUpdateAttrs(status, reason, time.Now())
	if err := s.flights.Update(ctx, flightID, attrs); err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	s.metrics.StatusChangesTotal.WithLabelValues(string(status)).Inc()
	s.cache.Delete(common.FlightCacheKey(flightID))

	logging.Info("Flight status changed",
		"flight_id", flightID,
		"from", string(flight.Status),
		"to", string(status),
	)

	return s.GetFlightByID(ctx, flightID, false)
}

// DeactivateFlight soft-deletes a flight; rows are never removed.
func (s *FlightService) DeactivateFlight(ctx context.Context, flightID string) error {
	err := s.flights.Deactivate(ctx, flightID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewNotFoundError(constants.MsgFlightNotFound)
	}
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	s.cache.Delete(common.FlightCacheKey(flightID))
	return nil
}
