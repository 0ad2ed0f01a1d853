package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"skyward-experiment/flightdeck/internal/constants"
	"skyward-experiment/flightdeck/internal/models/dtos"
	"skyward-experiment/flightdeck/internal/services"
)

// parseSearchQuery maps the raw query string onto a SearchQuery. Fine
// grained semantic validation happens in the service; only structurally
// broken numbers are rejected here.
func parseSearchQuery(r *http.Request) (dtos.SearchQuery, string) {
	qs := r.URL.Query()
	q := dtos.SearchQuery{
		From:          qs.Get("from"),
		To:            qs.Get("to"),
		DepartureDate: qs.Get("departureDate"),
		ReturnDate:    qs.Get("returnDate"),
		FlightClass:   constants.SeatClass(qs.Get("class")),
		SortBy:        constants.SortKey(qs.Get("sortBy")),
		SortOrder:     qs.Get("sortOrder"),
	}

	intParams := map[string]*int{
		"passengers": &q.Passengers,
		"page":       &q.Page,
		"limit":      &q.Limit,
		"maxStops":   &q.MaxStops,
	}
	for name, dest := range intParams {
		if raw := qs.Get(name); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil || v < 0 {
				return q, name
			}
			*dest = v
		}
	}

	floatParams := map[string]**float64{
		"maxPrice": &q.MaxPrice,
		"minPrice": &q.MinPrice,
	}
	for name, dest := range floatParams {
		if raw := qs.Get(name); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil || v < 0 {
				return q, name
			}
			*dest = &v
		}
	}

	if raw := qs.Get("airlines"); raw != "" {
		q.PreferredAirlines = strings.Split(raw, ",")
	}

	depStart, depEnd := qs.Get("departureHourStart"), qs.Get("departureHourEnd")
	if depStart != "" && depEnd != "" {
		start, err1 := strconv.Atoi(depStart)
		end, err2 := strconv.Atoi(depEnd)
		if err1 != nil || err2 != nil {
			return q, "departureHourStart"
		}
		q.DepartureTimeRange = &dtos.HourRange{Start: start, End: end}
	}

	return q, ""
}

// SearchFlightsHandler handles GET /api/v1/flights/search
func SearchFlightsHandler(svc *services.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, badParam := parseSearchQuery(r)
		if badParam != "" {
			respondWithBadRequest(w, badParam, "Invalid value for parameter "+badParam)
			return
		}

		result, err := svc.SearchFlights(r.Context(), query)
		if err != nil {
			respondWithAppError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, result)
	}
}

// GetFlightHandler handles GET /api/v1/flights/{flight_id}
func GetFlightHandler(svc *services.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flightID := chi.URLParam(r, "flight_id")
		includeSeats := r.URL.Query().Get("includeSeats") == "true"

		flight, err := svc.GetFlightByID(r.Context(), flightID, includeSeats)
		if err != nil {
			respondWithAppError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, flight)
	}
}

// GetAvailableSeatsHandler handles GET /api/v1/flights/{flight_id}/seats
func GetAvailableSeatsHandler(svc *services.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flightID := chi.URLParam(r, "flight_id")

		var seatClass *constants.SeatClass
		if raw := r.URL.Query().Get("class"); raw != "" {
			class := constants.SeatClass(raw)
			seatClass = &class
		}

		seatMap, err := svc.GetAvailableSeats(r.Context(), flightID, seatClass)
		if err != nil {
			respondWithAppError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, &seatMap)
	}
}

// CreateFlightHandler handles POST /api/v1/flights
func CreateFlightHandler(svc *services.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.CreateFlightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithBadRequest(w, "body", "Invalid JSON payload")
			return
		}

		flight, err := svc.CreateFlight(r.Context(), req)
		if err != nil {
			respondWithAppError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusCreated, flight)
	}
}

// UpdateFlightHandler handles PUT /api/v1/flights/{flight_id}
func UpdateFlightHandler(svc *services.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flightID := chi.URLParam(r, "flight_id")

		var req dtos.UpdateFlightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithBadRequest(w, "body", "Invalid JSON payload")
			return
		}

		flight, err := svc.UpdateFlight(r.Context(), flightID, req)
		if err != nil {
			respondWithAppError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, flight)
	}
}

// UpdateFlightStatusHandler handles PATCH /api/v1/flights/{flight_id}/status
func UpdateFlightStatusHandler(svc *services.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flightID := chi.URLParam(r, "flight_id")

		var req dtos.UpdateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithBadRequest(w, "body", "Invalid JSON payload")
			return
		}

		flight, err := svc.UpdateFlightStatus(r.Context(), flightID, req.Status, req.Reason)
		if err != nil {
			respondWithAppError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, flight)
	}
}

// DeactivateFlightHandler handles DELETE /api/v1/flights/{flight_id}
func DeactivateFlightHandler(svc *services.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flightID := chi.URLParam(r, "flight_id")

		if err := svc.DeactivateFlight(r.Context(), flightID); err != nil {
			respondWithAppError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
