package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"skyward-experiment/flightdeck/internal/apperrors"
	"skyward-experiment/flightdeck/internal/constants"
	"skyward-experiment/flightdeck/internal/models/dtos"
)

func searchRequest(t *testing.T, rawQuery string) *http.Request {
	t.Helper()
	return httptest.NewRequest(http.MethodGet, "/api/v1/flights/search?"+rawQuery, nil)
}

func TestParseSearchQuery(t *testing.T) {
	r := searchRequest(t, "from=JFK&to=LAX&departureDate=2026-09-10&passengers=2&page=3&limit=10"+
		"&class=business&sortBy=price&sortOrder=desc&maxPrice=500&minPrice=100&airlines=SW,PB"+
		"&departureHourStart=6&departureHourEnd=12")

	q, badParam := parseSearchQuery(r)
	if badParam != "" {
		t.Fatalf("Unexpected bad parameter: %s", badParam)
	}

	if q.From != "JFK" || q.To != "LAX" || q.DepartureDate != "2026-09-10" {
		t.Errorf("Route fields mismatch: %+v", q)
	}
	if q.Passengers != 2 || q.Page != 3 || q.Limit != 10 {
		t.Errorf("Numeric fields mismatch: %+v", q)
	}
	if q.FlightClass != constants.SeatClassBusiness || q.SortBy != constants.SortByPrice || q.SortOrder != "desc" {
		t.Errorf("Sort fields mismatch: %+v", q)
	}
	if q.MaxPrice == nil || *q.MaxPrice != 500 || q.MinPrice == nil || *q.MinPrice != 100 {
		t.Errorf("Price bounds mismatch: %+v", q)
	}
	if len(q.PreferredAirlines) != 2 || q.PreferredAirlines[0] != "SW" || q.PreferredAirlines[1] != "PB" {
		t.Errorf("Airlines mismatch: %v", q.PreferredAirlines)
	}
	if q.DepartureTimeRange == nil || q.DepartureTimeRange.Start != 6 || q.DepartureTimeRange.End != 12 {
		t.Errorf("Hour range mismatch: %+v", q.DepartureTimeRange)
	}
}

func TestParseSearchQuery_RejectsMalformedNumbers(t *testing.T) {
	cases := []struct {
		rawQuery string
		badParam string
	}{
		{"passengers=two", "passengers"},
		{"passengers=-1", "passengers"},
		{"page=abc", "page"},
		{"maxPrice=cheap", "maxPrice"},
		{"minPrice=-5", "minPrice"},
		{"departureHourStart=morning&departureHourEnd=12", "departureHourStart"},
	}

	for _, tc := range cases {
		_, badParam := parseSearchQuery(searchRequest(t, tc.rawQuery))
		if badParam != tc.badParam {
			t.Errorf("Query %q: expected bad param %q, got %q", tc.rawQuery, tc.badParam, badParam)
		}
	}
}

func TestParseSearchQuery_MissingHourBoundIsIgnored(t *testing.T) {
	q, badParam := parseSearchQuery(searchRequest(t, "departureHourStart=6"))
	if badParam != "" {
		t.Fatalf("Unexpected bad parameter: %s", badParam)
	}
	if q.DepartureTimeRange != nil {
		t.Error("Half-specified hour window must be ignored")
	}
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) dtos.APIResponse[any] {
	t.Helper()
	var resp dtos.APIResponse[any]
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
	return resp
}

func TestRespondWithAppError_StatusMapping(t *testing.T) {
	cases := []struct {
		err          error
		expectStatus int
		expectCode   string
	}{
		{
			apperrors.NewValidationError(apperrors.FieldError{Field: "from", Message: "bad", Code: constants.CodeValidationError}),
			http.StatusBadRequest, constants.CodeValidationError,
		},
		{
			apperrors.NewNotFoundError(constants.MsgFlightNotFound),
			http.StatusNotFound, constants.CodeResourceNotFound,
		},
		{
			apperrors.NewConflictError(constants.MsgTimeChangeRestricted, constants.CodeTimeChangeRestricted),
			http.StatusConflict, constants.CodeTimeChangeRestricted,
		},
		{
			errors.New("database exploded"),
			http.StatusInternalServerError, constants.CodeInternalError,
		},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		respondWithAppError(rec, tc.err)

		if rec.Code != tc.expectStatus {
			t.Errorf("Expected status %d, got %d", tc.expectStatus, rec.Code)
		}
		resp := decodeErrorResponse(t, rec)
		if resp.Status != constants.APIStatusError {
			t.Errorf("Expected error envelope, got %s", resp.Status)
		}
		if resp.Error == nil || resp.Error.Code != tc.expectCode {
			t.Errorf("Expected code %s, got %+v", tc.expectCode, resp.Error)
		}
	}
}

func TestRespondWithAppError_NeverLeaksInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	respondWithAppError(rec, errors.New("pq: connection refused on 10.0.0.5"))

	resp := decodeErrorResponse(t, rec)
	if resp.Error.Message != "Internal server error" {
		t.Errorf("Internal errors must be opaque, got %q", resp.Error.Message)
	}
}

func TestRespondWithSuccess_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	payload := "pong"
	respondWithSuccess(rec, http.StatusOK, &payload)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected JSON content type, got %q", ct)
	}

	var resp dtos.APIResponse[string]
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
	if resp.Status != constants.APIStatusOk || resp.Data == nil || *resp.Data != "pong" {
		t.Errorf("Unexpected envelope: %+v", resp)
	}
	if resp.Timestamp.IsZero() {
		t.Error("Envelope timestamp must be set")
	}
}
