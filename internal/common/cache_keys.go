package common

import (
	"encoding/base64"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"skyward-experiment/flightdeck/internal/models/dtos"
)

// Cache TTLs in seconds.
const (
	SearchCacheTTLSeconds = 300
	FlightCacheTTLSeconds = 1800
)

// FlightCacheKey returns the cache key of a single enriched flight.
func FlightCacheKey(flightID string) string {
	return "flight:" + flightID
}

// SearchCacheKey derives a stable key from a normalized search query. Every
// field participates, encoded as sorted key=value pairs and then base64, so
// semantically identical queries always collide on the same key no matter
// how the request parameters were ordered.
func SearchCacheKey(q dtos.SearchQuery) string {
	pairs := map[string]string{
		"from":        q.From,
		"to":          q.To,
		"passengers":  strconv.Itoa(q.Passengers),
		"flightClass": string(q.FlightClass),
		"page":        strconv.Itoa(q.Page),
		"limit":       strconv.Itoa(q.Limit),
		"sortBy":      string(q.SortBy),
		"sortOrder":   q.SortOrder,
		"maxStops":    strconv.Itoa(q.MaxStops),
	}
	if q.DepartureDate != "" {
		pairs["departureDate"] = q.DepartureDate
	}
	if q.ReturnDate != "" {
		pairs["returnDate"] = q.ReturnDate
	}
	if q.MaxPrice != nil {
		pairs["maxPrice"] = strconv.FormatFloat(*q.MaxPrice, 'f', -1, 64)
	}
	if q.MinPrice != nil {
		pairs["minPrice"] = strconv.FormatFloat(*q.MinPrice, 'f', -1, 64)
	}
	if len(q.PreferredAirlines) > 0 {
		airlines := append([]string(nil), q.PreferredAirlines...)
		sort.Strings(airlines)
		pairs["preferredAirlines"] = strings.Join(airlines, ",")
	}
	if q.DepartureTimeRange != nil {
		pairs["departureTimeRange"] = fmt.Sprintf("%d-%d", q.DepartureTimeRange.Start, q.DepartureTimeRange.End)
	}

	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+pairs[k])
	}

	encoded := base64.StdEncoding.EncodeToString([]byte(strings.Join(parts, "&")))
	return "search:" + encoded
}
