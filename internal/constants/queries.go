package constants

const (
	QueryFlightCountsByStatus = `
		SELECT status, COUNT(*) AS count
		FROM flights
		WHERE is_active = true
		GROUP BY status`

	QuerySeatInventoryTotals = `
		SELECT
			COALESCE(SUM(total_seats), 0)     AS total_seats,
			COALESCE(SUM(available_seats), 0) AS available_seats
		FROM flights
		WHERE is_active = true`
)
