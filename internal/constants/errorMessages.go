package constants

const (
	CodeValidationError      = "VALIDATION_ERROR"
	CodeResourceNotFound     = "RESOURCE_NOT_FOUND"
	CodeInternalError        = "INTERNAL_ERROR"
	CodeSameAirports         = "SAME_AIRPORTS"
	CodeInvalidTimeSequence  = "INVALID_TIME_SEQUENCE"
	CodeAirplaneNotFound     = "AIRPLANE_NOT_FOUND"
	CodeTimeChangeRestricted = "TIME_CHANGE_RESTRICTED"
	CodeInvalidStatus        = "INVALID_STATUS"
	CodeTerminalStatus       = "TERMINAL_STATUS"
	CodeDelayReasonRequired  = "DELAY_REASON_REQUIRED"
)

const (
	MsgFlightNotFound       = "Flight not found"
	MsgAirplaneNotFound     = "Airplane not found"
	MsgSameAirports         = "Arrival airport must be different from departure airport"
	MsgInvalidTimeSequence  = "Arrival time must be after departure time"
	MsgTimeChangeRestricted = "Cannot change departure time by more than 2 hours when bookings exist"
	MsgDelayReasonRequired  = "A reason is required when delaying a flight"
)
