package code

var codeMessageMap = map[int]string{
	ErrSuccess:         "OK",
	ErrUnknown:         "Internal server error",
	ErrBind:            "Bad request",
	ErrParamMissing:    "param is missing or the value is empty",
	ErrValidation:      "Validation failed",
	ErrNotFound:        "Not found",
	ErrTooManyRequests: "Too many requests",

	ErrDatabase:            "Internal server error",
	ErrDatabaseUnavailable: "Database unavailable",
}

var codeStatusMap = map[int]int{
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrParamMissing:    StatusBadRequest,
	ErrValidation:      StatusUnprocessableEntity,
	ErrNotFound:        StatusNotFound,
	ErrTooManyRequests: StatusTooManyRequests,

	ErrDatabase:            StatusInternalServerError,
	ErrDatabaseUnavailable: StatusServiceUnavailable,
}

// GetMessage returns the public message for an error code.
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return codeMessageMap[ErrUnknown]
}

// GetStatus returns the HTTP status for an error code.
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
