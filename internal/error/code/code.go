package code

// HTTP status codes.
const (
	// StatusOK - 200.
	StatusOK = 200
	// StatusCreated - 201.
	StatusCreated = 201
	// StatusNoContent - 204.
	StatusNoContent = 204
	// StatusBadRequest - 400: malformed request or missing root key.
	StatusBadRequest = 400
	// StatusNotFound - 404: unknown record id.
	StatusNotFound = 404
	// StatusUnprocessableEntity - 422: validation failed.
	StatusUnprocessableEntity = 422
	// StatusTooManyRequests - 429: rate limited.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500.
	StatusInternalServerError = 500
	// StatusServiceUnavailable - 503: dependency down.
	StatusServiceUnavailable = 503
)

// General error codes (100xxx).
const (
	// ErrSuccess - 200.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500.
	ErrUnknown
	// ErrBind - 400: body could not be decoded.
	ErrBind
	// ErrParamMissing - 400: root key absent or empty.
	ErrParamMissing
	// ErrValidation - 422: per-field validation failed.
	ErrValidation
	// ErrNotFound - 404.
	ErrNotFound
	// ErrTooManyRequests - 429.
	ErrTooManyRequests
)

// Database error codes (105xxx).
const (
	// ErrDatabase - 500.
	ErrDatabase int = iota + 105000
	// ErrDatabaseUnavailable - 503: ping failed.
	ErrDatabaseUnavailable
)
