package response

var (
	ErrInvalidRequest = newError(400, "Invalid request")
	ErrNotFound       = newError(404, "Participant not found")
	ErrServerInternal = newError(500, "Internal server error")
	ErrDatabase       = newError(500, "Database error")
)
