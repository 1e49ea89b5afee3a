package response

// Formats used by Date and DateTime marshalers.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)

// Standard messages and codes.
const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong, please try again later"
	InternalServerErrorCode = 500
)
