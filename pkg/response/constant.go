package response

const (
	// InternalServerErrorMessage is the fixed message returned for any failure
	// that is not safe to surface to the caller.
	InternalServerErrorMessage = "Internal Server Error"

	// DateFormat is the wire format for date-only values.
	DateFormat = "2006-01-02"
	// DateTimeFormat is the wire format for datetime values.
	DateTimeFormat = "2006-01-02 15:04:05"
)
