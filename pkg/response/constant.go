package response

const (
	DateTimeFormat = "2006-01-02 15:04:05"

	messageSuccess       = "Success"
	messageAccepted      = "Accepted"
	messageUnauthorized  = "Unauthorized"
	messageForbidden     = "Forbidden"
	messageInternalError = "Something went wrong"
	messageBadRequest    = "Bad request"
)
