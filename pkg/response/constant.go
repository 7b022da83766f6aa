package response

const (
	MessageSuccess         = "Success"
	MessageTooManyRequests = "Too many requests"

	// codeUnclassified marks errors that carry no HTTP status of their own.
	codeUnclassified = 1
)
