package errcodes

import "git.appkode.ru/pub/go/failure"

// Codes returned to clients in the "kind" field of an error body. The
// specific reason goes into the message.
const (
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	ForeignKeyViolation failure.ErrorCode = "ForeignKeyViolation"
	StorageUnavailable  failure.ErrorCode = "StorageUnavailable"
	InternalServerError failure.ErrorCode = "InternalServerError"
)
