package constants

import "net/http"

// CodedError is an error carrying the HTTP status code the API layer
// should respond with. The echo error handler unwraps down to the first
// CodedError it finds.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound        = NewCodedError(http.StatusNotFound, "not found")
	ErrUnauthorized      = NewCodedError(http.StatusUnauthorized, "unauthorized")
	ErrMissingAuthCookie = NewCodedError(http.StatusUnauthorized, "missing auth cookie")
	ErrEmailAlreadyTaken = NewCodedError(http.StatusConflict, "email already taken")
	ErrWrongPassword     = NewCodedError(http.StatusUnauthorized, "wrong password")
	ErrIngestInProgress  = NewCodedError(http.StatusConflict, "ingestion run already in progress")
)
