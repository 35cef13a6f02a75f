// Package tserr builds the gobol.Error values returned for configuration and
// keyspace validation failures, keeping the underlying cause reachable through
// errors.Is and errors.As.
package tserr

import (
	"github.com/uol/cqlsync/lib/constants"
	"github.com/uol/gobol"
)

// New - creates a new error
func New(e error, msg, pkg, function string, httpCode int) gobol.Error {
	return customError{
		e,
		msg,
		pkg,
		function,
		httpCode,
		constants.StringsEmpty,
	}
}

// NewErrorWithCode - creates a new error carrying an error code
func NewErrorWithCode(e error, msg, pkg, function string, httpCode int, errorCode string) gobol.Error {
	return customError{
		e,
		msg,
		pkg,
		function,
		httpCode,
		errorCode,
	}
}

type customError struct {
	error
	msg       string
	pkg       string
	function  string
	httpCode  int
	errorCode string
}

func (e customError) Error() string {
	if e.msg == constants.StringsEmpty {
		return e.error.Error()
	}
	return e.msg
}

func (e customError) Unwrap() error {
	return e.error
}

func (e customError) Package() string {
	return e.pkg
}

func (e customError) Function() string {
	return e.function
}

func (e customError) Message() string {
	return e.msg
}

func (e customError) StatusCode() int {
	return e.httpCode
}

func (e customError) ErrorCode() string {
	return e.errorCode
}
