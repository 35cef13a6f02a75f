package keyspace

import (
	"errors"
	"net/http"

	"github.com/uol/cqlsync/lib/tserr"
	"github.com/uol/gobol"
)

const (
	cPackage string = "keyspace"
)

func errBasic(function, msg string, code int, e error, errorCode string) gobol.Error {
	if e != nil {
		return tserr.NewErrorWithCode(
			e,
			msg,
			cPackage,
			function,
			code,
			errorCode,
		)
	}
	return nil
}

func errValidation(function, msg, errorCode string) gobol.Error {
	return errBasic(function, msg, http.StatusBadRequest, errors.New(msg), errorCode)
}
