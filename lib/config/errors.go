package config

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/uol/cqlsync/lib/constants"
	"github.com/uol/cqlsync/lib/tserr"
	"github.com/uol/gobol"
)

const (
	cPackage string = "config"
)

func errBasic(function, msg string, code int, e error) gobol.Error {
	if e != nil {
		return tserr.NewErrorWithCode(
			e,
			msg,
			cPackage,
			function,
			code,
			constants.ErrorCodeConfig,
		)
	}
	return nil
}

func errValidation(function, msg string) gobol.Error {
	return errBasic(function, msg, http.StatusBadRequest, errors.New(msg))
}

func errDecode(function string, e error) gobol.Error {
	return errBasic(function, e.Error(), http.StatusBadRequest, e)
}

func errEnvFile(function, path string, e error) gobol.Error {
	return errBasic(function, fmt.Sprintf("unable to load %s: %s", path, e.Error()), http.StatusBadRequest, e)
}
