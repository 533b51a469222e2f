package exceptions

import (
	"errors"
	"fmt"
	"medicare-frontend/internal/pkg/constvars"
	"runtime"
)

// Kind classifies a failure at the API boundary.
type Kind string

const (
	KindNetwork    Kind = "network_error"
	KindHTTP       Kind = "http_error"
	KindDecode     Kind = "decode_error"
	KindValidation Kind = "validation_error"
	KindAuth       Kind = "auth_error"
	KindNotFound   Kind = "not_found_error"
	KindStorage    Kind = "storage_error"
)

type CustomError struct {
	Kind          Kind     `json:"kind"`
	StatusCode    int      `json:"status_code"`
	ClientMessage string   `json:"message"`
	DevMessage    string   `json:"-"`
	Location      Location `json:"-"`
	Err           error    `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

func BuildNewCustomError(err error, kind Kind, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		Kind:          kind,
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Location:      location,
		Err:           err,
	}
}

// KindOf returns the kind of err, or an empty Kind when err did not come
// from this package.
func KindOf(err error) Kind {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Kind
	}
	return ""
}

// StatusOf returns the HTTP status the API answered with, or 0.
func StatusOf(err error) int {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.StatusCode
	}
	return 0
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// ClientMessage is the text shown inline to the user for err.
func ClientMessage(err error) string {
	if err == nil {
		return ""
	}
	var customErr *CustomError
	if errors.As(err, &customErr) && customErr.ClientMessage != "" {
		return customErr.ClientMessage
	}
	return constvars.ErrClientNetworkError
}

// IsTransportFailure reports whether the request never produced a usable
// response, as opposed to the server rejecting it.
func IsTransportFailure(err error) bool {
	switch KindOf(err) {
	case KindNetwork, KindDecode:
		return true
	case "":
		return err != nil
	}
	return false
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ErrFileLocationUnknown,
			Line:         0,
			FunctionName: constvars.ErrFunctionNameUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
