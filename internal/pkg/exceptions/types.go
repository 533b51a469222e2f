package exceptions

import (
	"fmt"
	"medicare-frontend/internal/pkg/constvars"
)

var (
	// Transport
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNetwork, 0, constvars.ErrClientNetworkError, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNetwork, 0, constvars.ErrClientNetworkError, constvars.ErrDevSendHTTPRequest)
	}
	ErrReadResponseBody = func(err error) *CustomError {
		return BuildNewCustomError(err, KindNetwork, 0, constvars.ErrClientNetworkError, constvars.ErrDevReadResponseBody)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindDecode, 0, constvars.ErrClientNetworkError, constvars.ErrDevCannotMarshalJSON)
	}

	// Response
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, KindDecode, 0, constvars.ErrClientUnexpectedResponse, fmt.Sprintf(constvars.ErrDevDecodeResponseFormat, resource))
	}
	ErrHTTPStatus = func(statusCode int, serverMessage, fallbackMessage, method, path string) *CustomError {
		return BuildNewCustomError(nil, KindHTTP, statusCode, fallback(serverMessage, fallbackMessage), fmt.Sprintf(constvars.ErrDevUnexpectedStatusFmt, method, path, statusCode))
	}
	ErrResourceNotFound = func(statusCode int, serverMessage, resource string) *CustomError {
		return BuildNewCustomError(nil, KindNotFound, statusCode, fallback(serverMessage, constvars.ErrClientRecordNotFound), fmt.Sprintf(constvars.ErrDevResourceNotFoundFmt, resource))
	}
	ErrRejectedPayload = func(statusCode int, serverMessage, fallbackMessage string) *CustomError {
		return BuildNewCustomError(nil, KindValidation, statusCode, fallback(serverMessage, fallbackMessage), constvars.ErrDevValidationFailed)
	}
	ErrInvalidCredentials = func(statusCode int, serverMessage string) *CustomError {
		return BuildNewCustomError(nil, KindAuth, statusCode, fallback(serverMessage, constvars.ErrClientInvalidCredentials), constvars.ErrDevInvalidCredentials)
	}

	// Client side
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, KindValidation, 0, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrInvalidRole = func(role string) *CustomError {
		return BuildNewCustomError(nil, KindValidation, 0, constvars.ErrClientOperationFailed, fmt.Sprintf("%s: %q", constvars.ErrDevInvalidRole, role))
	}
	ErrUnknownFormField = func(field string) *CustomError {
		return BuildNewCustomError(nil, KindValidation, 0, constvars.ErrClientOperationFailed, fmt.Sprintf("%s: %q", constvars.ErrDevUnknownFormField, field))
	}
	ErrRowOutOfRange = func(row int) *CustomError {
		return BuildNewCustomError(nil, KindValidation, 0, constvars.ErrClientOperationFailed, fmt.Sprintf("%s: %d", constvars.ErrDevRowOutOfRange, row))
	}
	ErrLoadPickerData = func(err error) *CustomError {
		return BuildNewCustomError(err, KindOf(err), 0, constvars.ErrClientLoadPickerData, constvars.ErrDevLoadPickerData)
	}

	// Session storage
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, KindStorage, 0, constvars.ErrClientSessionUnavailable, constvars.ErrDevCannotParseJSON)
	}
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, KindStorage, 0, constvars.ErrClientSessionUnavailable, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, KindStorage, 0, constvars.ErrClientSessionUnavailable, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, KindStorage, 0, constvars.ErrClientSessionUnavailable, constvars.ErrDevRedisDeleteData)
	}
	ErrSessionFileRead = func(err error) *CustomError {
		return BuildNewCustomError(err, KindStorage, 0, constvars.ErrClientSessionUnavailable, constvars.ErrDevSessionFileRead)
	}
	ErrSessionFileWrite = func(err error) *CustomError {
		return BuildNewCustomError(err, KindStorage, 0, constvars.ErrClientSessionUnavailable, constvars.ErrDevSessionFileWrite)
	}
	ErrSessionFileRemove = func(err error) *CustomError {
		return BuildNewCustomError(err, KindStorage, 0, constvars.ErrClientSessionUnavailable, constvars.ErrDevSessionFileRemove)
	}
)

func fallback(message, def string) string {
	if message == "" {
		message = def
	}
	if message == "" {
		return constvars.ErrClientOperationFailed
	}
	return message
}
