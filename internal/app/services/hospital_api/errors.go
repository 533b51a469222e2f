package hospitalapi

import "errors"

var (
	errInvalidJSON = errors.New("response body is not valid JSON")
	errNotAnArray  = errors.New("response envelope is not an array")
)
