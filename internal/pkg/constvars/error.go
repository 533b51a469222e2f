package constvars

// Validation messages for users, map it with respective tag field
var CustomValidationErrorMessages = map[string]string{
	"required":    "is required",
	"required_if": "is required",
	"email":       "must be a valid email",
	"oneof":       "must be one of %s",
}

// Error messages for clients
const (
	ErrClientNetworkError         = "Network error. Please try again."
	ErrClientOperationFailed      = "Operation failed"
	ErrClientSaveFailedFormat     = "Failed to save %s."
	ErrClientInvalidCredentials   = "Invalid credentials"
	ErrClientRecordNotFound       = "Record not found"
	ErrClientUnexpectedResponse   = "Unexpected response from server"
	ErrClientLoadPickerData       = "Failed to load doctor and patient data."
	ErrClientSessionUnavailable   = "Session storage is unavailable"
	ErrClientTooManyLoginAttempts = "Too many login attempts, please wait before trying again."
)

const SuccessClientRegistrationComplete = "Registration successful! Please login."

// Error messages for developers
const (
	ErrDevCreateHTTPRequest    = "failed to create HTTP request"
	ErrDevSendHTTPRequest      = "failed to send HTTP request"
	ErrDevReadResponseBody     = "failed to read response body"
	ErrDevCannotMarshalJSON    = "cannot marshal JSON"
	ErrDevCannotParseJSON      = "cannot parse JSON"
	ErrDevDecodeResponseFormat = "failed to decode %s response"
	ErrDevUnexpectedStatusFmt  = "%s %s returned status %d"
	ErrDevValidationFailed     = "validation failed"
	ErrDevInvalidCredentials   = "invalid credentials"
	ErrDevResourceNotFoundFmt  = "%s not found"
	ErrDevRedisGetData         = "failed to get data from redis"
	ErrDevRedisSetData         = "failed to set data into redis"
	ErrDevRedisDeleteData      = "failed to delete data from redis"
	ErrDevSessionFileRead      = "failed to read session file"
	ErrDevSessionFileWrite     = "failed to write session file"
	ErrDevSessionFileRemove    = "failed to remove session file"
	ErrDevInvalidRole          = "invalid role"
	ErrDevUnknownFormField     = "unknown form field"
	ErrDevRowOutOfRange        = "row index out of range"
	ErrDevLoadPickerData       = "failed to load doctor and patient lists"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)
