package constvars

const (
	LoggingRequestIDKey     = "request_id"
	LoggingResourceKey      = "resource"
	LoggingResourceIDKey    = "resource_id"
	LoggingMethodKey        = "method"
	LoggingEndpointKey      = "endpoint"
	LoggingStatusCodeKey    = "status_code"
	LoggingDurationKey      = "duration"
	LoggingSuccessKey       = "success"
	LoggingCountKey         = "count"
	LoggingUsernameKey      = "username"
	LoggingRoleKey          = "role"
	LoggingViewKey          = "view"
	LoggingSessionKey       = "session_key"
	LoggingRemoteAddrKey    = "remote_addr"
	LoggingUserAgentKey     = "user_agent"
	LoggingErrorKindKey     = "error_kind"
	LoggingClientMessageKey = "client_message"
	LoggingSessionIDKey     = "session_id"
	LoggingSessionDriverKey = "session_driver"
)
