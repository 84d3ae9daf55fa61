package constants

// Context and session keys
const (
	ContextKeyUserID  = "user_id"
	SessionCookieName = "session_token"
)

// Password rules
const (
	MinPasswordLength = 6
)

// Age validation bounds for registration
const (
	MinAge = 1
	MaxAge = 120
)

// List limits
const (
	DefaultAssessmentLimit = 5
	DefaultAlertLimit      = 10
	MaxListLimit           = 100
)
