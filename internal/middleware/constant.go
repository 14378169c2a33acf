package middleware

import "time"

const (
	HeaderRequestID = "X-Request-ID"
	HeaderSessionID = "X-Session-ID"

	SessionCookie    = "clainai_session"
	sessionCookieTTL = 30 * 24 * time.Hour

	sessionKey = "session_id"

	maxSessionIDLength = 128
)
