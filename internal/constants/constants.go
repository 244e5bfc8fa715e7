package constants

import "time"

// Session and context keys
const (
	SessionCookieName = "marketplace_session"
	// SessionUserKey is the well-known key holding the persisted user record.
	SessionUserKey    = "currentUser"
	ContextKeyUserID  = "user_id"
	ContextKeySession = "session_store"
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Auth
const (
	DefaultAvatarURL = "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg"
)

// Simulated backend latency defaults
const (
	DefaultAuthLatency    = 800 * time.Millisecond
	DefaultSubmitLatency  = 1500 * time.Millisecond
	DefaultPostJobLatency = 1000 * time.Millisecond
)
