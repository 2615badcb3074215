package model

// Scope carries the authenticated identity of the current request.
// It is built by the auth middleware before any conversation state is touched
// and passed through every use case call.
type Scope struct {
	UserID   string
	Username string

	// AuthToken is the raw bearer credential, forwarded verbatim to the
	// transit backend which owns verification.
	AuthToken string
}
