package common

const (
	// AuthorizationHeaderName carries the bearer token on outbound requests.
	AuthorizationHeaderName = "Authorization"
	// BearerPrefix precedes the token inside the Authorization header.
	BearerPrefix = "Bearer "
)

// Roles a user account can hold.
const (
	RoleAdmin     = "admin"
	RoleCandidate = "candidate"
)
