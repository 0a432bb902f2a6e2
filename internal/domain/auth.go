package domain

// AuthMethod names the auth driver that accepted an HTTP request.
type AuthMethod string

const (
	AuthMethodAuth0 AuthMethod = "auth0"
	AuthMethodToken AuthMethod = "token"
)
