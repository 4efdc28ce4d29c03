// Package models defines the client-side data types: wire DTOs matching the
// backend's JSON contract and the locally persisted chat records.
package models

// User is the identity returned by the current-user endpoint. It is derived
// from the bearer token, held in memory only, and discarded whenever the
// token is discarded.
//
// CreatedAt is kept as the raw string the backend sends; the value is
// display-only and its timestamp format is not part of the contract.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

// Credentials is a transient username/password pair. It is never persisted
// and is used once per login attempt.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is the login endpoint's reply. AccessToken is treated as an
// opaque bearer string by the session layer.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
