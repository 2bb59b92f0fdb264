package models

// TokenResponse is the JSON body returned by a successful login.
// The token is an opaque bearer credential from the client's perspective.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse is a generic acknowledgement body used by endpoints that
// have no entity to return (e.g. logout).
type MessageResponse struct {
	Message string `json:"message"`
}
