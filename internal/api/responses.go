// Package api defines the JSON envelopes shared by every HTTP handler.
package api

// MessageResponse is returned for acknowledgements and for every error.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// Message builds a MessageResponse.
func Message(msg string) MessageResponse {
	return MessageResponse{Message: msg}
}
