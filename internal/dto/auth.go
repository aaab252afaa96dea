package dto

import "time"

// SessionRequest carries the operator key exchanged for a session token.
type SessionRequest struct {
	OperatorID  string `json:"operatorID" binding:"required,max=64"`
	OperatorKey string `json:"operatorKey" binding:"required"`
}

// SessionResponse represents the response for a successful session exchange.
type SessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
