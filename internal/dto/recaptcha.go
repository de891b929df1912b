package dto

import "time"

// VerifyRecaptchaRequest carries the token produced by the reCAPTCHA widget.
type VerifyRecaptchaRequest struct {
	Token  string `json:"token" binding:"required"`
	Action string `json:"action" binding:"max=100"`
}

// VerifyRecaptchaResponse is the verification verdict.
type VerifyRecaptchaResponse struct {
	Success     bool      `json:"success"`
	Score       float64   `json:"score,omitempty"`
	Action      string    `json:"action,omitempty"`
	Hostname    string    `json:"hostname,omitempty"`
	ChallengeTS time.Time `json:"challengeTs,omitempty"`
	ErrorCodes  []string  `json:"errorCodes,omitempty"`
}
