package models

// AuthResponse is the payload returned by register, login and verify-otp
// calls: the authenticated profile plus a fresh credential token.
type AuthResponse struct {
	User
	Token string `json:"token"`
}

// ResetStatus is the payload returned by a forgot-password request.
// EmailPreview is only populated by non-production deployments and points at
// the dispatched OTP message.
type ResetStatus struct {
	Message      string `json:"message"`
	EmailPreview string `json:"emailPreview,omitempty"`
}
