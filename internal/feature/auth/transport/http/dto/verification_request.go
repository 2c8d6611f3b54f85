package dto

// ResendVerificationReq represents the request body for /auth/verify/resend.
type ResendVerificationReq struct {
	Email string `json:"email" binding:"required,email"`
}
