package dto

// ForgotPasswordReq represents the request body for the
// POST /users/forgot-password endpoint.
type ForgotPasswordReq struct {
	Username string `json:"username" binding:"required"`
}
