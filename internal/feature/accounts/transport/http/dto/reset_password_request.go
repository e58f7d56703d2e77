package dto

// ResetPasswordReq represents the request body for the
// POST /users/reset-password endpoint. Code bounds match the issued range.
type ResetPasswordReq struct {
	Username        string `json:"username" binding:"required"`
	Code            int    `json:"code" binding:"required,min=1000,max=9999"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}
