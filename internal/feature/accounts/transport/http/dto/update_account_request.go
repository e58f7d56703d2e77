package dto

// UpdateAccountReq represents the request body for the PUT /users/:id endpoint.
// The password is deliberately absent; it can only change through the
// reset-password flow.
type UpdateAccountReq struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Fullname string `json:"fullname" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email"`
}
