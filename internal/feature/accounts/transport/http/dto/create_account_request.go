// Package dto defines data transfer objects for the accounts feature's HTTP
// transport layer.
package dto

// CreateAccountReq represents the request body for the POST /users endpoint.
// It uses Gin's binding tags for validation (required, email format, password length).
type CreateAccountReq struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Fullname string `json:"fullname" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}
