package dto

import "account_backend/internal/feature/accounts/domain/entity"

// UserResp is the external projection of a user.
// The password hash is deliberately excluded.
type UserResp struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
}

// NewUserResp converts a domain entity into its external projection.
func NewUserResp(u *entity.User) UserResp {
	return UserResp{
		ID:       u.ID,
		Username: u.Username,
		Fullname: u.Fullname,
		Email:    u.Email,
	}
}

// NewUserRespList converts a slice of domain entities into projections.
func NewUserRespList(users []*entity.User) []UserResp {
	resps := make([]UserResp, len(users))
	for i, u := range users {
		resps[i] = NewUserResp(u)
	}
	return resps
}
