package http

import (
	"conversational-todo/internal/model"
	"conversational-todo/internal/user"
	"conversational-todo/pkg/response"
)

// --- Request DTOs ---

type registerReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

type loginReq struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

// --- Response DTOs ---

type userResp struct {
	ID        string            `json:"id"`
	Email     string            `json:"email"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: response.DateTime(u.CreatedAt),
	}
}

type authResp struct {
	User  userResp `json:"user"`
	Token string   `json:"token"`
}

func newAuthResp(out user.AuthOutput) authResp {
	return authResp{
		User:  newUserResp(out.User),
		Token: out.Token,
	}
}

type meResp struct {
	User userResp `json:"user"`
}

func newMeResp(out user.MeOutput) meResp {
	return meResp{User: newUserResp(out.User)}
}
