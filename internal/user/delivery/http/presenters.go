package http

import (
	"shareit/internal/model"
	"shareit/internal/user"
)

type createReq struct {
	Name  string `json:"name"  binding:"required,notblank,max=255"`
	Email string `json:"email" binding:"required,email,max=512"`
}

func (r createReq) toInput() user.CreateUserInput {
	return user.CreateUserInput{Name: r.Name, Email: r.Email}
}

type updateReq struct {
	ID    int64  `json:"-"`
	Name  string `json:"name"  binding:"omitempty,max=255"`
	Email string `json:"email" binding:"omitempty,email,max=512"`
}

func (r updateReq) toInput() user.UpdateUserInput {
	return user.UpdateUserInput{ID: r.ID, Name: r.Name, Email: r.Email}
}

type userResp struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func newUserResp(u model.User) userResp {
	return userResp{ID: u.ID, Name: u.Name, Email: u.Email}
}

func newListResp(users []model.User) []userResp {
	out := make([]userResp, len(users))
	for i, u := range users {
		out[i] = newUserResp(u)
	}
	return out
}
