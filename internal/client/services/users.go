package services

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/hrmportal/internal/client/api"
	"github.com/dmitrijs2005/hrmportal/internal/client/models"
)

type UserService interface {
	GetAllUsers(ctx context.Context) *api.Result
	GetProfile(ctx context.Context) *api.Result
	CreateUser(ctx context.Context, u models.NewUser, files ...File) *api.Result
	// UpdateUser sends a PUT, or a PATCH when partial is set.
	UpdateUser(ctx context.Context, id models.ID, u models.UserUpdate, partial bool) *api.Result
	DeleteUser(ctx context.Context, id models.ID) *api.Result
	ResetPassword(ctx context.Context, id models.ID) *api.Result
	ChangePassword(ctx context.Context, change models.PasswordChange) *api.Result
	GetTeamLeads(ctx context.Context) *api.Result
}

type userService struct {
	caller Caller
}

func NewUserService(caller Caller) UserService {
	return &userService{caller: caller}
}

func (s *userService) GetAllUsers(ctx context.Context) *api.Result {
	return s.caller.Call(ctx, api.KeyGetAllUsers, api.Options{})
}

func (s *userService) GetProfile(ctx context.Context) *api.Result {
	return s.caller.Call(ctx, api.KeyGetProfile, api.Options{})
}

func (s *userService) CreateUser(ctx context.Context, u models.NewUser, files ...File) *api.Result {
	form := api.NewForm().AddFields(u.Fields())
	for _, f := range files {
		form.AddFile(f.Field, f.Name, f.Content)
	}
	return s.caller.Call(ctx, api.KeyCreateUser, api.Options{Form: form})
}

func (s *userService) UpdateUser(ctx context.Context, id models.ID, u models.UserUpdate, partial bool) *api.Result {
	method := http.MethodPut
	if partial {
		method = http.MethodPatch
	}
	return s.caller.Call(ctx, api.KeyUpdateUser, api.Options{
		Method: method,
		Params: map[string]string{"id": id.String()},
		JSON:   u,
	})
}

func (s *userService) DeleteUser(ctx context.Context, id models.ID) *api.Result {
	return s.caller.Call(ctx, api.KeyDeleteUser, api.Options{
		Params: map[string]string{"id": id.String()},
	})
}

func (s *userService) ResetPassword(ctx context.Context, id models.ID) *api.Result {
	return s.caller.Call(ctx, api.KeyResetPassword, api.Options{
		Params: map[string]string{"id": id.String()},
	})
}

func (s *userService) ChangePassword(ctx context.Context, change models.PasswordChange) *api.Result {
	return s.caller.Call(ctx, api.KeyChangePassword, api.Options{JSON: change})
}

func (s *userService) GetTeamLeads(ctx context.Context) *api.Result {
	return s.caller.Call(ctx, api.KeyGetTeamLeads, api.Options{})
}
