package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/hrmportal/internal/client/api"
	"github.com/dmitrijs2005/hrmportal/internal/client/models"
	"github.com/dmitrijs2005/hrmportal/internal/client/session"
	"github.com/dmitrijs2005/hrmportal/internal/logging"
	"github.com/tidwall/gjson"
)

// SessionStore is the part of session.Store the auth service writes through.
type SessionStore interface {
	Save(ctx context.Context, sess session.Session) error
	Clear(ctx context.Context) error
	Token() string
	CurrentUser() *models.UserSummary
	IsAuthenticated() bool
}

// AuthService signs users in and out.
//
// Login persists nothing unless the backend returned a token. CurrentUser,
// IsAuthenticated and Token never contact the backend.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.UserSummary, error)
	Logout(ctx context.Context) error
	CurrentUser() *models.UserSummary
	IsAuthenticated() bool
	Token() string
}

type authService struct {
	caller Caller
	store  SessionStore
	log    logging.Logger
}

func NewAuthService(caller Caller, store SessionStore, log logging.Logger) AuthService {
	return &authService{caller: caller, store: store, log: log}
}

// The backend has used all three names for the token over time.
var tokenFields = []string{"access_token", "token", "access"}

// Login returns an *api.Error matching api.ErrAuth when the backend refuses
// the credentials or answers without a token, and api.ErrNetwork when it
// cannot be reached.
func (a *authService) Login(ctx context.Context, email, password string) (*models.UserSummary, error) {

	res := a.caller.Call(ctx, api.KeyLogin, api.Options{
		JSON: map[string]string{"email": email, "password": password},
	})
	if !res.Success() {
		a.log.Info(ctx, "login failed", "email", email, "error", res.Message())
		return nil, res.Err
	}

	token := ""
	for _, f := range tokenFields {
		if r := gjson.GetBytes(res.Data, f); r.Type == gjson.String && r.Str != "" {
			token = r.Str
			break
		}
	}
	if token == "" {
		return nil, &api.Error{Kind: api.ErrAuth, Status: res.Status, Message: "no access token in login response"}
	}

	user := &models.UserSummary{Email: email}
	if u := gjson.GetBytes(res.Data, "user"); u.IsObject() {
		var decoded models.UserSummary
		if err := json.Unmarshal([]byte(u.Raw), &decoded); err != nil {
			a.log.Warn(ctx, "login response has malformed user, using email", "error", err)
		} else {
			user = &decoded
		}
	}

	sess := session.Session{
		Token:     token,
		TokenType: gjson.GetBytes(res.Data, "token_type").String(),
		ExpiresIn: gjson.GetBytes(res.Data, "expires_in").Int(),
		User:      user,
	}
	if err := a.store.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	a.log.Info(ctx, "logged in", "user_id", user.ID.String(), "role", string(user.Role))
	return a.store.CurrentUser(), nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

func (a *authService) CurrentUser() *models.UserSummary {
	return a.store.CurrentUser()
}

func (a *authService) IsAuthenticated() bool {
	return a.store.IsAuthenticated()
}

func (a *authService) Token() string {
	return a.store.Token()
}
