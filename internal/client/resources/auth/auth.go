// Package auth is the client for the admin login endpoint.
package auth

import (
	"context"

	"github.com/DaoQuangHuy2702/ludoan72-news/internal/client/api"
)

type Repository interface {
	// Login exchanges credentials for a bearer token. The caller stores the
	// token in the session cell; this package never touches it.
	Login(ctx context.Context, username, password string) (string, error)
}

type httpRepository struct {
	gw *api.Gateway
}

func NewHTTPRepository(gw *api.Gateway) Repository {
	return &httpRepository{gw: gw}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *httpRepository) Login(ctx context.Context, username, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	err := r.gw.PostJSON(ctx, "/api/auth/admin/login", loginRequest{Username: username, Password: password}, &out)
	if err != nil {
		return "", err
	}
	return out.Token, nil
}
