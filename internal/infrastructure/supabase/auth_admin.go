package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/jhoicas/cargopilot-api/internal/application/ports"
	"github.com/jhoicas/cargopilot-api/internal/domain"
)

var _ ports.IdentityGateway = (*Client)(nil)

// Duración de ban que usa Supabase como "indefinido" (100 años).
const (
	banForever = "876000h"
	banNone    = "none"
)

const listPageSize = 1000

type authUser struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata"`
}

func (u authUser) toIdentity() ports.IdentityUser {
	name, _ := u.UserMetadata["full_name"].(string)
	return ports.IdentityUser{ID: u.ID, Email: u.Email, FullName: name}
}

func adminUserPath(id string) string {
	return "/auth/v1/admin/users/" + url.PathEscape(id)
}

// CreateUser crea una cuenta confirmada; Banned la deja bloqueada desde el inicio.
func (c *Client) CreateUser(ctx context.Context, in ports.CreateIdentityInput) (*ports.IdentityUser, error) {
	body := map[string]any{
		"email":         in.Email,
		"password":      in.Password,
		"email_confirm": true,
		"user_metadata": map[string]any{"full_name": in.FullName},
	}
	if in.Banned {
		body["ban_duration"] = banForever
	}

	var u authUser
	err := c.do(ctx, request{method: http.MethodPost, path: "/auth/v1/admin/users", json: body}, &u)
	if err != nil {
		if isEmailConflict(err) {
			return nil, domain.ErrEmailAlreadyExists
		}
		return nil, upstream("create user", err)
	}
	out := u.toIdentity()
	return &out, nil
}

func isEmailConflict(err error) bool {
	var ae *apiError
	if !errors.As(err, &ae) {
		return false
	}
	if ae.Code == "email_exists" || ae.Code == "user_already_exists" {
		return true
	}
	return (ae.Status == http.StatusUnprocessableEntity || ae.Status == http.StatusConflict) &&
		strings.Contains(strings.ToLower(ae.Message), "already been registered")
}

// ListUsers recorre todas las páginas del listado admin.
func (c *Client) ListUsers(ctx context.Context) ([]ports.IdentityUser, error) {
	var out []ports.IdentityUser
	for page := 1; ; page++ {
		var resp struct {
			Users []authUser `json:"users"`
		}
		path := fmt.Sprintf("/auth/v1/admin/users?page=%d&per_page=%d", page, listPageSize)
		if err := c.do(ctx, request{method: http.MethodGet, path: path}, &resp); err != nil {
			return nil, upstream("list users", err)
		}
		for _, u := range resp.Users {
			out = append(out, u.toIdentity())
		}
		if len(resp.Users) < listPageSize {
			return out, nil
		}
	}
}

func (c *Client) updateUser(ctx context.Context, op, id string, body map[string]any) error {
	err := c.do(ctx, request{method: http.MethodPut, path: adminUserPath(id), json: body}, nil)
	if err != nil {
		if statusOf(err) == http.StatusNotFound {
			return domain.ErrUserNotFound
		}
		return upstream(op, err)
	}
	return nil
}

// UpdateFullName mantiene user_metadata.full_name sincronizado con la fila local.
func (c *Client) UpdateFullName(ctx context.Context, id, fullName string) error {
	return c.updateUser(ctx, "update metadata", id, map[string]any{
		"user_metadata": map[string]any{"full_name": fullName},
	})
}

func (c *Client) SetBanned(ctx context.Context, id string, banned bool) error {
	d := banNone
	if banned {
		d = banForever
	}
	return c.updateUser(ctx, "set ban", id, map[string]any{"ban_duration": d})
}

func (c *Client) UpdatePassword(ctx context.Context, id, password string) error {
	return c.updateUser(ctx, "update password", id, map[string]any{"password": password})
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	err := c.do(ctx, request{method: http.MethodDelete, path: adminUserPath(id)}, nil)
	if err != nil {
		if statusOf(err) == http.StatusNotFound {
			return domain.ErrUserNotFound
		}
		return upstream("delete user", err)
	}
	return nil
}

// SignInWithPassword grant password con la anon key; 400/401 son credenciales inválidas.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) error {
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/v1/token?grant_type=password",
		anon:   true,
		json:   map[string]string{"email": email, "password": password},
	}, nil)
	if err != nil {
		switch statusOf(err) {
		case http.StatusBadRequest, http.StatusUnauthorized:
			return domain.ErrInvalidCredentials
		}
		return upstream("sign in", err)
	}
	return nil
}
