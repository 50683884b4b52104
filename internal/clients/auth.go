package clients

import (
	"context"
	"net/http"

	"github.com/gracefellowship/admin-console/internal/models"
)

func (c *Client) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", creds, &auth); err != nil {
		return models.AuthResponse{}, err
	}
	return auth, nil
}

func (c *Client) Register(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	var auth models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", creds, &auth); err != nil {
		return models.AuthResponse{}, err
	}
	return auth, nil
}

func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", token, nil, nil)
}

// Verify asks the backend whether the token still identifies an admin.
// The session gate does not depend on this; it is only used for display.
func (c *Client) Verify(ctx context.Context, token string) (models.User, error) {
	var data struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/verify", token, nil, &data); err != nil {
		return models.User{}, err
	}
	return data.User, nil
}
