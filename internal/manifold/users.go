package manifold

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// GetUserByHandle resolves a username to a User. Returns an error
// matching ErrUserNotFound when the handle does not exist.
func (c *Client) GetUserByHandle(ctx context.Context, handle string) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, c.userTimeout)
	defer cancel()

	var user User
	err := c.get(ctx, "/v0/user/"+url.PathEscape(handle), false, &user)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("lookup user %q: %w", handle, ErrUserNotFound)
		}
		return nil, fmt.Errorf("lookup user %q: %w", handle, err)
	}

	return &user, nil
}

// GetMe returns the user that owns the API key. Used as a startup probe
// to verify the credential before trading.
func (c *Client) GetMe(ctx context.Context) (*User, error) {
	ctx, cancel := context.WithTimeout(ctx, c.userTimeout)
	defer cancel()

	var user User
	if err := c.get(ctx, "/v0/me", true, &user); err != nil {
		return nil, fmt.Errorf("get me: %w", err)
	}

	return &user, nil
}
