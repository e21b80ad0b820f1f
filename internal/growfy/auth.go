package growfy

import (
	"context"

	"growdash/internal/core"
)

const (
	loginPath    = "/auth/login"
	mePath       = "/auth/me"
	registerPath = "/auth/register"
)

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type Member struct {
	Role    string       `json:"role"`
	Profile core.Profile `json:"profile"`
}

type User struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Members []Member `json:"members"`
}

// Profiles lists the profiles the user may act as.
func (u *User) Profiles() []core.Profile {
	profiles := make([]core.Profile, 0, len(u.Members))
	for _, member := range u.Members {
		profiles = append(profiles, member.Profile)
	}
	return profiles
}

type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Phone       string `json:"phone,omitempty"`
	NameProfile string `json:"nameProfile,omitempty"`
}

// Login exchanges credentials for a token pair. The returned access token is
// not installed on the client automatically; call SetAuthToken.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	type envelope struct {
		Data TokenPair `json:"data"`
	}

	res, err := c.r(ctx).
		SetBody(map[string]string{"email": email, "password": password}).
		SetResult(&envelope{}).
		SetError(&errorEnvelope{}).
		Post(loginPath)
	if err := check(res, err); err != nil {
		return nil, err
	}

	tokens := res.Result().(*envelope).Data
	return &tokens, nil
}

// Me returns the authenticated user together with its profile memberships.
func (c *Client) Me(ctx context.Context) (*User, error) {
	type envelope struct {
		Data struct {
			User *User `json:"user"`
		} `json:"data"`
	}

	res, err := c.r(ctx).
		SetResult(&envelope{}).
		SetError(&errorEnvelope{}).
		Get(mePath)
	if err := check(res, err); err != nil {
		return nil, err
	}

	return res.Result().(*envelope).Data.User, nil
}

// Register creates a new user account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	res, err := c.r(ctx).
		SetBody(req).
		SetError(&errorEnvelope{}).
		Post(registerPath)
	return check(res, err)
}
