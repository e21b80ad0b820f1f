package growfy

import (
	"context"
	"strconv"

	"growdash/internal/core"
)

const (
	createProfilePath = "/profiles"
	invitePath        = "/profiles/{profileId}/invite"
)

// CreateProfile creates a new schedulable profile for the logged-in user.
func (c *Client) CreateProfile(ctx context.Context, name string) (*core.Profile, error) {
	type envelope struct {
		Data struct {
			Profile *core.Profile `json:"profile"`
		} `json:"data"`
	}

	res, err := c.r(ctx).
		SetBody(map[string]string{"name": name}).
		SetResult(&envelope{}).
		SetError(&errorEnvelope{}).
		Post(createProfilePath)
	if err := check(res, err); err != nil {
		return nil, err
	}

	return res.Result().(*envelope).Data.Profile, nil
}

// InviteMember invites a user to a profile with the given role. Success
// carries no payload.
func (c *Client) InviteMember(ctx context.Context, profileID int64, email, role string) error {
	res, err := c.r(ctx).
		SetPathParam("profileId", strconv.FormatInt(profileID, 10)).
		SetBody(map[string]string{"email": email, "role": role}).
		SetError(&errorEnvelope{}).
		Post(invitePath)
	return check(res, err)
}
