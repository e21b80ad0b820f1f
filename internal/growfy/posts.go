package growfy

import (
	"context"
	"strconv"

	"growdash/internal/core"
)

const (
	listPostsPath  = "/posts/{profileId}/posts"
	createPostPath = "/posts/{profileId}/create"
)

// ListPosts fetches all scheduled posts of a profile.
func (c *Client) ListPosts(ctx context.Context, profileID int64) ([]core.Post, error) {
	type envelope struct {
		Data struct {
			Posts []core.Post `json:"posts"`
		} `json:"data"`
	}

	res, err := c.r(ctx).
		SetPathParam("profileId", strconv.FormatInt(profileID, 10)).
		SetResult(&envelope{}).
		SetError(&errorEnvelope{}).
		Get(listPostsPath)
	if err := check(res, err); err != nil {
		return nil, err
	}

	return res.Result().(*envelope).Data.Posts, nil
}

// CreatePost submits a new post and returns the server-assigned record.
func (c *Client) CreatePost(ctx context.Context, profileID int64, req core.NewPostRequest) (*core.Post, error) {
	type envelope struct {
		Data struct {
			Post *core.Post `json:"post"`
		} `json:"data"`
	}

	res, err := c.r(ctx).
		SetPathParam("profileId", strconv.FormatInt(profileID, 10)).
		SetBody(req).
		SetResult(&envelope{}).
		SetError(&errorEnvelope{}).
		Post(createPostPath)
	if err := check(res, err); err != nil {
		return nil, err
	}

	return res.Result().(*envelope).Data.Post, nil
}
