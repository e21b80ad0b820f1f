package core

import (
	"context"
)

// API is the transport surface the scheduling core depends on. Implemented
// by internal/growfy; tests substitute fakes.
type API interface {
	ListPosts(ctx context.Context, profileID int64) ([]Post, error)
	CreatePost(ctx context.Context, profileID int64, req NewPostRequest) (*Post, error)
	CreateProfile(ctx context.Context, name string) (*Profile, error)
	InviteMember(ctx context.Context, profileID int64, email, role string) error
}
