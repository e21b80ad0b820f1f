// Package posts owns the in-memory post set of the active profile and keeps
// it consistent with the backend.
package posts

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"growdash/internal/calendar"
	"growdash/internal/core"
)

// Repository is the sync layer between the Growfy API and the local view.
// The post list is scoped to exactly one active profile at a time and is
// replaced atomically: readers observe either the old complete list or the
// new complete list, never a partial one.
type Repository struct {
	Logger *slog.Logger
	API    core.API

	mu      sync.Mutex
	profile *core.Profile
	posts   []core.Post
	loading bool

	// generation tags every in-flight fetch with the profile selection it
	// was issued for. A response arriving after a profile switch carries a
	// stale tag and is discarded instead of overwriting the current
	// profile's list.
	generation uint64
}

func (r *Repository) Init(_ context.Context) error {
	r.Logger = r.Logger.With("component", "posts.Repository")
	return nil
}

// SetActiveProfile switches the repository's scope and triggers exactly one
// refresh. Switching to the already active profile is a no-op.
func (r *Repository) SetActiveProfile(ctx context.Context, profile core.Profile) error {
	r.mu.Lock()
	if r.profile != nil && r.profile.ID == profile.ID {
		r.mu.Unlock()
		return nil
	}
	r.profile = &profile
	r.posts = nil
	r.generation++
	r.mu.Unlock()

	r.Logger.Debug("active profile changed", "profile", profile.ID, "name", profile.Name)

	return r.Refresh(ctx)
}

func (r *Repository) ActiveProfile() (core.Profile, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.profile == nil {
		return core.Profile{}, false
	}
	return *r.profile, true
}

// Refresh fetches the active profile's posts and swaps the local list on
// success. On failure the previous list is retained unchanged and the error
// is returned to the caller; there is no automatic retry.
func (r *Repository) Refresh(ctx context.Context) error {
	r.mu.Lock()
	if r.profile == nil {
		r.mu.Unlock()
		return core.ErrNoActiveProfile
	}
	profileID := r.profile.ID
	generation := r.generation
	r.loading = true
	r.mu.Unlock()

	fetched, err := r.API.ListPosts(ctx, profileID)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.loading = false

	if err != nil {
		return fmt.Errorf("refreshing posts of profile %d: %w", profileID, err)
	}

	if r.generation != generation {
		r.Logger.Debug("discarding stale response", "profile", profileID)
		return nil
	}

	r.posts = fetched
	return nil
}

// Create submits a new post and refreshes so the local view reflects the
// server-assigned record instead of an optimistic client-side insert. On
// failure the local list is unchanged.
func (r *Repository) Create(ctx context.Context, req core.NewPostRequest) error {
	r.mu.Lock()
	if r.profile == nil {
		r.mu.Unlock()
		return core.ErrNoActiveProfile
	}
	profileID := r.profile.ID
	r.mu.Unlock()

	if _, err := r.API.CreatePost(ctx, profileID, req); err != nil {
		return fmt.Errorf("creating post for profile %d: %w", profileID, err)
	}

	return r.Refresh(ctx)
}

// Posts returns a copy of the current list; callers get a read-only view.
func (r *Repository) Posts() []core.Post {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.posts)
}

// Events is the derived calendar view of the current post set.
func (r *Repository) Events() []core.CalendarEvent {
	return calendar.NormalizeAll(r.Posts())
}

func (r *Repository) IsLoading() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loading
}
