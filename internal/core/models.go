package core

import (
	"encoding/json"
	"time"
)

// Profile is a schedulable social-media identity owned by the identity
// backend. The client treats it as an opaque key for scoping post fetches.
type Profile struct {
	ID   int64  `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Task carries the scheduling information of a post. The backend stores the
// moment as epoch seconds without a timezone; rendering is local wall clock.
type Task struct {
	Unix int64 `json:"unix"`
}

type Named struct {
	Name string `json:"name"`
}

// ProviderPostType mirrors the backend's join record between a provider and
// a post type.
type ProviderPostType struct {
	Provider Named `json:"provider"`
	PostType Named `json:"posttype"`
}

// Post is a server-owned scheduled publication. It is read-only on the
// client: created via CreatePost, never mutated locally, and it leaves the
// local view only through a full repository refresh.
type Post struct {
	ID               int64            `json:"id"`
	Fields           json.RawMessage  `json:"fields"`
	Task             Task             `json:"task"`
	ProviderPostType ProviderPostType `json:"ProviderPostType"`
}

func (p Post) ProviderName() string {
	return p.ProviderPostType.Provider.Name
}

func (p Post) PostTypeName() string {
	return p.ProviderPostType.PostType.Name
}

// Content decodes the post's field bag according to its declared post type.
// Returns nil for an unknown post type; partially filled bags decode to zero
// values and are handled downstream by placeholder fallbacks.
func (p Post) Content() Content {
	return DecodeContent(p.PostTypeName(), p.Fields)
}

// NewPostRequest is the client-constructed creation payload. Unix is nil for
// an unscheduled post; the backend owns that interpretation.
type NewPostRequest struct {
	Content  Content `json:"content"`
	Provider int     `json:"provider"`
	TypePost int     `json:"typePost"`
	Unix     *int64  `json:"unix"`
}

// CalendarEvent is the display-ready projection of a Post. Derived and
// ephemeral: recomputed whenever the post set or the active profile changes,
// never persisted.
type CalendarEvent struct {
	ID    int64
	Title string
	Start time.Time
	Color string
	Post  Post
}
