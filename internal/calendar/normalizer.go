// Package calendar turns raw posts into display-ready calendar events and
// detail views.
package calendar

import (
	"time"

	"github.com/samber/lo"

	"growdash/internal/core"
)

// Normalize projects a post onto a calendar event. Total and pure: malformed
// or partially filled records degrade to placeholder text instead of
// failing, because the backend may hold legacy posts with incomplete field
// bags.
//
// The scheduled moment carries no timezone, so the start instant is the
// epoch interpreted in the environment's local zone.
func Normalize(post core.Post) core.CalendarEvent {
	title := "Sin título"
	if content := post.Content(); content != nil {
		title = content.Summary()
	}

	return core.CalendarEvent{
		ID:    post.ID,
		Title: title,
		Start: time.Unix(post.Task.Unix, 0),
		Color: core.ProviderColor(post.ProviderName()),
		Post:  post,
	}
}

// NormalizeAll preserves input order; an empty input yields an empty output.
func NormalizeAll(posts []core.Post) []core.CalendarEvent {
	return lo.Map(posts, func(post core.Post, _ int) core.CalendarEvent {
		return Normalize(post)
	})
}
