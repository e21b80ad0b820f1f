package scheduling_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"growdash/internal/core"
	"growdash/internal/scheduling"
)

var errBackend = errors.New("backend unavailable")

type fakeCreator struct {
	requests []core.NewPostRequest
	err      error
}

func (f *fakeCreator) Create(_ context.Context, req core.NewPostRequest) error {
	if f.err != nil {
		return f.err
	}
	f.requests = append(f.requests, req)
	return nil
}

func filledForm(t *testing.T) *scheduling.Form {
	t.Helper()

	form := scheduling.NewForm()
	form.SelectProvider("FACEBOOK")
	require.NoError(t, form.SelectPostType("message"))
	require.NoError(t, form.SetField("message", "Hola"))
	return form
}

func TestSelectPostType(t *testing.T) {
	t.Parallel()

	t.Run("unknown type", func(t *testing.T) {
		t.Parallel()

		form := scheduling.NewForm()
		require.Error(t, form.SelectPostType("video"))
	})

	t.Run("switching variants clears previous fields", func(t *testing.T) {
		t.Parallel()

		form := scheduling.NewForm()
		form.SelectProvider("FACEBOOK")
		require.NoError(t, form.SelectPostType("text"))
		require.NoError(t, form.SetField("title", "Hola"))
		require.NoError(t, form.SetField("content", "Mundo"))

		require.NoError(t, form.SelectPostType("image"))
		require.NoError(t, form.SetField("imgUrl", "https://example.com/a.png"))

		creator := &fakeCreator{}
		require.NoError(t, form.Submit(t.Context(), creator))
		require.Len(t, creator.requests, 1)

		// The submitted payload carries only image fields, nothing leaked
		// from the abandoned text variant.
		b, err := json.Marshal(creator.requests[0].Content)
		require.NoError(t, err)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(b, &payload))
		require.Contains(t, payload, "imgUrl")
		require.NotContains(t, payload, "title")
		require.NotContains(t, payload, "content")
	})

	t.Run("field edit before selecting a type", func(t *testing.T) {
		t.Parallel()

		form := scheduling.NewForm()
		err := form.SetField("message", "Hola")
		require.Error(t, err)
		require.True(t, core.IsValidation(err))
	})
}

func TestSetField(t *testing.T) {
	t.Parallel()

	t.Run("accepts the wire prefix", func(t *testing.T) {
		t.Parallel()

		form := scheduling.NewForm()
		require.NoError(t, form.SelectPostType("message"))
		require.NoError(t, form.SetField("content.message", "Hola"))
		require.Equal(t, "Hola", form.Content().(*core.MessageContent).Message)
	})

	t.Run("rejects a foreign field", func(t *testing.T) {
		t.Parallel()

		form := scheduling.NewForm()
		require.NoError(t, form.SelectPostType("image"))
		require.Error(t, form.SetField("message", "Hola"))
	})
}

func TestSubmit(t *testing.T) {
	t.Parallel()

	t.Run("missing provider makes no network call", func(t *testing.T) {
		t.Parallel()

		form := scheduling.NewForm()
		require.NoError(t, form.SelectPostType("message"))
		require.NoError(t, form.SetField("message", "Hola"))

		creator := &fakeCreator{}
		err := form.Submit(t.Context(), creator)
		require.True(t, core.IsValidation(err))
		require.Empty(t, creator.requests)
	})

	t.Run("missing post type makes no network call", func(t *testing.T) {
		t.Parallel()

		form := scheduling.NewForm()
		form.SelectProvider("FACEBOOK")

		creator := &fakeCreator{}
		err := form.Submit(t.Context(), creator)
		require.True(t, core.IsValidation(err))
		require.Empty(t, creator.requests)
	})

	t.Run("linkedin is a valid provider", func(t *testing.T) {
		t.Parallel()

		form := filledForm(t)
		form.SelectProvider("LINKEDIN")

		creator := &fakeCreator{}
		require.NoError(t, form.Submit(t.Context(), creator))
		require.Equal(t, 5, creator.requests[0].Provider)
	})

	t.Run("incomplete content makes no network call", func(t *testing.T) {
		t.Parallel()

		form := scheduling.NewForm()
		form.SelectProvider("FACEBOOK")
		require.NoError(t, form.SelectPostType("text"))
		require.NoError(t, form.SetField("title", "Hola"))

		creator := &fakeCreator{}
		err := form.Submit(t.Context(), creator)
		require.True(t, core.IsValidation(err))
		require.Empty(t, creator.requests)
	})

	t.Run("unscheduled post sends nil unix", func(t *testing.T) {
		t.Parallel()

		form := filledForm(t)
		creator := &fakeCreator{}
		require.NoError(t, form.Submit(t.Context(), creator))

		req := creator.requests[0]
		require.Nil(t, req.Unix)
		require.Equal(t, 1, req.Provider)
		require.Equal(t, 3, req.TypePost)
	})

	t.Run("scheduled post sends epoch seconds", func(t *testing.T) {
		t.Parallel()

		form := filledForm(t)
		at := time.Date(2026, 9, 1, 15, 0, 0, 0, time.Local)
		form.SetScheduledAt(at)

		creator := &fakeCreator{}
		require.NoError(t, form.Submit(t.Context(), creator))

		req := creator.requests[0]
		require.NotNil(t, req.Unix)
		require.Equal(t, at.Unix(), *req.Unix)
	})

	t.Run("success resets the form", func(t *testing.T) {
		t.Parallel()

		form := filledForm(t)
		require.NoError(t, form.Submit(t.Context(), &fakeCreator{}))

		require.Empty(t, form.Provider())
		require.Empty(t, form.PostType())
		require.Nil(t, form.Content())
		_, scheduled := form.ScheduledAt()
		require.False(t, scheduled)
	})

	t.Run("transport failure keeps the entered values", func(t *testing.T) {
		t.Parallel()

		form := filledForm(t)
		err := form.Submit(t.Context(), &fakeCreator{err: errBackend})
		require.ErrorIs(t, err, errBackend)

		require.Equal(t, "FACEBOOK", form.Provider())
		require.Equal(t, core.PostTypeMessage, form.PostType())
		require.Equal(t, "Hola", form.Content().(*core.MessageContent).Message)

		// Retry with the preserved state succeeds.
		creator := &fakeCreator{}
		require.NoError(t, form.Submit(t.Context(), creator))
		require.Len(t, creator.requests, 1)
	})
}
