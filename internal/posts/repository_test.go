package posts_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"growdash/internal/core"
	"growdash/internal/posts"
)

var errBackend = errors.New("backend unavailable")

type fakeAPI struct {
	mu        sync.Mutex
	posts     map[int64][]core.Post
	listErr   error
	listCalls int
	created   []core.NewPostRequest
	createErr error

	// blocked profiles wait on their gate before their list response is
	// released, used to simulate a slow in-flight fetch.
	gates map[int64]chan struct{}
}

func (f *fakeAPI) ListPosts(_ context.Context, profileID int64) ([]core.Post, error) {
	f.mu.Lock()
	f.listCalls++
	gate := f.gates[profileID]
	result := f.posts[profileID]
	err := f.listErr
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (f *fakeAPI) CreatePost(_ context.Context, _ int64, req core.NewPostRequest) (*core.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, req)
	return &core.Post{ID: 99}, nil
}

func (f *fakeAPI) CreateProfile(_ context.Context, name string) (*core.Profile, error) {
	return &core.Profile{ID: 1, Name: name}, nil
}

func (f *fakeAPI) InviteMember(_ context.Context, _ int64, _, _ string) error {
	return nil
}

func (f *fakeAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

func messagePost(id int64, message string) core.Post {
	return core.Post{
		ID:     id,
		Fields: json.RawMessage(`{"message":"` + message + `"}`),
		Task:   core.Task{Unix: 1700000000},
		ProviderPostType: core.ProviderPostType{
			Provider: core.Named{Name: "FACEBOOK"},
			PostType: core.Named{Name: "message"},
		},
	}
}

func newRepository(t *testing.T, api core.API) *posts.Repository {
	t.Helper()

	repo := &posts.Repository{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		API:    api,
	}
	require.NoError(t, repo.Init(t.Context()))
	return repo
}

func postIDs(list []core.Post) []int64 {
	return lo.Map(list, func(p core.Post, _ int) int64 { return p.ID })
}

func TestSetActiveProfile(t *testing.T) {
	t.Parallel()

	t.Run("switch triggers one refresh", func(t *testing.T) {
		t.Parallel()

		api := &fakeAPI{posts: map[int64][]core.Post{1: {messagePost(5, "Hola")}}}
		repo := newRepository(t, api)

		require.NoError(t, repo.SetActiveProfile(t.Context(), core.Profile{ID: 1, Name: "P1"}))
		require.Equal(t, 1, api.calls())
		require.Equal(t, []int64{5}, postIDs(repo.Posts()))
	})

	t.Run("same profile is a no-op", func(t *testing.T) {
		t.Parallel()

		api := &fakeAPI{posts: map[int64][]core.Post{1: {messagePost(5, "Hola")}}}
		repo := newRepository(t, api)

		require.NoError(t, repo.SetActiveProfile(t.Context(), core.Profile{ID: 1, Name: "P1"}))
		require.NoError(t, repo.SetActiveProfile(t.Context(), core.Profile{ID: 1, Name: "P1"}))
		require.Equal(t, 1, api.calls())
	})
}

func TestRefresh(t *testing.T) {
	t.Parallel()

	t.Run("without active profile", func(t *testing.T) {
		t.Parallel()

		repo := newRepository(t, &fakeAPI{})
		require.ErrorIs(t, repo.Refresh(t.Context()), core.ErrNoActiveProfile)
	})

	t.Run("replaces the whole list", func(t *testing.T) {
		t.Parallel()

		api := &fakeAPI{posts: map[int64][]core.Post{1: {messagePost(1, "a"), messagePost(2, "b")}}}
		repo := newRepository(t, api)
		require.NoError(t, repo.SetActiveProfile(t.Context(), core.Profile{ID: 1}))

		api.mu.Lock()
		api.posts[1] = []core.Post{messagePost(3, "c")}
		api.mu.Unlock()

		require.NoError(t, repo.Refresh(t.Context()))
		require.Equal(t, []int64{3}, postIDs(repo.Posts()))
	})

	t.Run("failure keeps the previous list", func(t *testing.T) {
		t.Parallel()

		api := &fakeAPI{posts: map[int64][]core.Post{1: {messagePost(5, "Hola")}}}
		repo := newRepository(t, api)
		require.NoError(t, repo.SetActiveProfile(t.Context(), core.Profile{ID: 1}))

		api.mu.Lock()
		api.listErr = errBackend
		api.mu.Unlock()

		err := repo.Refresh(t.Context())
		require.ErrorIs(t, err, errBackend)
		require.Equal(t, []int64{5}, postIDs(repo.Posts()))
	})

	t.Run("idempotent for the same profile", func(t *testing.T) {
		t.Parallel()

		api := &fakeAPI{posts: map[int64][]core.Post{1: {messagePost(5, "Hola"), messagePost(6, "Que tal")}}}
		repo := newRepository(t, api)
		require.NoError(t, repo.SetActiveProfile(t.Context(), core.Profile{ID: 1}))

		before := postIDs(repo.Posts())
		require.NoError(t, repo.Refresh(t.Context()))
		require.NoError(t, repo.Refresh(t.Context()))
		require.Equal(t, before, postIDs(repo.Posts()))
	})
}

func TestRefreshDiscardsStaleResponse(t *testing.T) {
	t.Parallel()

	gateA := make(chan struct{})
	api := &fakeAPI{
		posts: map[int64][]core.Post{
			1: {messagePost(10, "from A")},
			2: {messagePost(20, "from B")},
		},
		gates: map[int64]chan struct{}{1: gateA},
	}
	repo := newRepository(t, api)

	// Profile A's fetch hangs in flight.
	done := make(chan error, 1)
	go func() {
		done <- repo.SetActiveProfile(context.Background(), core.Profile{ID: 1, Name: "A"})
	}()

	require.Eventually(t, func() bool { return api.calls() >= 1 }, time.Second, time.Millisecond)

	// Switch to B while A is still in flight; B's response arrives first.
	require.NoError(t, repo.SetActiveProfile(t.Context(), core.Profile{ID: 2, Name: "B"}))
	require.Equal(t, []int64{20}, postIDs(repo.Posts()))

	// A's late response must be discarded, not overwrite B's list.
	close(gateA)
	require.NoError(t, <-done)
	require.Equal(t, []int64{20}, postIDs(repo.Posts()))

	profile, ok := repo.ActiveProfile()
	require.True(t, ok)
	require.Equal(t, int64(2), profile.ID)
}

func TestCreate(t *testing.T) {
	t.Parallel()

	t.Run("submits and refreshes", func(t *testing.T) {
		t.Parallel()

		api := &fakeAPI{posts: map[int64][]core.Post{1: nil}}
		repo := newRepository(t, api)
		require.NoError(t, repo.SetActiveProfile(t.Context(), core.Profile{ID: 1}))

		api.mu.Lock()
		api.posts[1] = []core.Post{messagePost(99, "Hola")}
		api.mu.Unlock()

		unix := int64(1700000000)
		require.NoError(t, repo.Create(t.Context(), core.NewPostRequest{
			Content:  &core.MessageContent{Message: "Hola"},
			Provider: 1,
			TypePost: 3,
			Unix:     &unix,
		}))

		// The local view reflects the server state, not an optimistic insert.
		require.Equal(t, []int64{99}, postIDs(repo.Posts()))
		require.Len(t, api.created, 1)
	})

	t.Run("failure leaves the list unchanged", func(t *testing.T) {
		t.Parallel()

		api := &fakeAPI{
			posts:     map[int64][]core.Post{1: {messagePost(5, "Hola")}},
			createErr: errBackend,
		}
		repo := newRepository(t, api)
		require.NoError(t, repo.SetActiveProfile(t.Context(), core.Profile{ID: 1}))

		err := repo.Create(t.Context(), core.NewPostRequest{Content: &core.MessageContent{Message: "x"}})
		require.ErrorIs(t, err, errBackend)
		require.Equal(t, []int64{5}, postIDs(repo.Posts()))
		require.Equal(t, 1, api.calls())
	})

	t.Run("without active profile", func(t *testing.T) {
		t.Parallel()

		repo := newRepository(t, &fakeAPI{})
		err := repo.Create(t.Context(), core.NewPostRequest{})
		require.ErrorIs(t, err, core.ErrNoActiveProfile)
	})
}

func TestEvents(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{posts: map[int64][]core.Post{1: {messagePost(5, "Hola")}}}
	repo := newRepository(t, api)
	require.NoError(t, repo.SetActiveProfile(t.Context(), core.Profile{ID: 1, Name: "P1"}))

	events := repo.Events()
	require.Len(t, events, 1)
	require.Equal(t, "Hola", events[0].Title)
	require.Equal(t, "#1877F2", events[0].Color)
}
