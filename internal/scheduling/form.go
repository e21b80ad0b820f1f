// Package scheduling drives the post creation form: a small state machine
// whose field set changes shape with the chosen content variant.
package scheduling

import (
	"context"
	"strings"
	"time"

	"growdash/internal/core"
)

// Creator is the slice of the post repository the form needs on submit.
type Creator interface {
	Create(ctx context.Context, req core.NewPostRequest) error
}

// Form collects and validates creation input. Validation problems stay
// local: no network call is made, and entered values are preserved so the
// user can correct and resubmit.
type Form struct {
	provider    string
	postType    core.PostType
	content     core.Content
	scheduledAt time.Time
}

func NewForm() *Form {
	return &Form{}
}

func (f *Form) SelectProvider(name string) {
	f.provider = strings.ToUpper(strings.TrimSpace(name))
}

// SelectPostType switches the content variant. The content resets to the
// empty value of the new shape so fields from a previously selected variant
// cannot leak into the submission.
func (f *Form) SelectPostType(name string) error {
	postType := core.PostType(strings.TrimSpace(name))
	content, err := core.NewContent(postType)
	if err != nil {
		return err
	}
	f.postType = postType
	f.content = content
	return nil
}

// SetField writes one content field. The addressed leaf is updated and
// sibling fields stay untouched. Accepts the wire-form "content.<field>"
// prefix as well as the bare field name.
func (f *Form) SetField(name, value string) error {
	if f.content == nil {
		return &core.ValidationError{Field: "typePost", Message: "select a post type first"}
	}
	return f.content.Set(strings.TrimPrefix(name, "content."), value)
}

func (f *Form) SetScheduledAt(t time.Time) {
	f.scheduledAt = t
}

func (f *Form) ClearScheduledAt() {
	f.scheduledAt = time.Time{}
}

func (f *Form) Provider() string { return f.provider }

func (f *Form) PostType() core.PostType { return f.postType }

func (f *Form) Content() core.Content { return f.content }

func (f *Form) ScheduledAt() (time.Time, bool) {
	return f.scheduledAt, !f.scheduledAt.IsZero()
}

// Submit validates and sends the post. Local validation failures return a
// ValidationError before any network traffic. A transport failure leaves
// the form intact for a retry; success resets it to the initial state.
func (f *Form) Submit(ctx context.Context, repo Creator) error {
	req, err := f.buildRequest()
	if err != nil {
		return err
	}

	if err := repo.Create(ctx, req); err != nil {
		return err
	}

	f.reset()
	return nil
}

func (f *Form) buildRequest() (core.NewPostRequest, error) {
	providerID, ok := core.ProviderID(f.provider)
	if !ok {
		return core.NewPostRequest{}, &core.ValidationError{Field: "provider", Message: "Proveedor no válido"}
	}

	postTypeID, ok := core.PostTypeID(f.postType)
	if !ok {
		return core.NewPostRequest{}, &core.ValidationError{Field: "typePost", Message: "Tipo de Publicación no válido"}
	}

	if err := f.content.Validate(); err != nil {
		return core.NewPostRequest{}, err
	}

	var unix *int64
	if !f.scheduledAt.IsZero() {
		u := f.scheduledAt.Unix()
		unix = &u
	}

	return core.NewPostRequest{
		Content:  f.content,
		Provider: providerID,
		TypePost: postTypeID,
		Unix:     unix,
	}, nil
}

func (f *Form) reset() {
	*f = Form{}
}
