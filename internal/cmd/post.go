package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"

	"growdash/internal/cmd/flags"
	"growdash/internal/config"
	"growdash/internal/core"
	"growdash/internal/posts"
	"growdash/internal/scheduling"
)

var postCmd = &cli.Command{
	Name:  "post",
	Usage: "Schedule a new post on the current profile",
	Flags: []cli.Flag{
		flags.Profile,
		flags.Provider,
		flags.PostType,
		flags.Field,
		flags.At,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c,
			pal.Provide(&posts.Repository{}),
			pal.Provide(&postRunner{
				provider: c.String("provider"),
				postType: c.String("type"),
				fields:   c.StringSlice("field"),
				at:       c.String("at"),
			}),
		)
	},
}

type postRunner struct {
	Logger  *slog.Logger
	Config  *config.Config
	Session *config.Session
	Repo    *posts.Repository

	provider string
	postType string
	fields   []string
	at       string
}

// scheduledAtLayouts are tried in order when parsing --at. Local time, no
// timezone on the wire.
var scheduledAtLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

func (r *postRunner) Run(ctx context.Context) error {
	if err := requireSession(r.Session); err != nil {
		return err
	}

	profile, err := resolveProfile(r.Config, r.Session)
	if err != nil {
		return err
	}
	if err := r.Repo.SetActiveProfile(ctx, profile); err != nil {
		return err
	}

	form := scheduling.NewForm()
	if err := r.fill(form); err != nil {
		return err
	}

	if err := form.Submit(ctx, r.Repo); err != nil {
		return err
	}

	fmt.Printf("Publicación creada en %s (%d posts programados)\n", profile.Name, len(r.Repo.Posts()))
	return nil
}

func (r *postRunner) fill(form *scheduling.Form) error {
	form.SelectProvider(r.provider)

	if err := form.SelectPostType(r.postType); err != nil {
		return err
	}

	for _, pair := range r.fields {
		name, value, found := strings.Cut(pair, "=")
		if !found {
			return &core.ValidationError{Field: name, Message: "expected key=value"}
		}
		if err := form.SetField(name, value); err != nil {
			return err
		}
	}

	if r.at == "" {
		return nil
	}

	for _, layout := range scheduledAtLayouts {
		if t, err := time.ParseInLocation(layout, r.at, time.Local); err == nil {
			form.SetScheduledAt(t)
			return nil
		}
	}
	return &core.ValidationError{Field: "at", Message: "unrecognized datetime: " + r.at}
}
