package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"

	"growdash/internal/calendar"
	"growdash/internal/cmd/flags"
	"growdash/internal/config"
	"growdash/internal/posts"
)

var eventCmd = &cli.Command{
	Name:      "event",
	Usage:     "Show the details of one scheduled post",
	ArgsUsage: "<post-id>",
	Flags: []cli.Flag{
		flags.Profile,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() != 1 {
			return fmt.Errorf("expected exactly one post id argument")
		}
		id, err := strconv.ParseInt(c.Args().First(), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid post id %q: %w", c.Args().First(), err)
		}

		return run(ctx, c,
			pal.Provide(&posts.Repository{}),
			pal.Provide(&eventRunner{id: id}),
		)
	},
}

type eventRunner struct {
	Logger  *slog.Logger
	Config  *config.Config
	Session *config.Session
	Repo    *posts.Repository

	id int64
}

func (r *eventRunner) Run(ctx context.Context) error {
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

	for _, event := range r.Repo.Events() {
		if event.ID == r.id {
			renderDetail(os.Stdout, calendar.Resolve(event))
			return nil
		}
	}

	return fmt.Errorf("post %d not found in profile %s", r.id, profile.Name)
}
