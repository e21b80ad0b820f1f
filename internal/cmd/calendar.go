package cmd

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/k0kubun/pp"
	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"
	"github.com/zhulik/pips"
	"github.com/zhulik/pips/apply"

	"growdash/internal/cmd/flags"
	"growdash/internal/config"
	"growdash/internal/core"
	"growdash/internal/metrics"
	"growdash/internal/posts"
)

var calendarCmd = &cli.Command{
	Name:  "calendar",
	Usage: "Show the scheduled posts of a profile as a calendar",
	Flags: []cli.Flag{
		flags.Profile,
		flags.Watch,
		flags.Interval,
		flags.Raw,
		flags.MetricsAddr,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		services := []pal.ServiceDef{
			pal.Provide(&posts.Repository{}),
			pal.Provide(&calendarRunner{}),
		}
		if c.Bool("watch") && c.String("metrics-addr") != "" {
			services = append(services, pal.Provide(&metrics.Server{}))
		}
		return run(ctx, c, services...)
	},
}

type calendarRunner struct {
	Logger  *slog.Logger
	Config  *config.Config
	Session *config.Session
	Repo    *posts.Repository
}

func (r *calendarRunner) Run(ctx context.Context) error {
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

	if r.Config.Raw {
		pp.Println(r.Repo.Posts())
		return nil
	}

	renderEvents(os.Stdout, profile, r.Repo.Events())

	if !r.Config.Watch {
		return nil
	}

	return r.watch(ctx, profile)
}

// watch re-renders on every tick. A failed refresh keeps the previous post
// list on screen; the failure is only logged, the loop keeps going.
func (r *calendarRunner) watch(ctx context.Context, profile core.Profile) error {
	return pips.New[time.Time, []core.CalendarEvent]().
		Then(apply.Map(func(ctx context.Context, _ time.Time) ([]core.CalendarEvent, error) {
			if err := r.Repo.Refresh(ctx); err != nil {
				r.Logger.Warn("refresh failed, keeping previous posts", "error", err)
			}
			return r.Repo.Events(), nil
		})).
		Then(apply.Each(func(_ context.Context, events []core.CalendarEvent) error {
			renderEvents(os.Stdout, profile, events)
			return nil
		})).
		Run(ctx, tickChannel(ctx, r.Config.Interval)).
		Wait(ctx)
}

// tickChannel adapts a ticker into a pipeline input. Closed when ctx is
// done; never blocks past cancellation.
func tickChannel(ctx context.Context, interval time.Duration) <-chan pips.D[time.Time] {
	ticks := make(chan pips.D[time.Time])

	go func() {
		defer close(ticks)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case t := <-ticker.C:
				select {
				case <-ctx.Done():
					return
				case ticks <- pips.NewD(t):
				}
			}
		}
	}()

	return ticks
}
