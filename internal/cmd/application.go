// Package cmd wires the growdash CLI: one urfave/cli command per user
// action, services assembled with pal per command.
package cmd

import (
	"context"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"
	"resty.dev/v3"

	"growdash/internal/cmd/flags"
	"growdash/internal/config"
	"growdash/internal/core"
	"growdash/internal/growfy"
	"growdash/internal/metrics"
	"growdash/pkg/clicfg"
)

const VERSION = "0.1.0"

var cmd = &cli.Command{
	Name:    "growdash",
	Usage:   "Growdash is a terminal dashboard for scheduling posts through the Growfy API",
	Version: VERSION,
	Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
		if err := initLogger(c.String("log-level")); err != nil {
			return ctx, err
		}
		return ctx, nil
	},
	Flags: []cli.Flag{
		flags.LogLevel,
		flags.APIURL,
	},
	Commands: []*cli.Command{
		registerCmd,
		loginCmd,
		calendarCmd,
		postCmd,
		eventCmd,
		profileCmd,
	},
}

func Run() {
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// run parses flags into the config, loads the stored session, builds the
// authenticated API client and hands everything to pal together with the
// command's own services.
func run(ctx context.Context, c *cli.Command, services ...pal.ServiceDef) error {
	cfg := config.Config{}
	if err := clicfg.ParseFlags(c, &cfg); err != nil {
		return err
	}

	session, err := config.LoadSession()
	if err != nil {
		return err
	}
	if cfg.APIURL != "" {
		session.APIURL = cfg.APIURL
	}

	client := growfy.NewClient(&growfy.Config{
		BaseURL:     session.APIURL,
		AccessToken: session.AccessToken,
		ResponseMiddlewares: []resty.ResponseMiddleware{
			metrics.ObserveResty,
		},
	})
	defer client.Close() //nolint:errcheck

	services = append(services,
		pal.Provide(&cfg),
		pal.Provide(session),
		pal.Provide(client),
		pal.Provide[core.API](client),
	)

	return pal.New(services...).
		InjectSlog().
		InitTimeout(2*time.Second).
		HealthCheckTimeout(1*time.Second).
		ShutdownTimeout(10*time.Second).
		Run(ctx, syscall.SIGINT, syscall.SIGTERM)
}

// requireSession guards commands that need a bearer credential.
func requireSession(session *config.Session) error {
	if !session.LoggedIn() {
		return core.ErrNoSession
	}
	return nil
}

// resolveProfile picks the profile a command acts on: --profile wins,
// otherwise the session's current profile.
func resolveProfile(cfg *config.Config, session *config.Session) (core.Profile, error) {
	if cfg.ProfileID != 0 {
		for _, profile := range session.Profiles {
			if profile.ID == cfg.ProfileID {
				return profile, nil
			}
		}
		// Unknown to the session but still a valid scope key.
		return core.Profile{ID: cfg.ProfileID}, nil
	}

	profile, ok := session.CurrentProfile()
	if !ok {
		return core.Profile{}, core.ErrNoActiveProfile
	}
	return profile, nil
}
