package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"

	"growdash/internal/cmd/flags"
	"growdash/internal/config"
	"growdash/internal/core"
	"growdash/internal/growfy"
)

var profileCmd = &cli.Command{
	Name:  "profile",
	Usage: "Manage the profiles you can act as",
	Commands: []*cli.Command{
		{
			Name:      "create",
			Usage:     "Create a new profile",
			ArgsUsage: "<name>",
			Action: func(ctx context.Context, c *cli.Command) error {
				if c.Args().Len() != 1 {
					return fmt.Errorf("expected exactly one profile name argument")
				}
				return run(ctx, c,
					pal.Provide(&profileCreateRunner{name: c.Args().First()}),
				)
			},
		},
		{
			Name:      "invite",
			Usage:     "Invite a user to the current profile",
			ArgsUsage: "<email>",
			Flags: []cli.Flag{
				flags.Profile,
				flags.Role,
			},
			Action: func(ctx context.Context, c *cli.Command) error {
				if c.Args().Len() != 1 {
					return fmt.Errorf("expected exactly one email argument")
				}
				return run(ctx, c,
					pal.Provide(&profileInviteRunner{
						email: c.Args().First(),
						role:  c.String("role"),
					}),
				)
			},
		},
		{
			Name:  "list",
			Usage: "List the profiles of the logged-in user",
			Action: func(ctx context.Context, c *cli.Command) error {
				return run(ctx, c, pal.Provide(&profileListRunner{}))
			},
		},
		{
			Name:      "use",
			Usage:     "Switch the current profile",
			ArgsUsage: "<id-or-name>",
			Action: func(ctx context.Context, c *cli.Command) error {
				if c.Args().Len() != 1 {
					return fmt.Errorf("expected exactly one profile id or name argument")
				}
				return run(ctx, c,
					pal.Provide(&profileUseRunner{key: c.Args().First()}),
				)
			},
		},
	},
}

type profileCreateRunner struct {
	Logger  *slog.Logger
	Client  *growfy.Client
	Session *config.Session

	name string
}

func (r *profileCreateRunner) Run(ctx context.Context) error {
	if err := requireSession(r.Session); err != nil {
		return err
	}

	profile, err := r.Client.CreateProfile(ctx, r.name)
	if err != nil {
		return err
	}

	r.Session.Profiles = append(r.Session.Profiles, *profile)
	if err := r.Session.Save(); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	fmt.Printf("Perfil creado: %s (id %d)\n", profile.Name, profile.ID)
	return nil
}

type profileInviteRunner struct {
	Logger  *slog.Logger
	Config  *config.Config
	Client  *growfy.Client
	Session *config.Session

	email string
	role  string
}

func (r *profileInviteRunner) Run(ctx context.Context) error {
	if err := requireSession(r.Session); err != nil {
		return err
	}

	if !core.ValidRole(r.role) {
		return &core.ValidationError{Field: "role", Message: fmt.Sprintf("unknown role %q, valid roles: %v", r.role, core.RoleNames())}
	}

	profile, err := resolveProfile(r.Config, r.Session)
	if err != nil {
		return err
	}

	if err := r.Client.InviteMember(ctx, profile.ID, r.email, r.role); err != nil {
		return err
	}

	fmt.Printf("Invitación enviada a %s como %s\n", r.email, core.RoleLabel(r.role))
	return nil
}

type profileListRunner struct {
	Logger  *slog.Logger
	Session *config.Session
}

func (r *profileListRunner) Run(_ context.Context) error {
	if err := requireSession(r.Session); err != nil {
		return err
	}

	current, _ := r.Session.CurrentProfile()
	for _, profile := range r.Session.Profiles {
		marker := " "
		if profile.ID == current.ID {
			marker = "*"
		}
		fmt.Printf("%s %d\t%s\n", marker, profile.ID, profile.Name)
	}
	return nil
}

type profileUseRunner struct {
	Logger  *slog.Logger
	Session *config.Session

	key string
}

func (r *profileUseRunner) Run(_ context.Context) error {
	if err := requireSession(r.Session); err != nil {
		return err
	}

	profile, ok := r.Session.FindProfile(r.key)
	if !ok {
		return fmt.Errorf("no profile matches %q", r.key)
	}

	r.Session.CurrentProfileID = profile.ID
	if err := r.Session.Save(); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	fmt.Printf("Perfil actual: %s\n", profile.Name)
	return nil
}
