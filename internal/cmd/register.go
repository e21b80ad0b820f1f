package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/pal"

	"growdash/internal/cmd/flags"
	"growdash/internal/core"
	"growdash/internal/growfy"
)

var registerCmd = &cli.Command{
	Name:  "register",
	Usage: "Create a new Growfy account and its first profile",
	Flags: []cli.Flag{
		flags.Name,
		flags.Email,
		flags.Phone,
		flags.ProfileName,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c,
			pal.Provide(&registerRunner{
				name:        c.String("name"),
				email:       c.String("email"),
				phone:       c.String("phone"),
				profileName: c.String("profile-name"),
			}),
		)
	},
}

type registerRunner struct {
	Logger *slog.Logger
	Client *growfy.Client

	name        string
	email       string
	phone       string
	profileName string
}

func (r *registerRunner) Run(ctx context.Context) error {
	name, err := promptIfEmpty(r.name, "Nombre: ")
	if err != nil {
		return err
	}
	email, err := promptIfEmpty(r.email, "Email: ")
	if err != nil {
		return err
	}
	if name == "" {
		return &core.ValidationError{Field: "name", Message: "name is required"}
	}
	if email == "" {
		return &core.ValidationError{Field: "email", Message: "email is required"}
	}

	password, err := readPassword()
	if err != nil {
		return err
	}

	err = r.Client.Register(ctx, growfy.RegisterRequest{
		Name:        name,
		Email:       email,
		Password:    password,
		Phone:       r.phone,
		NameProfile: r.profileName,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Cuenta creada para %s. Inicia sesión con: growdash login --email %s\n", name, email)
	return nil
}

func promptIfEmpty(value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}

	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
