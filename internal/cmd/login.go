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
	"golang.org/x/term"

	"growdash/internal/cmd/flags"
	"growdash/internal/config"
	"growdash/internal/growfy"
)

var loginCmd = &cli.Command{
	Name:  "login",
	Usage: "Authenticate against the Growfy API and store the session",
	Flags: []cli.Flag{
		flags.Email,
	},
	Action: func(ctx context.Context, c *cli.Command) error {
		return run(ctx, c,
			pal.Provide(&loginRunner{email: c.String("email")}),
		)
	},
}

type loginRunner struct {
	Logger  *slog.Logger
	Client  *growfy.Client
	Session *config.Session

	email string
}

func (r *loginRunner) Run(ctx context.Context) error {
	email, err := promptIfEmpty(r.email, "Email: ")
	if err != nil {
		return err
	}

	password, err := readPassword()
	if err != nil {
		return err
	}

	tokens, err := r.Client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	r.Client.SetAuthToken(tokens.AccessToken)

	user, err := r.Client.Me(ctx)
	if err != nil {
		return err
	}

	r.Session.AccessToken = tokens.AccessToken
	r.Session.RefreshToken = tokens.RefreshToken
	r.Session.Profiles = user.Profiles()
	if _, ok := r.Session.CurrentProfile(); !ok && len(r.Session.Profiles) > 0 {
		r.Session.CurrentProfileID = r.Session.Profiles[0].ID
	}

	if err := r.Session.Save(); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	fmt.Printf("Logged in as %s (%d profiles)\n", user.Email, len(r.Session.Profiles))
	return nil
}

// readPassword prompts with echo disabled, falling back to plain input when
// stdin is not a terminal.
func readPassword() (string, error) {
	fmt.Print("Password: ")

	if term.IsTerminal(int(os.Stdin.Fd())) {
		b, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
