package flags

import (
	"fmt"
	"slices"
	"time"

	"github.com/urfave/cli/v3"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

var LogLevel = &cli.StringFlag{
	Name:    "log-level",
	Aliases: []string{"l"},
	Usage:   "The level of the logs",
	Value:   "info",
	Validator: func(value string) error {
		if !slices.Contains(validLogLevels, value) {
			return fmt.Errorf("invalid log level: %s, allowed values are: %s", value, validLogLevels)
		}
		return nil
	},
	Sources: cli.EnvVars("LOG_LEVEL"),
}

var APIURL = &cli.StringFlag{
	Name:    "api-url",
	Usage:   "Base URL of the Growfy API, overrides the stored session value",
	Sources: cli.EnvVars("GROWDASH_API_URL"),
}

var Profile = &cli.IntFlag{
	Name:    "profile",
	Aliases: []string{"p"},
	Usage:   "Numeric id of the profile to act as, defaults to the session's current profile",
	Sources: cli.EnvVars("GROWDASH_PROFILE"),
}

var Watch = &cli.BoolFlag{
	Name:    "watch",
	Aliases: []string{"w"},
	Usage:   "Keep running and re-render the calendar on every refresh interval",
}

var Interval = &cli.DurationFlag{
	Name:    "interval",
	Usage:   "Refresh interval for --watch",
	Value:   30 * time.Second,
	Sources: cli.EnvVars("GROWDASH_INTERVAL"),
}

var Raw = &cli.BoolFlag{
	Name:  "raw",
	Usage: "Pretty-print the raw post records instead of the calendar view",
}

var MetricsAddr = &cli.StringFlag{
	Name:    "metrics-addr",
	Usage:   "Expose prometheus metrics on this address while watching",
	Sources: cli.EnvVars("GROWDASH_METRICS_ADDR"),
}

var Email = &cli.StringFlag{
	Name:    "email",
	Aliases: []string{"e"},
	Usage:   "Email address",
}

var Name = &cli.StringFlag{
	Name:  "name",
	Usage: "Full name of the new user",
}

var Phone = &cli.StringFlag{
	Name:  "phone",
	Usage: "Contact phone number",
}

var ProfileName = &cli.StringFlag{
	Name:  "profile-name",
	Usage: "Name of the first profile created with the account",
}

var Role = &cli.StringFlag{
	Name:  "role",
	Usage: "Membership role for the invited user",
	Value: "TEAM_MEMBER",
}

var Provider = &cli.StringFlag{
	Name:  "provider",
	Usage: "Target provider of the post",
}

var PostType = &cli.StringFlag{
	Name:    "type",
	Aliases: []string{"t"},
	Usage:   "Content shape of the post: text, image or message",
}

var Field = &cli.StringSliceFlag{
	Name:    "field",
	Aliases: []string{"f"},
	Usage:   "Content field as key=value, repeatable",
}

var At = &cli.StringFlag{
	Name:  "at",
	Usage: "Scheduled local time, e.g. 2026-09-01T15:04; omit for an unscheduled post",
}
