package config

import "time"

// Config carries the per-invocation settings parsed from CLI flags. Fields
// map to flags by tag; commands only define the flags they use, the rest
// stay at their zero value.
type Config struct {
	APIURL   string `flag:"api-url"`
	LogLevel string `flag:"log-level"`

	ProfileID int64 `flag:"profile"`

	Watch       bool          `flag:"watch"`
	Interval    time.Duration `flag:"interval"`
	Raw         bool          `flag:"raw"`
	MetricsAddr string        `flag:"metrics-addr"`
}
