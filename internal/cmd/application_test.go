package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zhulik/pal"

	"growdash/internal/config"
	"growdash/internal/core"
	"growdash/internal/growfy"
	"growdash/internal/posts"
)

// Compile-level guard for the service assembly in run().
func TestServiceDefs(t *testing.T) {
	t.Parallel()

	client := growfy.NewClient(&growfy.Config{BaseURL: "http://localhost"})
	t.Cleanup(func() { client.Close() }) //nolint:errcheck

	cfg := config.Config{}
	services := []pal.ServiceDef{
		pal.Provide(&cfg),
		pal.Provide(&config.Session{}),
		pal.Provide(client),
		pal.Provide[core.API](client),
		pal.Provide(&posts.Repository{}),
		pal.Provide(&calendarRunner{}),
	}

	for _, def := range services {
		require.NotNil(t, def)
	}
}
