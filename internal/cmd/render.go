package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"growdash/internal/calendar"
	"growdash/internal/core"
)

// Terminal approximations of the provider palette. Unknown color tokens fall
// back to a faint marker, mirroring the gray fallback of the web calendar.
var colorByToken = map[string]*color.Color{
	"#1877F2": color.New(color.FgBlue),
	"#E1306C": color.New(color.FgMagenta),
	"#1DA1F2": color.New(color.FgCyan),
	"#BD081C": color.New(color.FgRed),
	"#0A66C2": color.New(color.FgHiBlue),
}

var (
	fallbackColor = color.New(color.Faint)
	dayHeading    = color.New(color.Bold)
	linkStyle     = color.New(color.FgBlue, color.Underline)
)

func eventColor(token string) *color.Color {
	if c, ok := colorByToken[token]; ok {
		return c
	}
	return fallbackColor
}

func renderEvents(w io.Writer, profile core.Profile, events []core.CalendarEvent) {
	fmt.Fprintf(w, "Calendario - %s\n", profile.Name)

	if len(events) == 0 {
		fmt.Fprintln(w, "Sin publicaciones programadas.")
		return
	}

	sorted := make([]core.CalendarEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	day := ""
	for _, event := range sorted {
		if d := event.Start.Format("Mon 02 Jan 2006"); d != day {
			day = d
			fmt.Fprintf(w, "\n%s\n", dayHeading.Sprint(day))
		}
		fmt.Fprintf(w, "  %s %s  %s  [%s]\n",
			eventColor(event.Color).Sprint("●"),
			event.Start.Format("15:04"),
			event.Title,
			strings.ToUpper(event.Post.ProviderName()),
		)
	}
}

func renderDetail(w io.Writer, view calendar.DetailView) {
	fmt.Fprintf(w, "%s: %s\n", dayHeading.Sprint("Proveedor"), view.Provider)
	fmt.Fprintf(w, "%s: %s\n", dayHeading.Sprint("Tipo de Publicación"), view.PostType)

	for _, field := range view.Fields {
		value := field.Value
		if field.Link {
			value = linkStyle.Sprint(value)
		}
		fmt.Fprintf(w, "%s: %s\n", dayHeading.Sprint(field.Label), value)
	}
}
