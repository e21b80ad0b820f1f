package calendar

import (
	"growdash/internal/core"
)

// DetailField is one labeled line of an event's detail view. Link marks
// values renderers should present as a followable URL.
type DetailField struct {
	Label string
	Value string
	Link  bool
}

// DetailView is the human-readable expansion of a selected calendar event.
type DetailView struct {
	Provider string
	PostType string
	Fields   []DetailField
}

// Resolve maps an event back to its per-variant detail view. Optional fields
// that are empty are omitted, never rendered as errors.
func Resolve(event core.CalendarEvent) DetailView {
	view := DetailView{
		Provider: event.Post.ProviderName(),
		PostType: event.Post.PostTypeName(),
	}

	content := event.Post.Content()
	if content == nil {
		return view
	}

	for _, spec := range content.Fields() {
		value := fieldValue(content, spec.Name)
		if value == "" {
			continue
		}
		view.Fields = append(view.Fields, DetailField{
			Label: spec.Label,
			Value: value,
			Link:  spec.Link,
		})
	}
	return view
}

func fieldValue(content core.Content, field string) string {
	switch c := content.(type) {
	case *core.TextContent:
		switch field {
		case "title":
			return c.Title
		case "content":
			return c.Content
		}
	case *core.ImageContent:
		switch field {
		case "imgUrl":
			return c.ImgURL
		case "caption":
			return c.Caption
		}
	case *core.MessageContent:
		if field == "message" {
			return c.Message
		}
	}
	return ""
}
