package core

import (
	"encoding/json"
)

type PostType string

const (
	PostTypeText    PostType = "text"
	PostTypeImage   PostType = "image"
	PostTypeMessage PostType = "message"
)

// FieldSpec describes one form field of a content variant. Required fields
// come before optional ones in the order returned by Content.Fields.
type FieldSpec struct {
	Name     string
	Label    string
	Required bool
	Link     bool
}

// Content is the closed set of post content shapes, keyed by PostType.
// Validation failure is a local, recoverable condition: Validate returns a
// ValidationError and the caller keeps its state, nothing is thrown away.
type Content interface {
	PostType() PostType

	// Validate checks that all required fields are present.
	Validate() error

	// Fields lists the variant's form fields, required before optional.
	Fields() []FieldSpec

	// Summary is the single-line calendar title, falling back to the
	// variant's placeholder when the primary field is empty.
	Summary() string

	// Set writes one field by name. A field that does not belong to the
	// variant is rejected with a ValidationError, so a stale field from a
	// previously selected variant can never leak into a submission.
	Set(field, value string) error
}

// NewContent returns the empty value of the variant for the given post type.
func NewContent(postType PostType) (Content, error) {
	switch postType {
	case PostTypeText:
		return &TextContent{}, nil
	case PostTypeImage:
		return &ImageContent{}, nil
	case PostTypeMessage:
		return &MessageContent{}, nil
	default:
		return nil, &ValidationError{Field: "typePost", Message: "unknown post type: " + string(postType)}
	}
}

// DecodeContent decodes a raw field bag according to the post type tag.
// Total by design: unknown tags yield nil, malformed or partial bags decode
// to zero values. The repository may contain partially filled legacy
// records, so decoding must never fail.
func DecodeContent(postType string, raw json.RawMessage) Content {
	content, err := NewContent(PostType(postType))
	if err != nil {
		return nil
	}
	if len(raw) > 0 {
		// Best effort: whatever fields match, keep; the rest stay zero.
		json.Unmarshal(raw, content) //nolint:errcheck
	}
	return content
}

// TextContent is the "text" variant: a titled body, both parts required.
type TextContent struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (c *TextContent) PostType() PostType { return PostTypeText }

func (c *TextContent) Validate() error {
	if c.Title == "" {
		return requiredField("title")
	}
	if c.Content == "" {
		return requiredField("content")
	}
	return nil
}

func (c *TextContent) Fields() []FieldSpec {
	return []FieldSpec{
		{Name: "title", Label: "Título", Required: true},
		{Name: "content", Label: "Contenido", Required: true},
	}
}

func (c *TextContent) Summary() string {
	if c.Title == "" {
		return "Texto sin título"
	}
	return c.Title
}

func (c *TextContent) Set(field, value string) error {
	switch field {
	case "title":
		c.Title = value
	case "content":
		c.Content = value
	default:
		return unknownField(field, c.PostType())
	}
	return nil
}

// ImageContent is the "image" variant: a required image URL plus an optional
// caption.
type ImageContent struct {
	ImgURL  string `json:"imgUrl"`
	Caption string `json:"caption,omitempty"`
}

func (c *ImageContent) PostType() PostType { return PostTypeImage }

func (c *ImageContent) Validate() error {
	if c.ImgURL == "" {
		return requiredField("imgUrl")
	}
	return nil
}

func (c *ImageContent) Fields() []FieldSpec {
	return []FieldSpec{
		{Name: "imgUrl", Label: "URL de Imagen", Required: true, Link: true},
		{Name: "caption", Label: "Descripción"},
	}
}

func (c *ImageContent) Summary() string {
	if c.Caption == "" {
		return "Imagen sin descripción"
	}
	return c.Caption
}

func (c *ImageContent) Set(field, value string) error {
	switch field {
	case "imgUrl":
		c.ImgURL = value
	case "caption":
		c.Caption = value
	default:
		return unknownField(field, c.PostType())
	}
	return nil
}

// MessageContent is the "message" variant: a single required body.
type MessageContent struct {
	Message string `json:"message"`
}

func (c *MessageContent) PostType() PostType { return PostTypeMessage }

func (c *MessageContent) Validate() error {
	if c.Message == "" {
		return requiredField("message")
	}
	return nil
}

func (c *MessageContent) Fields() []FieldSpec {
	return []FieldSpec{
		{Name: "message", Label: "Mensaje", Required: true},
	}
}

func (c *MessageContent) Summary() string {
	if c.Message == "" {
		return "Mensaje sin contenido"
	}
	return c.Message
}

func (c *MessageContent) Set(field, value string) error {
	switch field {
	case "message":
		c.Message = value
	default:
		return unknownField(field, c.PostType())
	}
	return nil
}

func requiredField(field string) error {
	return &ValidationError{Field: field, Message: "required field is empty"}
}

func unknownField(field string, postType PostType) error {
	return &ValidationError{Field: field, Message: "field does not belong to the " + string(postType) + " variant"}
}
