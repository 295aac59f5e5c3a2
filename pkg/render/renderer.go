package render

import "io"

// MessageRenderer mirrors the github.com/goliatone/go-template engine
// contract so callers migrating from a go-template-backed setup keep their
// call sites. Render picks between named templates and inline content,
// RenderTemplate always resolves a named template, and RenderString always
// parses its first argument as template content.
type MessageRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
