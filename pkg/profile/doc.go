// Package profile loads declarative prompt definitions from JSON or YAML
// documents and instantiates them on a session. A profile names each
// prompt, gives it a type and display text, and attaches the constraint
// parameters the limit package understands. Session-wide settings come
// from an optional settings block layered over environment variables.
package profile
