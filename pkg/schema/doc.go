// Package schema builds configured prompts from OpenAPI schema scalars.
//
// A Builder bound to a prompt.Prompter maps constraint keywords onto the
// toolkit's validators and hints: minLength/maxLength become length
// bounds, minimum/maximum become numeric ranges (exclusive bounds add a
// not-equal check), pattern compiles to a regular-expression validator,
// and enum becomes a membership check. Document helpers load and index
// OpenAPI documents via kin-openapi so callers can prompt for the fields
// of a named component schema.
package schema
