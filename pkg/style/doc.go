// Package style maps go-theme manifests onto prompt display templates and
// console tokens. A theme names its prompt formats under well-known
// template keys; resolving a theme plus an optional variant yields a
// complete prompt.Templates value with defaults filling any gaps, along
// with the merged token table for callers that colour their output.
package style
