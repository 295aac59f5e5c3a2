// Package render turns prompt messages into rich text through a template
// engine. The core display templates stay positional; this package serves
// callers that want templated hint text, localized wording, or larger
// blocks such as help screens, all behind the MessageRenderer seam.
package render
