// Package prompt implements the interactive read-parse-validate loop at the
// heart of the toolkit. A Prompter owns a borrowed line source and output
// writer together with the session's display templates, hint formatters, and
// locale; Prompt values built by its factories accumulate a parser, a chain
// of validators, and descriptive hints through fluent calls, then Display
// drives the blocking retry loop until the user supplies an acceptable value.
//
// Errors split into two camps. An *InputError marks text the user can fix by
// retyping; Display prints it through the invalid-input template and asks
// again. Every other error, including ErrNoParser, escapes Display
// immediately.
package prompt
