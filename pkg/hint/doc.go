// Package hint models the small descriptors a prompt shows next to its
// question text. A hint pairs an open-ended string key with an optional
// payload; how the pair turns into display text is decided entirely by a
// Registry of per-key formatter functions, so the same prompt can render
// verbose or terse depending on session policy. The package ships keys and
// formatters for every constraint the toolkit defines, grouped into tiers a
// caller can apply wholesale.
package hint
