// Package limit is the constraint library: every function takes a prompt,
// registers one validator closing over the constraint's parameters, appends
// or replaces exactly one descriptive hint, and returns the same prompt so
// calls compose. Validators return retryable input errors, so a failed
// constraint re-asks instead of aborting.
//
// Range-style constraints treat their two bounds symmetrically: reversed
// bounds are swapped rather than rejected.
package limit
