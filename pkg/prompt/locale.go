package prompt

// Locale carries the input conventions the built-in parsers consult. The zero
// value accepts Go literal syntax: decimal point, strconv boolean literals.
// Custom parsers receive the session locale on every call and may interpret
// it however they like.
type Locale struct {
	// DecimalSeparator, when non-zero, is accepted in place of '.' by the
	// numeric parsers.
	DecimalSeparator rune
	// TrueWords and FalseWords extend the answers the boolean parser
	// recognises, compared case-insensitively after trimming.
	TrueWords  []string
	FalseWords []string
}
