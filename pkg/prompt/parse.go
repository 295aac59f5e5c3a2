package prompt

import (
	"encoding"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ParseFunc converts one line of raw input into a value. Implementations
// return an *InputError (usually KindMalformed) for text the user can fix by
// retyping, and any other error for faults that should abort the prompt.
type ParseFunc[T any] func(raw string, loc Locale) (T, error)

// Integer constrains the built-in integer parser to Go's integer kinds,
// including defined types over them.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float constrains the built-in float parser to Go's float kinds.
type Float interface {
	~float32 | ~float64
}

// Number is the union the numeric prompt factories accept.
type Number interface {
	Integer | Float
}

// StringParser returns the identity parser, or a whitespace-trimming one when
// trim is true.
func StringParser(trim bool) ParseFunc[string] {
	if trim {
		return func(raw string, _ Locale) (string, error) {
			return strings.TrimSpace(raw), nil
		}
	}
	return func(raw string, _ Locale) (string, error) {
		return raw, nil
	}
}

// BoolParser returns the yes/no parser. Input is trimmed and matched
// case-insensitively: empty input answers def, the locale's extra words and
// the usual boolean literals answer themselves, and the single characters
// y/t/1 and n/f/0 answer true and false. Anything else is malformed.
func BoolParser(def bool) ParseFunc[bool] {
	return func(raw string, loc Locale) (bool, error) {
		s := strings.TrimSpace(raw)
		if s == "" {
			return def, nil
		}
		for _, w := range loc.TrueWords {
			if strings.EqualFold(s, w) {
				return true, nil
			}
		}
		for _, w := range loc.FalseWords {
			if strings.EqualFold(s, w) {
				return false, nil
			}
		}
		if len(s) == 1 {
			switch s[0] {
			case 'y', 'Y', 't', 'T', '1':
				return true, nil
			case 'n', 'N', 'f', 'F', '0':
				return false, nil
			}
		}
		if strings.EqualFold(s, "true") {
			return true, nil
		}
		if strings.EqualFold(s, "false") {
			return false, nil
		}
		return false, NewInputErrorf(KindMalformed, "%q is not a valid yes/no answer", s)
	}
}

// NumberParser returns a strconv-backed parser for any Number type. Integer
// kinds reject fractions; float kinds honour the locale's decimal separator
// and accept Inf and NaN literals, leaving finiteness to validators.
func NumberParser[N Number]() ParseFunc[N] {
	name := TypeName[N]()
	return func(raw string, loc Locale) (N, error) {
		var zero N
		s := strings.TrimSpace(raw)

		// 1/2 is zero in every integer kind and one half in every float kind
		if isFloat := N(1)/N(2) != N(0); isFloat {
			if sep := loc.DecimalSeparator; sep != 0 && sep != '.' {
				s = strings.ReplaceAll(s, string(sep), ".")
			}
			bits := 64
			if small := math.SmallestNonzeroFloat64; N(small) == N(0) {
				bits = 32
			}
			v, err := strconv.ParseFloat(s, bits)
			if err != nil {
				return zero, numberError(s, name, err)
			}
			return N(v), nil
		}

		if unsigned := N(0)-N(1) > N(0); unsigned {
			v, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				return zero, numberError(s, name, err)
			}
			n := N(v)
			if uint64(n) != v {
				return zero, NewInputErrorf(KindOutOfRange, "%q is out of range for %s", s, name)
			}
			return n, nil
		}

		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return zero, numberError(s, name, err)
		}
		n := N(v)
		if int64(n) != v {
			return zero, NewInputErrorf(KindOutOfRange, "%q is out of range for %s", s, name)
		}
		return n, nil
	}
}

// DurationParser parses time.ParseDuration syntax such as "1h30m".
func DurationParser() ParseFunc[time.Duration] {
	return func(raw string, _ Locale) (time.Duration, error) {
		s := strings.TrimSpace(raw)
		d, err := time.ParseDuration(s)
		if err != nil {
			return 0, WrapInput(KindMalformed, fmt.Sprintf("%q is not a valid duration", s), err)
		}
		return d, nil
	}
}

// TextParser parses into any type whose pointer implements
// encoding.TextUnmarshaler, which is how self-parsing types plug in.
func TextParser[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}]() ParseFunc[T] {
	name := TypeName[T]()
	return func(raw string, _ Locale) (T, error) {
		var v T
		s := strings.TrimSpace(raw)
		if err := PT(&v).UnmarshalText([]byte(s)); err != nil {
			var zero T
			return zero, WrapInput(KindMalformed, fmt.Sprintf("%q is not a valid %s", s, name), err)
		}
		return v, nil
	}
}

func numberError(s, name string, err error) *InputError {
	if errors.Is(err, strconv.ErrRange) {
		return WrapInput(KindOutOfRange, fmt.Sprintf("%q is out of range for %s", s, name), err)
	}
	return WrapInput(KindMalformed, fmt.Sprintf("%q is not a valid %s", s, name), err)
}
