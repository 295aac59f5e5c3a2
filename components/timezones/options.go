package timezones

// EmptySearchMode picks what Search returns for an empty query.
type EmptySearchMode string

const (
	// EmptySearchNone returns nothing for an empty query.
	EmptySearchNone EmptySearchMode = "none"
	// EmptySearchTop returns the first zones up to the limit, useful for
	// completion lists shown before the user has typed anything.
	EmptySearchTop EmptySearchMode = "top"
)

// Options configures search and prompt behaviour for the component.
type Options struct {
	// DefaultLimit caps results when the caller passes limit 0.
	DefaultLimit int
	// MaxLimit caps results regardless of what the caller asks for.
	MaxLimit int
	// Suggestions is how many close matches an unknown-zone error carries.
	// Zero disables suggestions.
	Suggestions     int
	EmptySearchMode EmptySearchMode

	// Zones overrides the embedded list when non-nil.
	Zones []string
}

// OptionFn mutates Options inside NewOptions.
type OptionFn func(*Options)

// DefaultOptions returns the settings used when no OptionFn overrides them.
func DefaultOptions() Options {
	return Options{
		DefaultLimit:    50,
		MaxLimit:        200,
		Suggestions:     3,
		EmptySearchMode: EmptySearchNone,
	}
}

// NewOptions applies fns over DefaultOptions and normalizes the result.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = 50
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = 200
	}
	if opts.Suggestions < 0 {
		opts.Suggestions = 0
	}
	if opts.EmptySearchMode == "" {
		opts.EmptySearchMode = EmptySearchNone
	}
	if opts.Zones != nil {
		opts.Zones = append([]string{}, opts.Zones...)
	}
	return opts
}

func WithDefaultLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.DefaultLimit = limit
	}
}

func WithMaxLimit(limit int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxLimit = limit
	}
}

// WithSuggestions sets how many close matches unknown-zone errors list.
func WithSuggestions(n int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Suggestions = n
	}
}

func WithEmptySearchMode(mode EmptySearchMode) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.EmptySearchMode = mode
	}
}

// WithZones replaces the embedded zone list. The slice is copied.
func WithZones(zones []string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		if zones == nil {
			o.Zones = nil
			return
		}
		o.Zones = append([]string{}, zones...)
	}
}

func clampLimit(limit int, opts Options) int {
	if limit < 0 {
		return 0
	}
	if limit == 0 {
		limit = opts.DefaultLimit
	}
	if opts.MaxLimit > 0 && limit > opts.MaxLimit {
		return opts.MaxLimit
	}
	return limit
}
