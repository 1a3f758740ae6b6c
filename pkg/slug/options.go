package slug

// options holds the resolved configuration for a single Make call.
type options struct {
	separator    string
	lowercase    bool
	maxLength    int
	suffixLength int
	replacements map[string]string
	strip        string
}

// Option is a functional option for configuring slug generation.
type Option func(*options)

// Separator sets the character(s) used to join words.
// An empty separator is replaced by the default "-".
func Separator(sep string) Option {
	return func(o *options) {
		if sep != "" {
			o.separator = sep
		}
	}
}

// Lowercase controls case folding. Enabled by default; pass false to
// preserve the input's original casing.
func Lowercase(enabled bool) Option {
	return func(o *options) {
		o.lowercase = enabled
	}
}

// MaxLength limits the slug to at most n runes. Truncation never leaves a
// trailing separator. Values <= 0 disable the limit.
func MaxLength(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxLength = n
		}
	}
}

// WithSuffix appends a random alphanumeric suffix of n characters, joined
// with the separator. When combined with MaxLength, the base is truncated
// to make room so the total length stays within the limit.
func WithSuffix(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.suffixLength = n
		}
	}
}

// CustomReplace substitutes the given strings before normalization.
// Longer keys are applied first so overlapping replacements behave
// predictably (e.g. "C++" before "+").
func CustomReplace(replacements map[string]string) Option {
	return func(o *options) {
		o.replacements = replacements
	}
}

// StripChars removes the given characters from the input before
// normalization instead of converting them to separators.
func StripChars(chars string) Option {
	return func(o *options) {
		o.strip = chars
	}
}
