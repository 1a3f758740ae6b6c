package uniqueslug

// Defaults applied by Generate when the corresponding option is not given.
const (
	// DefaultSlugField is the identifier field name on the record type.
	DefaultSlugField = "slug"
	// DefaultSuffixSize is the number of random characters appended on collision.
	DefaultSuffixSize = 4
	// DefaultCharset is the alphabet for random suffix characters.
	DefaultCharset = "abcdefghijklmnopqrstuvwxyz0123456789"
	// DefaultMaxLength caps the total identifier length.
	DefaultMaxLength = 75
)

type config struct {
	slugField  string
	scope      map[string]any
	excludePK  any
	suffixSize int
	charset    string
	maxLength  int
}

func defaultConfig() config {
	return config{
		slugField:  DefaultSlugField,
		suffixSize: DefaultSuffixSize,
		charset:    DefaultCharset,
		maxLength:  DefaultMaxLength,
	}
}

// Option is a functional option for configuring Generate.
type Option func(*config)

// WithSlugField sets the identifier field name queried on the store.
func WithSlugField(name string) Option {
	return func(c *config) {
		if name != "" {
			c.slugField = name
		}
	}
}

// WithScope adds equality constraints narrowing which records participate in
// the uniqueness check. Disjoint scopes may legitimately hold the same slug.
func WithScope(scope map[string]any) Option {
	return func(c *config) {
		c.scope = scope
	}
}

// WithExcludePK excludes the record's own primary key from the uniqueness
// check so an already-persisted record keeps its slug on regeneration.
func WithExcludePK(pk any) Option {
	return func(c *config) {
		c.excludePK = pk
	}
}

// WithSuffixSize sets the number of random characters appended on collision.
// Values are not validated; sizes <= 0 make collision resolution degenerate.
func WithSuffixSize(n int) Option {
	return func(c *config) {
		c.suffixSize = n
	}
}

// WithCharset sets the alphabet for random suffix characters. The charset is
// not validated; it must be large enough relative to the expected collision
// rate for the resolution loop to terminate quickly.
func WithCharset(charset string) Option {
	return func(c *config) {
		if charset != "" {
			c.charset = charset
		}
	}
}

// WithMaxLength caps the total identifier length, suffix included.
func WithMaxLength(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxLength = n
		}
	}
}

// WithoutLengthCap switches to the unbounded variant: no truncation, and the
// store is asked about each candidate individually instead of one prefix
// snapshot up front.
func WithoutLengthCap() Option {
	return func(c *config) {
		c.maxLength = 0
	}
}
