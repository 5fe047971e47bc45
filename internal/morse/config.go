package morse

// UnknownPolicy selects what happens when a symbol has no dictionary entry.
type UnknownPolicy string

const (
	// PolicyError aborts the call with UnknownCharError / UnknownTokenError.
	PolicyError UnknownPolicy = "error"
	// PolicyIgnore drops the unknown symbol from the output.
	PolicyIgnore UnknownPolicy = "ignore"
	// PolicyReplace substitutes Config.Replacement for the unknown symbol.
	PolicyReplace UnknownPolicy = "replace"
)

var AllPolicies = []UnknownPolicy{PolicyError, PolicyIgnore, PolicyReplace}

func (p UnknownPolicy) Valid() bool {
	switch p {
	case PolicyError, PolicyIgnore, PolicyReplace:
		return true
	}
	return false
}

// Config carries the per-call transcoding settings. Values are read-only once
// built; construct via DefaultConfig and options rather than mutating.
type Config struct {
	// Unknown is the policy applied to characters/tokens with no entry.
	Unknown UnknownPolicy
	// Replacement is emitted verbatim under PolicyReplace: as a stand-in
	// token on encode, as a stand-in character on decode.
	Replacement string
	// PreserveCase skips the uppercase fold before encoding. The dictionary
	// only knows uppercase keys, so lowercase letters then count as unknown.
	PreserveCase bool
	// LetterDelimiter separates tokens within one encoded word.
	LetterDelimiter string
	// WordDelimiter separates encoded words. Empty delimiters are accepted
	// as-is; split/join semantics simply follow.
	WordDelimiter string
}

// Option mutates a Config under construction.
type Option func(*Config)

func WithPolicy(p UnknownPolicy) Option     { return func(c *Config) { c.Unknown = p } }
func WithReplacement(s string) Option       { return func(c *Config) { c.Replacement = s } }
func WithPreserveCase(b bool) Option        { return func(c *Config) { c.PreserveCase = b } }
func WithLetterDelimiter(d string) Option   { return func(c *Config) { c.LetterDelimiter = d } }
func WithWordDelimiter(d string) Option     { return func(c *Config) { c.WordDelimiter = d } }

// DefaultConfig builds a Config with the standard settings (error on unknown,
// "?" replacement, fold case, " " between letters, " / " between words) and
// applies any overrides.
func DefaultConfig(opts ...Option) Config {
	cfg := Config{
		Unknown:         PolicyError,
		Replacement:     "?",
		LetterDelimiter: " ",
		WordDelimiter:   " / ",
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
