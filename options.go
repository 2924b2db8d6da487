package roman

import "sync"

// Options controls decoding behavior. The zero value is not the default;
// use DefaultOptions (or pass nil to Decode) to start from the defaults.
//
// Fields:
//   - Strict     — enforce repetition, ordering and subtraction rules.
//     When false, any sum of alphabet-valid tokens is accepted, which
//     admits historical forms such as "IIII" and "MDCCCCX".
//   - IgnoreCase — fold input to upper case before any validation.
//   - Explain    — report the specific rule violation; when false, every
//     failure except the empty string collapses to ErrNumeral.
//   - Zero       — accept the single letter "N" as zero.
type Options struct {
	Strict     bool
	IgnoreCase bool
	Explain    bool
	Zero       bool
}

// DefaultOptions returns the built-in defaults: strict decoding, exact
// case, generic errors, no zero token.
func DefaultOptions() Options {
	return Options{Strict: true}
}

// Process-wide defaults, latched by the first Configure call and read-only
// afterwards. Concurrent decoding needs no locking once configured.
var (
	configureOnce  sync.Once
	configuredOpts = DefaultOptions()
)

// Configure seeds the process-wide default Options consumed when Decode,
// MustDecode or IsNumeral receive a nil *Options. Only the first call has
// any effect; call it during program initialization, before decoding
// starts. Explicit per-call Options always override the configured
// defaults.
func Configure(opts Options) {
	configureOnce.Do(func() {
		configuredOpts = opts
	})
}

// Defaults returns the process-wide default Options: the built-in defaults,
// or whatever the first Configure call installed.
func Defaults() Options {
	configureOnce.Do(func() {})

	return configuredOpts
}

// resolve turns a per-call *Options into concrete Options, falling back to
// the process-wide defaults on nil.
func resolve(opts *Options) Options {
	if opts == nil {
		return Defaults()
	}

	return *opts
}
