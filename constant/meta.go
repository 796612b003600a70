// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Kino is the canonical application identifier used for filesystem paths and CLI branding.
	Kino = "kino"

	// Version is the current application semantic version string.
	Version = "0.3.1"

	// DefaultBaseURL is the catalog site every builder targets unless overridden by config.
	DefaultBaseURL = "https://filman.cc"

	// DefaultUserAgent is sent when the session store holds no user agent of its own.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/150.0.7444.176 Safari/537.36"
)

// Build metadata, overridden with -ldflags at release time.
var (
	BuiltAt  string
	BuiltBy  string
	Revision string
)
