// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 19

// Catalog Site - these keys locate the scraped site and shape the identity presented to it.
const (
	SiteBaseURL   = "site.base_url"
	SiteUserAgent = "site.user_agent"
)

// Network - these keys tune the shared HTTP client.
const (
	NetworkTimeout        = "network.timeout"
	NetworkRateLimit      = "network.rate_limit"
	NetworkTLSFingerprint = "network.tls_fingerprint"
)

// Presentation of scraped records.
const (
	LinksRank               = "links.rank"
	CommentsMaxDepthDisplay = "comments.max_depth_display"
)

// Search Interaction - these keys define the UX parameters for search discovery.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
	SearchHistory              = "search.history"
)

// Watchlist - local persistence of catalog entries.
const (
	WatchlistEnable = "watchlist.enable"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-interactive application behavior.
const (
	CliColored      = "cli.colored"
	CliWrap         = "cli.wrap"
	CliVersionCheck = "cli.version_check"
)

// JSON Service - these keys configure the local HTTP surface started by "kino serve".
const (
	ServerAddr    = "server.addr"
	ServerMetrics = "server.metrics"
)
