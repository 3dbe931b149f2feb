package domain

import "time"

// StoreBackend names a persistence mechanism for cached durations.
type StoreBackend string

const (
	// BackendFile stores one JSON file per URL.
	BackendFile StoreBackend = "file"
	// BackendMemory keeps entries in process memory only.
	BackendMemory StoreBackend = "memory"
	// BackendBadger stores entries in an embedded badger database.
	BackendBadger StoreBackend = "badger"
	// BackendSQLite stores entries in a sqlite database file.
	BackendSQLite StoreBackend = "sqlite"
	// BackendRedis stores entries in a redis database.
	BackendRedis StoreBackend = "redis"
)

const (
	// DefaultQuotaBytes is the storage budget of the duration cache.
	DefaultQuotaBytes = 5 * 1024 * 1024
	// DefaultQuotaMargin is kept free below the budget.
	DefaultQuotaMargin = 1024

	// MarkerClass marks the element holding the runtime on a detail page.
	MarkerClass = "adbl-run-time"
	// TitleClass marks the title block of a wishlist data row.
	TitleClass = "adbl-prod-title"

	// AutoColumn makes the loader place the time column after the header's cells.
	AutoColumn = -1

	// DefaultFetchTimeout bounds a single detail page request.
	DefaultFetchTimeout = 30 * time.Second
	// DefaultUserAgent is sent with every request.
	DefaultUserAgent = "wltime/1.0"
	// DefaultBaseURL is the origin relative wishlist links point to.
	DefaultBaseURL = "https://www.audible.com/"
)

// Config is the validated runtime configuration.
type Config struct {
	Store    StoreConfig
	Fetch    FetchConfig
	Table    TableConfig
	Coalesce bool
}

// StoreConfig selects and sizes the duration cache.
type StoreConfig struct {
	Backend     StoreBackend
	Path        string
	QuotaBytes  int64
	QuotaMargin int64
	Redis       RedisConfig
}

// ResolvedPath returns Path, or the backend's default location when Path is empty.
func (s StoreConfig) ResolvedPath() string {
	if s.Path != "" {
		return s.Path
	}
	return DefaultStorePath(s.Backend)
}

// Limit returns the byte budget the cache may occupy.
func (s StoreConfig) Limit() int64 {
	return s.QuotaBytes - s.QuotaMargin
}

// RedisConfig holds redis connection settings.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// FetchConfig controls outbound requests.
type FetchConfig struct {
	Timeout           time.Duration
	UserAgent         string
	RequestsPerSecond float64
	Burst             int
}

// TableConfig describes the wishlist markup.
type TableConfig struct {
	Column      int
	HeaderLabel string
	MarkerClass string
	TitleClass  string
	// BaseURL resolves relative item links of wishlists read from disk.
	BaseURL string
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Store: StoreConfig{
			Backend:     BackendFile,
			QuotaBytes:  DefaultQuotaBytes,
			QuotaMargin: DefaultQuotaMargin,
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: AppName + ":",
			},
		},
		Fetch: FetchConfig{
			Timeout:   DefaultFetchTimeout,
			UserAgent: DefaultUserAgent,
			Burst:     1,
		},
		Table: TableConfig{
			Column:      AutoColumn,
			HeaderLabel: HeaderLabel,
			MarkerClass: MarkerClass,
			TitleClass:  TitleClass,
			BaseURL:     DefaultBaseURL,
		},
	}
}
