package domain

import "go.trai.ch/zerr"

var (
	// ErrNetwork is returned when the transport fails to deliver a document.
	ErrNetwork = zerr.New("network error")

	// ErrRequestBuildFailed is returned when an outbound request cannot be constructed.
	ErrRequestBuildFailed = zerr.New("failed to build request")

	// ErrDocumentParseFailed is returned when a fetched document is not parseable markup.
	ErrDocumentParseFailed = zerr.New("failed to parse document")

	// ErrWishlistNotFound is returned when a page has no wishlist table.
	ErrWishlistNotFound = zerr.New("wishlist table not found")

	// ErrSourceReadFailed is returned when a local wishlist file cannot be read.
	ErrSourceReadFailed = zerr.New("failed to read wishlist source")

	// ErrNoURLsSpecified is returned when a lookup is requested without item URLs.
	ErrNoURLsSpecified = zerr.New("no item urls specified")

	// ErrLookupFailed is returned when at least one requested item could not be resolved.
	ErrLookupFailed = zerr.New("one or more lookups failed")

	// ErrUnknownStoreBackend is returned when the configured store backend is not supported.
	ErrUnknownStoreBackend = zerr.New("unknown store backend")

	// ErrStoreOpenFailed is returned when the duration store cannot be opened.
	ErrStoreOpenFailed = zerr.New("failed to open duration store")

	// ErrStoreReadFailed is returned when a cached duration cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read cached duration")

	// ErrStoreWriteFailed is returned when a duration cannot be written to the store.
	ErrStoreWriteFailed = zerr.New("failed to write cached duration")

	// ErrStoreClearFailed is returned when the store cannot be emptied.
	ErrStoreClearFailed = zerr.New("failed to clear duration store")

	// ErrStoreSizeFailed is returned when the store cannot report its usage.
	ErrStoreSizeFailed = zerr.New("failed to measure duration store")

	// ErrStoreMarshalFailed is returned when a cache entry cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal cache entry")

	// ErrStoreUnmarshalFailed is returned when a cache entry cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal cache entry")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnknownOutputMode is returned when --output names no renderer.
	ErrUnknownOutputMode = zerr.New("unknown output mode")

	// ErrRenderFailed is returned when the table cannot be displayed.
	ErrRenderFailed = zerr.New("failed to render table")

	// ErrInvalidConfig is returned when a config value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")
)
