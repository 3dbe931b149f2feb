package domain

// Span names and attribute keys emitted by the lookup pipeline.
const (
	LookupSpanName = "timecache.lookup"
	AttrURL        = "wltime.url"
	AttrCacheHit   = "wltime.cache_hit"
)
