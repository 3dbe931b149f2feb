package config

// File represents the structure of the wltime.yaml configuration file.
// Pointer fields distinguish an explicit zero from an absent key.
type File struct {
	Store    *StoreDTO `yaml:"store"`
	Fetch    *FetchDTO `yaml:"fetch"`
	Table    *TableDTO `yaml:"table"`
	Coalesce *bool     `yaml:"coalesce"`
}

// StoreDTO configures the duration cache backend.
type StoreDTO struct {
	Backend     string    `yaml:"backend"`
	Path        string    `yaml:"path"`
	QuotaBytes  *int64    `yaml:"quota_bytes"`
	QuotaMargin *int64    `yaml:"quota_margin"`
	Redis       *RedisDTO `yaml:"redis"`
}

// RedisDTO configures the redis backend.
type RedisDTO struct {
	Addr     string  `yaml:"addr"`
	Password string  `yaml:"password"`
	DB       *int    `yaml:"db"`
	Prefix   *string `yaml:"prefix"`
}

// FetchDTO configures outbound requests.
type FetchDTO struct {
	Timeout           string   `yaml:"timeout"`
	UserAgent         string   `yaml:"user_agent"`
	RequestsPerSecond *float64 `yaml:"requests_per_second"`
	Burst             *int     `yaml:"burst"`
}

// TableDTO describes the wishlist markup.
type TableDTO struct {
	Column      *int   `yaml:"column"`
	HeaderLabel string `yaml:"header_label"`
	MarkerClass string `yaml:"marker_class"`
	TitleClass  string `yaml:"title_class"`
	BaseURL     string `yaml:"base_url"`
}
