package config

import "time"

// CatalogCacheConfig controls the Redis read-through cache in front of
// the external movie catalog.
type CatalogCacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
}

func LoadCatalogCacheConfig() CatalogCacheConfig {
	def := CatalogCacheConfig{
		Enabled: envBool("CATALOG_CACHE_ENABLED", true),
		TTL:     envDur("CATALOG_CACHE_TTL", 15*time.Minute),
		Prefix:  envStr("CATALOG_CACHE_PREFIX", "catalog"),
	}
	if def.TTL <= 0 {
		def.TTL = 15 * time.Minute
	}
	return def
}
