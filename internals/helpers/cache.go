package helper

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache ringan untuk read path publik. Di-flush setiap ada tulisan admin
// supaya halaman publik tidak menampilkan data basi terlalu lama.
var publicCache = gocache.New(60*time.Second, 5*time.Minute)

func PublicCacheGet(key string) (any, bool) {
	return publicCache.Get(key)
}

func PublicCacheSet(key string, v any) {
	publicCache.SetDefault(key, v)
}

func PublicCacheFlush() {
	publicCache.Flush()
}
