package store

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/paul-nameless/tg/internal/logger"
)

// DedupCache is an optional Redis-backed store of not-found and
// already-downloaded markers for message, user and file ids. Entries stay
// in Redis until their TTL expires, so they outlast the client process: a
// file marked downloaded in one run is not re-fetched by the next. The
// controller's auto-download path uses the downloaded markers;
// MessageStore and UserStore keep their not_found sets in memory only and
// do not consult this cache. It is entirely optional: a nil *DedupCache
// (or one built against an unreachable Redis) behaves as an always-miss
// cache.
type DedupCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewDedupCache dials addr (host:port) with the given database index. The
// connection is lazy: redis.NewClient never blocks, and a dead server
// surfaces as cache misses rather than errors.
func NewDedupCache(addr string, db int, ttl time.Duration) *DedupCache {
	return &DedupCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr, DB: db}),
		ttl: ttl,
	}
}

func notFoundKey(kind string, id int64) string {
	return "tg:notfound:" + kind + ":" + itoa(id)
}

func downloadedKey(fileID int64) string {
	return "tg:downloaded:" + itoa(fileID)
}

func itoa(n int64) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// MarkNotFound records that kind/id (e.g. "message"/id or "user"/id) is
// confirmed missing, for the remainder of the cache's TTL.
func (d *DedupCache) MarkNotFound(ctx context.Context, kind string, id int64) {
	if d == nil {
		return
	}
	if err := d.rdb.Set(ctx, notFoundKey(kind, id), 1, d.ttl).Err(); err != nil {
		logger.Debug("dedupcache: mark not_found failed", "error", err)
	}
}

// IsNotFound reports whether kind/id was previously marked missing.
func (d *DedupCache) IsNotFound(ctx context.Context, kind string, id int64) bool {
	if d == nil {
		return false
	}
	n, err := d.rdb.Exists(ctx, notFoundKey(kind, id)).Result()
	if err != nil {
		logger.Debug("dedupcache: is_not_found lookup failed", "error", err)
		return false
	}
	return n > 0
}

// MarkDownloaded records that fileID has already been fully downloaded.
func (d *DedupCache) MarkDownloaded(ctx context.Context, fileID int64) {
	if d == nil {
		return
	}
	if err := d.rdb.Set(ctx, downloadedKey(fileID), 1, d.ttl).Err(); err != nil {
		logger.Debug("dedupcache: mark downloaded failed", "error", err)
	}
}

// IsDownloaded reports whether fileID was previously marked downloaded.
func (d *DedupCache) IsDownloaded(ctx context.Context, fileID int64) bool {
	if d == nil {
		return false
	}
	n, err := d.rdb.Exists(ctx, downloadedKey(fileID)).Result()
	if err != nil {
		logger.Debug("dedupcache: is_downloaded lookup failed", "error", err)
		return false
	}
	return n > 0
}

// Close releases the underlying connection pool.
func (d *DedupCache) Close() error {
	if d == nil {
		return nil
	}
	return d.rdb.Close()
}
