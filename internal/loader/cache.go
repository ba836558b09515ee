package loader

import (
	"fmt"
	"os"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/edge-analysis/internal/models"
)

// Loader caches decoded documents keyed by path, size and modification time,
// so an unchanged file is decoded once per TTL.
type Loader struct {
	cache     *cache.Cache
	ttl       time.Duration
	logger    logrus.FieldLogger
	mu        sync.RWMutex
	hitCount  uint64
	missCount uint64
}

// NewLoader creates a caching loader. A zero ttl disables expiry.
func NewLoader(ttl time.Duration, logger logrus.FieldLogger) *Loader {
	expiration := ttl
	cleanup := ttl * 2
	if ttl <= 0 {
		expiration = cache.NoExpiration
		cleanup = 0
	}
	return &Loader{
		cache:  cache.New(expiration, cleanup),
		ttl:    expiration,
		logger: logger,
	}
}

func cacheKey(path string, info os.FileInfo) string {
	return fmt.Sprintf("%s:%d:%d", path, info.Size(), info.ModTime().UnixNano())
}

// Load returns the document at path and whether it came from the cache
func (l *Loader) Load(path string) (*models.BacktestReport, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to stat backtest results: %w", err)
	}
	key := cacheKey(path, info)

	if cached, found := l.cache.Get(key); found {
		if report, ok := cached.(*models.BacktestReport); ok {
			l.record(true)
			return report, true, nil
		}
	}
	l.record(false)

	report, err := LoadFile(path)
	if err != nil {
		return nil, false, err
	}
	l.cache.Set(key, report, l.ttl)

	if l.logger != nil {
		l.logger.WithFields(logrus.Fields{
			"path":    path,
			"records": len(report.Results),
		}).Debug("Backtest results decoded")
	}
	return report, false, nil
}

func (l *Loader) record(hit bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if hit {
		l.hitCount++
	} else {
		l.missCount++
	}
}

// Stats returns cache statistics
func (l *Loader) Stats() (hits, misses uint64, ratio float64) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	hits = l.hitCount
	misses = l.missCount
	total := hits + misses
	if total > 0 {
		ratio = float64(hits) / float64(total)
	}
	return
}

// Clear flushes the cache
func (l *Loader) Clear() {
	l.cache.Flush()
}

// ItemCount returns the number of cached documents
func (l *Loader) ItemCount() int {
	return l.cache.ItemCount()
}
