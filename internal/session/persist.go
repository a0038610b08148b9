package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

// Only presentation preferences survive restarts; identity and cached
// listings are always re-resolved against the database.
var persistedKeys = []string{"theme", "language", "preferences"}

const (
	defaultPersistEvery = 30 * time.Second
	defaultSnapshotTTL  = 30 * 24 * time.Hour
)

// Persistor periodically snapshots the whitelisted subset of a Store
// to Redis and restores it at startup. Expiry is handled lazily by the
// key TTL.
type Persistor struct {
	rdb   *redis.Client
	store *Store
	key   string
	every time.Duration
	ttl   time.Duration
	stop  chan struct{}
}

func NewPersistor(rdb *redis.Client, store *Store, key string) *Persistor {
	return &Persistor{
		rdb:   rdb,
		store: store,
		key:   key,
		every: defaultPersistEvery,
		ttl:   defaultSnapshotTTL,
		stop:  make(chan struct{}),
	}
}

// Load merges a previously saved snapshot over the store defaults.
// A missing or unreadable snapshot is not an error.
func (p *Persistor) Load(ctx context.Context) {
	raw, err := p.rdb.Get(ctx, p.key).Result()
	if err == redis.Nil {
		return
	}
	if err != nil {
		log.Warn().Err(err).Msg("session: snapshot load failed")
		return
	}

	var values map[string]any
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		log.Warn().Err(err).Msg("session: snapshot corrupt, ignoring")
		return
	}

	p.store.Merge(values)
}

// Start runs the periodic snapshot loop until Stop is called.
func (p *Persistor) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(p.every)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				p.Save(ctx)
			case <-p.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (p *Persistor) Stop() {
	close(p.stop)
}

// Save writes the whitelisted snapshot immediately; the Start loop
// calls this on its ticker.
func (p *Persistor) Save(ctx context.Context) {
	snap := p.store.Snapshot(persistedKeys)

	raw, err := json.Marshal(snap)
	if err != nil {
		log.Warn().Err(err).Msg("session: snapshot encode failed")
		return
	}

	if err := p.rdb.Set(ctx, p.key, raw, p.ttl).Err(); err != nil {
		log.Warn().Err(err).Msg("session: snapshot save failed")
	}
}
