package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dealspro/dealspro_api/internal/storage"
	"github.com/dealspro/dealspro_api/internal/utils"
)

// Storage keys, one per collection.
const (
	KeyDeals                  = "deals_store"
	KeyBrandSubmissions       = "brand_submissions"
	KeyInfluencerApplications = "influencer_referrals"
)

// Record is anything stored in a Collection.
type Record interface {
	RecordID() string
}

// Placement decides where Insert puts a new record.
type Placement int

const (
	Prepend Placement = iota
	Append
)

// Collection persists a homogeneous slice of records as one JSON array under
// a single key. Every mutation is a full load-modify-store cycle without
// locking, so concurrent writers are last-write-wins.
type Collection[T Record] struct {
	kv        storage.KeyValueStore
	key       string
	placement Placement
	seed      func() []T

	seedOnce sync.Once
	seeded   []T
}

// NewCollection binds a collection to key. When seed is non-nil an absent key
// is initialised with (and persisted as) the seeded records; otherwise the
// collection starts empty and nothing is written until the first mutation.
func NewCollection[T Record](kv storage.KeyValueStore, key string, placement Placement, seed func() []T) *Collection[T] {
	return &Collection[T]{kv: kv, key: key, placement: placement, seed: seed}
}

// Key returns the storage key of the collection.
func (c *Collection[T]) Key() string {
	return c.key
}

// defaults returns a copy of the seeded records. The seed runs at most once
// per collection, so ids stay stable while a corrupt value is being served.
func (c *Collection[T]) defaults() []T {
	if c.seed == nil {
		return []T{}
	}
	c.seedOnce.Do(func() { c.seeded = c.seed() })
	return append([]T{}, c.seeded...)
}

// Load reads the whole collection. A corrupt stored value is not reported:
// the default collection is returned instead and the key is left as is.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	raw, found, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.key, err)
	}

	if !found {
		records := c.defaults()
		if c.seed != nil {
			if err := c.Save(ctx, records); err != nil {
				return nil, err
			}
			log.Info().Str("key", c.key).Int("count", len(records)).Msg("Seeded collection")
		}
		return records, nil
	}

	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		log.Warn().Err(err).Str("key", c.key).Msg("Stored collection is corrupt, using defaults")
		return c.defaults(), nil
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Save replaces the stored collection with records.
func (c *Collection[T]) Save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", c.key, err)
	}
	if err := c.kv.Set(ctx, c.key, string(data)); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}

// Insert adds rec to the collection according to its placement.
func (c *Collection[T]) Insert(ctx context.Context, rec T) (T, error) {
	records, err := c.Load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if c.placement == Prepend {
		records = append([]T{rec}, records...)
	} else {
		records = append(records, rec)
	}

	if err := c.Save(ctx, records); err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

// Update replaces the record with the given id by apply(old). If apply
// returns an error nothing is written. Returns utils.ErrRecordNotFound when
// no record has that id.
func (c *Collection[T]) Update(ctx context.Context, id string, apply func(T) (T, error)) (T, error) {
	var zero T

	records, err := c.Load(ctx)
	if err != nil {
		return zero, err
	}

	idx := -1
	for i := range records {
		if records[i].RecordID() == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return zero, utils.ErrRecordNotFound
	}

	updated, err := apply(records[idx])
	if err != nil {
		return zero, err
	}
	records[idx] = updated

	if err := c.Save(ctx, records); err != nil {
		return zero, err
	}
	return updated, nil
}

// Remove deletes the record with the given id and reports whether one was removed.
func (c *Collection[T]) Remove(ctx context.Context, id string) (bool, error) {
	records, err := c.Load(ctx)
	if err != nil {
		return false, err
	}

	kept := make([]T, 0, len(records))
	for _, r := range records {
		if r.RecordID() != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return false, nil
	}

	if err := c.Save(ctx, kept); err != nil {
		return false, err
	}
	return true, nil
}

// Find returns the first record matching pred.
func (c *Collection[T]) Find(ctx context.Context, pred func(T) bool) (T, bool, error) {
	var zero T

	records, err := c.Load(ctx)
	if err != nil {
		return zero, false, err
	}
	for _, r := range records {
		if pred(r) {
			return r, true, nil
		}
	}
	return zero, false, nil
}
