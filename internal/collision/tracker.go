package collision

import (
	"github.com/arloliu/uvoxid/errs"
	"github.com/arloliu/uvoxid/spatial"
)

// Tracker records codes by hash and detects duplicates during encoding.
// Codes that share a hash but differ are kept apart in the same bucket and
// flag a collision; only an identical code is a duplicate.
type Tracker struct {
	buckets      map[uint64][]spatial.Code // Hash → codes with that hash
	count        int
	hasCollision bool
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		buckets: make(map[uint64][]spatial.Code),
	}
}

// Track records c under its hash h.
//
// Returns errs.ErrDuplicateCode if c was already tracked. A different code
// with the same hash is not an error; it sets the collision flag.
func (t *Tracker) Track(c spatial.Code, h uint64) error {
	bucket := t.buckets[h]
	for _, existing := range bucket {
		if existing == c {
			return errs.ErrDuplicateCode
		}
	}
	if len(bucket) > 0 {
		t.hasCollision = true
	}

	t.buckets[h] = append(bucket, c)
	t.count++

	return nil
}

// TrackCode records c under c.Hash().
func (t *Tracker) TrackCode(c spatial.Code) error {
	return t.Track(c, c.Hash())
}

// Contains reports whether c was tracked under hash h.
func (t *Tracker) Contains(c spatial.Code, h uint64) bool {
	for _, existing := range t.buckets[h] {
		if existing == c {
			return true
		}
	}

	return false
}

// HasCollision returns true if two different codes shared a hash.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Count returns the number of tracked codes.
func (t *Tracker) Count() int {
	return t.count
}

// Reset clears all tracked codes and collision state.
func (t *Tracker) Reset() {
	clear(t.buckets)
	t.count = 0
	t.hasCollision = false
}
