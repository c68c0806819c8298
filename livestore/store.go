// Package livestore holds the most recent decoded value for every channel
// the bus has reported, keyed by channel id. It is the single point of
// contention between the decode pipeline (producer) and the NMEA trigger
// router (consumer), mirroring the original bridge's single live_data dict
// guarded by one lock -- here backed by patrickmn/go-cache instead of a
// hand-rolled map+mutex, since go-cache already gives per-key expiry and
// safe concurrent access for free.
package livestore

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/solway-marine/fastnetbridge"
)

// staleAfter is how long a channel's last value is considered current. A
// channel that hasn't reported in this long is treated as absent by Get,
// even though go-cache hasn't evicted the entry yet -- this lets composite
// builders (e.g. MWV needing both angle and speed) refuse to pair a fresh
// reading with a stale sibling.
const staleAfter = 10 * time.Second

// Store is the live channel-value table. The zero value is not usable; call
// New.
type Store struct {
	cache *cache.Cache
}

// New creates an empty Store. Entries never expire on their own -- Get
// applies the staleness window itself and reports a stale channel as not
// found.
func New() *Store {
	return &Store{cache: cache.New(cache.NoExpiration, time.Minute)}
}

func key(channelID byte) string {
	return fmt.Sprintf("%02x", channelID)
}

// Put records the latest value seen for a channel, overwriting whatever was
// there before. Timestamps are expected to be monotonically non-decreasing
// per channel (§4.4 invariant); Put does not itself enforce this, the
// pipeline's clock already guarantees it by construction.
func (s *Store) Put(rec fastnet.LiveRecord) {
	s.cache.Set(key(rec.ChannelID), rec, cache.NoExpiration)
}

// Get returns the latest record for a channel, and whether one exists and is
// still within the staleness window.
func (s *Store) Get(channelID byte) (fastnet.LiveRecord, bool) {
	return s.GetAt(channelID, time.Now())
}

// GetAt is Get with an injected "now", for deterministic tests.
func (s *Store) GetAt(channelID byte, now time.Time) (fastnet.LiveRecord, bool) {
	v, ok := s.cache.Get(key(channelID))
	if !ok {
		return fastnet.LiveRecord{}, false
	}
	rec := v.(fastnet.LiveRecord)
	if now.Sub(rec.Timestamp) > staleAfter {
		return fastnet.LiveRecord{}, false
	}
	return rec, true
}

// GetNumeric is a convenience wrapper for the common case of reading a
// channel expected to hold a numeric value.
func (s *Store) GetNumeric(channelID byte) (float64, bool) {
	rec, ok := s.Get(channelID)
	if !ok || rec.Value.Kind != fastnet.KindNumeric {
		return 0, false
	}
	return rec.Value.Number, true
}

// GetString is a convenience wrapper for the common case of reading a
// channel expected to hold string/ASCII data.
func (s *Store) GetString(channelID byte) (string, bool) {
	rec, ok := s.Get(channelID)
	if !ok || rec.Value.Kind != fastnet.KindString {
		return "", false
	}
	return rec.Value.Text, true
}

// Snapshot returns every currently-fresh record, keyed by channel id. Used
// by the optional live-data table (livetable package) to render a full dump
// without holding the store's internal lock across a render pass.
func (s *Store) Snapshot() map[byte]fastnet.LiveRecord {
	now := time.Now()
	out := make(map[byte]fastnet.LiveRecord)
	for k, v := range s.cache.Items() {
		rec := v.Object.(fastnet.LiveRecord)
		if now.Sub(rec.Timestamp) > staleAfter {
			continue
		}
		var channelID byte
		fmt.Sscanf(k, "%02x", &channelID)
		out[channelID] = rec
	}
	return out
}
