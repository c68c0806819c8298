package livestore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/solway-marine/fastnetbridge"
)

func TestStore_PutGet(t *testing.T) {
	s := New()
	now := time.Now()
	s.Put(fastnet.LiveRecord{
		ChannelID: 0x41,
		Value:     fastnet.DecodedValue{Kind: fastnet.KindNumeric, Number: 9.1},
		Timestamp: now,
	})

	rec, ok := s.GetAt(0x41, now)
	assert.True(t, ok)
	assert.InDelta(t, 9.1, rec.Value.Number, 0.0001)
}

func TestStore_GetMissingChannel(t *testing.T) {
	s := New()
	_, ok := s.Get(0x99)
	assert.False(t, ok)
}

func TestStore_StaleValueIsNotReturned(t *testing.T) {
	s := New()
	now := time.Now()
	s.Put(fastnet.LiveRecord{ChannelID: 0x41, Timestamp: now})

	_, ok := s.GetAt(0x41, now.Add(staleAfter+time.Second))
	assert.False(t, ok, "value older than the staleness window should read as absent")
}

func TestStore_GetNumericWrongKind(t *testing.T) {
	s := New()
	s.Put(fastnet.LiveRecord{
		ChannelID: 0x47,
		Value:     fastnet.DecodedValue{Kind: fastnet.KindString, Text: "4916.45N12311.12W"},
		Timestamp: time.Now(),
	})
	_, ok := s.GetNumeric(0x47)
	assert.False(t, ok)
}

func TestStore_Snapshot(t *testing.T) {
	s := New()
	now := time.Now()
	s.Put(fastnet.LiveRecord{ChannelID: 0x41, Value: fastnet.DecodedValue{Kind: fastnet.KindNumeric, Number: 1}, Timestamp: now})
	s.Put(fastnet.LiveRecord{ChannelID: 0x49, Value: fastnet.DecodedValue{Kind: fastnet.KindNumeric, Number: 2}, Timestamp: now})

	snap := s.Snapshot()
	assert.Len(t, snap, 2)
	assert.Contains(t, snap, byte(0x41))
	assert.Contains(t, snap, byte(0x49))
}
