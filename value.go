package fastnet

import (
	"fmt"
	"time"
)

// Kind identifies which field of DecodedValue is meaningful.
type Kind uint8

const (
	// KindNone is the zero value; never produced by a successful decode.
	KindNone Kind = iota
	// KindNumeric is a single divided numeric reading (possibly signed).
	KindNumeric
	// KindString is a decoded ASCII or 7-segment glyph string.
	KindString
	// KindDuration is an hours/minutes/seconds reading (hours may exceed 24).
	KindDuration
	// KindPair is two independent signed numeric readings packed in one payload.
	KindPair
	// KindRaw is an undivided raw byte payload with no numeric interpretation (format 0x00).
	KindRaw
)

// DecodedValue is the interpreted result of one (channel_id, format_byte, payload) triple.
//
// Only the field matching Kind is meaningful; the rest are zero. Segment is
// populated whenever the source encoding interleaves segment-code bits with a
// numeric payload (formats 0x02, 0x03, 0x04, 0x08) and is retained for
// diagnostics only — it never affects Number.
type DecodedValue struct {
	Kind Kind

	Number         float64
	Text           string
	Duration       time.Duration
	First, Second  float64
	Segment        uint8
	HasSegment     bool
	Raw            []byte
}

// String renders the value for human-readable display (e.g. the --live-data
// table); it is not used by any protocol path.
func (v DecodedValue) String() string {
	switch v.Kind {
	case KindNumeric:
		if v.HasSegment {
			return fmt.Sprintf("%.2f (segment 0x%02X)", v.Number, v.Segment)
		}
		return fmt.Sprintf("%.2f", v.Number)
	case KindString:
		return v.Text
	case KindDuration:
		return v.Duration.String()
	case KindPair:
		return fmt.Sprintf("%.2f / %.2f", v.First, v.Second)
	case KindRaw:
		return fmt.Sprintf("% X", v.Raw)
	default:
		return ""
	}
}

// LiveRecord is one entry of the LiveStore: a channel's latest interpreted
// value plus the time it was observed.
type LiveRecord struct {
	ChannelID byte
	Value     DecodedValue
	Timestamp time.Time
}
