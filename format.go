package fastnet

import (
	"encoding/binary"
	"errors"
	"strings"
	"time"
)

// ErrTruncatedPayload is returned when a channel's payload bytes run out
// before the format byte's required length is satisfied.
var ErrTruncatedPayload = errors.New("fastnet: truncated payload")

// ErrUnknownFormat is returned for a data-format nibble this decoder has no
// variant for (§4.2: "Any other F"). Its payload length is indeterminate, so
// the caller cannot safely resume decoding past it within the same body.
var ErrUnknownFormat = errors.New("fastnet: unknown data format nibble")

// divisors maps the format byte's DD bits to the decimal divisor.
var divisors = [4]int{1, 10, 100, 1000}

// digitHints maps the format byte's GG bits to the displayable digit count hint.
var digitHints = [4]int{1, 2, 3, 4}

// formatVariant is one entry of the per-channel decode table (§4.2): the
// exact payload length the variant requires, and the function that
// interprets that many bytes given the already-extracted divisor.
type formatVariant struct {
	length  int
	decode  func(payload []byte, divisor int) DecodedValue
}

// formatTable is the format-nibble dispatch table, implemented as a lookup
// table of (payload length, decoder variant) pairs rather than a branching
// chain, per §9's design note.
var formatTable = map[byte]formatVariant{
	0x00: {4, decodeRaw},
	0x01: {2, decodeInt16},
	0x02: {2, decodeSegment6Uint10},
	0x03: {2, decodeSegment7Uint9},
	0x04: {4, decodeSegment8Uint24},
	0x05: {4, decodeDuration},
	0x06: {4, decodeGlyphs},
	0x07: {4, decodeUint15},
	0x08: {2, decodeSegment7Uint9}, // variant of 0x03, same layout
	0x0A: {4, decodeInt16Pair},
}

// ParseFormatByte splits a format byte into its divisor, digit-count hint,
// and data-format nibble (§4.2's DD|GG|FFFF layout).
func ParseFormatByte(b byte) (divisor int, digits int, dataFormat byte) {
	return divisors[(b>>6)&0x3], digitHints[(b>>4)&0x3], b & 0x0F
}

// DecodeChannel interprets one channel's payload bytes given its format byte,
// per the table in §4.2. A payload shorter than the variant's required
// length yields ErrTruncatedPayload; any extra trailing bytes are ignored.
func DecodeChannel(formatByte byte, payload []byte) (DecodedValue, error) {
	divisor, _, dataFormat := ParseFormatByte(formatByte)
	variant, ok := formatTable[dataFormat]
	if !ok {
		return DecodedValue{}, ErrUnknownFormat
	}
	if len(payload) < variant.length {
		return DecodedValue{}, ErrTruncatedPayload
	}
	return variant.decode(payload[:variant.length], divisor), nil
}

// PayloadLength reports the payload length a data-format nibble requires, or
// false if the nibble has no known variant.
func PayloadLength(dataFormat byte) (int, bool) {
	v, ok := formatTable[dataFormat]
	return v.length, ok
}

func decodeRaw(payload []byte, _ int) DecodedValue {
	return DecodedValue{Kind: KindRaw, Raw: append([]byte(nil), payload...)}
}

func decodeInt16(payload []byte, divisor int) DecodedValue {
	raw := int16(binary.BigEndian.Uint16(payload))
	return DecodedValue{Kind: KindNumeric, Number: float64(raw) / float64(divisor)}
}

func decodeSegment6Uint10(payload []byte, divisor int) DecodedValue {
	segment := (payload[0] >> 2) & 0x3F
	u10 := (uint16(payload[0]&0x3) << 8) | uint16(payload[1])
	return DecodedValue{
		Kind: KindNumeric, Number: float64(u10) / float64(divisor),
		Segment: segment, HasSegment: true,
	}
}

func decodeSegment7Uint9(payload []byte, divisor int) DecodedValue {
	segment := (payload[0] >> 1) & 0x7F
	u9 := (uint16(payload[0]&0x1) << 8) | uint16(payload[1])
	return DecodedValue{
		Kind: KindNumeric, Number: float64(u9) / float64(divisor),
		Segment: segment, HasSegment: true,
	}
}

func decodeSegment8Uint24(payload []byte, divisor int) DecodedValue {
	segment := payload[0]
	u24 := uint32(payload[1])<<16 | uint32(payload[2])<<8 | uint32(payload[3])
	return DecodedValue{
		Kind: KindNumeric, Number: float64(u24) / float64(divisor),
		Segment: segment, HasSegment: true,
	}
}

func decodeDuration(payload []byte, _ int) DecodedValue {
	hours, minutes, seconds := payload[1], payload[2], payload[3]
	d := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second
	return DecodedValue{Kind: KindDuration, Duration: d}
}

func decodeGlyphs(payload []byte, _ int) DecodedValue {
	var sb strings.Builder
	for _, b := range payload {
		sb.WriteRune(glyphToChar(b))
	}
	return DecodedValue{Kind: KindString, Text: sb.String()}
}

func decodeUint15(payload []byte, divisor int) DecodedValue {
	msb := (payload[2] >> 1) & 0x7F
	lsb := payload[3]
	u15 := uint16(msb)<<8 | uint16(lsb)
	return DecodedValue{Kind: KindNumeric, Number: float64(u15) / float64(divisor)}
}

func decodeInt16Pair(payload []byte, divisor int) DecodedValue {
	first := int16(binary.BigEndian.Uint16(payload[0:2]))
	second := int16(binary.BigEndian.Uint16(payload[2:4]))
	return DecodedValue{
		Kind:   KindPair,
		First:  float64(first) / float64(divisor),
		Second: float64(second) / float64(divisor),
	}
}
