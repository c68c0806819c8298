package fastnet

import "strings"

// ChannelUpdate pairs a channel id with its freshly decoded value, as
// produced by decoding one frame's body (§3 Body of a broadcast frame).
type ChannelUpdate struct {
	ChannelID byte
	Value     DecodedValue
}

// DecodeBroadcastBody decodes a command-0x01 body into zero or more
// ChannelUpdates, left to right.
//
// A truncated trailing triple or an unknown data-format nibble terminates
// decoding of the remaining body; the updates already decoded are still
// returned, and err names why decoding stopped. The caller logs err at WARN
// and commits the returned updates regardless (§4.2 Error mode).
func DecodeBroadcastBody(body []byte) ([]ChannelUpdate, error) {
	var updates []ChannelUpdate
	i := 0
	for i < len(body) {
		if i+2 > len(body) {
			return updates, ErrTruncatedPayload
		}
		channelID, formatByte := body[i], body[i+1]
		i += 2

		length, ok := PayloadLength(formatByte & 0x0F)
		if !ok {
			return updates, ErrUnknownFormat
		}
		if i+length > len(body) {
			return updates, ErrTruncatedPayload
		}

		value, err := DecodeChannel(formatByte, body[i:i+length])
		if err != nil {
			return updates, err
		}
		i += length

		updates = append(updates, ChannelUpdate{ChannelID: channelID, Value: value})
	}
	return updates, nil
}

// DecodeASCIIBody decodes a command-0x03 body: a leading (channel_id,
// format_byte) pair followed by a printable ASCII payload, trimmed of
// trailing whitespace and stored as a string (§4.2 ASCII frames).
func DecodeASCIIBody(body []byte) (ChannelUpdate, error) {
	if len(body) < 2 {
		return ChannelUpdate{}, ErrTruncatedPayload
	}
	channelID := body[0]
	text := strings.TrimRight(string(body[2:]), " \t\r\n\x00")
	return ChannelUpdate{
		ChannelID: channelID,
		Value:     DecodedValue{Kind: KindString, Text: text},
	}, nil
}
