package fastnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormatByte(t *testing.T) {
	divisor, digits, dataFormat := ParseFormatByte(0x41) // DD=01, GG=00, FFFF=0001
	assert.Equal(t, 10, divisor)
	assert.Equal(t, 1, digits)
	assert.Equal(t, byte(0x01), dataFormat)

	divisor, digits, dataFormat = ParseFormatByte(0xB2) // DD=10, GG=11, FFFF=0010
	assert.Equal(t, 100, divisor)
	assert.Equal(t, 4, digits)
	assert.Equal(t, byte(0x02), dataFormat)
}

func TestDecodeChannel_Int16(t *testing.T) {
	v, err := DecodeChannel(0x41, []byte{0x00, 0x5B}) // 91 / 10
	require.NoError(t, err)
	assert.Equal(t, KindNumeric, v.Kind)
	assert.InDelta(t, 9.1, v.Number, 0.0001)
}

func TestDecodeChannel_Int16Negative(t *testing.T) {
	v, err := DecodeChannel(0x01, []byte{0xFF, 0xF6}) // -10, divisor x1
	require.NoError(t, err)
	assert.InDelta(t, -10, v.Number, 0.0001)
}

func TestDecodeChannel_Segment6Uint10(t *testing.T) {
	// payload[0] = 1011_10_10 -> segment=0b101110=0x2E, high bits of u10=0b10
	payload := []byte{0b10111010, 0x34}
	v, err := DecodeChannel(0x02, payload) // divisor x1
	require.NoError(t, err)
	assert.True(t, v.HasSegment)
	assert.Equal(t, byte(0b101110), v.Segment)
	expected := float64((uint16(0b10)<<8)|0x34) / 1
	assert.InDelta(t, expected, v.Number, 0.0001)
}

func TestDecodeChannel_Segment7Uint9(t *testing.T) {
	payload := []byte{0b11001111, 0x22}
	v, err := DecodeChannel(0x03, payload)
	require.NoError(t, err)
	assert.True(t, v.HasSegment)
	assert.Equal(t, byte(0b1100111), v.Segment)
	expected := float64((uint16(0b1)<<8)|0x22) / 1
	assert.InDelta(t, expected, v.Number, 0.0001)

	// 0x08 is a declared alias of 0x03's layout.
	v2, err := DecodeChannel(0x08, payload)
	require.NoError(t, err)
	assert.Equal(t, v.Segment, v2.Segment)
	assert.Equal(t, v.Number, v2.Number)
}

func TestDecodeChannel_Segment8Uint24(t *testing.T) {
	payload := []byte{0x7F, 0x00, 0x01, 0x00}
	v, err := DecodeChannel(0x04, payload)
	require.NoError(t, err)
	assert.Equal(t, byte(0x7F), v.Segment)
	assert.InDelta(t, 256, v.Number, 0.0001)
}

func TestDecodeChannel_Duration(t *testing.T) {
	payload := []byte{0x00, 0x01, 0x02, 0x03} // 1h 2m 3s
	v, err := DecodeChannel(0x05, payload)
	require.NoError(t, err)
	assert.Equal(t, KindDuration, v.Kind)
	assert.Equal(t, "1h2m3s", v.Duration.String())
}

func TestDecodeChannel_Glyphs(t *testing.T) {
	payload := []byte{0xBE, 0xE8, 0x62, 0x00}
	v, err := DecodeChannel(0x06, payload)
	require.NoError(t, err)
	assert.Equal(t, KindString, v.Kind)
	assert.Equal(t, "OFn ", v.Text)
}

func TestDecodeChannel_Uint15(t *testing.T) {
	payload := []byte{0x00, 0x00, 0b00000010, 0x10}
	v, err := DecodeChannel(0x07, payload)
	require.NoError(t, err)
	expected := float64((uint16(0b1)<<8)|0x10) / 1
	assert.InDelta(t, expected, v.Number, 0.0001)
}

func TestDecodeChannel_Int16Pair(t *testing.T) {
	payload := []byte{0x00, 0x64, 0xFF, 0x9C} // 100 and -100, divisor x1
	v, err := DecodeChannel(0x0A, payload)
	require.NoError(t, err)
	assert.Equal(t, KindPair, v.Kind)
	assert.InDelta(t, 100, v.First, 0.0001)
	assert.InDelta(t, -100, v.Second, 0.0001)
}

func TestDecodeChannel_UnknownFormatNibble(t *testing.T) {
	_, err := DecodeChannel(0x0F, []byte{0x00, 0x00, 0x00, 0x00})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDecodeChannel_TruncatedPayload(t *testing.T) {
	_, err := DecodeChannel(0x41, []byte{0x00})
	assert.ErrorIs(t, err, ErrTruncatedPayload)
}

func TestPayloadLength_UnknownNibble(t *testing.T) {
	_, ok := PayloadLength(0x09)
	assert.False(t, ok, "0x09 has no documented decoder and no determinable length")
}

func TestPayloadLength_KnownNibble(t *testing.T) {
	length, ok := PayloadLength(0x00)
	require.True(t, ok)
	assert.Equal(t, 4, length)
}
