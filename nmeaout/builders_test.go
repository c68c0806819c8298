package nmeaout

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solway-marine/fastnetbridge"
	"github.com/solway-marine/fastnetbridge/livestore"
	"github.com/solway-marine/fastnetbridge/registry"
)

func numeric(s *livestore.Store, channel byte, value float64) {
	s.Put(fastnet.LiveRecord{
		ChannelID: channel,
		Value:     fastnet.DecodedValue{Kind: fastnet.KindNumeric, Number: value},
		Timestamp: time.Now(),
	})
}

func text(s *livestore.Store, channel byte, value string) {
	s.Put(fastnet.LiveRecord{
		ChannelID: channel,
		Value:     fastnet.DecodedValue{Kind: fastnet.KindString, Text: value},
		Timestamp: time.Now(),
	})
}

func TestVHW_WithHeadingAndBoatspeed(t *testing.T) {
	s := livestore.New()
	numeric(s, registry.ChannelBoatspeedKnots, 9.1)
	numeric(s, registry.ChannelHeading, 123.4)

	sentence, ok := VHW(s)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(sentence, "$IIVHW,,,123.4,M,9.1,N,,*"))
}

func TestVHW_WithoutHeadingOmitsField(t *testing.T) {
	s := livestore.New()
	numeric(s, registry.ChannelBoatspeedKnots, 9.1)

	sentence, ok := VHW(s)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(sentence, "$IIVHW,,,,M,9.1,N,,*"))
}

func TestVHW_WithoutBoatspeedReturnsFalse(t *testing.T) {
	s := livestore.New()
	_, ok := VHW(s)
	assert.False(t, ok)
}

func TestDBT_AllThreeUnits(t *testing.T) {
	s := livestore.New()
	numeric(s, registry.ChannelDepthFeet, 20.0)
	numeric(s, registry.ChannelDepthMeters, 6.1)
	numeric(s, registry.ChannelDepthFathoms, 3.3)

	sentence, ok := DBT(s)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(sentence, "$IIDBT,20.0,f,6.1,M,3.3,F*"))
}

func TestDBT_NoneAvailable(t *testing.T) {
	s := livestore.New()
	_, ok := DBT(s)
	assert.False(t, ok)
}

func TestRSA_MissingStillEmitsVoidStatus(t *testing.T) {
	s := livestore.New()
	sentence, ok := RSA(s)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(sentence, "$IIRSA,,V,,V*"))
}

func TestRSA_PresentEmitsActiveStatus(t *testing.T) {
	s := livestore.New()
	numeric(s, registry.ChannelRudderAngle, -5.2)
	sentence, ok := RSA(s)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(sentence, "$IIRSA,-5.2,A,,A*"))
}

func TestXDRBatteryVolts(t *testing.T) {
	s := livestore.New()
	numeric(s, registry.ChannelBatteryVolts, 12.6)
	sentence, ok := XDRBatteryVolts(s)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(sentence, "$IIXDR,U,12.60,V,BATTV*"))
}

func TestMWD(t *testing.T) {
	s := livestore.New()
	numeric(s, registry.ChannelTrueWindDirection, 270.0)
	numeric(s, registry.ChannelTrueWindSpeedKnots, 12.0)
	sentence, ok := MWD(s)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(sentence, "$WIMWD,,,270.0,M,12.0,N,6.2,M*"))
}

func TestMWVTrue_BothPresent(t *testing.T) {
	s := livestore.New()
	numeric(s, registry.ChannelTrueWindAngle, -30.0)
	numeric(s, registry.ChannelTrueWindSpeedKnots, 15.0)
	sentence, ok := MWVTrue(s)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(sentence, "$IIMWV,330.0,T,15.0,N,A*"))
}

func TestMWVRelative_OneMissingEmitsNothing(t *testing.T) {
	s := livestore.New()
	numeric(s, registry.ChannelApparentWindAngle, 45.0)
	_, ok := MWVRelative(s)
	assert.False(t, ok)
}

func TestMTW(t *testing.T) {
	s := livestore.New()
	numeric(s, registry.ChannelSeaTemperatureC, 18.2)
	sentence, ok := MTW(s)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(sentence, "$IIMTW,18.2,C*"))
}

func TestHDM(t *testing.T) {
	s := livestore.New()
	numeric(s, registry.ChannelHeading, 95.5)
	sentence, ok := HDM(s)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(sentence, "$IIHDM,95.5,M*"))
}

func TestVTG_RequiresSOG(t *testing.T) {
	s := livestore.New()
	_, ok := VTG(s)
	assert.False(t, ok)

	numeric(s, registry.ChannelSpeedOverGround, 6.0)
	sentence, ok := VTG(s)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(sentence, "$IIVTG,,T,,M,6.0,N,11.1,K,A*"))
}

func TestGLLAt_ParsesPackedLatLon(t *testing.T) {
	s := livestore.New()
	text(s, registry.ChannelLatLon, "4916.45N12311.12W")
	frozen := time.Date(2026, 1, 1, 22, 54, 44, 0, time.UTC)

	sentence, ok := GLLAt(s, frozen)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(sentence, "$GPGLL,4916.45,N,12311.12,W,225444,A*"))
}

func TestGLLAt_MalformedInputReturnsFalse(t *testing.T) {
	s := livestore.New()
	text(s, registry.ChannelLatLon, "not-a-position")
	_, ok := GLLAt(s, time.Now())
	assert.False(t, ok)
}

func TestGLLAt_Missing(t *testing.T) {
	s := livestore.New()
	_, ok := GLLAt(s, time.Now())
	assert.False(t, ok)
}

func TestRawXDRBuilders(t *testing.T) {
	s := livestore.New()
	numeric(s, registry.ChannelHeelAngle, 4.5)
	sentence, ok := XDRRoll(s)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(sentence, "$IIXDR,A,4.50,D,ROLL*"))

	_, ok = XDRPitch(s)
	assert.False(t, ok)
}
