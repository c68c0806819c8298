package nmeaout

import (
	"strings"
	"time"

	"github.com/solway-marine/fastnetbridge/livestore"
	"github.com/solway-marine/fastnetbridge/registry"
)

// knotsToMetersPerSecond and knotsToKmh are the unit conversions §4.5's MWD
// and VTG builders need (TWS in both knots and m/s; SOG in both knots and
// km/h).
const (
	knotsToMetersPerSecond = 0.514444
	knotsToKmh             = 1.852
)

// Builder produces one NMEA sentence from the store's current contents, or
// ("", false) if a required input hasn't been seen yet.
type Builder func(s *livestore.Store) (string, bool)

// VHW emits boatspeed (and heading, when available) as $IIVHW.
func VHW(s *livestore.Store) (string, bool) {
	bsp, ok := s.GetNumeric(registry.ChannelBoatspeedKnots)
	if !ok {
		return "", false
	}
	hdg, hdgOK := s.GetNumeric(registry.ChannelHeading)
	body := "IIVHW,,," + field(hdgOK, hdg, 1) + ",M," + field(true, bsp, 1) + ",N,,"
	return Wrap(body), true
}

// DBT emits depth in feet, meters, and fathoms as $IIDBT. Any of the three
// units missing is left blank; all three missing returns false.
func DBT(s *livestore.Store) (string, bool) {
	ft, ftOK := s.GetNumeric(registry.ChannelDepthFeet)
	m, mOK := s.GetNumeric(registry.ChannelDepthMeters)
	fath, fathOK := s.GetNumeric(registry.ChannelDepthFathoms)
	if !ftOK && !mOK && !fathOK {
		return "", false
	}
	body := "IIDBT," + field(ftOK, ft, 1) + ",f," + field(mOK, m, 1) + ",M," + field(fathOK, fath, 1) + ",F"
	return Wrap(body), true
}

// RSA emits rudder angle as $IIRSA. Rudder angle is not normalized: it
// carries sign. Per §4.5's explicit table entry, a missing reading still
// emits a sentence, with a blank angle and status V, rather than returning
// false -- the one builder documented to behave this way.
func RSA(s *livestore.Store) (string, bool) {
	angle, ok := s.GetNumeric(registry.ChannelRudderAngle)
	status := "A"
	if !ok {
		status = "V"
	}
	body := "IIRSA," + field(ok, angle, 1) + "," + status + ",," + status
	return Wrap(body), true
}

// XDRBatteryVolts emits battery voltage as a transducer (XDR) sentence
// tagged BATTV.
func XDRBatteryVolts(s *livestore.Store) (string, bool) {
	v, ok := s.GetNumeric(registry.ChannelBatteryVolts)
	if !ok {
		return "", false
	}
	return Wrap("IIXDR,U," + field(true, v, 2) + ",V,BATTV"), true
}

// MWD emits true wind direction and speed (knots and m/s) as $WIMWD.
func MWD(s *livestore.Store) (string, bool) {
	twd, ok := s.GetNumeric(registry.ChannelTrueWindDirection)
	if !ok {
		return "", false
	}
	twsKn, twsOK := s.GetNumeric(registry.ChannelTrueWindSpeedKnots)
	twsMs := twsKn * knotsToMetersPerSecond
	body := "WIMWD,,," + field(true, normalizeAngle(twd), 1) + ",M," +
		field(twsOK, twsKn, 1) + ",N," + field(twsOK, twsMs, 1) + ",M"
	return Wrap(body), true
}

// MWVTrue emits true wind angle/speed as $IIMWV with reference T.
func MWVTrue(s *livestore.Store) (string, bool) {
	return mwv(s, registry.ChannelTrueWindAngle, registry.ChannelTrueWindSpeedKnots, "T")
}

// MWVRelative emits apparent wind angle/speed as $IIMWV with reference R.
func MWVRelative(s *livestore.Store) (string, bool) {
	return mwv(s, registry.ChannelApparentWindAngle, registry.ChannelApparentWindSpeedKnots, "R")
}

func mwv(s *livestore.Store, angleChannel, speedChannel byte, reference string) (string, bool) {
	angle, angleOK := s.GetNumeric(angleChannel)
	speed, speedOK := s.GetNumeric(speedChannel)
	if !angleOK || !speedOK {
		return "", false
	}
	body := "IIMWV," + field(true, normalizeAngle(angle), 1) + "," + reference + "," +
		field(true, speed, 1) + ",N,A"
	return Wrap(body), true
}

// MTW emits sea temperature as $IIMTW.
func MTW(s *livestore.Store) (string, bool) {
	t, ok := s.GetNumeric(registry.ChannelSeaTemperatureC)
	if !ok {
		return "", false
	}
	return Wrap("IIMTW," + field(true, t, 1) + ",C"), true
}

// HDM emits heading as $IIHDM.
func HDM(s *livestore.Store) (string, bool) {
	hdg, ok := s.GetNumeric(registry.ChannelHeading)
	if !ok {
		return "", false
	}
	return Wrap("IIHDM," + field(true, hdg, 1) + ",M"), true
}

// VTG emits course over ground (true/magnetic) and speed over ground as
// $IIVTG. SOG is required; COG(true)/COG(mag) are blank if not yet seen.
func VTG(s *livestore.Store) (string, bool) {
	sog, ok := s.GetNumeric(registry.ChannelSpeedOverGround)
	if !ok {
		return "", false
	}
	cogTrue, trueOK := s.GetNumeric(registry.ChannelCourseOverGroundTrue)
	cogMag, magOK := s.GetNumeric(0xEA) // Course Over Ground (Mag)

	body := "IIVTG," + field(trueOK, cogTrue, 1) + ",T," + field(magOK, cogMag, 1) + ",M," +
		field(true, sog, 1) + ",N," + field(true, sog*knotsToKmh, 1) + ",K,A"
	return Wrap(body), true
}

// GLL emits latitude/longitude as $GPGLL, parsed from the packed LatLon
// ASCII channel (e.g. "5012.34N00005.67W"). Latitude ends at the first N/S,
// longitude ends at the first E/W; malformed input returns false.
func GLL(s *livestore.Store) (string, bool) {
	return GLLAt(s, time.Now())
}

// GLLAt is GLL with an injected "now", for deterministic tests.
func GLLAt(s *livestore.Store, now time.Time) (string, bool) {
	raw, ok := s.GetString(registry.ChannelLatLon)
	if !ok {
		return "", false
	}
	latIdx := splitIndex(raw, "NS")
	lonIdx := splitIndex(raw, "EW")
	if latIdx == -1 || lonIdx == -1 || latIdx >= lonIdx {
		return "", false
	}

	lat := raw[:latIdx]
	latDir := string(raw[latIdx])
	lon := raw[latIdx+1 : lonIdx]
	lonDir := string(raw[lonIdx])

	body := "GPGLL," + lat + "," + latDir + "," + lon + "," + lonDir + "," + now.UTC().Format("150405") + ",A"
	return Wrap(body), true
}

// splitIndex finds the first occurrence, in raw, of any rune in chars.
func splitIndex(raw, chars string) int {
	return strings.IndexAny(raw, chars)
}

// rawXDR builds a factory for the seven raw-channel XDR passthrough
// sentences (§4.5's XDR(raw) row): transducer type, precision, unit, and
// tag name vary per channel, but the shape is identical.
func rawXDR(channel byte, transducerType string, unit string, tag string, precision int) Builder {
	return func(s *livestore.Store) (string, bool) {
		v, ok := s.GetNumeric(channel)
		if !ok {
			return "", false
		}
		body := "IIXDR," + transducerType + "," + field(true, v, precision) + "," + unit + "," + tag
		return Wrap(body), true
	}
}

var (
	// XDRRawWindAngle, XDRRawWindSpeed, XDRDrift, XDRSet, XDRRawBoatspeed,
	// XDRRoll, and XDRPitch are the seven raw-channel passthrough builders
	// named in §4.5's XDR(raw) row.
	XDRRawWindAngle  = rawXDR(0x52, "A", "V", "RAW_WIND_A", 1)
	XDRRawWindSpeed  = rawXDR(0x4E, "N", "V", "RAW_WIND_S", 1)
	XDRDrift         = rawXDR(0x83, "N", "V", "DRIFT", 1)
	XDRSet           = rawXDR(0x84, "A", "V", "SET", 1)
	XDRRawBoatspeed  = rawXDR(registry.ChannelBoatspeedRaw, "N", "V", "RAW_BSP", 1)
	XDRRoll          = rawXDR(registry.ChannelHeelAngle, "A", "D", "ROLL", 2)
	XDRPitch         = rawXDR(registry.ChannelPitch, "A", "D", "PITCH", 2)
)
