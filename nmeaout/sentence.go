// Package nmeaout builds NMEA-0183 sentences from the freshest values held
// in a livestore.Store. Every builder is a pure function of the store's
// current contents: it takes no arguments beyond the store, and returns
// ("", false) when a required input channel hasn't reported yet, the same
// "return nothing, don't guess" contract the original bridge's trigger
// functions used (fn2ip.py's get_live_data/trigger_functions), just made
// explicit in the Go type signature instead of relying on a dict lookup
// returning None.
package nmeaout

import (
	"fmt"
	"strings"
)

// Checksum is the NMEA sentence checksum: the 8-bit XOR of every byte in
// body, the portion between the leading '$' and the trailing '*'.
func Checksum(body string) byte {
	var sum byte
	for i := 0; i < len(body); i++ {
		sum ^= body[i]
	}
	return sum
}

// Wrap assembles the complete wire form of a sentence body: "$<body>*<HH>\n".
func Wrap(body string) string {
	return fmt.Sprintf("$%s*%02X\n", body, Checksum(body))
}

// normalizeAngle maps a signed angle in [-180, 180] to [0, 360).
func normalizeAngle(deg float64) float64 {
	deg = deg - 360*float64(int(deg/360))
	if deg < 0 {
		deg += 360
	}
	return deg
}

// field formats an optional numeric field: blank when !present, else the
// value at the given decimal precision.
func field(present bool, value float64, precision int) string {
	if !present {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%.*f", precision, value))
}
