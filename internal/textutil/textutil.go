// Package textutil has small string-safety helpers for debug logging.
// EscapeControl is adapted from the upstream client's FormatSpaces
// (internal/utils/strings.go), extended to hex-escape non-printable, non-ASCII
// bytes too, since raw Fastnet frames routinely contain arbitrary binary
// rather than just the occasional control character a framed serial
// protocol's debug dump was originally written for.
package textutil

import (
	"fmt"
	"strings"
)

// EscapeControl renders raw bytes safely for a log line: common control
// characters become their familiar escape, anything else outside printable
// ASCII becomes \xHH, and everything else passes through unchanged.
func EscapeControl(b []byte) string {
	var buf strings.Builder
	for _, c := range b {
		switch c {
		case '\t':
			buf.WriteString(`\t`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\v':
			buf.WriteString(`\v`)
		case '\f':
			buf.WriteString(`\f`)
		default:
			if c < 0x20 || c >= 0x7f {
				fmt.Fprintf(&buf, `\x%02x`, c)
			} else {
				buf.WriteByte(c)
			}
		}
	}
	return buf.String()
}
