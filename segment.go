package fastnet

// glyphMap is the 7-segment display byte-to-character reverse map (§4.3).
// Deliberately partial: a 7-segment display cannot represent most
// characters, so this is a best-effort recovery for status strings.
// Extend as new glyph bytes are observed in the field.
var glyphMap = map[byte]rune{
	0x00: ' ',
	0xBE: 'O',
	0xE8: 'F',
	0x62: 'n',
	0x72: 'o',
}

// glyphToChar maps one 7-segment glyph byte to its character, or '?' if the
// byte isn't in the observed map.
func glyphToChar(b byte) rune {
	if c, ok := glyphMap[b]; ok {
		return c
	}
	return '?'
}
