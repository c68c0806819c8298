package fastnet

// frameChecksum computes the Fastnet frame checksum over data: the two's
// complement of the low byte of the sum of all bytes, i.e.
// (0x100 - (sum mod 0x100)) & 0xFF. Used identically for both the 4-byte
// header region and the body region (§4.1).
//
// Same "sum then negate mod 256" shape as the Actisense NGT-1 BEMCMD
// checksum, just without that protocol's DLE-escaping.
func frameChecksum(data []byte) byte {
	sum := 0
	for _, b := range data {
		sum += int(b)
	}
	return byte((0x100 - (sum % 0x100)) & 0xFF)
}
