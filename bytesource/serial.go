package bytesource

import (
	"context"
	"fmt"

	"go.bug.st/serial"
)

// SerialSource reads raw Fastnet bytes from an RS422 serial device at the
// bus's fixed framing: 28800 baud, 8 data bits, odd parity, 2 stop bits.
//
// go.bug.st/serial was chosen over tarm/serial specifically because
// tarm/serial's Config has no parity or stop-bits fields -- it can only
// express 8-N-1, which cannot speak to this bus at all. See DESIGN.md.
type SerialSource struct {
	device string
	port   serial.Port
}

// NewSerialSource creates a SerialSource bound to device; call Initialize
// before ReadBytes.
func NewSerialSource(device string) *SerialSource {
	return &SerialSource{device: device}
}

// Initialize opens the serial port at the Fastnet bus's fixed framing and
// sets a 1-second read timeout, satisfying §6's "poll with a 1-second wait
// for readability" requirement without needing a separate poller
// goroutine -- go.bug.st/serial's SetReadTimeout does this for us.
func (s *SerialSource) Initialize() error {
	mode := &serial.Mode{
		BaudRate: 28800,
		DataBits: 8,
		Parity:   serial.OddParity,
		StopBits: serial.TwoStopBits,
	}
	port, err := serial.Open(s.device, mode)
	if err != nil {
		return fmt.Errorf("bytesource: open %s: %w", s.device, err)
	}
	if err := port.SetReadTimeout(readTimeout); err != nil {
		port.Close()
		return fmt.Errorf("bytesource: set read timeout on %s: %w", s.device, err)
	}
	s.port = port
	return nil
}

// ReadBytes reads up to ChunkSize bytes, returning early with whatever
// arrived before the read timeout. A zero-length, nil-error result is a
// normal timeout with nothing to read; it is not EOF.
func (s *SerialSource) ReadBytes(ctx context.Context) ([]byte, error) {
	buf := make([]byte, ChunkSize)
	n, err := s.port.Read(buf)
	if err != nil {
		return nil, fmt.Errorf("bytesource: serial read on %s: %w", s.device, err)
	}
	return buf[:n], nil
}

// Close closes the underlying serial port.
func (s *SerialSource) Close() error {
	if s.port == nil {
		return nil
	}
	return s.port.Close()
}
