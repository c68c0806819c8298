package fastnet

import (
	"time"
)

// MaxBufferedBytes is the soft cap on FrameBuffer's internal backlog (§5
// Backpressure). Once exceeded, the oldest bytes are dropped — never whole
// frames — and the resync scan recovers at the next valid header.
const MaxBufferedBytes = 64 * 1024

// Frame is one validated Fastnet packet: header fields plus body, both
// checksums already verified. It is never retained past the call that
// produced it.
type Frame struct {
	To      byte
	From    byte
	Command byte
	Body    []byte
	Time    time.Time
}

// ResyncReason names why FrameBuffer discarded a single leading byte.
type ResyncReason string

const (
	// ResyncHeaderChecksum is reported when the 4-byte header checksum fails.
	ResyncHeaderChecksum ResyncReason = "header checksum mismatch"
	// ResyncBodyChecksum is reported when the header matched but the body checksum failed.
	ResyncBodyChecksum ResyncReason = "body checksum mismatch"
	// ResyncOverflow is reported when the soft buffer cap forces the oldest bytes out.
	ResyncOverflow ResyncReason = "buffer overflow"
)

// FrameBuffer accumulates raw bytes from a ByteSource and emits validated
// Frames, resynchronizing on corrupted input one byte at a time (§4.1).
//
// Not safe for concurrent Append/Drain from multiple goroutines; the
// Engine calls both Append and Drain from its producer goroutine only, so
// the two never race in practice, but a single FrameBuffer must not be
// shared across goroutines without its own lock.
type FrameBuffer struct {
	buf []byte

	maxBuffered int
	now         func() time.Time

	// onResync, when set, is called once per discarded byte with the reason
	// it was discarded. Used by the Engine to log and by metrics to count.
	onResync func(discarded byte, reason ResyncReason)
}

// NewFrameBuffer creates an empty FrameBuffer with the default soft cap.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{
		maxBuffered: MaxBufferedBytes,
		now:         time.Now,
	}
}

// OnResync registers a callback invoked for every byte FrameBuffer discards,
// whether from checksum resync or from backlog overflow.
func (f *FrameBuffer) OnResync(cb func(discarded byte, reason ResyncReason)) {
	f.onResync = cb
}

// Append adds freshly-read bytes to the internal buffer. If the backlog
// exceeds the soft cap, the oldest bytes are dropped (§5 Backpressure); the
// next Drain's resync scan finds the next valid header on its own.
func (f *FrameBuffer) Append(b []byte) {
	f.buf = append(f.buf, b...)
	if len(f.buf) <= f.maxBuffered {
		return
	}
	overflow := len(f.buf) - f.maxBuffered
	if f.onResync != nil {
		for _, b := range f.buf[:overflow] {
			f.onResync(b, ResyncOverflow)
		}
	}
	f.buf = f.buf[overflow:]
}

// Drain scans the internal buffer for as many complete, checksum-valid
// frames as it currently holds, resynchronizing one byte at a time on any
// checksum failure, and returns them in arrival order. Bytes belonging to an
// incomplete trailing frame are left buffered for the next Append.
func (f *FrameBuffer) Drain() []Frame {
	var frames []Frame
	for {
		if len(f.buf) < 6 {
			return frames
		}

		to, from, size, command, hcs := f.buf[0], f.buf[1], f.buf[2], f.buf[3], f.buf[4]
		if frameChecksum(f.buf[:4]) != hcs {
			f.discardOne(ResyncHeaderChecksum)
			continue
		}

		total := 6 + int(size)
		if len(f.buf) < total {
			return frames
		}

		body := f.buf[5 : 5+int(size)]
		bcs := f.buf[5+int(size)]
		if frameChecksum(body) != bcs {
			f.discardOne(ResyncBodyChecksum)
			continue
		}

		frames = append(frames, Frame{
			To:      to,
			From:    from,
			Command: command,
			Body:    append([]byte(nil), body...),
			Time:    f.now(),
		})
		f.buf = f.buf[total:]
	}
}

// discardOne drops exactly the first buffered byte and reports why. Never
// discard more than one byte per failure: the bus has no magic byte, so the
// next valid header may begin at the very next position.
func (f *FrameBuffer) discardOne(reason ResyncReason) {
	if f.onResync != nil {
		f.onResync(f.buf[0], reason)
	}
	f.buf = f.buf[1:]
}

// Buffered reports how many bytes are currently held, for metrics/backlog
// gauges.
func (f *FrameBuffer) Buffered() int {
	return len(f.buf)
}
