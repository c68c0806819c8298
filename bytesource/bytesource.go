// Package bytesource supplies the two ByteSource implementations the
// pipeline can read from: a live RS422 serial port, or a recorded hex-text
// file played back at approximately the original rate. Both satisfy the
// same minimal contract (Initialize/ReadBytes/Close), reading raw bytes
// rather than a parsed message.
package bytesource

import (
	"context"
	"time"
)

// ByteSource is anything the decode pipeline's producer can pull raw bytes
// from. ReadBytes blocks for at most the source's own read timeout (serial:
// ~1s poll; file: the pacing delay) and returns what arrived, which may be
// empty without error on a timeout with nothing to read.
type ByteSource interface {
	Initialize() error
	ReadBytes(ctx context.Context) ([]byte, error)
	Close() error
}

// ChunkSize is the maximum number of bytes read per ReadBytes call, for both
// the serial and file-replay sources (§6).
const ChunkSize = 256

// readTimeout is the serial poll wait (§6).
const readTimeout = 1 * time.Second

// replayPacing is the delay between successive file-replay chunks,
// approximating live bus rate (§6: ~100ms per 256-byte chunk).
const replayPacing = 100 * time.Millisecond
