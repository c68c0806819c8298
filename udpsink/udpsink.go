// Package udpsink is the Sink: one UDP broadcast datagram per NMEA
// sentence. Grounded on the PacketForwarder shape (forwarder.go in the
// LIDAR forwarding pack) -- a DialUDP'd connection plus a buffered channel
// and a forwarding goroutine, so a slow/unreachable network never blocks
// the caller (§5's "Sink must be reachable from the consumer task without
// blocking the producer").
package udpsink

import (
	"context"
	"fmt"
	"net"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
)

// channelCapacity is the size of the outbound sentence buffer. A sink that
// cannot keep up drops the oldest queued sentence rather than blocking the
// router (§5 backpressure applies to the FrameBuffer; the Sink gets its own
// small drop-oldest buffer for the same reason).
const channelCapacity = 256

// Sink broadcasts NMEA sentences over UDP.
type Sink struct {
	conn    *net.UDPConn
	queue   chan string
	logger  *log.Logger
	dropped prometheus.Counter
	cancel  context.CancelFunc
}

// New opens a UDP broadcast socket to 255.255.255.255:port with SO_BROADCAST
// enabled, and starts the background send loop.
func New(port int, logger *log.Logger, dropped prometheus.Counter) (*Sink, error) {
	if logger == nil {
		logger = log.Default()
	}
	addr := &net.UDPAddr{IP: net.IPv4bcast, Port: port}
	conn, err := net.DialUDP("udp4", nil, addr)
	if err != nil {
		return nil, fmt.Errorf("udpsink: dial %s: %w", addr, err)
	}
	if err := enableBroadcast(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("udpsink: enable broadcast: %w", err)
	}

	return newWithConn(conn, logger, dropped), nil
}

func newWithConn(conn *net.UDPConn, logger *log.Logger, dropped prometheus.Counter) *Sink {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Sink{
		conn:    conn,
		queue:   make(chan string, channelCapacity),
		logger:  logger,
		dropped: dropped,
		cancel:  cancel,
	}
	go s.run(ctx)
	return s
}

// enableBroadcast sets SO_BROADCAST on conn's underlying file descriptor.
// net.DialUDP alone does not set this; without it, sends to a broadcast
// address fail with EACCES on most platforms.
func enableBroadcast(conn *net.UDPConn) error {
	raw, err := conn.SyscallConn()
	if err != nil {
		return err
	}
	var sockErr error
	if err := raw.Control(func(fd uintptr) {
		sockErr = syscall.SetsockoptInt(int(fd), syscall.SOL_SOCKET, syscall.SO_BROADCAST, 1)
	}); err != nil {
		return err
	}
	return sockErr
}

// Send enqueues sentence for delivery and returns immediately. If the
// outbound queue is full, the oldest queued sentence is dropped to make
// room -- the same oldest-out policy the FrameBuffer uses on overflow.
func (s *Sink) Send(sentence string) error {
	select {
	case s.queue <- sentence:
		return nil
	default:
		select {
		case <-s.queue:
			if s.dropped != nil {
				s.dropped.Inc()
			}
		default:
		}
		select {
		case s.queue <- sentence:
		default:
		}
		return nil
	}
}

func (s *Sink) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case sentence := <-s.queue:
			if _, err := s.conn.Write([]byte(sentence)); err != nil {
				s.logger.Error("udp send failed", "err", err)
			}
		}
	}
}

// Close stops the send loop and closes the socket.
func (s *Sink) Close() error {
	s.cancel()
	return s.conn.Close()
}
