// Package engine wires a ByteSource, FrameBuffer, LiveStore, and
// TriggerRouter into the running pipeline. It is the one package allowed to
// depend on every other package in this module, since assembling them is
// its entire job.
package engine

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/solway-marine/fastnetbridge"
	"github.com/solway-marine/fastnetbridge/bytesource"
	"github.com/solway-marine/fastnetbridge/internal/textutil"
	"github.com/solway-marine/fastnetbridge/livestore"
	"github.com/solway-marine/fastnetbridge/metrics"
	"github.com/solway-marine/fastnetbridge/registry"
)

// Dispatcher is satisfied by *router.TriggerRouter; kept as an interface so
// Engine can be tested with a recording stub instead of a real router plus
// a real sink.
type Dispatcher interface {
	Dispatch(channelID byte)
}

// Engine wires a ByteSource, FrameBuffer, LiveStore, and Dispatcher into the
// parallel producer/consumer shape chosen in §5: one goroutine reads bytes,
// appends them to the FrameBuffer and drains complete frames from it; a
// second receives those frames, updates the LiveStore, and dispatches to the
// router. The two communicate only through the frames channel below -- the
// consumer never touches the FrameBuffer or the ByteSource.
type Engine struct {
	source  bytesource.ByteSource
	buffer  *fastnet.FrameBuffer
	store   *livestore.Store
	trigger Dispatcher
	logger  *log.Logger
	metrics *metrics.Metrics

	frames chan fastnet.Frame
}

// New assembles an Engine. m may be nil to disable instrumentation.
func New(source bytesource.ByteSource, store *livestore.Store, trigger Dispatcher, logger *log.Logger, m *metrics.Metrics) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	buffer := fastnet.NewFrameBuffer()
	e := &Engine{
		source:  source,
		buffer:  buffer,
		store:   store,
		trigger: trigger,
		logger:  logger,
		metrics: m,
		frames:  make(chan fastnet.Frame, 64),
	}
	buffer.OnResync(e.onResync)
	return e
}

func (e *Engine) onResync(discarded byte, reason fastnet.ResyncReason) {
	e.logger.Warn("resync", "discarded", discarded, "reason", string(reason))
	if e.metrics != nil {
		switch reason {
		case fastnet.ResyncOverflow:
			e.metrics.BytesDropped.Inc()
		default:
			e.metrics.ChecksumResyncs.WithLabelValues(string(reason)).Inc()
		}
	}
}

// Run drives the producer and consumer until ctx is canceled or the byte
// source reaches a normal end (io.EOF, used by file replay). It returns once
// the consumer has stopped and either the producer has exited or ctx is
// done; on cancellation a producer still blocked in ReadBytes is not waited
// for.
func (e *Engine) Run(ctx context.Context) error {
	if err := e.source.Initialize(); err != nil {
		return err
	}
	defer e.source.Close()

	producerErr := make(chan error, 1)
	go func() {
		producerErr <- e.produce(ctx)
		close(e.frames)
	}()

	e.consume(ctx)

	select {
	case err := <-producerErr:
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	case <-ctx.Done():
		return nil
	}
}

// produce is the suspension-point-owning half of the pipeline (§5): it
// blocks only on the byte source's own read timeout, appends to the
// FrameBuffer, and forwards every frame the drain turns up to the frames
// channel for the consumer.
func (e *Engine) produce(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		chunk, err := e.source.ReadBytes(ctx)
		if err != nil {
			return err
		}
		if len(chunk) == 0 {
			continue
		}
		e.buffer.Append(chunk)
		if e.metrics != nil {
			e.metrics.BufferedBytes.Set(float64(e.buffer.Buffered()))
		}

		for _, f := range e.buffer.Drain() {
			select {
			case e.frames <- f:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// consume is the LiveStore/Dispatcher half of the pipeline: it commits every
// channel update from a frame before moving to the next (§5 ordering),
// never touching the byte source.
func (e *Engine) consume(ctx context.Context) {
	for {
		select {
		case f, ok := <-e.frames:
			if !ok {
				return
			}
			e.handleFrame(f)
		case <-ctx.Done():
			return
		}
	}
}

func (e *Engine) handleFrame(f fastnet.Frame) {
	if e.metrics != nil {
		e.metrics.FramesDecoded.Inc()
	}
	e.logger.Debug("frame",
		"to", registry.AddressName(f.To), "from", registry.AddressName(f.From),
		"command", registry.CommandName(f.Command), "body", textutil.EscapeControl(f.Body))

	var updates []fastnet.ChannelUpdate
	switch f.Command {
	case registry.CommandBroadcast:
		var err error
		updates, err = fastnet.DecodeBroadcastBody(f.Body)
		if err != nil {
			e.logger.Warn("broadcast frame decode error", "err", err, "body", textutil.EscapeControl(f.Body))
		}
	case registry.CommandASCII:
		update, err := fastnet.DecodeASCIIBody(f.Body)
		if err != nil {
			e.logger.Warn("ascii frame decode error", "err", err, "body", textutil.EscapeControl(f.Body))
			return
		}
		updates = []fastnet.ChannelUpdate{update}
	case registry.CommandKeepAlive, registry.CommandLightIntensity:
		// no channel payload to project
	default:
		e.logger.Debug("ignoring unrecognized command", "command", f.Command)
	}

	now := f.Time
	if now.IsZero() {
		now = time.Now()
	}
	for _, u := range updates {
		e.store.Put(fastnet.LiveRecord{ChannelID: u.ChannelID, Value: u.Value, Timestamp: now})
		e.trigger.Dispatch(u.ChannelID)
	}
}
