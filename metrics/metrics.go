// Package metrics exposes the bridge's internal counters as Prometheus
// metrics, grounded on the exporter pattern in cmd/exporter_example1 (a
// custom collector registered against a prometheus.Registry and served via
// promhttp.Handler): a handful of plain Counter/Gauge instruments registered
// once at startup, with no custom Collector needed since nothing here is
// computed lazily from an external source.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics groups every counter/gauge the pipeline updates as it runs.
type Metrics struct {
	FramesDecoded   prometheus.Counter
	ChecksumResyncs *prometheus.CounterVec
	BytesDropped    prometheus.Counter
	SentencesSent   prometheus.Counter
	SinkDropped     prometheus.Counter
	BufferedBytes   prometheus.Gauge
}

// New creates and registers a Metrics set against reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		FramesDecoded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fastnetbridge",
			Name:      "frames_decoded_total",
			Help:      "Number of frames successfully checksum-validated and decoded.",
		}),
		ChecksumResyncs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fastnetbridge",
			Name:      "resync_bytes_total",
			Help:      "Number of bytes discarded while resynchronizing, by reason.",
		}, []string{"reason"}),
		BytesDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fastnetbridge",
			Name:      "buffer_overflow_bytes_total",
			Help:      "Number of bytes dropped because the frame buffer exceeded its soft cap.",
		}),
		SentencesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fastnetbridge",
			Name:      "sentences_sent_total",
			Help:      "Number of NMEA sentences broadcast over UDP.",
		}),
		SinkDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fastnetbridge",
			Name:      "sink_dropped_total",
			Help:      "Number of NMEA sentences dropped because the sink's outbound queue was full.",
		}),
		BufferedBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "fastnetbridge",
			Name:      "frame_buffer_bytes",
			Help:      "Current size of the frame buffer's internal backlog.",
		}),
	}
	reg.MustRegister(m.FramesDecoded, m.ChecksumResyncs, m.BytesDropped, m.SentencesSent, m.SinkDropped, m.BufferedBytes)
	return m
}
