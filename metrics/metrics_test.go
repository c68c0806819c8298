package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersAllInstruments(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.FramesDecoded.Inc()
	m.ChecksumResyncs.WithLabelValues("header checksum mismatch").Inc()
	m.BytesDropped.Add(3)
	m.SentencesSent.Inc()
	m.SinkDropped.Inc()
	m.BufferedBytes.Set(42)

	families, err := reg.Gather()
	require.NoError(t, err)

	byName := map[string]*dto.MetricFamily{}
	for _, f := range families {
		byName[f.GetName()] = f
	}

	assert.Contains(t, byName, "fastnetbridge_frames_decoded_total")
	assert.Contains(t, byName, "fastnetbridge_resync_bytes_total")
	assert.Contains(t, byName, "fastnetbridge_buffer_overflow_bytes_total")
	assert.Contains(t, byName, "fastnetbridge_sentences_sent_total")
	assert.Contains(t, byName, "fastnetbridge_sink_dropped_total")
	assert.Contains(t, byName, "fastnetbridge_frame_buffer_bytes")

	assert.Equal(t, float64(42), byName["fastnetbridge_frame_buffer_bytes"].Metric[0].Gauge.GetValue())
}
