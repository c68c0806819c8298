// Package router dispatches live channel updates to the NMEA builders that
// depend on them, and forwards whatever sentences those builders produce to
// a Sink. It is the Go equivalent of the original bridge's trigger_functions
// dict plus the try/except wrapped around each call in update_live_data
// (fn2ip.py) -- reimagined as a static table plus a panic-recovery boundary
// around each builder instead of a bare except Exception.
package router

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/solway-marine/fastnetbridge/livestore"
	"github.com/solway-marine/fastnetbridge/nmeaout"
	"github.com/solway-marine/fastnetbridge/registry"
)

// Sink is anything that can accept a finished NMEA sentence. Satisfied by
// udpsink.Sink; kept as an interface here so the router can be tested
// without a real socket.
type Sink interface {
	Send(sentence string) error
}

// Table is the channel id -> builder set mapping from §4.6. A channel absent
// from Table simply triggers nothing -- most raw/telemetry channels exist
// only to be read by other builders, never to trigger one themselves.
var Table = map[byte][]nmeaout.Builder{
	registry.ChannelBoatspeedKnots:         {nmeaout.VHW},
	registry.ChannelDepthMeters:             {nmeaout.DBT},
	registry.ChannelDepthFeet:               {nmeaout.DBT},
	registry.ChannelDepthFathoms:            {nmeaout.DBT},
	registry.ChannelRudderAngle:             {nmeaout.RSA},
	registry.ChannelBatteryVolts:            {nmeaout.XDRBatteryVolts},
	registry.ChannelHeading:                 {nmeaout.HDM, nmeaout.VHW},
	registry.ChannelTrueWindAngle:           {nmeaout.MWVTrue},
	registry.ChannelTrueWindSpeedKnots:      {nmeaout.MWVTrue, nmeaout.MWD},
	registry.ChannelTrueWindDirection:       {nmeaout.MWD},
	registry.ChannelApparentWindAngle:       {nmeaout.MWVRelative},
	registry.ChannelApparentWindSpeedKnots:  {nmeaout.MWVRelative},
	registry.ChannelSeaTemperatureC:         {nmeaout.MTW},
	registry.ChannelSpeedOverGround:         {nmeaout.VTG},
	registry.ChannelCourseOverGroundTrue:    {nmeaout.VTG},
	0xEA:                                    {nmeaout.VTG}, // Course Over Ground (Mag)
	registry.ChannelLatLon:                  {nmeaout.GLL},

	0x52:                          {nmeaout.XDRRawWindAngle},
	0x4E:                          {nmeaout.XDRRawWindSpeed},
	0x83:                          {nmeaout.XDRDrift},
	0x84:                          {nmeaout.XDRSet},
	registry.ChannelBoatspeedRaw:  {nmeaout.XDRRawBoatspeed},
	registry.ChannelHeelAngle:     {nmeaout.XDRRoll},
	registry.ChannelPitch:         {nmeaout.XDRPitch},
}

// TriggerRouter owns the live store, the sink, and the dispatch table.
type TriggerRouter struct {
	store  *livestore.Store
	sink   Sink
	table  map[byte][]nmeaout.Builder
	logger *log.Logger
	sent   prometheus.Counter
}

// New builds a TriggerRouter over the default Table. sent may be nil to
// disable instrumentation.
func New(store *livestore.Store, sink Sink, logger *log.Logger, sent prometheus.Counter) *TriggerRouter {
	if logger == nil {
		logger = log.Default()
	}
	return &TriggerRouter{store: store, sink: sink, table: Table, logger: logger, sent: sent}
}

// Dispatch runs every builder registered for channelID, sending each
// non-empty result to the Sink. A builder that panics is recovered, logged
// at ERROR, and skipped; the remaining builders for this update still run
// (§4.6 fan-out failure policy). A builder returning false (precondition
// unmet) is silently skipped -- the common steady-state case, not logged.
func (r *TriggerRouter) Dispatch(channelID byte) {
	for _, builder := range r.table[channelID] {
		r.runOne(builder)
	}
}

func (r *TriggerRouter) runOne(builder nmeaout.Builder) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("nmea builder panicked", "panic", fmt.Sprint(rec))
		}
	}()

	sentence, ok := builder(r.store)
	if !ok {
		return
	}
	if err := r.sink.Send(sentence); err != nil {
		r.logger.Error("sink send failed", "err", err)
		return
	}
	if r.sent != nil {
		r.sent.Inc()
	}
}
