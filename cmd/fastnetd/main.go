// Command fastnetd bridges a Fastnet marine instrument bus to NMEA-0183,
// broadcasting decoded sentences over UDP.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	flag "github.com/spf13/pflag"

	"github.com/solway-marine/fastnetbridge/bytesource"
	"github.com/solway-marine/fastnetbridge/engine"
	"github.com/solway-marine/fastnetbridge/livestore"
	"github.com/solway-marine/fastnetbridge/livetable"
	"github.com/solway-marine/fastnetbridge/metrics"
	"github.com/solway-marine/fastnetbridge/router"
	"github.com/solway-marine/fastnetbridge/udpsink"
)

func main() {
	serialDevice := flag.String("serial", "", "serial device to read the Fastnet bus from (e.g. /dev/ttyUSB0)")
	replayFile := flag.String("file", "", "hex-text capture file to replay instead of a live serial device")
	udpPort := flag.Int("udp-port", 2002, "UDP port to broadcast NMEA sentences on")
	logLevel := flag.String("log-level", "INFO", "log level: DEBUG, INFO, WARNING, ERROR, CRITICAL")
	metricsAddr := flag.String("metrics-addr", "", "if set, serve Prometheus metrics on this address (e.g. :9090)")
	liveData := flag.Bool("live-data", false, "show a periodically refreshed live channel-value table in the terminal")
	flag.Parse()

	logger := log.New(os.Stderr)
	logger.SetLevel(parseLevel(*logLevel))
	logger = logger.With("run_id", uuid.NewString())

	if (*serialDevice == "") == (*replayFile == "") {
		logger.Error("exactly one of --serial or --file is required")
		os.Exit(1)
	}

	var source bytesource.ByteSource
	if *serialDevice != "" {
		source = bytesource.NewSerialSource(*serialDevice)
	} else {
		source = bytesource.NewFileSource(*replayFile)
	}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	if *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				logger.Error("metrics server stopped", "err", err)
			}
		}()
	}

	sink, err := udpsink.New(*udpPort, logger, m.SinkDropped)
	if err != nil {
		logger.Error("opening udp sink failed", "err", err)
		os.Exit(1)
	}
	defer sink.Close()

	store := livestore.New()
	trigger := router.New(store, sink, logger, m.SentencesSent)
	eng := engine.New(source, store, trigger, logger, m)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if *liveData {
		table, err := livetable.New(store)
		if err != nil {
			logger.Error("starting live-data table failed", "err", err)
			os.Exit(1)
		}
		go func() {
			if err := eng.Run(ctx); err != nil {
				logger.Error("pipeline stopped", "err", err)
			}
			cancel()
		}()
		if err := table.Run(ctx); err != nil {
			logger.Error("live-data table stopped", "err", err)
		}
		return
	}

	if err := eng.Run(ctx); err != nil {
		logger.Error("pipeline stopped", "err", err)
		os.Exit(1)
	}
}

func parseLevel(s string) log.Level {
	switch s {
	case "DEBUG":
		return log.DebugLevel
	case "INFO":
		return log.InfoLevel
	case "WARNING", "WARN":
		return log.WarnLevel
	case "ERROR":
		return log.ErrorLevel
	case "CRITICAL", "FATAL":
		return log.FatalLevel
	default:
		fmt.Fprintf(os.Stderr, "unknown log level %q, defaulting to INFO\n", s)
		return log.InfoLevel
	}
}
