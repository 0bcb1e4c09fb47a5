// Package metrics exposes Prometheus counters for bi5 decoding.
//
// A Collector owns its own registry, so several decoders in one process never
// collide on metric names and nothing is registered globally. All methods are
// safe on a nil *Collector, which lets library code observe unconditionally.
package metrics

import (
	"time"

	"github.com/arloliu/bi5/errs"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "bi5"

// Collector holds the decode metrics of one or more Bi5 walks.
type Collector struct {
	registry *prometheus.Registry

	FilesDecoded      prometheus.Counter
	TicksDecoded      prometheus.Counter
	RawBytes          prometheus.Counter
	DecompressedBytes prometheus.Counter
	DecodeErrors      *prometheus.CounterVec // labels: kind
	DecodeDuration    prometheus.Histogram
}

// NewCollector creates a Collector with a private registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		FilesDecoded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "files_decoded_total",
			Help:      "Total tick files decoded successfully",
		}),
		TicksDecoded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_decoded_total",
			Help:      "Total tick records decoded",
		}),
		RawBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "raw_bytes_total",
			Help:      "Total compressed bytes read from tick files",
		}),
		DecompressedBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decompressed_bytes_total",
			Help:      "Total record payload bytes produced by decompression",
		}),
		DecodeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decode_errors_total",
			Help:      "Tick file failures by error kind",
		}, []string{"kind"}),
		DecodeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "file_decode_duration_seconds",
			Help:      "Time to read, decompress and decode one tick file",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
	}

	c.registry.MustRegister(
		c.FilesDecoded,
		c.TicksDecoded,
		c.RawBytes,
		c.DecompressedBytes,
		c.DecodeErrors,
		c.DecodeDuration,
	)

	return c
}

// Registry returns the collector's registry, e.g. for promhttp.HandlerFor.
func (c *Collector) Registry() *prometheus.Registry {
	if c == nil {
		return nil
	}

	return c.registry
}

// ObserveFile records one successfully decoded file.
func (c *Collector) ObserveFile(rawBytes, decompressedBytes, ticks int, elapsed time.Duration) {
	if c == nil {
		return
	}

	c.FilesDecoded.Inc()
	c.TicksDecoded.Add(float64(ticks))
	c.RawBytes.Add(float64(rawBytes))
	c.DecompressedBytes.Add(float64(decompressedBytes))
	c.DecodeDuration.Observe(elapsed.Seconds())
}

// ObserveError records a failed file under the taxonomy kind of err.
func (c *Collector) ObserveError(err error) {
	if c == nil || err == nil {
		return
	}

	c.DecodeErrors.WithLabelValues(errs.KindOf(err).String()).Inc()
}

// WriteTextfile writes all metrics to path in the node-exporter textfile format.
//
// The file is written to a temporary sibling first and renamed into place.
func (c *Collector) WriteTextfile(path string) error {
	if c == nil {
		return nil
	}

	return prometheus.WriteToTextfile(path, c.registry)
}
