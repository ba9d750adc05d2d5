// Package promstats exports spmcring statistics as Prometheus metrics.
//
// Counters are read from the ring handles at scrape time, so registering a
// Collector adds nothing to the Write and Read paths.
package promstats

import (
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aradilov/spmcring"
)

var (
	ErrEmptyName       = fmt.Errorf("reader name must not be empty")
	ErrDuplicateReader = fmt.Errorf("reader is already registered")
)

// WriterSource is implemented by *spmcring.Writer.
type WriterSource interface {
	Capacity() int
	Stats() spmcring.WriterStats
}

// ReaderSource is implemented by *spmcring.Reader.
type ReaderSource interface {
	Lag() uint64
	Stats() spmcring.ReaderStats
}

// Collector is a prometheus.Collector for one ring: its writer and any
// number of named readers.
type Collector struct {
	writer WriterSource

	mu      sync.RWMutex
	readers map[string]ReaderSource

	capacity    *prometheus.Desc
	writes      *prometheus.Desc
	writerSpins *prometheus.Desc
	reads       *prometheus.Desc
	lost        *prometheus.Desc
	skipAheads  *prometheus.Desc
	readerSpins *prometheus.Desc
	lag         *prometheus.Desc
}

// NewCollector creates a collector for the ring behind w. ring is attached to
// every metric as a constant "ring" label.
func NewCollector(namespace, ring string, w WriterSource) *Collector {
	labels := prometheus.Labels{"ring": ring}
	desc := func(name, help string, variable ...string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "ring", name), help, variable, labels)
	}

	return &Collector{
		writer:  w,
		readers: make(map[string]ReaderSource),

		capacity:    desc("capacity", "Fixed number of slots in the ring"),
		writes:      desc("writes_total", "Total number of elements published by the writer"),
		writerSpins: desc("writer_spins_total", "Total failed slot guard attempts by the writer"),
		reads:       desc("reads_total", "Total number of reads by result", "reader", "result"),
		lost:        desc("lost_total", "Total number of elements a reader never received", "reader"),
		skipAheads:  desc("skip_aheads_total", "Total number of skip-aheads", "reader"),
		readerSpins: desc("reader_spins_total", "Total failed slot guard attempts by a reader", "reader"),
		lag:         desc("lag", "Published elements not yet consumed by a reader", "reader"),
	}
}

// AddReader starts exporting r under the given reader label.
func (c *Collector) AddReader(name string, r ReaderSource) error {
	if name == "" {
		return ErrEmptyName
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.readers[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateReader, name)
	}
	c.readers[name] = r
	return nil
}

// RemoveReader stops exporting the named reader. Unknown names are ignored.
func (c *Collector) RemoveReader(name string) {
	c.mu.Lock()
	delete(c.readers, name)
	c.mu.Unlock()
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.capacity
	ch <- c.writes
	ch <- c.writerSpins
	ch <- c.reads
	ch <- c.lost
	ch <- c.skipAheads
	ch <- c.readerSpins
	ch <- c.lag
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ws := c.writer.Stats()
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(c.writer.Capacity()))
	ch <- prometheus.MustNewConstMetric(c.writes, prometheus.CounterValue, float64(ws.Writes))
	ch <- prometheus.MustNewConstMetric(c.writerSpins, prometheus.CounterValue, float64(ws.Spins))

	c.mu.RLock()
	defer c.mu.RUnlock()

	for name, r := range c.readers {
		rs := r.Stats()
		ch <- prometheus.MustNewConstMetric(c.reads, prometheus.CounterValue, float64(rs.OK), name, spmcring.OK.String())
		ch <- prometheus.MustNewConstMetric(c.reads, prometheus.CounterValue, float64(rs.Dropouts), name, spmcring.Dropout.String())
		ch <- prometheus.MustNewConstMetric(c.reads, prometheus.CounterValue, float64(rs.Empty), name, spmcring.Empty.String())
		ch <- prometheus.MustNewConstMetric(c.lost, prometheus.CounterValue, float64(rs.Lost), name)
		ch <- prometheus.MustNewConstMetric(c.skipAheads, prometheus.CounterValue, float64(rs.SkipAheads), name)
		ch <- prometheus.MustNewConstMetric(c.readerSpins, prometheus.CounterValue, float64(rs.Spins), name)
		ch <- prometheus.MustNewConstMetric(c.lag, prometheus.GaugeValue, float64(r.Lag()), name)
	}
}
