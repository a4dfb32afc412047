package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	sectionStartedTotal   atomic.Uint64
	sectionCompletedTotal atomic.Uint64
	sectionEmptyTotal     atomic.Uint64
	sectionFailedTotal    atomic.Uint64
	documentSkippedTotal  atomic.Uint64

	sectionDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncSectionStarted increments the started counter.
func IncSectionStarted() {
	sectionStartedTotal.Add(1)
}

// IncSectionCompleted increments the completed counter.
func IncSectionCompleted() {
	sectionCompletedTotal.Add(1)
}

// IncSectionEmpty increments the empty-outcome counter.
func IncSectionEmpty() {
	sectionEmptyTotal.Add(1)
}

// IncSectionFailed increments the failed counter.
func IncSectionFailed() {
	sectionFailedTotal.Add(1)
}

// IncDocumentSkipped increments the skipped-document counter.
func IncDocumentSkipped() {
	documentSkippedTotal.Add(1)
}

// ObserveSectionDurationMs records a section run duration in milliseconds.
func ObserveSectionDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	sectionDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "section_started_total", "Total report sections started", sectionStartedTotal.Load())
	writeCounter(&buf, "section_completed_total", "Total report sections completed", sectionCompletedTotal.Load())
	writeCounter(&buf, "section_empty_total", "Total report sections with empty outcome", sectionEmptyTotal.Load())
	writeCounter(&buf, "section_failed_total", "Total report sections failed", sectionFailedTotal.Load())
	writeCounter(&buf, "document_skipped_total", "Total source documents skipped during extraction", documentSkippedTotal.Load())
	writeHistogram(&buf, "section_duration_ms", "Section run duration in milliseconds", sectionDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
