package v1

import (
	"net/http"
	"strconv"
	"time"

	"github.com/kurochkinivan/voicebot/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	gatherer prometheus.Gatherer
	requests *prometheus.CounterVec
	latency  prometheus.Histogram
	stages   *prometheus.HistogramVec
	keywords prometheus.Counter
}

func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		gatherer: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "voicebot",
			Name:      "transcribe_requests_total",
			Help:      "Transcription requests by response status code.",
		}, []string{"code"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "voicebot",
			Name:      "transcribe_request_duration_seconds",
			Help:      "End-to-end transcription request latency.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
		stages: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "voicebot",
			Name:      "transcribe_stage_duration_seconds",
			Help:      "Duration of conversion, recognition and keyword detection.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 9),
		}, []string{"stage"}),
		keywords: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voicebot",
			Name:      "detected_keywords_total",
			Help:      "Keywords detected across all transcriptions.",
		}),
	}

	reg.MustRegister(m.requests, m.latency, m.stages, m.keywords)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) observeRequest(status int, elapsed time.Duration, t *domain.Transcription) {
	if m == nil {
		return
	}

	m.requests.WithLabelValues(strconv.Itoa(status)).Inc()
	m.latency.Observe(elapsed.Seconds())

	if t == nil {
		return
	}

	m.stages.WithLabelValues("conversion").Observe(t.Timings.ConversionSec)
	m.stages.WithLabelValues("asr").Observe(t.Timings.ASRSec)
	m.stages.WithLabelValues("keywords").Observe(t.Timings.KeywordSec)
	m.keywords.Add(float64(len(t.Keywords)))
}
