package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ContentReads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "foliocms", Name: "content_reads_total", Help: "Content document reads by type and outcome."},
		[]string{"type", "outcome"},
	)
	ContentWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "foliocms", Name: "content_writes_total", Help: "Content document writes by type and outcome."},
		[]string{"type", "outcome"},
	)
	ImageUploads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "foliocms", Name: "image_uploads_total", Help: "Image uploads by outcome."},
		[]string{"outcome"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "foliocms", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "foliocms", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(ContentReads)
	reg.MustRegister(ContentWrites)
	reg.MustRegister(ImageUploads)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
