package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP 请求延迟（秒）
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// 认证失败计数
	AuthFailureCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_failure_count",
			Help: "Total number of rejected logins and tokens",
		},
		[]string{"reason"}, // reason: bad_credentials, invalid_token, throttled
	)

	// 记录变更计数
	RecordMutationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "record_mutation_count",
			Help: "Total number of store mutations",
		},
		[]string{"entity", "op"},
	)

	// 内存存储中的记录数量
	StoreRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "store_records",
			Help: "Number of records held in the in-memory store",
		},
		[]string{"entity"},
	)

	// 事件发布失败计数
	EventPublishFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_publish_failure_count",
			Help: "Total number of change events that failed to publish",
		},
		[]string{"routing_key"},
	)
)

// RecordHTTPRequestDuration 记录 HTTP 请求延迟
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// IncrementAuthFailure 增加认证失败计数
func IncrementAuthFailure(reason string) {
	AuthFailureCount.WithLabelValues(reason).Inc()
}

// IncrementMutation 增加记录变更计数
func IncrementMutation(entity, op string) {
	RecordMutationCount.WithLabelValues(entity, op).Inc()
}

// SetStoreRecords 设置实体记录数量
func SetStoreRecords(entity string, n int) {
	StoreRecords.WithLabelValues(entity).Set(float64(n))
}

// IncrementEventPublishFailure 增加事件发布失败计数
func IncrementEventPublishFailure(routingKey string) {
	EventPublishFailures.WithLabelValues(routingKey).Inc()
}
