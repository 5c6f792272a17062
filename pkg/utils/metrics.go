package utils

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// 직접 등록할 수 있도록 메트릭을 promauto 대신 일반 prometheus로 선언
var (
	// RequestCounter는 총 요청 수를 추적합니다
	RequestCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "utm_http_requests_total",
		Help: "총 HTTP 요청 수",
	}, []string{"method", "path", "status"})

	// ResponseTime은 응답 시간을 측정합니다
	ResponseTime = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "utm_http_response_time_seconds",
		Help:    "HTTP 요청 응답 시간(초)",
		Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"method", "path", "status"})

	// ErrorCounter는 오류 발생 수를 추적합니다
	ErrorCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "utm_error_total",
		Help: "오류 발생 수",
	}, []string{"service", "type"})

	// ChannelCounter는 채널별 분류 횟수를 추적합니다
	ChannelCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "utm_channel_classifications_total",
		Help: "채널별 분류 횟수",
	}, []string{"channel"})

	// SourceCategoryGauge는 로드된 소스 카테고리 항목 수입니다
	SourceCategoryGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "utm_source_categories",
		Help: "로드된 소스 카테고리 항목 수",
	})

	// ServerStatusGauge는 서버 부하/상태/처리 용량을 기록합니다
	ServerStatusGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "utm_server_status",
		Help: "서버 상태 지표 (load, healthy, capacity)",
	}, []string{"server", "metric"})
)

var metricsOnce sync.Once

// InitMetrics는 모든 메트릭을 기본 레지스트리에 등록합니다. 여러 번 호출해도 한 번만 등록됩니다.
func InitMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(ResponseTime)
		prometheus.MustRegister(ErrorCounter)
		prometheus.MustRegister(ChannelCounter)
		prometheus.MustRegister(SourceCategoryGauge)
		prometheus.MustRegister(ServerStatusGauge)

		Info("metrics", "메트릭 초기화 완료")
	})
}

// RecordRequest는 HTTP 요청 수와 응답 시간을 기록합니다
func RecordRequest(method, path, status string, duration float64) {
	RequestCounter.WithLabelValues(method, path, status).Inc()
	ResponseTime.WithLabelValues(method, path, status).Observe(duration)
}

// RecordError는 오류 발생을 기록합니다
func RecordError(service string, errorType string) {
	ErrorCounter.WithLabelValues(service, errorType).Inc()
}

// RecordChannel은 분류된 채널을 기록합니다
func RecordChannel(channel string) {
	ChannelCounter.WithLabelValues(channel).Inc()
}

// SetSourceCategoryCount는 로드된 소스 카테고리 수를 기록합니다
func SetSourceCategoryCount(count int) {
	SourceCategoryGauge.Set(float64(count))
}

// UpdateServerMetric은 서버 상태 지표 하나를 갱신합니다
func UpdateServerMetric(serverName, metric string, value float64) {
	ServerStatusGauge.WithLabelValues(serverName, metric).Set(value)
}
