// Package metrics 提供基于Prometheus的指标收集
//
// 指标类型速查：
//   - Counter：只增不减的累计值（请求总数、订单总数）
//   - Gauge：可增可减的瞬时值（处理中的请求数）
//   - Histogram：观测值分布，自动算分位数（请求耗时、结算耗时）
//
// 命名规范：
//   - Counter以_total结尾
//   - Histogram以单位结尾（_seconds）
//   - 标签只用有限取值的维度（method/path/status），
//     不要把username之类的高基数值当标签
//
// 使用方式：启动时调用一次InitMetrics()，
// gin侧挂/metrics端点由Prometheus抓取
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化（防止重复注册）
	initialized bool

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（路由模板）、status（200/500）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 结算业务指标

	// CheckoutTotal 结算总数（Counter）
	// 标签：result（success/insufficient_stock/empty_cart/failure）
	CheckoutTotal *prometheus.CounterVec

	// CheckoutDuration 结算耗时（Histogram）
	// 包含加锁、建单、扣库存、清空购物车的完整事务
	CheckoutDuration prometheus.Histogram

	// CheckoutAmount 订单金额分布（Histogram，单位元）
	CheckoutAmount prometheus.Histogram

	// 搜索指标

	// SearchTotal 图书搜索总数（Counter）
	// 标签：sort（none/publication_date/score/trusted_score）
	SearchTotal *prometheus.CounterVec

	// SearchDuration 搜索耗时（Histogram）
	SearchDuration prometheus.Histogram

	// DegreeSearchTotal 度分离搜索总数（Counter）
	// 标签：degree（1/2）
	DegreeSearchTotal *prometheus.CounterVec

	// 缓存指标

	// CacheRequestsTotal 热销榜缓存请求总数（Counter）
	// 标签：result（hit/miss）
	CacheRequestsTotal *prometheus.CounterVec

	// 消息队列指标

	// MessagesPublishedTotal 消息发布总数（Counter）
	// 标签：exchange（交换机）、routing_key（路由键）
	MessagesPublishedTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
//
// 必须在程序启动时调用一次，注册指标到全局Registry
func InitMetrics() {
	// 防止重复初始化
	if initialized {
		return
	}
	initialized = true

	// HTTP请求指标
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP请求耗时（秒）",
			// 1ms到10s，覆盖大部分请求
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	// 结算指标
	CheckoutTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_total",
			Help: "结算总数",
		},
		[]string{"result"},
	)

	CheckoutDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "checkout_duration_seconds",
			Help: "结算事务耗时（秒）",
			// 结算涉及行锁竞争，桶放宽到10s
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		},
	)

	CheckoutAmount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "checkout_amount_yuan",
			Help:    "订单金额分布（元）",
			Buckets: []float64{10, 50, 100, 300, 500, 1000, 5000},
		},
	)

	// 搜索指标
	SearchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "book_search_total",
			Help: "图书搜索总数",
		},
		[]string{"sort"},
	)

	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "book_search_duration_seconds",
			Help:    "图书搜索耗时（秒）",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5},
		},
	)

	DegreeSearchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "degree_search_total",
			Help: "度分离搜索总数",
		},
		[]string{"degree"},
	)

	// 缓存指标
	CacheRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ranking_cache_requests_total",
			Help: "热销榜缓存请求总数",
		},
		[]string{"result"},
	)

	// 消息队列指标
	MessagesPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "messages_published_total",
			Help: "消息发布总数",
		},
		[]string{"exchange", "routing_key"},
	)
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}

// ObserveHistogram 记录Histogram观测值
func ObserveHistogram(histogram prometheus.Histogram, value float64) {
	histogram.Observe(value)
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}
