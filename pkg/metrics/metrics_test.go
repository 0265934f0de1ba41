package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// TestInitMetrics 测试指标初始化
func TestInitMetrics(t *testing.T) {
	InitMetrics()

	if HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal未初始化")
	}
	if HTTPRequestDuration == nil {
		t.Error("HTTPRequestDuration未初始化")
	}
	if HTTPRequestsInProgress == nil {
		t.Error("HTTPRequestsInProgress未初始化")
	}
	if CheckoutTotal == nil {
		t.Error("CheckoutTotal未初始化")
	}
	if SearchTotal == nil {
		t.Error("SearchTotal未初始化")
	}
	if CacheRequestsTotal == nil {
		t.Error("CacheRequestsTotal未初始化")
	}

	// 重复调用不应panic(promauto重复注册会panic,靠initialized拦截)
	InitMetrics()
}

// TestCounterVec 测试带标签的Counter
func TestCounterVec(t *testing.T) {
	InitMetrics()

	IncCounterVec(CheckoutTotal, map[string]string{"result": "success"})
	IncCounterVec(CheckoutTotal, map[string]string{"result": "success"})
	IncCounterVec(CheckoutTotal, map[string]string{"result": "insufficient_stock"})

	value := getCounterVecValue(t, CheckoutTotal, map[string]string{"result": "success"})
	if value != 2 {
		t.Errorf("CounterVec值错误: expected=2, got=%f", value)
	}
}

// TestGauge 测试Gauge递增递减
func TestGauge(t *testing.T) {
	InitMetrics()

	before := getGaugeValue(t, HTTPRequestsInProgress)

	IncGauge(HTTPRequestsInProgress)
	IncGauge(HTTPRequestsInProgress)
	DecGauge(HTTPRequestsInProgress)

	after := getGaugeValue(t, HTTPRequestsInProgress)
	if after-before != 1 {
		t.Errorf("Gauge净增量错误: expected=1, got=%f", after-before)
	}
}

// TestHistogram 测试Histogram观测
func TestHistogram(t *testing.T) {
	InitMetrics()

	ObserveHistogram(CheckoutDuration, 0.05)
	ObserveHistogram(CheckoutDuration, 0.5)
	ObserveHistogram(CheckoutDuration, 1.0)

	count, sum := getHistogramStats(t, CheckoutDuration)
	if count != 3 {
		t.Errorf("Histogram观测次数错误: expected=3, got=%d", count)
	}
	if sum < 1.54 || sum > 1.56 {
		t.Errorf("Histogram总和错误: expected=1.55, got=%f", sum)
	}
}

// 辅助函数：获取CounterVec值
func getCounterVecValue(t *testing.T, counterVec *prometheus.CounterVec, labels map[string]string) float64 {
	var metric dto.Metric
	if err := counterVec.With(labels).Write(&metric); err != nil {
		t.Fatalf("读取CounterVec值失败: %v", err)
	}
	return metric.Counter.GetValue()
}

// 辅助函数：获取Gauge值
func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	var metric dto.Metric
	if err := gauge.Write(&metric); err != nil {
		t.Fatalf("读取Gauge值失败: %v", err)
	}
	return metric.Gauge.GetValue()
}

// 辅助函数：获取Histogram观测次数和总和
func getHistogramStats(t *testing.T, histogram prometheus.Histogram) (uint64, float64) {
	var metric dto.Metric
	if err := histogram.Write(&metric); err != nil {
		t.Fatalf("读取Histogram值失败: %v", err)
	}
	return metric.Histogram.GetSampleCount(), metric.Histogram.GetSampleSum()
}
