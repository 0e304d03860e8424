package xspan

import "go.opentelemetry.io/otel/propagation"

// SetDiscoverFormat 替换传播格式发现函数，返回恢复函数。
// 仅测试使用，用于模拟发现失败的降级路径。
func SetDiscoverFormat(fn func() (propagation.TextMapPropagator, error)) (restore func()) {
	prev := discoverFormat
	discoverFormat = fn
	return func() { discoverFormat = prev }
}
