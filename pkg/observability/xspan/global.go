package xspan

import (
	"net/http"
	"sync"
	"sync/atomic"

	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/metadata"
)

// =============================================================================
// 全局 Adapter
//
// 定位：HTTP 管线等"进程内解析一次、处处复用"的简单场景。
// 需要差异化配置时推荐依赖注入（显式持有 *Adapter）。
// =============================================================================

// globalAdapter 全局 Adapter 实例（并发安全）
var globalAdapter atomic.Pointer[Adapter]

// globalMu 保护 globalOnce 及其 Do 执行（也用于 ResetDefault）
var globalMu sync.Mutex

// globalOnce 确保默认 Adapter 只初始化一次
var globalOnce sync.Once

// defaultAdapter 创建默认 Adapter（惰性初始化）
//
// 设计决策: 在持锁状态下执行 once.Do，确保 ResetDefault（重置 globalOnce）
// 与 once.Do 之间不会发生并发竞争。初始化后 Default() 走 atomic.Load
// 快速路径，不进入此函数。
func defaultAdapter() *Adapter {
	globalMu.Lock()
	defer globalMu.Unlock()

	globalOnce.Do(func() {
		globalAdapter.Store(New())
	})
	return globalAdapter.Load()
}

// Default 返回全局默认 Adapter。
//
// 懒初始化：首次调用时以默认配置构造（全局 TracerProvider、
// 尽力发现的传播策略）。并发安全。
func Default() *Adapter {
	if a := globalAdapter.Load(); a != nil {
		return a
	}
	return defaultAdapter()
}

// SetDefault 替换全局默认 Adapter。
// 用于测试注入或自定义配置场景。传入 nil 时忽略。
func SetDefault(a *Adapter) {
	if a == nil {
		return
	}
	globalMu.Lock()
	defer globalMu.Unlock()
	// 标记已初始化，避免后续 Default() 再次触发惰性构造覆盖
	globalOnce.Do(func() {})
	globalAdapter.Store(a)
}

// ResetDefault 重置全局 Adapter 为未初始化状态。
// 下次 Default() 将重新执行默认构造。主要用于测试清理。
func ResetDefault() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalOnce = sync.Once{}
	globalAdapter.Store(nil)
}

// =============================================================================
// 包级代理函数
// =============================================================================

// Tracer 返回全局 Adapter 的 tracer 句柄。
func Tracer() trace.Tracer {
	return Default().Tracer()
}

// InjectHTTPHeader 通过全局 Adapter 注入追踪上下文到 HTTP Header。
func InjectHTTPHeader(span trace.Span, headers http.Header) error {
	return Default().InjectHTTPHeader(span, headers)
}

// InjectGRPCMetadata 通过全局 Adapter 注入追踪上下文到 gRPC metadata。
func InjectGRPCMetadata(span trace.Span, md metadata.MD) error {
	return Default().InjectGRPCMetadata(span, md)
}

// LogSentMessageEvent 通过全局 Adapter 记录请求发送事件。
func LogSentMessageEvent(span trace.Span, size int64) error {
	return Default().LogSentMessageEvent(span, size)
}

// LogReceivedMessageEvent 通过全局 Adapter 记录响应接收事件。
func LogReceivedMessageEvent(span trace.Span, size int64) error {
	return Default().LogReceivedMessageEvent(span, size)
}

// EndSpan 通过全局 Adapter 应用结束状态并结束 span。
func EndSpan(span trace.Span, opts EndSpanOptions) {
	Default().EndSpan(span, opts)
}
