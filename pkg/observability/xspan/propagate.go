package xspan

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/metadata"
)

// =============================================================================
// 追踪上下文注入
// =============================================================================

// InjectHTTPHeader 将 span 的追踪上下文注入到出站请求的 Header。
//
// 前置条件：span 与 headers 均不可为 nil，违反时返回
// ErrNilSpan/ErrNilHeaders（调用方错误，不应重试）。
//
// 行为：
//   - 传播策略对未配置时静默跳过，返回 nil
//   - span 不携带有效 SpanContext（no-op 哨兵 span）时跳过，
//     此时没有可传播的上下文
//   - 其余情况序列化追踪上下文并原地写入 headers
func (a *Adapter) InjectHTTPHeader(span trace.Span, headers http.Header) error {
	if span == nil {
		return ErrNilSpan
	}
	if headers == nil {
		return ErrNilHeaders
	}
	if !a.propagationEnabled() {
		return nil
	}
	a.inject(span, a.carrier(headers))
	return nil
}

// InjectGRPCMetadata 将 span 的追踪上下文注入到出站 gRPC metadata。
// 契约与 InjectHTTPHeader 一致；md 为 nil 时返回 ErrNilMetadata。
func (a *Adapter) InjectGRPCMetadata(span trace.Span, md metadata.MD) error {
	if span == nil {
		return ErrNilSpan
	}
	if md == nil {
		return ErrNilMetadata
	}
	if !a.propagationEnabled() {
		return nil
	}
	a.inject(span, metadataCarrier(md))
	return nil
}

// inject 通过配置的传播格式写入载体。
// 调用方保证传播策略对已配置。
func (a *Adapter) inject(span trace.Span, carrier propagation.TextMapCarrier) {
	if !span.SpanContext().IsValid() {
		return
	}
	ctx := trace.ContextWithSpan(context.Background(), span)
	a.format.Inject(ctx, carrier)
}

// =============================================================================
// gRPC metadata 载体
// =============================================================================

// metadataCarrier 将 metadata.MD 适配为 TextMapCarrier。
// metadata.Set 内部会将 key 规范化为小写，符合 gRPC 约定。
type metadataCarrier metadata.MD

func (mc metadataCarrier) Get(key string) string {
	vals := metadata.MD(mc).Get(key)
	if len(vals) == 0 {
		return ""
	}
	return vals[0]
}

func (mc metadataCarrier) Set(key, value string) {
	metadata.MD(mc).Set(key, value)
}

func (mc metadataCarrier) Keys() []string {
	keys := make([]string, 0, len(mc))
	for k := range mc {
		keys = append(keys, k)
	}
	return keys
}

var _ propagation.TextMapCarrier = metadataCarrier{}
