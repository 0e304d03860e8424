package xspan

import (
	"net/http"

	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/codes"
)

// =============================================================================
// Span 结束状态映射
// =============================================================================

// EndSpanOptions 描述如何结束一个 HTTP 请求对应的 span。
type EndSpanOptions struct {
	// Status 映射后的标准化状态码（gRPC 状态码词汇表）。
	Status codes.Code

	// Sampled 是否采样。当前实现恒为 true：始终采样，由后端决定是否导出。
	Sampled bool
}

// statusByCode HTTP 状态码到标准化状态码的直接查表。
var statusByCode = map[int]codes.Code{
	http.StatusBadRequest:          codes.InvalidArgument,
	http.StatusUnauthorized:        codes.Unauthenticated,
	http.StatusForbidden:           codes.PermissionDenied,
	http.StatusNotFound:            codes.NotFound,
	http.StatusPreconditionFailed:  codes.FailedPrecondition,
	http.StatusInternalServerError: codes.Unavailable,
}

// IsSuccess 判断 HTTP 状态码是否为成功（常规 2xx 区间）。
func IsSuccess(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}

// EndOptions 根据 HTTP 状态码返回最合适的 EndSpanOptions。
//
// statusCode <= 0 表示未收到有效响应（请求未发出或传输层失败），
// 映射为 Unknown。纯函数：对任意整数输入确定且不会失败。
func EndOptions(statusCode int) EndSpanOptions {
	opts := EndSpanOptions{Sampled: true}
	switch {
	case statusCode <= 0:
		opts.Status = codes.Unknown
	case IsSuccess(statusCode):
		opts.Status = codes.OK
	default:
		status, ok := statusByCode[statusCode]
		if !ok {
			status = codes.Unknown
		}
		opts.Status = status
	}
	return opts
}

// EndSpan 将 EndSpanOptions 应用到 span 并结束它。
//
// OTel 的 span 状态只有 Ok/Error 两档，映射后的细分状态码以
// 状态描述的形式保留（如 "NotFound"）。span 为 nil 时为空操作，
// 便于管线在未建立 span 的错误路径上无条件调用。
func (a *Adapter) EndSpan(span trace.Span, opts EndSpanOptions) {
	if span == nil {
		return
	}
	if opts.Status == codes.OK {
		span.SetStatus(otelcodes.Ok, "")
	} else {
		span.SetStatus(otelcodes.Error, opts.Status.String())
	}
	span.End()
}
