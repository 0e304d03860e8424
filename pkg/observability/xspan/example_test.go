package xspan_test

import (
	"context"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/trace"

	"github.com/omeyang/xbridge/pkg/observability/xspan"
)

func ExampleEndOptions() {
	fmt.Println(xspan.EndOptions(200).Status)
	fmt.Println(xspan.EndOptions(404).Status)
	fmt.Println(xspan.EndOptions(500).Status)
	fmt.Println(xspan.EndOptions(999).Status)
	fmt.Println(xspan.EndOptions(0).Status)
	// Output:
	// OK
	// NotFound
	// Unavailable
	// Unknown
	// Unknown
}

func ExampleIsSuccess() {
	fmt.Println(xspan.IsSuccess(204))
	fmt.Println(xspan.IsSuccess(301))
	// Output:
	// true
	// false
}

func ExampleAdapter_InjectHTTPHeader() {
	traceID, _ := trace.TraceIDFromHex("0af7651916cd43dd8448eb211c80319c")
	spanID, _ := trace.SpanIDFromHex("b7ad6b7169203331")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))
	span := trace.SpanFromContext(ctx)

	adapter := xspan.New()
	h := http.Header{}
	_ = adapter.InjectHTTPHeader(span, h)

	fmt.Println(h.Get("traceparent"))
	// Output:
	// 00-0af7651916cd43dd8448eb211c80319c-b7ad6b7169203331-01
}

func ExampleAdapter_Tracer() {
	adapter := xspan.New()

	// 未安装追踪 SDK 时返回 no-op tracer，直接可用
	_, span := adapter.Tracer().Start(context.Background(), "GET")
	defer span.End()

	fmt.Println(span.SpanContext().IsValid())
	// Output:
	// false
}
