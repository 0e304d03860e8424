package xspan_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/omeyang/xbridge/pkg/observability/xspan"
)

// =============================================================================
// 构造与选项测试
// =============================================================================

func TestNew_Default(t *testing.T) {
	adapter := xspan.New()

	// 未安装 SDK 时也必须返回可用的 no-op tracer，调用方无需判空
	assert.NotNil(t, adapter.Tracer())
}

func TestNew_NilOption(t *testing.T) {
	assert.NotPanics(t, func() {
		xspan.New(nil)
	})
}

func TestWithTracer(t *testing.T) {
	tracer := noop.NewTracerProvider().Tracer("custom")

	adapter := xspan.New(xspan.WithTracer(tracer))

	assert.Equal(t, tracer, adapter.Tracer())
}

func TestWithTracer_Nil(t *testing.T) {
	adapter := xspan.New(xspan.WithTracer(nil))

	// nil 被忽略，回退默认 tracer
	assert.NotNil(t, adapter.Tracer())
}

func TestWithInstrumentationName(t *testing.T) {
	recorder, provider := newRecordingTracer(t)
	adapter := xspan.New(
		xspan.WithTracerProvider(provider),
		xspan.WithInstrumentationName("my-service/http-client"),
	)

	_, span := adapter.Tracer().Start(context.Background(), "GET")
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "my-service/http-client", ended[0].InstrumentationScope().Name)
}

// =============================================================================
// 传播策略发现降级测试
// =============================================================================

func TestNew_DiscoveryFailure(t *testing.T) {
	restore := xspan.SetDiscoverFormat(func() (propagation.TextMapPropagator, error) {
		return nil, errors.New("no provider installed")
	})
	defer restore()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	_, provider := newRecordingTracer(t)
	adapter := xspan.New(
		xspan.WithTracerProvider(provider),
		xspan.WithLogger(logger),
	)

	// 发现失败不致命：构造成功、传播关闭、警告已记录
	span := realSpan(t, adapter)
	h := http.Header{}
	require.NoError(t, adapter.InjectHTTPHeader(span, h))
	assert.Empty(t, h)
	assert.Contains(t, buf.String(), "propagation disabled")
}

func TestNew_DiscoveryFailure_ExplicitPairStillWorks(t *testing.T) {
	restore := xspan.SetDiscoverFormat(func() (propagation.TextMapPropagator, error) {
		return nil, errors.New("no provider installed")
	})
	defer restore()

	_, provider := newRecordingTracer(t)
	// 显式配置的传播策略对不经过发现，不受发现失败影响
	adapter := xspan.New(
		xspan.WithTracerProvider(provider),
		xspan.WithPropagation(propagation.TraceContext{}, xspan.HeaderCarrier),
	)

	span := realSpan(t, adapter)
	h := http.Header{}
	require.NoError(t, adapter.InjectHTTPHeader(span, h))
	assert.NotEmpty(t, h.Get("traceparent"))
}
