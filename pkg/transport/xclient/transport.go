package xclient

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/omeyang/xbridge/pkg/observability/xspan"
)

const (
	defaultInstrumentationName = "github.com/omeyang/xbridge/xclient"

	// HeaderRequestID 请求 ID Header 名称（兼容常见实现）。
	HeaderRequestID = "X-Request-ID"

	metricClientRequests = "xbridge.client.requests"
	metricClientDuration = "xbridge.client.duration"
)

// =============================================================================
// 选项配置
// =============================================================================

// SpanNamer 根据请求生成 span 名称。
type SpanNamer func(req *http.Request) string

// defaultSpanNamer 默认以请求方法命名 client span。
// 不使用 URL 路径，避免高基数 span 名称。
func defaultSpanNamer(req *http.Request) string {
	return req.Method
}

type transportConfig struct {
	base          http.RoundTripper
	adapter       *xspan.Adapter
	spanNamer     SpanNamer
	requestID     bool
	meterProvider metric.MeterProvider
}

// Option 定义 Transport 的配置选项。
type Option func(*transportConfig)

// WithBase 设置底层 RoundTripper，默认 http.DefaultTransport。
func WithBase(base http.RoundTripper) Option {
	return func(cfg *transportConfig) {
		if base != nil {
			cfg.base = base
		}
	}
}

// WithAdapter 设置追踪适配器，默认使用 xspan.Default()。
func WithAdapter(adapter *xspan.Adapter) Option {
	return func(cfg *transportConfig) {
		if adapter != nil {
			cfg.adapter = adapter
		}
	}
}

// WithSpanNamer 设置 span 命名函数。
func WithSpanNamer(namer SpanNamer) Option {
	return func(cfg *transportConfig) {
		if namer != nil {
			cfg.spanNamer = namer
		}
	}
}

// WithRequestID 设置是否在请求缺失 X-Request-ID 时自动补一个 UUID。
// 默认关闭。已有 Header 的请求不会被覆盖。
func WithRequestID(enabled bool) Option {
	return func(cfg *transportConfig) {
		cfg.requestID = enabled
	}
}

// WithMeterProvider 设置 MeterProvider 并启用请求指标
// （请求计数与耗时直方图）。默认不记录指标。
func WithMeterProvider(provider metric.MeterProvider) Option {
	return func(cfg *transportConfig) {
		if provider != nil {
			cfg.meterProvider = provider
		}
	}
}

// =============================================================================
// Transport
// =============================================================================

// Transport 带链路追踪的 http.RoundTripper。
// 构造后只读，可被任意多个 goroutine 并发使用。
type Transport struct {
	base      http.RoundTripper
	adapter   *xspan.Adapter
	spanNamer SpanNamer
	requestID bool

	// requests/duration 仅在配置了 MeterProvider 时非 nil。
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

// New 创建 Transport。
// 仅指标创建可能失败；未启用指标时 New 不会返回错误。
func New(opts ...Option) (*Transport, error) {
	cfg := &transportConfig{
		base:      http.DefaultTransport,
		spanNamer: defaultSpanNamer,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.adapter == nil {
		cfg.adapter = xspan.Default()
	}

	t := &Transport{
		base:      cfg.base,
		adapter:   cfg.adapter,
		spanNamer: cfg.spanNamer,
		requestID: cfg.requestID,
	}

	if cfg.meterProvider != nil {
		meter := cfg.meterProvider.Meter(defaultInstrumentationName)

		requests, err := meter.Int64Counter(
			metricClientRequests,
			metric.WithDescription("total outbound HTTP requests"),
			metric.WithUnit("1"),
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCreateCounter, err)
		}

		duration, err := meter.Float64Histogram(
			metricClientDuration,
			metric.WithDescription("outbound HTTP request duration"),
			metric.WithUnit("s"),
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCreateHistogram, err)
		}

		t.requests = requests
		t.duration = duration
	}

	return t, nil
}

// RoundTrip 执行带追踪的 HTTP 请求。
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx, span := t.adapter.Tracer().Start(req.Context(), t.spanNamer(req),
		trace.WithSpanKind(trace.SpanKindClient))

	// 克隆后再改 Header，不触碰调用方持有的请求
	req = req.Clone(ctx)
	if t.requestID && req.Header.Get(HeaderRequestID) == "" {
		req.Header.Set(HeaderRequestID, uuid.NewString())
	}

	// span 与 Header 在此处必然非 nil，前置条件错误不可能发生
	_ = t.adapter.InjectHTTPHeader(span, req.Header)
	_ = t.adapter.LogSentMessageEvent(span, bodySize(req.ContentLength))

	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		// 未收到响应，以 Unknown 结束
		t.adapter.EndSpan(span, xspan.EndOptions(0))
		t.record(req, 0, time.Since(start))
		return nil, err
	}

	_ = t.adapter.LogReceivedMessageEvent(span, bodySize(resp.ContentLength))
	t.adapter.EndSpan(span, xspan.EndOptions(resp.StatusCode))
	t.record(req, resp.StatusCode, time.Since(start))
	return resp, nil
}

// bodySize 将未知长度（-1）归一化为 0。
func bodySize(contentLength int64) int64 {
	if contentLength < 0 {
		return 0
	}
	return contentLength
}

// record 记录请求指标。未启用指标时为空操作。
func (t *Transport) record(req *http.Request, statusCode int, elapsed time.Duration) {
	if t.requests == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("http.request.method", req.Method),
		attribute.Int("http.response.status_code", statusCode),
	)
	t.requests.Add(req.Context(), 1, attrs)
	t.duration.Record(req.Context(), elapsed.Seconds(), attrs)
}

var _ http.RoundTripper = (*Transport)(nil)
