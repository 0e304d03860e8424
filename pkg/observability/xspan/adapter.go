package xspan

import (
	"log/slog"
	"net/http"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName OTel instrumentation 名称。
const instrumentationName = "github.com/omeyang/xbridge/xspan"

// =============================================================================
// 传播策略
// =============================================================================

// CarrierFunc 将 HTTP Header 适配为传播写入载体。
// 与 TextMapPropagator 成对配置：两者同时存在时传播启用，否则注入为空操作。
type CarrierFunc func(h http.Header) propagation.TextMapCarrier

// HeaderCarrier 默认的 CarrierFunc，基于 OTel 标准的 HeaderCarrier。
func HeaderCarrier(h http.Header) propagation.TextMapCarrier {
	return propagation.HeaderCarrier(h)
}

// discoverFormat 传播格式的发现函数。
// 包级变量以便白盒测试注入失败场景（见 export_test.go）。
var discoverFormat = defaultDiscover

// defaultDiscover 尽力发现默认传播格式。
// 优先使用全局注册的 propagator（已配置 OTel SDK 的进程），
// 未注册时回退到 W3C Trace Context。
func defaultDiscover() (propagation.TextMapPropagator, error) {
	if p := otel.GetTextMapPropagator(); len(p.Fields()) > 0 {
		return p, nil
	}
	return propagation.TraceContext{}, nil
}

// =============================================================================
// 选项配置
// =============================================================================

type adapterConfig struct {
	instrumentationName string
	tracerProvider      trace.TracerProvider
	tracer              trace.Tracer
	format              propagation.TextMapPropagator
	carrier             CarrierFunc
	propagationDisabled bool
	logger              *slog.Logger
}

// Option 定义 Adapter 的配置选项。
type Option func(*adapterConfig)

// WithInstrumentationName 设置 OTel instrumentation 名称。
// 仅在未通过 WithTracer 显式注入 tracer 时生效。
func WithInstrumentationName(name string) Option {
	return func(cfg *adapterConfig) {
		if name != "" {
			cfg.instrumentationName = name
		}
	}
}

// WithTracer 设置 tracer 句柄，优先于 WithTracerProvider。
func WithTracer(tracer trace.Tracer) Option {
	return func(cfg *adapterConfig) {
		if tracer != nil {
			cfg.tracer = tracer
		}
	}
}

// WithTracerProvider 设置 TracerProvider。
// 默认使用全局 Provider；未安装 SDK 时 OTel 返回 no-op tracer，
// 调用方永远不需要判空。
func WithTracerProvider(provider trace.TracerProvider) Option {
	return func(cfg *adapterConfig) {
		if provider != nil {
			cfg.tracerProvider = provider
		}
	}
}

// WithPropagation 同时设置传播格式与载体适配函数。
//
// 设计决策: 格式与载体必须成对生效，任意一方为 nil 时整个选项被忽略，
// 保证 Adapter 内部不会出现"只有一半传播策略"的状态。
func WithPropagation(format propagation.TextMapPropagator, carrier CarrierFunc) Option {
	return func(cfg *adapterConfig) {
		if format != nil && carrier != nil {
			cfg.format = format
			cfg.carrier = carrier
		}
	}
}

// WithPropagationDisabled 显式关闭传播。
// 关闭后 InjectHTTPHeader/InjectGRPCMetadata 为静默空操作。
func WithPropagationDisabled() Option {
	return func(cfg *adapterConfig) {
		cfg.propagationDisabled = true
		cfg.format = nil
		cfg.carrier = nil
	}
}

// WithLogger 设置结构化日志 Logger，默认 slog.Default()。
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *adapterConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// =============================================================================
// Adapter
// =============================================================================

// Adapter 桥接 HTTP 客户端管线与 OpenTelemetry 追踪。
//
// 所有字段构造后只读（replace-only），除事件 ID 计数器外无可变状态，
// 可安全地被任意多个 goroutine 并发使用。
type Adapter struct {
	tracer  trace.Tracer
	format  propagation.TextMapPropagator
	carrier CarrierFunc
	logger  *slog.Logger

	// ids 消息事件 ID 生成器，从 0 开始原子自增。
	// ID 仅保证全局唯一与严格递增，无其他语义。
	ids atomic.Int64
}

// New 创建 Adapter。
//
// 未通过 WithPropagation 显式配置传播策略时，会尽力发现默认策略
// （全局 propagator 或 W3C Trace Context + HeaderCarrier）。
// 发现失败仅记录警告日志并保持传播关闭，绝不导致构造失败。
func New(opts ...Option) *Adapter {
	cfg := &adapterConfig{
		instrumentationName: instrumentationName,
		tracerProvider:      otel.GetTracerProvider(),
		logger:              slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	if cfg.tracer == nil {
		cfg.tracer = cfg.tracerProvider.Tracer(cfg.instrumentationName)
	}

	if !cfg.propagationDisabled && cfg.format == nil {
		format, err := discoverFormat()
		if err != nil {
			// 与来源不可区分的发现失败一律宽容降级：传播关闭，进程继续。
			cfg.logger.Warn("xspan: cannot initialize propagation, tracing context propagation disabled",
				slog.Any("error", err))
		} else {
			cfg.format = format
			cfg.carrier = HeaderCarrier
		}
	}

	return &Adapter{
		tracer:  cfg.tracer,
		format:  cfg.format,
		carrier: cfg.carrier,
		logger:  cfg.logger,
	}
}

// Tracer 返回当前的 tracer 句柄。
//
// 永不返回 nil、永不失败：未安装追踪 SDK 时返回的是功能完整的
// no-op 实现，调用方无需分支判断追踪是否可用。
func (a *Adapter) Tracer() trace.Tracer {
	return a.tracer
}

// propagationEnabled 判断传播策略对是否完整配置。
func (a *Adapter) propagationEnabled() bool {
	return a.format != nil && a.carrier != nil
}
