// Package xspan 提供 HTTP 客户端与 OpenTelemetry 链路追踪之间的桥接能力。
//
// # 设计理念
//
// xspan 是胶水层：它不实现追踪后端，不定义传播协议，也不实现 HTTP 客户端。
// 它只负责三件事：
//   - 将 Span 的追踪上下文注入到出站请求的 Header（跨服务传播）
//   - 将 HTTP 响应状态码映射为标准化的 Span 结束状态
//   - 在 Span 上记录请求/响应字节数事件（message event）
//
// # Adapter 生命周期
//
// 所有可变状态（tracer 句柄、传播策略对、事件 ID 计数器）都收敛在
// Adapter 对象中，避免隐藏的包级全局变量。典型用法是进程启动时
// New() 一次、全程复用；简单场景可直接使用包级 Default() 适配器。
//
// # 传播策略对
//
// 传播由一对策略组成：TextMapPropagator（序列化格式）与 CarrierFunc
// （Header 写入方式）。两者要么同时配置（传播启用），要么同时缺失
// （注入静默跳过）——绝不单独生效。New() 构造时尽力发现默认策略
// （W3C Trace Context + HeaderCarrier）；发现失败仅记录警告日志，
// 传播保持关闭，不影响进程启动。
//
// # 状态码映射
//
// EndOptions 将 HTTP 状态码映射为 gRPC 状态码词汇表
// （google.golang.org/grpc/codes）：
//
//	无响应（statusCode <= 0） -> Unknown
//	400  -> InvalidArgument
//	401  -> Unauthenticated
//	403  -> PermissionDenied
//	404  -> NotFound
//	412  -> FailedPrecondition
//	500  -> Unavailable
//	其他非 2xx               -> Unknown
//	2xx                      -> OK
//
// 映射是纯函数，对任意整数输入都不会失败。
//
// # 并发模型
//
// Adapter 的字段在构造后只读（replace-only）；唯一带并发契约的操作是
// 消息事件 ID 的原子自增，保证并发调用下 ID 全局唯一且严格递增。
// 所有操作同步完成，不阻塞、不挂起、不做 I/O。
package xspan
