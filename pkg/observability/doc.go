// Package observability 提供可观测性相关的子包。
//
// 子包列表：
//   - xspan: HTTP 客户端与 OpenTelemetry 追踪的桥接适配器
//
// 设计原则：
//   - 遵循 OpenTelemetry 语义规范
//   - 胶水层不实现追踪后端，只做上下文传播、状态映射与事件记录
//   - 所有操作同步完成，不阻塞调用方
package observability
