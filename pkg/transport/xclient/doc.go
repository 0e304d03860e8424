// Package xclient 提供带链路追踪的 HTTP 客户端传输层。
//
// # 设计理念
//
// Transport 实现 http.RoundTripper，在每次请求的生命周期中驱动
// xspan 适配器：
//  1. 以请求方法为名开启 client span
//  2. 将追踪上下文注入请求 Header（跨服务传播）
//  3. 记录请求发送事件（请求体字节数）
//  4. 委托给底层 RoundTripper 执行请求
//  5. 记录响应接收事件（响应体字节数）
//  6. 按响应状态码映射的结束状态结束 span
//
// 传输层错误（未收到响应）以 Unknown 状态结束 span 并原样返回错误。
//
// # 使用方式
//
//	transport, err := xclient.New()
//	if err != nil { ... }
//	client := &http.Client{Transport: transport}
//
// # 请求不可变性
//
// RoundTrip 在注入 Header 前克隆请求，绝不修改调用方持有的原始
// 请求对象，符合 http.RoundTripper 契约。
//
// # 职责边界
//
// 重试、熔断、限流等弹性能力不属于本包职责，应由底层 RoundTripper
// 或上层客户端组合实现。
package xclient
