// Package transport 提供传输层相关的子包。
//
// 子包列表：
//   - xclient: 带链路追踪的 HTTP 客户端 RoundTripper
package transport
