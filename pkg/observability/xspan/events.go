package xspan

import (
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// =============================================================================
// 消息字节数事件
// =============================================================================

// MessageType 消息事件方向。
type MessageType string

// 消息事件方向常量。
const (
	// MessageSent 出站请求。
	MessageSent MessageType = "SENT"

	// MessageReceived 入站响应。
	MessageReceived MessageType = "RECEIVED"
)

// 消息事件的名称与属性 key，对齐 OTel gRPC 插桩的 message 事件语义。
const (
	messageEventName = "message"

	attrMessageType             = attribute.Key("message.type")
	attrMessageID               = attribute.Key("message.id")
	attrMessageUncompressedSize = attribute.Key("message.uncompressed_size")
)

// LogSentMessageEvent 在 span 上记录一次请求发送事件。
// size 为请求体的未压缩字节数。span 为 nil 时返回 ErrNilSpan。
func (a *Adapter) LogSentMessageEvent(span trace.Span, size int64) error {
	return a.logMessageEvent(span, size, MessageSent)
}

// LogReceivedMessageEvent 在 span 上记录一次响应接收事件。
// size 为响应体的未压缩字节数。span 为 nil 时返回 ErrNilSpan。
func (a *Adapter) LogReceivedMessageEvent(span trace.Span, size int64) error {
	return a.logMessageEvent(span, size, MessageReceived)
}

// logMessageEvent 记录消息事件的共享实现。
//
// 事件 ID 由计数器原子分配：并发调用下全局唯一且严格递增，
// 除唯一性与到达序外无其他语义。
func (a *Adapter) logMessageEvent(span trace.Span, size int64, messageType MessageType) error {
	if span == nil {
		return ErrNilSpan
	}
	id := a.ids.Add(1) - 1
	span.AddEvent(messageEventName, trace.WithAttributes(
		attrMessageType.String(string(messageType)),
		attrMessageID.Int64(id),
		attrMessageUncompressedSize.Int64(size),
	))
	return nil
}
