package xspan

import "errors"

var (
	// ErrNilSpan 表示必需的 span 参数为 nil。
	// 调用方错误，不应重试，应修正调用点。
	ErrNilSpan = errors.New("xspan: span must not be nil")

	// ErrNilHeaders 表示必需的 HTTP Header 参数为 nil。
	ErrNilHeaders = errors.New("xspan: headers must not be nil")

	// ErrNilMetadata 表示必需的 gRPC metadata 参数为 nil。
	ErrNilMetadata = errors.New("xspan: metadata must not be nil")

	// ErrNilKoanf 表示传入的 koanf 实例为 nil。
	ErrNilKoanf = errors.New("xspan: koanf instance must not be nil")
)
