package xclient

import "errors"

// New 返回的错误。
var (
	// ErrCreateCounter 表示创建请求计数器失败。
	ErrCreateCounter = errors.New("xclient: create request counter failed")

	// ErrCreateHistogram 表示创建耗时直方图失败。
	ErrCreateHistogram = errors.New("xclient: create duration histogram failed")
)
