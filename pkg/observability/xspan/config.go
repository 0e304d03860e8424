package xspan

import (
	"fmt"

	"github.com/knadh/koanf/v2"
)

// =============================================================================
// 配置装配
// =============================================================================

// Config Adapter 的可序列化配置，用于从配置文件装配。
//
// YAML 示例：
//
//	tracing:
//	  tracer: "my-service/http-client"
//	  propagation: true
type Config struct {
	// Tracer OTel instrumentation 名称，空值使用包默认名称。
	Tracer string `koanf:"tracer"`

	// Propagation 是否启用追踪上下文传播。
	// nil 表示默认行为（构造时尽力发现传播策略）；
	// 显式 false 关闭传播。
	Propagation *bool `koanf:"propagation"`
}

// Options 将配置转换为 Adapter 选项。
func (c Config) Options() []Option {
	var opts []Option
	if c.Tracer != "" {
		opts = append(opts, WithInstrumentationName(c.Tracer))
	}
	if c.Propagation != nil && !*c.Propagation {
		opts = append(opts, WithPropagationDisabled())
	}
	return opts
}

// FromKoanf 从 koanf 实例的指定路径装配 Adapter 选项。
// path 为空字符串时读取整个配置树。
func FromKoanf(k *koanf.Koanf, path string) ([]Option, error) {
	if k == nil {
		return nil, ErrNilKoanf
	}
	var cfg Config
	if err := k.Unmarshal(path, &cfg); err != nil {
		return nil, fmt.Errorf("xspan: unmarshal config failed: %w", err)
	}
	return cfg.Options(), nil
}
