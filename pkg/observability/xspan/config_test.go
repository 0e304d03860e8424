package xspan_test

import (
	"net/http"
	"testing"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xbridge/pkg/observability/xspan"
)

// loadYAML 从 YAML 字节数据构造 koanf 实例。
func loadYAML(t *testing.T, data string) *koanf.Koanf {
	t.Helper()
	k := koanf.New(".")
	require.NoError(t, k.Load(rawbytes.Provider([]byte(data)), kyaml.Parser()))
	return k
}

// =============================================================================
// 配置装配测试
// =============================================================================

func TestFromKoanf_NilKoanf(t *testing.T) {
	_, err := xspan.FromKoanf(nil, "")

	assert.ErrorIs(t, err, xspan.ErrNilKoanf)
}

func TestFromKoanf_Empty(t *testing.T) {
	k := loadYAML(t, "")

	opts, err := xspan.FromKoanf(k, "tracing")

	require.NoError(t, err)
	// 空配置不产生选项，构造走默认行为
	assert.Empty(t, opts)
}

func TestFromKoanf_PropagationDisabled(t *testing.T) {
	k := loadYAML(t, `
tracing:
  propagation: false
`)

	opts, err := xspan.FromKoanf(k, "tracing")
	require.NoError(t, err)

	_, provider := newRecordingTracer(t)
	adapter := xspan.New(append(opts, xspan.WithTracerProvider(provider))...)
	span := realSpan(t, adapter)

	h := http.Header{}
	require.NoError(t, adapter.InjectHTTPHeader(span, h))
	assert.Empty(t, h)
}

func TestFromKoanf_PropagationEnabled(t *testing.T) {
	k := loadYAML(t, `
tracing:
  propagation: true
`)

	opts, err := xspan.FromKoanf(k, "tracing")
	require.NoError(t, err)

	_, provider := newRecordingTracer(t)
	adapter := xspan.New(append(opts, xspan.WithTracerProvider(provider))...)
	span := realSpan(t, adapter)

	h := http.Header{}
	require.NoError(t, adapter.InjectHTTPHeader(span, h))
	assert.NotEmpty(t, h.Get("traceparent"))
}

func TestFromKoanf_TracerName(t *testing.T) {
	k := loadYAML(t, `
tracing:
  tracer: "order-service/http-client"
`)

	opts, err := xspan.FromKoanf(k, "tracing")
	require.NoError(t, err)

	recorder, provider := newRecordingTracer(t)
	adapter := xspan.New(append(opts, xspan.WithTracerProvider(provider))...)
	span := realSpan(t, adapter)
	span.End()

	ended := recorder.Ended()
	require.NotEmpty(t, ended)
	assert.Equal(t, "order-service/http-client", ended[0].InstrumentationScope().Name)
}

func TestConfig_Options_Empty(t *testing.T) {
	assert.Empty(t, xspan.Config{}.Options())
}
