package tracing

import (
	"testing"

	"github.com/opentracing/opentracing-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubConfig struct {
	enabled bool
}

func (c stubConfig) Enabled() bool         { return c.enabled }
func (c stubConfig) ServiceName() string   { return "bill-tracker-test" }
func (c stubConfig) AgentHostPort() string { return "127.0.0.1:6831" }

func Test_OnDisabledTracing_ShouldKeepNoopTracer(t *testing.T) {
	closer, err := Init(stubConfig{enabled: false})
	require.NoError(t, err)

	assert.IsType(t, opentracing.NoopTracer{}, opentracing.GlobalTracer())
	assert.NoError(t, closer.Close())
}

func Test_OnEnabledTracing_ShouldInstallJaegerTracer(t *testing.T) {
	t.Cleanup(func() {
		opentracing.SetGlobalTracer(opentracing.NoopTracer{})
	})

	closer, err := Init(stubConfig{enabled: true})
	require.NoError(t, err)

	_, isNoop := opentracing.GlobalTracer().(opentracing.NoopTracer)
	assert.False(t, isNoop)
	assert.True(t, opentracing.IsGlobalTracerRegistered())

	span := opentracing.StartSpan("selection")
	span.Finish()

	assert.NoError(t, closer.Close())
}
