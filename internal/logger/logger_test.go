package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func Test_OnUnknownEnv_ShouldFailAndKeepLogger(t *testing.T) {
	before := logger

	err := Init("verbose")

	assert.EqualError(t, err, `unknown log env "verbose"`)
	assert.Same(t, before, logger)
}

func Test_OnKnownEnvs_ShouldBuildLogger(t *testing.T) {
	t.Cleanup(func() { logger = zap.NewNop() })

	for _, env := range []string{CLIEnv, DevEnv, ProdEnv, ""} {
		assert.NoError(t, Init(env), env)
	}
}
